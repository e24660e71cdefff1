package model

import "time"

// SettingsVersion is the schema version of persisted preferences.
const SettingsVersion = 1

const (
	ClockDigital = "digital"
	ClockAnalog  = "analog"

	Format24h = "24h"
	Format12h = "12h"

	DefaultSpokenText = "Timer complete"
	DefaultSound      = "track1"
)

// MaxTimerMinutes bounds every configured duration to one day.
const MaxTimerMinutes = 24 * 60

// TimerMinutes holds the configured duration of each Pomodoro mode.
type TimerMinutes struct {
	Work       int
	ShortBreak int
	LongBreak  int
}

// ClockSettings configures the world clock tab.
type ClockSettings struct {
	Type     string
	Timezone string
	Format   string
}

// Settings is the flat user preferences object.
type Settings struct {
	Version         int
	Timers          TimerMinutes
	Sound           string
	Volume          float64
	SpokenText      string
	CustomSoundPath string
	Clock           ClockSettings
	IdlePauseAfter  time.Duration
	LaunchAtLogin   bool
}

// DefaultSettings returns the preferences used before anything is persisted.
func DefaultSettings() Settings {
	return Settings{
		Version: SettingsVersion,
		Timers: TimerMinutes{
			Work:       25,
			ShortBreak: 5,
			LongBreak:  15,
		},
		Sound:      DefaultSound,
		Volume:     0,
		SpokenText: DefaultSpokenText,
		Clock: ClockSettings{
			Type:     ClockDigital,
			Timezone: time.Local.String(),
			Format:   Format24h,
		},
	}
}

// Minutes returns the configured minutes for mode, falling back to the
// default when the stored value is not positive and capping it at
// MaxTimerMinutes.
func (timers TimerMinutes) Minutes(mode Mode) int {
	defaults := DefaultSettings().Timers
	var value, fallback int
	switch mode {
	case ModeShortBreak:
		value, fallback = timers.ShortBreak, defaults.ShortBreak
	case ModeLongBreak:
		value, fallback = timers.LongBreak, defaults.LongBreak
	default:
		value, fallback = timers.Work, defaults.Work
	}
	if value <= 0 {
		return fallback
	}
	return min(value, MaxTimerMinutes)
}

// WithMinutes returns a copy of timers with mode set to minutes.
func (timers TimerMinutes) WithMinutes(mode Mode, minutes int) TimerMinutes {
	switch mode {
	case ModeShortBreak:
		timers.ShortBreak = minutes
	case ModeLongBreak:
		timers.LongBreak = minutes
	case ModeWork:
		timers.Work = minutes
	}
	return timers
}

// Alert returns the configured completion alert.
func (settings Settings) Alert() Alert {
	text := settings.SpokenText
	if text == "" {
		text = DefaultSpokenText
	}
	return Alert{Sound: settings.Sound, Text: text}
}
