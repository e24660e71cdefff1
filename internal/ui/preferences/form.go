package preferences

import (
	"strconv"
	"strings"
	"time"

	"studydash/internal/audio"
	"studydash/internal/core/model"
)

const maxVolume = 6.0

// FormValues is the raw state of the preferences form.
type FormValues struct {
	Work            string
	ShortBreak      string
	LongBreak       string
	SoundName       string
	Volume          float64
	SpokenText      string
	CustomSoundPath string
	Analog          bool
	TwelveHour      bool
	Timezone        string
	IdleMinutes     string
	LaunchAtLogin   bool
}

// ValuesFrom fills the form from settings.
func ValuesFrom(settings model.Settings) FormValues {
	soundName := settings.Sound
	if sound, ok := audio.Lookup(settings.Sound); ok {
		soundName = sound.Name
	}
	return FormValues{
		Work:            strconv.Itoa(settings.Timers.Minutes(model.ModeWork)),
		ShortBreak:      strconv.Itoa(settings.Timers.Minutes(model.ModeShortBreak)),
		LongBreak:       strconv.Itoa(settings.Timers.Minutes(model.ModeLongBreak)),
		SoundName:       soundName,
		Volume:          settings.Volume,
		SpokenText:      settings.SpokenText,
		CustomSoundPath: settings.CustomSoundPath,
		Analog:          settings.Clock.Type == model.ClockAnalog,
		TwelveHour:      settings.Clock.Format == model.Format12h,
		Timezone:        settings.Clock.Timezone,
		IdleMinutes:     strconv.Itoa(int(settings.IdlePauseAfter / time.Minute)),
		LaunchAtLogin:   settings.LaunchAtLogin,
	}
}

// Apply writes the form onto base. Unparseable numbers keep the value
// from base.
func (values FormValues) Apply(base model.Settings) model.Settings {
	settings := base

	if minutes, ok := parsePositiveInt(values.Work); ok {
		settings.Timers.Work = minutes
	}
	if minutes, ok := parsePositiveInt(values.ShortBreak); ok {
		settings.Timers.ShortBreak = minutes
	}
	if minutes, ok := parsePositiveInt(values.LongBreak); ok {
		settings.Timers.LongBreak = minutes
	}

	if sound, ok := audio.LookupName(values.SoundName); ok {
		settings.Sound = sound.ID
	}
	settings.Volume = clamp(values.Volume, audio.MinVolume, maxVolume)
	if text := strings.TrimSpace(values.SpokenText); text != "" {
		settings.SpokenText = text
	} else {
		settings.SpokenText = model.DefaultSpokenText
	}
	settings.CustomSoundPath = strings.TrimSpace(values.CustomSoundPath)

	settings.Clock.Type = model.ClockDigital
	if values.Analog {
		settings.Clock.Type = model.ClockAnalog
	}
	settings.Clock.Format = model.Format24h
	if values.TwelveHour {
		settings.Clock.Format = model.Format12h
	}
	if zone := strings.TrimSpace(values.Timezone); zone != "" {
		if _, err := time.LoadLocation(zone); err == nil {
			settings.Clock.Timezone = zone
		}
	}

	if minutes, err := strconv.Atoi(strings.TrimSpace(values.IdleMinutes)); err == nil && minutes >= 0 {
		settings.IdlePauseAfter = time.Duration(min(minutes, model.MaxTimerMinutes)) * time.Minute
	}
	settings.LaunchAtLogin = values.LaunchAtLogin
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return min(parsed, model.MaxTimerMinutes), true
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
