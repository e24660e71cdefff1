package model

// Alert is the completion side effect requested from a Notifier.
type Alert struct {
	Sound string
	Text  string
}

// Notifier plays a completion alert. Calls are fire-and-forget.
type Notifier interface {
	Notify(soundID, spokenText string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(soundID, spokenText string)

// Notify calls fn.
func (fn NotifierFunc) Notify(soundID, spokenText string) {
	fn(soundID, spokenText)
}

// AlertSource supplies the currently configured completion alert.
type AlertSource interface {
	Alert() Alert
}

// SettingsProvider supplies configured Pomodoro durations.
// Implementations are read on every reset, switch and idle refresh and must
// not be cached by callers.
type SettingsProvider interface {
	AlertSource
	// Duration returns the configured duration of mode in whole minutes.
	Duration(mode Mode) int
}
