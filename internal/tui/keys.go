package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard keybindings.
type KeyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Pomodoro   key.Binding
	Time       key.Binding
	Timer      key.Binding
	Toggle     key.Binding
	Reset      key.Binding
	Work       key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding
	SetTarget  key.Binding
	ClockStyle key.Binding
	Submit     key.Binding
	Begin      key.Binding
	Escape     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Pomodoro: key.NewBinding(key.WithKeys("1")),
		Time:     key.NewBinding(key.WithKeys("2")),
		Timer:    key.NewBinding(key.WithKeys("3")),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Work: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "work"),
		),
		ShortBreak: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "short break"),
		),
		LongBreak: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "long break"),
		),
		SetTarget: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "set countdown"),
		),
		ClockStyle: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "12h/24h"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add/apply"),
		),
		Begin: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "begin focus"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
