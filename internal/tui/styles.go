package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}
	colorBreak  = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	colorSubtle = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorSubtle)

	activeTabStyle = tabStyle.
			Foreground(colorAccent).
			Bold(true).
			Underline(true)

	bigTimeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder())

	modeStyle = lipgloss.NewStyle().Bold(true)

	subtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	quoteStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorSubtle)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			MarginTop(1)
)
