// Package tui is the terminal dashboard: the same Pomodoro, clock and
// timer tabs as the desktop window, rendered with bubbletea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studydash/internal/core/model"
	"studydash/internal/core/pomodoro"
	"studydash/internal/core/stopwatch"
	"studydash/internal/i18n"
	"studydash/internal/worldclock"
)

type tab int

const (
	tabPomodoro tab = iota
	tabTime
	tabTimer
	tabCount
)

// Deps are the shared engines the dashboard drives.
type Deps struct {
	Cycle *pomodoro.Cycle
	Timer *stopwatch.Timer
	Clock *worldclock.Clock
	// ClockSettings is read on every clock refresh.
	ClockSettings func() model.ClockSettings
}

type pomodoroMsg pomodoro.Event

type stopwatchMsg stopwatch.Event

type clockTickMsg time.Time

// Model is the root bubbletea model.
type Model struct {
	deps Deps
	keys KeyMap

	pomodoroEvents  <-chan pomodoro.Event
	stopwatchEvents <-chan stopwatch.Event

	tab     tab
	pomo    pomodoro.Snapshot
	watch   stopwatch.Snapshot
	reading worldclock.Reading
	format  string

	taskInput    textinput.Model
	pendingTasks []string

	editingTarget bool
	targetInputs  [2]textinput.Model
	targetFocus   int

	width int
}

// New builds the dashboard and subscribes to both engines.
func New(deps Deps) Model {
	if deps.ClockSettings == nil {
		deps.ClockSettings = func() model.ClockSettings { return model.DefaultSettings().Clock }
	}

	taskInput := textinput.New()
	taskInput.Placeholder = i18n.T("What will you work on?")
	taskInput.CharLimit = 120
	taskInput.Width = 40

	var targets [2]textinput.Model
	for i, placeholder := range []string{i18n.T("Minutes"), i18n.T("Seconds")} {
		targets[i] = textinput.New()
		targets[i].Placeholder = placeholder
		targets[i].CharLimit = 4
		targets[i].Width = 8
	}

	m := Model{
		deps:            deps,
		keys:            DefaultKeyMap(),
		pomodoroEvents:  deps.Cycle.Subscribe(16),
		stopwatchEvents: deps.Timer.Subscribe(16),
		taskInput:       taskInput,
		targetInputs:    targets,
		pomo:            deps.Cycle.Snapshot(),
		watch:           deps.Timer.Snapshot(),
	}
	m.readClock()
	return m
}

// Init starts the event listeners and the clock ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		listenPomodoro(m.pomodoroEvents),
		listenStopwatch(m.stopwatchEvents),
		tickClock(),
	)
}

func listenPomodoro(events <-chan pomodoro.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return pomodoroMsg(event)
	}
}

func listenStopwatch(events <-chan stopwatch.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return stopwatchMsg(event)
	}
}

func tickClock() tea.Cmd {
	return tea.Every(time.Second, func(at time.Time) tea.Msg {
		return clockTickMsg(at)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case pomodoroMsg:
		m.pomo = msg.Snapshot
		if msg.Type == pomodoro.EventAwaitingTasks {
			m.tab = tabPomodoro
			m.taskInput.Focus()
		}
		return m, listenPomodoro(m.pomodoroEvents)

	case stopwatchMsg:
		m.watch = msg.Snapshot
		return m, listenStopwatch(m.stopwatchEvents)

	case clockTickMsg:
		m.readClock()
		return m, tickClock()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.pomo.AwaitingTasks {
			return m.updateTaskEntry(msg)
		}
		if m.editingTarget {
			return m.updateTargetEntry(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
	case key.Matches(msg, m.keys.Pomodoro):
		m.tab = tabPomodoro
	case key.Matches(msg, m.keys.Time):
		m.tab = tabTime
	case key.Matches(msg, m.keys.Timer):
		m.tab = tabTimer
	default:
		switch m.tab {
		case tabPomodoro:
			m.handlePomodoroKey(msg)
		case tabTimer:
			m.handleTimerKey(msg)
		case tabTime:
			if key.Matches(msg, m.keys.ClockStyle) {
				if m.currentFormat() == model.Format12h {
					m.format = model.Format24h
				} else {
					m.format = model.Format12h
				}
				m.readClock()
			}
		}
	}
	return m, nil
}

func (m *Model) handlePomodoroKey(msg tea.KeyMsg) {
	cycle := m.deps.Cycle
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if m.pomo.Active {
			cycle.Pause()
		} else {
			cycle.Start()
		}
	case key.Matches(msg, m.keys.Reset):
		cycle.Reset()
	case key.Matches(msg, m.keys.Work):
		cycle.SwitchMode(model.ModeWork)
	case key.Matches(msg, m.keys.ShortBreak):
		cycle.SwitchMode(model.ModeShortBreak)
	case key.Matches(msg, m.keys.LongBreak):
		cycle.SwitchMode(model.ModeLongBreak)
	default:
		return
	}
	m.pomo = cycle.Snapshot()
	if m.pomo.AwaitingTasks {
		m.taskInput.Focus()
	}
}

func (m *Model) handleTimerKey(msg tea.KeyMsg) {
	timer := m.deps.Timer
	switch {
	case key.Matches(msg, m.keys.Toggle):
		timer.Toggle()
	case key.Matches(msg, m.keys.Reset):
		timer.Reset()
	case key.Matches(msg, m.keys.SetTarget):
		m.editingTarget = true
		m.targetFocus = 0
		for i := range m.targetInputs {
			m.targetInputs[i].SetValue("")
			m.targetInputs[i].Blur()
		}
		m.targetInputs[0].Focus()
		return
	default:
		return
	}
	m.watch = timer.Snapshot()
}

func (m Model) updateTaskEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.deps.Cycle.CancelTasks()
		m.pendingTasks = nil
		m.taskInput.SetValue("")
		m.taskInput.Blur()
		m.pomo = m.deps.Cycle.Snapshot()
		return m, nil

	case key.Matches(msg, m.keys.Begin):
		m.beginWithTasks()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		task := strings.TrimSpace(m.taskInput.Value())
		if task == "" {
			m.beginWithTasks()
			return m, nil
		}
		m.pendingTasks = append(m.pendingTasks, task)
		m.taskInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

func (m *Model) beginWithTasks() {
	tasks := m.pendingTasks
	if typed := strings.TrimSpace(m.taskInput.Value()); typed != "" {
		tasks = append(tasks, typed)
	}
	if len(pomodoro.CleanTasks(tasks)) == 0 {
		return
	}
	m.deps.Cycle.StartWithTasks(tasks)
	m.pendingTasks = nil
	m.taskInput.SetValue("")
	m.taskInput.Blur()
	m.pomo = m.deps.Cycle.Snapshot()
}

func (m Model) updateTargetEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.editingTarget = false
		return m, nil
	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
		m.targetInputs[m.targetFocus].Blur()
		m.targetFocus = 1 - m.targetFocus
		m.targetInputs[m.targetFocus].Focus()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		minutes, seconds := stopwatch.ParseTarget(m.targetInputs[0].Value(), m.targetInputs[1].Value())
		m.deps.Timer.SetTarget(minutes, seconds)
		m.editingTarget = false
		m.watch = m.deps.Timer.Snapshot()
		return m, nil
	}

	var cmd tea.Cmd
	m.targetInputs[m.targetFocus], cmd = m.targetInputs[m.targetFocus].Update(msg)
	return m, cmd
}

func (m Model) currentFormat() string {
	if m.format != "" {
		return m.format
	}
	return m.deps.ClockSettings().Format
}

func (m *Model) readClock() {
	settings := m.deps.ClockSettings()
	settings.Format = m.currentFormat()
	m.reading = m.deps.Clock.Read(settings)
}

// View renders the dashboard.
func (m Model) View() string {
	var body string
	switch m.tab {
	case tabTime:
		body = m.viewClock()
	case tabTimer:
		body = m.viewTimer()
	default:
		body = m.viewPomodoro()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewTabs(), "", body, m.viewHelp())
}

func (m Model) viewTabs() string {
	names := []string{i18n.T("Pomodoro"), i18n.T("Time"), i18n.T("Timer")}
	rendered := make([]string, len(names))
	for i, name := range names {
		style := tabStyle
		if tab(i) == m.tab {
			style = activeTabStyle
		}
		rendered[i] = style.Render(fmt.Sprintf("%d %s", i+1, name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewPomodoro() string {
	color := colorAccent
	if m.pomo.Mode.IsBreak() {
		color = colorBreak
	}
	lines := []string{
		modeStyle.Foreground(color).Render(i18n.ModeLabel(m.pomo.Mode)),
		bigTimeStyle.BorderForeground(color).Render(pomodoro.FormatTimeLeft(m.pomo.TimeLeft)),
	}
	if m.pomo.Quote != "" {
		lines = append(lines, quoteStyle.Render("“"+m.pomo.Quote+"”"))
	}
	for _, task := range m.pomo.Tasks {
		lines = append(lines, "• "+task)
	}
	if m.pomo.AwaitingTasks {
		lines = append(lines, "", i18n.T("What will you work on?"))
		for _, task := range m.pendingTasks {
			lines = append(lines, "  • "+task)
		}
		lines = append(lines, m.taskInput.View())
	}
	lines = append(lines, subtleStyle.Render(fmt.Sprintf("%s: %d", i18n.T("Completed sessions"), m.pomo.CompletedWork)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewClock() string {
	face := m.reading.Time
	if m.reading.Analog {
		face = fmt.Sprintf("%s\n%s", m.reading.Time, subtleStyle.Render(fmt.Sprintf(
			"h %.0f°  m %.0f°  s %.0f°", m.reading.Hands.Hour, m.reading.Hands.Minute, m.reading.Hands.Second)))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		bigTimeStyle.Render(face),
		m.reading.Date,
		subtleStyle.Render(m.reading.Zone),
	)
}

func (m Model) viewTimer() string {
	label := "Stopwatch"
	if m.watch.Mode == stopwatch.ModeCountdown {
		label = "Countdown " + stopwatch.FormatPrecise(m.watch.Initial)
	}
	lines := []string{
		modeStyle.Render(label),
		bigTimeStyle.Render(stopwatch.FormatPrecise(m.watch.Value)),
	}
	if m.editingTarget {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			m.targetInputs[0].View(), " : ", m.targetInputs[1].View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewHelp() string {
	bindings := []key.Binding{m.keys.NextTab, m.keys.Quit}
	switch {
	case m.pomo.AwaitingTasks:
		bindings = []key.Binding{m.keys.Submit, m.keys.Begin, m.keys.Escape}
	case m.editingTarget:
		bindings = []key.Binding{m.keys.NextTab, m.keys.Submit, m.keys.Escape}
	case m.tab == tabPomodoro:
		bindings = append([]key.Binding{m.keys.Toggle, m.keys.Reset, m.keys.Work, m.keys.ShortBreak, m.keys.LongBreak}, bindings...)
	case m.tab == tabTimer:
		bindings = append([]key.Binding{m.keys.Toggle, m.keys.Reset, m.keys.SetTarget}, bindings...)
	case m.tab == tabTime:
		bindings = append([]key.Binding{m.keys.ClockStyle}, bindings...)
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
