package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"studydash/internal/core/clock/clocktest"
	"studydash/internal/core/model"
	"studydash/internal/core/pomodoro"
	"studydash/internal/core/quotes"
	"studydash/internal/core/stopwatch"
	"studydash/internal/i18n"
	"studydash/internal/settings"
	"studydash/internal/worldclock"
)

func newTestModel(t *testing.T) (Model, *clocktest.Manual) {
	t.Helper()
	i18n.Init("en_GB")

	manual := clocktest.NewManual(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	store := settings.NewMemory(model.DefaultSettings())
	cycle := pomodoro.New(store, nil, pomodoro.Config{Clock: manual, Quotes: quotes.Fixed("Keep going.")})
	timer := stopwatch.New(nil, store, stopwatch.Config{Clock: manual})
	t.Cleanup(func() {
		cycle.Close()
		timer.Close()
	})

	m := New(Deps{
		Cycle: cycle,
		Timer: timer,
		Clock: worldclock.New(manual),
		ClockSettings: func() model.ClockSettings {
			return model.ClockSettings{Type: model.ClockDigital, Timezone: "UTC", Format: model.Format24h}
		},
	})
	return m, manual
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func TestInitialView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	require.Contains(t, view, "25:00")
	require.Contains(t, view, "Work")
}

func TestStartAsksForTasksThenRuns(t *testing.T) {
	m, manual := newTestModel(t)

	m = press(t, m, " ")
	require.True(t, m.pomo.AwaitingTasks)
	require.Contains(t, m.View(), "What will you work on?")

	m = typeText(t, m, "Write report")
	m = press(t, m, "enter")
	require.Equal(t, []string{"Write report"}, m.pendingTasks)

	m = typeText(t, m, "Review PR")
	m = press(t, m, "ctrl+s")
	require.True(t, m.pomo.Active)
	require.Equal(t, []string{"Write report", "Review PR"}, m.pomo.Tasks)
	require.Equal(t, "Keep going.", m.pomo.Quote)

	manual.Advance(3 * time.Second)
	m.pomo = m.deps.Cycle.Snapshot()
	require.Contains(t, m.View(), "24:57")
}

func TestEnterOnEmptyInputBegins(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, " ")
	m = typeText(t, m, "Read chapter 3")
	m = press(t, m, "enter", "enter")
	require.True(t, m.pomo.Active)
}

func TestEscapeCancelsTaskEntry(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, " ")
	m = typeText(t, m, "half typed")
	m = press(t, m, "esc")
	require.False(t, m.pomo.AwaitingTasks)
	require.False(t, m.pomo.Active)
	require.Empty(t, m.taskInput.Value())
}

func TestBlankTasksDoNotStart(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, " ")
	m = typeText(t, m, "   ")
	m = press(t, m, "ctrl+s")
	require.True(t, m.pomo.AwaitingTasks)
	require.False(t, m.pomo.Active)
}

func TestSwitchModes(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "s")
	require.Equal(t, model.ModeShortBreak, m.pomo.Mode)
	require.Contains(t, m.View(), "05:00")

	m = press(t, m, " ")
	require.True(t, m.pomo.Active)

	m = press(t, m, "l")
	require.Equal(t, model.ModeLongBreak, m.pomo.Mode)
	require.False(t, m.pomo.Active)
	require.Equal(t, 900, m.pomo.TimeLeft)
}

func TestTabsCycle(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "tab")
	require.Equal(t, tabTime, m.tab)
	require.Contains(t, m.View(), "12:00:00")
	require.Contains(t, m.View(), "Saturday, June 1")

	m = press(t, m, "tab", "tab")
	require.Equal(t, tabPomodoro, m.tab)

	m = press(t, m, "3")
	require.Equal(t, tabTimer, m.tab)
}

func TestClockFormatToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "2", "f")
	require.Contains(t, m.View(), "12:00:00 PM")

	m = press(t, m, "f")
	require.NotContains(t, m.View(), "PM")
}

func TestCountdownTarget(t *testing.T) {
	m, manual := newTestModel(t)

	m = press(t, m, "3", "t")
	require.True(t, m.editingTarget)

	m = typeText(t, m, "1")
	m = press(t, m, "tab")
	m = typeText(t, m, "75")
	m = press(t, m, "enter")

	require.False(t, m.editingTarget)
	require.Equal(t, stopwatch.ModeCountdown, m.watch.Mode)
	require.Equal(t, 119*time.Second, m.watch.Value)

	m = press(t, m, " ")
	manual.Advance(time.Second)
	m.watch = m.deps.Timer.Snapshot()
	require.Contains(t, m.View(), "01:58.00")
}

func TestStopwatchToggleAndReset(t *testing.T) {
	m, manual := newTestModel(t)

	m = press(t, m, "3", " ")
	require.True(t, m.watch.Active)
	manual.Advance(1500 * time.Millisecond)

	m = press(t, m, " ")
	require.False(t, m.watch.Active)
	require.Equal(t, 1500*time.Millisecond, m.watch.Value)

	m = press(t, m, "r")
	require.Zero(t, m.watch.Value)
}

func TestEventMessagesUpdateSnapshot(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(pomodoroMsg(pomodoro.Event{
		Type:     pomodoro.EventAwaitingTasks,
		Snapshot: pomodoro.Snapshot{Mode: model.ModeWork, TimeLeft: 1500, AwaitingTasks: true},
	}))
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.pomo.AwaitingTasks)
	require.True(t, m.taskInput.Focused())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
