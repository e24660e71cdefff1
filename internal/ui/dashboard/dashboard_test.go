package dashboard

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/require"

	"studydash/internal/core/clock/clocktest"
	"studydash/internal/core/model"
	"studydash/internal/core/pomodoro"
	"studydash/internal/core/quotes"
	"studydash/internal/core/stopwatch"
	"studydash/internal/settings"
	"studydash/internal/worldclock"
)

type fixture struct {
	dash   *Dashboard
	cycle  *pomodoro.Cycle
	timer  *stopwatch.Timer
	manual *clocktest.Manual
	clock  *model.ClockSettings
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	app := test.NewTempApp(t)
	app.Settings().SetTheme(theme.DefaultTheme())

	manual := clocktest.NewManual(time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC))
	store := settings.NewMemory(model.DefaultSettings())
	cycle := pomodoro.New(store, nil, pomodoro.Config{Clock: manual, Quotes: quotes.Fixed("Stay sharp.")})
	timer := stopwatch.New(nil, store, stopwatch.Config{Clock: manual})
	t.Cleanup(func() {
		cycle.Close()
		timer.Close()
	})

	clockSettings := &model.ClockSettings{Type: model.ClockDigital, Timezone: "UTC", Format: model.Format24h}
	dash := New(app, Deps{
		Cycle:         cycle,
		Timer:         timer,
		Clock:         worldclock.New(manual),
		ClockSettings: func() model.ClockSettings { return *clockSettings },
		Ticker:        manual,
	})
	return fixture{dash: dash, cycle: cycle, timer: timer, manual: manual, clock: clockSettings}
}

func TestInitialRender(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, "25:00", f.dash.pomoTime.Text)
	require.Equal(t, "Start", f.dash.pomoToggle.Text)
	require.False(t, f.dash.taskForm.Visible())
	require.Equal(t, "00:00.00", f.dash.watchTime.Text)
	require.Equal(t, "15:30:00", f.dash.clockTime.Text)
	require.Equal(t, "UTC", f.dash.clockZone.Text)
}

func TestDisplaysUseMonospaceText(t *testing.T) {
	f := newFixture(t)

	for _, text := range []*canvas.Text{f.dash.pomoTime, f.dash.clockTime, f.dash.watchTime} {
		require.Equal(t, fyne.TextStyle{Monospace: true}, text.TextStyle)
		require.Positive(t, text.MinSize().Width)
	}
}

func TestStartAsksForTasksThenBegins(t *testing.T) {
	f := newFixture(t)

	test.Tap(f.dash.pomoToggle)
	f.dash.renderPomodoro(f.cycle.Snapshot())
	require.True(t, f.dash.taskForm.Visible())

	test.Type(f.dash.taskEntry, "read chapter 3")
	f.dash.addTask()
	require.Equal(t, "• read chapter 3", f.dash.pendingList.Text)
	require.Empty(t, f.dash.taskEntry.Text)

	test.Type(f.dash.taskEntry, "outline essay")
	f.dash.beginFocus()

	snapshot := f.cycle.Snapshot()
	require.True(t, snapshot.Active)
	require.Equal(t, []string{"read chapter 3", "outline essay"}, snapshot.Tasks)
	require.Empty(t, f.dash.pending)

	f.dash.renderPomodoro(snapshot)
	require.False(t, f.dash.taskForm.Visible())
	require.Equal(t, "Pause", f.dash.pomoToggle.Text)
	require.Equal(t, "“Stay sharp.”", f.dash.quote.Text)
}

func TestBeginWithoutTasksDoesNothing(t *testing.T) {
	f := newFixture(t)
	f.cycle.Start()

	f.dash.beginFocus()
	require.True(t, f.cycle.Snapshot().AwaitingTasks)
	require.False(t, f.cycle.Snapshot().Active)
}

func TestModeButtonsHighlightCurrent(t *testing.T) {
	f := newFixture(t)

	test.Tap(f.dash.modeButtons[model.ModeLongBreak])
	f.dash.renderPomodoro(f.cycle.Snapshot())

	require.Equal(t, "15:00", f.dash.pomoTime.Text)
	require.NotEqual(t, f.dash.modeButtons[model.ModeWork].Importance, f.dash.modeButtons[model.ModeLongBreak].Importance)
}

func TestTimerTargetEntry(t *testing.T) {
	f := newFixture(t)

	f.dash.minutes.SetText("1")
	f.dash.seconds.SetText("30")
	f.dash.applyTarget()

	snapshot := f.timer.Snapshot()
	require.Equal(t, stopwatch.ModeCountdown, snapshot.Mode)
	require.Equal(t, 90*time.Second, snapshot.Initial)
	require.Empty(t, f.dash.minutes.Text)

	f.dash.renderTimer(snapshot)
	require.Equal(t, "01:30.00", f.dash.watchTime.Text)
	require.Contains(t, f.dash.watchMode.Text, "01:30.00")
}

func TestClockSwitchesToAnalog(t *testing.T) {
	f := newFixture(t)

	f.clock.Type = model.ClockAnalog
	f.dash.renderClock()

	require.False(t, f.dash.digital.Visible())
	require.True(t, f.dash.analog.root.Visible())
	// 15:30 puts the hour hand halfway between 3 and 4, right of centre.
	require.Greater(t, f.dash.analog.hour.Position2.X, float32(faceSize/2))
}

func TestRunRefreshesClock(t *testing.T) {
	f := newFixture(t)
	f.dash.Run()
	t.Cleanup(f.dash.Stop)

	require.Equal(t, 1, f.manual.Pending())
	f.dash.Stop()
	require.Equal(t, 0, f.manual.Pending())
}
