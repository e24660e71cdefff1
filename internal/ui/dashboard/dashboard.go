// Package dashboard is the main desktop window with the Pomodoro, Time and
// Timer tabs.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"studydash/internal/core/clock"
	"studydash/internal/core/model"
	"studydash/internal/core/pomodoro"
	"studydash/internal/core/stopwatch"
	"studydash/internal/i18n"
	"studydash/internal/worldclock"
)

// Deps are the engines and callbacks the window drives.
type Deps struct {
	Cycle         *pomodoro.Cycle
	Timer         *stopwatch.Timer
	Clock         *worldclock.Clock
	ClockSettings func() model.ClockSettings
	// Ticker drives the clock tab; defaults to the system clock.
	Ticker        clock.Clock
	OnPreferences func()
}

// Dashboard owns the main window.
type Dashboard struct {
	window fyne.Window
	deps   Deps

	modeButtons map[model.Mode]*widget.Button
	pomoTime    *canvas.Text
	pomoToggle  *widget.Button
	quote       *widget.Label
	tasks       *widget.Label
	completed   *widget.Label
	taskForm    *fyne.Container
	taskEntry   *widget.Entry
	pending     []string
	pendingList *widget.Label

	clockTime *canvas.Text
	clockDate *widget.Label
	clockZone *widget.Label
	digital   *fyne.Container
	analog    *analogFace
	clockTick clock.Handle

	watchTime   *canvas.Text
	watchMode   *widget.Label
	watchToggle *widget.Button
	minutes     *widget.Entry
	seconds     *widget.Entry
}

// New builds the hidden main window.
func New(app fyne.App, deps Deps) *Dashboard {
	if deps.Ticker == nil {
		deps.Ticker = clock.System
	}
	dash := &Dashboard{
		window: app.NewWindow("Study Dash"),
		deps:   deps,
	}

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon(i18n.T("Pomodoro"), theme.HistoryIcon(), dash.buildPomodoro()),
		container.NewTabItemWithIcon(i18n.T("Time"), theme.ComputerIcon(), dash.buildClock()),
		container.NewTabItemWithIcon(i18n.T("Timer"), theme.MediaPlayIcon(), dash.buildTimer()),
	)
	prefs := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if deps.OnPreferences != nil {
			deps.OnPreferences()
		}
	})

	dash.window.SetContent(container.NewBorder(
		container.NewHBox(layout.NewSpacer(), prefs), nil, nil, nil, tabs))
	dash.window.Resize(fyne.NewSize(520, 460))
	dash.window.SetCloseIntercept(dash.window.Hide)

	dash.renderPomodoro(deps.Cycle.Snapshot())
	dash.renderTimer(deps.Timer.Snapshot())
	dash.renderClock()
	return dash
}

// Window exposes the underlying fyne window.
func (dash *Dashboard) Window() fyne.Window {
	return dash.window
}

// Show displays and focuses the window.
func (dash *Dashboard) Show() {
	dash.window.Show()
	dash.window.RequestFocus()
}

// Run forwards engine events to the widgets until both engines close.
func (dash *Dashboard) Run() {
	pomodoroEvents := dash.deps.Cycle.Subscribe(16)
	stopwatchEvents := dash.deps.Timer.Subscribe(16)

	go func() {
		for event := range pomodoroEvents {
			snapshot := event.Snapshot
			awaiting := event.Type == pomodoro.EventAwaitingTasks
			fyne.Do(func() {
				dash.renderPomodoro(snapshot)
				if awaiting {
					dash.window.Canvas().Focus(dash.taskEntry)
				}
			})
		}
	}()
	go func() {
		for event := range stopwatchEvents {
			snapshot := event.Snapshot
			fyne.Do(func() { dash.renderTimer(snapshot) })
		}
	}()
	dash.clockTick = dash.deps.Ticker.Every(250*time.Millisecond, func() {
		fyne.Do(dash.renderClock)
	})
}

// Stop halts the clock refresh.
func (dash *Dashboard) Stop() {
	if dash.clockTick != nil {
		dash.clockTick.Stop()
	}
}

func bigText(size float32) *canvas.Text {
	text := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	text.TextSize = size
	text.TextStyle = fyne.TextStyle{Monospace: true}
	text.Alignment = fyne.TextAlignCenter
	return text
}

func (dash *Dashboard) buildPomodoro() fyne.CanvasObject {
	cycle := dash.deps.Cycle
	dash.modeButtons = map[model.Mode]*widget.Button{}
	modes := container.NewGridWithColumns(len(model.Modes))
	for _, mode := range model.Modes {
		mode := mode
		button := widget.NewButton(i18n.ModeLabel(mode), func() { cycle.SwitchMode(mode) })
		dash.modeButtons[mode] = button
		modes.Add(button)
	}

	dash.pomoTime = bigText(72)
	dash.quote = widget.NewLabel("")
	dash.quote.Alignment = fyne.TextAlignCenter
	dash.quote.Wrapping = fyne.TextWrapWord
	dash.quote.TextStyle = fyne.TextStyle{Italic: true}
	dash.tasks = widget.NewLabel("")
	dash.completed = widget.NewLabel("")

	dash.pomoToggle = widget.NewButtonWithIcon(i18n.T("Start"), theme.MediaPlayIcon(), func() {
		if cycle.Snapshot().Active {
			cycle.Pause()
		} else {
			cycle.Start()
		}
	})
	dash.pomoToggle.Importance = widget.HighImportance
	reset := widget.NewButtonWithIcon(i18n.T("Reset"), theme.MediaReplayIcon(), cycle.Reset)

	dash.taskEntry = widget.NewEntry()
	dash.taskEntry.SetPlaceHolder(i18n.T("What will you work on?"))
	dash.taskEntry.OnSubmitted = func(string) { dash.addTask() }
	dash.pendingList = widget.NewLabel("")
	add := widget.NewButtonWithIcon(i18n.T("Add task"), theme.ContentAddIcon(), dash.addTask)
	begin := widget.NewButtonWithIcon(i18n.T("Begin focus"), theme.ConfirmIcon(), dash.beginFocus)
	begin.Importance = widget.HighImportance
	cancel := widget.NewButton(i18n.T("Cancel"), func() {
		dash.clearPending()
		cycle.CancelTasks()
	})
	dash.taskForm = container.NewVBox(
		container.NewBorder(nil, nil, nil, add, dash.taskEntry),
		dash.pendingList,
		container.NewHBox(layout.NewSpacer(), cancel, begin),
	)
	dash.taskForm.Hide()

	return container.NewVBox(
		modes,
		dash.pomoTime,
		container.NewHBox(layout.NewSpacer(), dash.pomoToggle, reset, layout.NewSpacer()),
		dash.taskForm,
		dash.quote,
		dash.tasks,
		dash.completed,
	)
}

func (dash *Dashboard) addTask() {
	task := strings.TrimSpace(dash.taskEntry.Text)
	if task == "" {
		dash.beginFocus()
		return
	}
	dash.pending = append(dash.pending, task)
	dash.taskEntry.SetText("")
	dash.pendingList.SetText(bulletList(dash.pending))
}

func (dash *Dashboard) beginFocus() {
	tasks := append([]string(nil), dash.pending...)
	if typed := strings.TrimSpace(dash.taskEntry.Text); typed != "" {
		tasks = append(tasks, typed)
	}
	if len(pomodoro.CleanTasks(tasks)) == 0 {
		return
	}
	dash.clearPending()
	dash.deps.Cycle.StartWithTasks(tasks)
}

func (dash *Dashboard) clearPending() {
	dash.pending = nil
	dash.taskEntry.SetText("")
	dash.pendingList.SetText("")
}

func (dash *Dashboard) renderPomodoro(snapshot pomodoro.Snapshot) {
	for mode, button := range dash.modeButtons {
		if mode == snapshot.Mode {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}

	dash.pomoTime.Text = pomodoro.FormatTimeLeft(snapshot.TimeLeft)
	dash.pomoTime.Refresh()

	if snapshot.Active {
		dash.pomoToggle.SetText(i18n.T("Pause"))
		dash.pomoToggle.SetIcon(theme.MediaPauseIcon())
	} else {
		dash.pomoToggle.SetText(i18n.T("Start"))
		dash.pomoToggle.SetIcon(theme.MediaPlayIcon())
	}

	if snapshot.AwaitingTasks {
		dash.taskForm.Show()
	} else {
		dash.taskForm.Hide()
	}

	quote := ""
	if snapshot.Quote != "" {
		quote = "“" + snapshot.Quote + "”"
	}
	dash.quote.SetText(quote)
	dash.tasks.SetText(bulletList(snapshot.Tasks))
	dash.completed.SetText(fmt.Sprintf("%s: %d", i18n.T("Completed sessions"), snapshot.CompletedWork))
}

func (dash *Dashboard) buildClock() fyne.CanvasObject {
	dash.clockTime = bigText(56)
	dash.clockDate = widget.NewLabel("")
	dash.clockDate.Alignment = fyne.TextAlignCenter
	dash.clockZone = widget.NewLabel("")
	dash.clockZone.Alignment = fyne.TextAlignCenter

	dash.analog = newAnalogFace()
	dash.digital = container.NewVBox(dash.clockTime)
	face := container.NewCenter(container.NewGridWrap(fyne.NewSize(faceSize, faceSize), dash.analog.root))

	return container.NewVBox(
		container.NewStack(dash.digital, face),
		dash.clockDate,
		dash.clockZone,
	)
}

func (dash *Dashboard) renderClock() {
	settings := model.DefaultSettings().Clock
	if dash.deps.ClockSettings != nil {
		settings = dash.deps.ClockSettings()
	}
	reading := dash.deps.Clock.Read(settings)

	if reading.Analog {
		dash.digital.Hide()
		dash.analog.root.Show()
		dash.analog.set(reading.Hands)
	} else {
		dash.analog.root.Hide()
		dash.digital.Show()
		dash.clockTime.Text = reading.Time
		dash.clockTime.Refresh()
	}
	dash.clockDate.SetText(reading.Date)
	dash.clockZone.SetText(reading.Zone)
}

func (dash *Dashboard) buildTimer() fyne.CanvasObject {
	timer := dash.deps.Timer
	dash.watchTime = bigText(64)
	dash.watchMode = widget.NewLabel("")
	dash.watchMode.Alignment = fyne.TextAlignCenter

	dash.minutes = widget.NewEntry()
	dash.minutes.SetPlaceHolder(i18n.T("Minutes"))
	dash.seconds = widget.NewEntry()
	dash.seconds.SetPlaceHolder(i18n.T("Seconds"))
	set := widget.NewButton(i18n.T("Set"), dash.applyTarget)
	dash.seconds.OnSubmitted = func(string) { dash.applyTarget() }

	dash.watchToggle = widget.NewButtonWithIcon(i18n.T("Start"), theme.MediaPlayIcon(), timer.Toggle)
	dash.watchToggle.Importance = widget.HighImportance
	reset := widget.NewButtonWithIcon(i18n.T("Reset"), theme.MediaReplayIcon(), timer.Reset)

	return container.NewVBox(
		dash.watchMode,
		dash.watchTime,
		container.NewHBox(layout.NewSpacer(), dash.watchToggle, reset, layout.NewSpacer()),
		container.NewGridWithColumns(3, dash.minutes, dash.seconds, set),
	)
}

func (dash *Dashboard) applyTarget() {
	minutes, seconds := stopwatch.ParseTarget(dash.minutes.Text, dash.seconds.Text)
	dash.deps.Timer.SetTarget(minutes, seconds)
	dash.minutes.SetText("")
	dash.seconds.SetText("")
}

func (dash *Dashboard) renderTimer(snapshot stopwatch.Snapshot) {
	dash.watchTime.Text = stopwatch.FormatPrecise(snapshot.Value)
	dash.watchTime.Refresh()

	if snapshot.Mode == stopwatch.ModeCountdown {
		dash.watchMode.SetText(fmt.Sprintf("⏳ %s", stopwatch.FormatPrecise(snapshot.Initial)))
	} else {
		dash.watchMode.SetText("⏱")
	}

	if snapshot.Active {
		dash.watchToggle.SetText(i18n.T("Pause"))
		dash.watchToggle.SetIcon(theme.MediaPauseIcon())
	} else {
		dash.watchToggle.SetText(i18n.T("Start"))
		dash.watchToggle.SetIcon(theme.MediaPlayIcon())
	}
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "• " + strings.Join(items, "\n• ")
}
