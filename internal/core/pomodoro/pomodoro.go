// Package pomodoro implements the work / short break / long break cycle.
//
// A Cycle counts down whole seconds against a deadline anchored on the
// clock, so scheduling jitter never accumulates. Every exit from the active
// state stops the periodic callback before anything else changes, and ticks
// from a stopped callback are discarded.
package pomodoro

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"studydash/internal/core/clock"
	"studydash/internal/core/model"
	"studydash/internal/core/quotes"
	"studydash/internal/logging"
)

// QuoteSource supplies the message shown when a work session starts.
type QuoteSource interface {
	PickRandom() string
}

// Config contains runtime options for a Cycle.
type Config struct {
	TickInterval time.Duration
	Clock        clock.Clock
	Quotes       QuoteSource
}

// run is one owned periodic callback. Ticks carry their run so a callback
// that was already in flight when the run stopped can be recognised.
type run struct {
	handle clock.Handle
}

// Cycle is the Pomodoro state machine.
type Cycle struct {
	mu       sync.Mutex
	settings model.SettingsProvider
	notifier model.Notifier
	options  Config

	mode          model.Mode
	timeLeft      int
	configured    int
	active        bool
	awaiting      bool
	tasks         []string
	quote         string
	runID         string
	completedWork int

	deadline time.Time
	current  *run
	epoch    uint64
	closed   bool
	events   []chan Event
}

// New creates an idle WORK cycle seeded from settings.
func New(settings model.SettingsProvider, notifier model.Notifier, options Config) *Cycle {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clock.System
	}
	if options.Quotes == nil {
		options.Quotes = quotes.New(quotes.Default, nil)
	}
	if notifier == nil {
		notifier = model.NotifierFunc(func(string, string) {})
	}

	cycle := &Cycle{
		settings: settings,
		notifier: notifier,
		options:  options,
		mode:     model.ModeWork,
	}
	cycle.rebaseLocked()
	return cycle
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than block the cycle.
func (cycle *Cycle) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	cycle.mu.Lock()
	defer cycle.mu.Unlock()
	if cycle.closed {
		close(ch)
		return ch
	}
	cycle.events = append(cycle.events, ch)
	return ch
}

// Snapshot returns the current state. While idle it first picks up any
// duration change from the settings provider.
func (cycle *Cycle) Snapshot() Snapshot {
	cycle.mu.Lock()
	defer cycle.mu.Unlock()
	cycle.refreshLocked()
	return cycle.snapshotLocked()
}

// Start begins or resumes counting. Starting an idle WORK session without
// tasks only enters the awaiting-tasks state; StartWithTasks completes it.
func (cycle *Cycle) Start() {
	cycle.mu.Lock()
	defer cycle.mu.Unlock()
	if cycle.closed || cycle.active {
		return
	}

	if cycle.mode == model.ModeWork && len(cycle.tasks) == 0 {
		if cycle.awaiting {
			return
		}
		cycle.awaiting = true
		cycle.epoch++
		logging.Debug(logging.CatPomodoro, "awaiting tasks")
		cycle.emitLocked(EventAwaitingTasks)
		return
	}

	cycle.startLocked()
}

// StartWithTasks records the stated tasks of a WORK session and starts it.
// Blank entries are dropped; a list with no usable entry changes nothing.
func (cycle *Cycle) StartWithTasks(tasks []string) {
	valid := CleanTasks(tasks)
	if len(valid) == 0 {
		return
	}

	cycle.mu.Lock()
	defer cycle.mu.Unlock()
	if cycle.closed || cycle.active || cycle.mode != model.ModeWork {
		return
	}

	cycle.tasks = valid
	cycle.quote = cycle.options.Quotes.PickRandom()
	cycle.startLocked()
}

// CancelTasks leaves the awaiting-tasks state without starting.
func (cycle *Cycle) CancelTasks() {
	cycle.mu.Lock()
	defer cycle.mu.Unlock()
	if !cycle.awaiting {
		return
	}
	cycle.awaiting = false
	cycle.epoch++
	cycle.emitLocked(EventStateChange)
}

// Pause stops counting and keeps the remaining time.
func (cycle *Cycle) Pause() {
	cycle.mu.Lock()
	defer cycle.mu.Unlock()
	if !cycle.active {
		return
	}
	cycle.stopRunLocked()
	cycle.active = false
	cycle.epoch++
	logging.Debug(logging.CatPomodoro, "paused", "mode", cycle.mode, "left", cycle.timeLeft)
	cycle.emitLocked(EventStateChange)
}

// Reset stops counting, forgets tasks and restores the full duration of
// the current mode.
func (cycle *Cycle) Reset() {
	cycle.mu.Lock()
	defer cycle.mu.Unlock()
	if cycle.closed {
		return
	}
	cycle.stopRunLocked()
	cycle.active = false
	cycle.awaiting = false
	cycle.tasks = nil
	cycle.quote = ""
	cycle.runID = ""
	cycle.rebaseLocked()
	cycle.epoch++
	logging.Debug(logging.CatPomodoro, "reset", "mode", cycle.mode, "left", cycle.timeLeft)
	cycle.emitLocked(EventStateChange)
}

// SwitchMode always stops the current run and loads the full duration of
// mode. Tasks and quote survive a manual switch.
func (cycle *Cycle) SwitchMode(mode model.Mode) {
	if !mode.Valid() {
		return
	}
	cycle.mu.Lock()
	defer cycle.mu.Unlock()
	if cycle.closed {
		return
	}
	cycle.switchLocked(mode)
	cycle.emitLocked(EventStateChange)
}

// Refresh re-reads the settings provider. A changed duration rebases an
// idle or paused session; a running one keeps counting.
func (cycle *Cycle) Refresh() {
	cycle.mu.Lock()
	defer cycle.mu.Unlock()
	if cycle.refreshLocked() {
		cycle.emitLocked(EventStateChange)
	}
}

// Close stops the periodic callback for good and closes observers.
func (cycle *Cycle) Close() {
	cycle.mu.Lock()
	if cycle.closed {
		cycle.mu.Unlock()
		return
	}
	cycle.stopRunLocked()
	cycle.active = false
	cycle.closed = true
	cycle.epoch++
	events := cycle.events
	cycle.events = nil
	cycle.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (cycle *Cycle) startLocked() {
	cycle.refreshLocked()
	if cycle.timeLeft <= 0 {
		cycle.rebaseLocked()
	}
	if cycle.runID == "" {
		cycle.runID = uuid.NewString()
	}

	cycle.active = true
	cycle.awaiting = false
	cycle.deadline = cycle.options.Clock.Now().Add(time.Duration(cycle.timeLeft) * time.Second)
	cycle.epoch++

	current := &run{}
	cycle.current = current
	current.handle = cycle.options.Clock.Every(cycle.options.TickInterval, func() {
		cycle.tick(current)
	})

	logging.Debug(logging.CatPomodoro, "started", "mode", cycle.mode, "left", cycle.timeLeft, "run", cycle.runID)
	cycle.emitLocked(EventStateChange)
}

func (cycle *Cycle) tick(owner *run) {
	cycle.mu.Lock()
	if cycle.current != owner || !cycle.active {
		cycle.mu.Unlock()
		return
	}

	left := remainingSeconds(cycle.deadline, cycle.options.Clock.Now())
	if left < cycle.timeLeft {
		cycle.timeLeft = left
	}
	if cycle.timeLeft > 0 {
		cycle.emitLocked(EventProgress)
		cycle.mu.Unlock()
		return
	}

	cycle.stopRunLocked()
	cycle.active = false
	cycle.epoch++
	epoch := cycle.epoch
	expired := cycle.mode
	alert := cycle.settings.Alert()
	logging.Info(logging.CatPomodoro, "expired", "mode", expired, "run", cycle.runID)
	cycle.emitLocked(EventExpired)
	cycle.mu.Unlock()

	cycle.notifier.Notify(alert.Sound, alert.Text)

	cycle.mu.Lock()
	defer cycle.mu.Unlock()
	if cycle.closed || cycle.epoch != epoch {
		logging.Debug(logging.CatPomodoro, "auto-advance superseded", "mode", expired)
		return
	}
	next := model.ModeWork
	if expired == model.ModeWork {
		next = model.ModeShortBreak
		cycle.tasks = nil
		cycle.quote = ""
		cycle.completedWork++
	}
	cycle.switchLocked(next)
	cycle.emitLocked(EventStateChange)
}

func (cycle *Cycle) switchLocked(mode model.Mode) {
	cycle.stopRunLocked()
	cycle.active = false
	cycle.awaiting = false
	cycle.mode = mode
	cycle.runID = ""
	cycle.rebaseLocked()
	cycle.epoch++
	logging.Debug(logging.CatPomodoro, "mode switched", "mode", mode, "left", cycle.timeLeft)
}

func (cycle *Cycle) stopRunLocked() {
	if cycle.current == nil {
		return
	}
	cycle.current.handle.Stop()
	cycle.current = nil
}

// rebaseLocked loads the full configured duration of the current mode.
func (cycle *Cycle) rebaseLocked() {
	cycle.configured = cycle.minutesLocked()
	cycle.timeLeft = cycle.configured * 60
}

func (cycle *Cycle) refreshLocked() bool {
	if cycle.active || cycle.closed {
		return false
	}
	if cycle.minutesLocked() == cycle.configured {
		return false
	}
	cycle.rebaseLocked()
	return true
}

func (cycle *Cycle) minutesLocked() int {
	minutes := cycle.settings.Duration(cycle.mode)
	if minutes < 1 {
		return 1
	}
	return min(minutes, model.MaxTimerMinutes)
}

func (cycle *Cycle) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:          cycle.mode,
		TimeLeft:      cycle.timeLeft,
		Active:        cycle.active,
		AwaitingTasks: cycle.awaiting,
		Tasks:         append([]string(nil), cycle.tasks...),
		Quote:         cycle.quote,
		RunID:         cycle.runID,
		CompletedWork: cycle.completedWork,
	}
}

func (cycle *Cycle) emitLocked(eventType EventType) {
	if len(cycle.events) == 0 {
		return
	}
	event := Event{
		Type:     eventType,
		Snapshot: cycle.snapshotLocked(),
		At:       cycle.options.Clock.Now(),
	}
	for _, ch := range cycle.events {
		select {
		case ch <- event:
		default:
		}
	}
}

// CleanTasks trims every entry and drops the blank ones.
func CleanTasks(tasks []string) []string {
	valid := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if trimmed := strings.TrimSpace(task); trimmed != "" {
			valid = append(valid, trimmed)
		}
	}
	return valid
}

func remainingSeconds(deadline, now time.Time) int {
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}
