// Package stopwatch implements the ad-hoc stopwatch / countdown timer,
// independent of the Pomodoro cycle.
package stopwatch

import (
	"sync"
	"time"

	"studydash/internal/core/clock"
	"studydash/internal/core/model"
	"studydash/internal/logging"
)

// Mode selects between counting up and counting down.
type Mode string

const (
	ModeStopwatch Mode = "stopwatch"
	ModeCountdown Mode = "countdown"
)

// EventType defines the type of Timer event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventExpired     EventType = "expired"
)

// Snapshot is a consistent copy of the timer state.
type Snapshot struct {
	Mode    Mode
	Value   time.Duration
	Initial time.Duration
	Active  bool
}

// Event represents a Timer update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Config contains runtime options for a Timer.
type Config struct {
	TickInterval time.Duration
	Clock        clock.Clock
}

type run struct {
	handle clock.Handle
}

// Timer is the stopwatch / countdown state machine. Value is elapsed time
// in stopwatch mode and remaining time in countdown mode, reported in
// whole milliseconds.
type Timer struct {
	mu       sync.Mutex
	notifier model.Notifier
	alerts   model.AlertSource
	options  Config

	mode    Mode
	value   time.Duration
	initial time.Duration
	active  bool

	// start instant in stopwatch mode, deadline in countdown mode
	anchor  time.Time
	current *run
	epoch   uint64
	closed  bool
	events  []chan Event
}

// New creates an idle stopwatch at zero.
func New(notifier model.Notifier, alerts model.AlertSource, options Config) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = 10 * time.Millisecond
	}
	if options.Clock == nil {
		options.Clock = clock.System
	}
	if notifier == nil {
		notifier = model.NotifierFunc(func(string, string) {})
	}
	return &Timer{
		notifier: notifier,
		alerts:   alerts,
		options:  options,
		mode:     ModeStopwatch,
	}
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		close(ch)
		return ch
	}
	timer.events = append(timer.events, ch)
	return ch
}

// Snapshot returns the current state.
func (timer *Timer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.snapshotLocked()
}

// MaxTargetMinutes is the longest countdown SetTarget accepts.
const MaxTargetMinutes = 99999

// SetTarget stops any run and selects a countdown of minutes:seconds, or a
// zeroed stopwatch when the total is not positive. Negative components
// count as zero, minutes are capped at MaxTargetMinutes and seconds at 59.
func (timer *Timer) SetTarget(minutes, seconds int) {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > MaxTargetMinutes {
		minutes = MaxTargetMinutes
	}
	if seconds < 0 {
		seconds = 0
	}
	if seconds > 59 {
		seconds = 59
	}
	total := time.Duration(minutes*60+seconds) * time.Second

	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		return
	}
	timer.stopRunLocked()
	timer.active = false
	if total > 0 {
		timer.mode = ModeCountdown
		timer.initial = total
		timer.value = total
	} else {
		timer.mode = ModeStopwatch
		timer.initial = 0
		timer.value = 0
	}
	timer.epoch++
	logging.Debug(logging.CatStopwatch, "target set", "mode", timer.mode, "ms", timer.value.Milliseconds())
	timer.emitLocked(EventStateChange)
}

// Toggle starts or pauses the timer. Resuming re-anchors on the value
// accumulated so far, so repeated pauses never drift.
func (timer *Timer) Toggle() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		return
	}

	var after func()
	if timer.active {
		after = timer.pauseLocked()
	} else {
		timer.startLocked()
	}
	timer.mu.Unlock()

	if after != nil {
		after()
	}
}

// Reset stops the timer and rewinds it: a stopwatch to zero, a countdown to
// its target.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		return
	}
	timer.stopRunLocked()
	timer.active = false
	if timer.mode == ModeCountdown {
		timer.value = timer.initial
	} else {
		timer.value = 0
	}
	timer.epoch++
	timer.emitLocked(EventStateChange)
}

// Close stops the periodic callback for good and closes observers.
func (timer *Timer) Close() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		return
	}
	timer.stopRunLocked()
	timer.active = false
	timer.closed = true
	timer.epoch++
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (timer *Timer) startLocked() {
	if timer.mode == ModeCountdown && timer.value <= 0 {
		return
	}
	now := timer.options.Clock.Now()
	if timer.mode == ModeCountdown {
		timer.anchor = now.Add(timer.value)
	} else {
		timer.anchor = now.Add(-timer.value)
	}
	timer.active = true
	timer.epoch++

	current := &run{}
	timer.current = current
	current.handle = timer.options.Clock.Every(timer.options.TickInterval, func() {
		timer.tick(current)
	})
	logging.Debug(logging.CatStopwatch, "started", "mode", timer.mode, "ms", timer.value.Milliseconds())
	timer.emitLocked(EventStateChange)
}

func (timer *Timer) pauseLocked() func() {
	if timer.measureLocked(timer.options.Clock.Now()) {
		return timer.expireLocked()
	}
	timer.stopRunLocked()
	timer.active = false
	timer.epoch++
	logging.Debug(logging.CatStopwatch, "paused", "mode", timer.mode, "ms", timer.value.Milliseconds())
	timer.emitLocked(EventStateChange)
	return nil
}

func (timer *Timer) tick(owner *run) {
	timer.mu.Lock()
	if timer.current != owner || !timer.active {
		timer.mu.Unlock()
		return
	}
	if !timer.measureLocked(timer.options.Clock.Now()) {
		timer.emitLocked(EventProgress)
		timer.mu.Unlock()
		return
	}
	after := timer.expireLocked()
	timer.mu.Unlock()
	after()
}

// measureLocked recomputes value from the anchor and reports whether a
// countdown has run out.
func (timer *Timer) measureLocked(now time.Time) bool {
	if timer.mode == ModeStopwatch {
		timer.value = now.Sub(timer.anchor)
		return false
	}
	remaining := timer.anchor.Sub(now)
	if remaining <= 0 {
		timer.value = 0
		return true
	}
	timer.value = remaining
	return false
}

// expireLocked stops an exhausted countdown and returns the completion
// step, which must run after the lock is released: notify first, then
// fall back to an idle stopwatch unless another operation got there first.
func (timer *Timer) expireLocked() func() {
	timer.stopRunLocked()
	timer.active = false
	timer.value = 0
	timer.epoch++
	epoch := timer.epoch
	var alert model.Alert
	if timer.alerts != nil {
		alert = timer.alerts.Alert()
	}
	logging.Info(logging.CatStopwatch, "countdown expired", "initial_ms", timer.initial.Milliseconds())
	timer.emitLocked(EventExpired)

	return func() {
		timer.notifier.Notify(alert.Sound, alert.Text)

		timer.mu.Lock()
		defer timer.mu.Unlock()
		if timer.closed || timer.epoch != epoch {
			return
		}
		timer.mode = ModeStopwatch
		timer.value = 0
		timer.epoch++
		timer.emitLocked(EventStateChange)
	}
}

func (timer *Timer) stopRunLocked() {
	if timer.current == nil {
		return
	}
	timer.current.handle.Stop()
	timer.current = nil
}

func (timer *Timer) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:    timer.mode,
		Value:   timer.value.Truncate(time.Millisecond),
		Initial: timer.initial,
		Active:  timer.active,
	}
}

func (timer *Timer) emitLocked(eventType EventType) {
	if len(timer.events) == 0 {
		return
	}
	event := Event{
		Type:     eventType,
		Snapshot: timer.snapshotLocked(),
		At:       timer.options.Clock.Now(),
	}
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
