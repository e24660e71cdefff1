// Package clocktest provides a deterministic clock for timing tests.
package clocktest

import (
	"sync"
	"time"

	"studydash/internal/core/clock"
)

// Manual is a clock that only moves when told to. Advance fires due
// callbacks synchronously on the calling goroutine, in due order.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	handles []*manualHandle
}

type manualHandle struct {
	clock    *Manual
	interval time.Duration
	next     time.Time
	fn       func()
}

var _ clock.Clock = (*Manual)(nil)

// NewManual returns a clock frozen at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual instant.
func (manual *Manual) Now() time.Time {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// Every registers fn to run every interval of manual time.
func (manual *Manual) Every(interval time.Duration, fn func()) clock.Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	manual.mu.Lock()
	defer manual.mu.Unlock()
	handle := &manualHandle{
		clock:    manual,
		interval: interval,
		next:     manual.now.Add(interval),
		fn:       fn,
	}
	manual.handles = append(manual.handles, handle)
	return handle
}

// Advance moves time forward by d, firing every callback that falls due.
func (manual *Manual) Advance(d time.Duration) {
	manual.mu.Lock()
	target := manual.now.Add(d)
	manual.mu.Unlock()

	for {
		manual.mu.Lock()
		due := manual.earliestLocked(target)
		if due == nil {
			manual.now = target
			manual.mu.Unlock()
			return
		}
		manual.now = due.next
		due.next = due.next.Add(due.interval)
		fn := due.fn
		manual.mu.Unlock()

		fn()
	}
}

// Jump moves time forward by d without firing callbacks, simulating a
// scheduler that stalled.
func (manual *Manual) Jump(d time.Duration) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.now = manual.now.Add(d)
	for _, handle := range manual.handles {
		for !handle.next.After(manual.now) {
			handle.next = handle.next.Add(handle.interval)
		}
	}
}

// Pending returns the number of live periodic callbacks.
func (manual *Manual) Pending() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return len(manual.handles)
}

func (manual *Manual) earliestLocked(target time.Time) *manualHandle {
	var due *manualHandle
	for _, handle := range manual.handles {
		if handle.next.After(target) {
			continue
		}
		if due == nil || handle.next.Before(due.next) {
			due = handle
		}
	}
	return due
}

func (handle *manualHandle) Stop() {
	manual := handle.clock
	manual.mu.Lock()
	defer manual.mu.Unlock()
	for i, candidate := range manual.handles {
		if candidate == handle {
			manual.handles = append(manual.handles[:i], manual.handles[i+1:]...)
			return
		}
	}
}
