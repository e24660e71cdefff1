// Package clock is the elapsed-time source of the timing engine: monotonic
// instants plus owned periodic callbacks that can be cancelled
// deterministically.
package clock

import (
	"sync"
	"time"
)

// Handle is an owned periodic callback. Stop is idempotent; once it returns
// no further callback is started.
type Handle interface {
	Stop()
}

// Clock provides instants and periodic callbacks.
type Clock interface {
	Now() time.Time
	Every(interval time.Duration, fn func()) Handle
}

// System is the wall clock. time.Now carries a monotonic reading, so
// differences between its instants are immune to wall-clock adjustments.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	handle := &tickerHandle{stopCh: make(chan struct{})}
	go handle.run(interval, fn)
	return handle
}

type tickerHandle struct {
	once   sync.Once
	stopCh chan struct{}
}

func (handle *tickerHandle) run(interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-handle.stopCh:
			return
		case <-ticker.C:
			select {
			case <-handle.stopCh:
				return
			default:
			}
			fn()
		}
	}
}

func (handle *tickerHandle) Stop() {
	handle.once.Do(func() {
		close(handle.stopCh)
	})
}
