// Package idlewatch pauses a running Pomodoro session once the user has
// been away from the keyboard for longer than the configured threshold.
package idlewatch

import (
	"errors"
	"sync"
	"time"

	"studydash/internal/core/clock"
	"studydash/internal/core/pomodoro"
	"studydash/internal/logging"
	"studydash/internal/platform"
)

// Target is the session the watcher may pause.
type Target interface {
	Snapshot() pomodoro.Snapshot
	Pause()
}

// Config tunes polling.
type Config struct {
	PollInterval time.Duration
	Clock        clock.Clock
	// OnAutoPause runs after the watcher paused the target.
	OnAutoPause func(idle time.Duration)
}

// Watcher polls an IdleProvider while started.
type Watcher struct {
	mu        sync.Mutex
	idle      platform.IdleProvider
	target    Target
	threshold func() time.Duration
	options   Config
	handle    clock.Handle
}

// New builds a watcher. threshold is read on every poll; zero disables it.
func New(idle platform.IdleProvider, target Target, threshold func() time.Duration, options Config) *Watcher {
	if options.PollInterval <= 0 {
		options.PollInterval = 15 * time.Second
	}
	if options.Clock == nil {
		options.Clock = clock.System
	}
	return &Watcher{idle: idle, target: target, threshold: threshold, options: options}
}

// Start begins polling. Calling it twice has no effect.
func (watcher *Watcher) Start() {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	if watcher.handle != nil {
		return
	}
	watcher.handle = watcher.options.Clock.Every(watcher.options.PollInterval, watcher.check)
}

// Stop ends polling.
func (watcher *Watcher) Stop() {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	if watcher.handle != nil {
		watcher.handle.Stop()
		watcher.handle = nil
	}
}

func (watcher *Watcher) check() {
	limit := watcher.threshold()
	if limit <= 0 || !watcher.target.Snapshot().Active {
		return
	}

	idle, err := watcher.idle.IdleDuration()
	if errors.Is(err, platform.ErrIdleUnsupported) {
		logging.Warn(logging.CatPlatform, "idle detection unavailable, auto-pause disabled")
		watcher.Stop()
		return
	}
	if err != nil {
		logging.Warn(logging.CatPlatform, "idle query failed", "error", err)
		return
	}
	if idle < limit {
		return
	}

	watcher.target.Pause()
	logging.Info(logging.CatPomodoro, "paused after inactivity", "idle", idle.Round(time.Second))
	if watcher.options.OnAutoPause != nil {
		watcher.options.OnAutoPause(idle)
	}
}
