package main

import (
	"errors"
	"io/fs"
	"os"

	"studydash/internal/audio"
	"studydash/internal/core/model"
	"studydash/internal/core/pomodoro"
	"studydash/internal/core/stopwatch"
	"studydash/internal/i18n"
	"studydash/internal/logging"
	"studydash/internal/platform"
	"studydash/internal/settings"
	"studydash/internal/watcher"
)

// session owns the engines both front ends drive.
type session struct {
	store   *settings.Store
	player  *audio.Player
	cycle   *pomodoro.Cycle
	timer   *stopwatch.Timer
	watcher *watcher.Watcher

	// onSettings runs for every published preferences change.
	onSettings func(model.Settings)
	done       chan struct{}
}

func (state *rootState) openSession(player *audio.Player) (*session, error) {
	path, err := state.settingsPath()
	if err != nil {
		return nil, err
	}
	_, statErr := os.Stat(path)
	store, err := settings.Open(path)
	if err != nil {
		return nil, err
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		if err := store.Update(func(s *model.Settings) {
			s.Clock.Format = i18n.DefaultClockFormat()
		}); err != nil {
			logging.ErrorErr(logging.CatSettings, "seed settings failed", err, "path", path)
		}
	}

	if player == nil {
		player = audio.NewPlayer(platform.NewSpeaker())
	}
	player.Configure(store.Settings())

	s := &session{
		store:  store,
		player: player,
		cycle:  pomodoro.New(store, player, pomodoro.Config{TickInterval: state.options.PomodoroTick}),
		timer:  stopwatch.New(player, store, stopwatch.Config{TickInterval: state.options.StopwatchTick}),
	}

	if state.options.WatchSettings {
		s.watchFile(path)
	}
	return s, nil
}

// watchFile reloads preferences edited outside the application.
func (s *session) watchFile(path string) {
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		logging.ErrorErr(logging.CatWatcher, "create watcher failed", err)
		return
	}
	changes, err := w.Start()
	if err != nil {
		logging.ErrorErr(logging.CatWatcher, "start watcher failed", err, "path", path)
		_ = w.Stop()
		return
	}
	s.watcher = w
	go func() {
		for range changes {
			if err := s.store.Reload(); err != nil {
				logging.ErrorErr(logging.CatSettings, "reload failed", err)
			}
		}
	}()
}

// run applies every preferences change to the engines until close.
func (s *session) run() {
	updates := s.store.Subscribe(4)
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		for updated := range updates {
			s.player.Configure(updated)
			s.cycle.Refresh()
			if s.onSettings != nil {
				s.onSettings(updated)
			}
		}
	}()
}

func (s *session) close() {
	if s.watcher != nil {
		_ = s.watcher.Stop()
	}
	s.cycle.Close()
	s.timer.Close()
	s.store.Close()
	if s.done != nil {
		<-s.done
	}
}
