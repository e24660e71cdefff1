// Package settings keeps the live preferences in memory, persists edits and
// fans out changes to the running timers and UI.
package settings

import (
	"fmt"
	"sync"

	"studydash/internal/core/model"
	"studydash/internal/logging"
	"studydash/internal/storage"
)

// Store is the reactive settings provider shared by the whole application.
type Store struct {
	mu          sync.RWMutex
	path        string
	current     model.Settings
	subscribers []chan model.Settings
}

// Open loads preferences from path. A missing file yields defaults.
func Open(path string) (*Store, error) {
	loaded, err := storage.LoadSettings(path)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	return &Store{path: path, current: loaded}, nil
}

// NewMemory returns a store that never touches the filesystem.
func NewMemory(initial model.Settings) *Store {
	return &Store{current: initial}
}

// Path returns the backing file, or "" for in-memory stores.
func (store *Store) Path() string {
	return store.path
}

// Settings returns a copy of the current preferences.
func (store *Store) Settings() model.Settings {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.current
}

// Duration implements model.SettingsProvider.
func (store *Store) Duration(mode model.Mode) int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.current.Timers.Minutes(mode)
}

// Alert implements model.AlertSource.
func (store *Store) Alert() model.Alert {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.current.Alert()
}

// Subscribe returns a channel receiving the full preferences after every
// change. Slow subscribers miss intermediate values.
func (store *Store) Subscribe(buffer int) <-chan model.Settings {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan model.Settings, buffer)
	store.mu.Lock()
	store.subscribers = append(store.subscribers, ch)
	store.mu.Unlock()
	return ch
}

// Update applies fn to a copy of the preferences, persists the result and
// publishes it. Nothing changes when saving fails.
func (store *Store) Update(fn func(*model.Settings)) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	next := store.current
	fn(&next)
	next.Version = model.SettingsVersion
	if next == store.current {
		return nil
	}

	if store.path != "" {
		if err := storage.SaveSettings(store.path, next); err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
	}
	store.current = next
	logging.Info(logging.CatSettings, "settings updated", "path", store.path)
	store.publishLocked()
	return nil
}

// Reload re-reads the backing file, publishing only when it changed.
func (store *Store) Reload() error {
	if store.path == "" {
		return nil
	}
	loaded, err := storage.LoadSettings(store.path)
	if err != nil {
		return fmt.Errorf("reload settings: %w", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if loaded == store.current {
		return nil
	}
	store.current = loaded
	logging.Info(logging.CatSettings, "settings reloaded", "path", store.path)
	store.publishLocked()
	return nil
}

// Close closes every subscriber channel.
func (store *Store) Close() {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, ch := range store.subscribers {
		close(ch)
	}
	store.subscribers = nil
}

func (store *Store) publishLocked() {
	for _, ch := range store.subscribers {
		select {
		case ch <- store.current:
		default:
			// drop the stale value so the newest one always lands
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- store.current:
			default:
			}
		}
	}
}
