package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"studydash/internal/core/model"
	"studydash/internal/storage"
)

func TestOpenMissingFileUsesDefaults(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	require.Equal(t, 25, store.Duration(model.ModeWork))
	require.Equal(t, 5, store.Duration(model.ModeShortBreak))
	require.Equal(t, 15, store.Duration(model.ModeLongBreak))
	require.Equal(t, model.Alert{Sound: "track1", Text: "Timer complete"}, store.Alert())
}

func TestUpdatePersistsAndPublishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := Open(path)
	require.NoError(t, err)
	changes := store.Subscribe(1)

	require.NoError(t, store.Update(func(s *model.Settings) {
		s.Timers.Work = 50
		s.Sound = "track3"
	}))

	got := <-changes
	require.Equal(t, 50, got.Timers.Work)
	require.Equal(t, 50, store.Duration(model.ModeWork))

	persisted, err := storage.LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, 50, persisted.Timers.Work)
	require.Equal(t, "track3", persisted.Sound)
}

func TestUpdateWithoutChangeIsSilent(t *testing.T) {
	store := NewMemory(model.DefaultSettings())
	changes := store.Subscribe(1)

	require.NoError(t, store.Update(func(*model.Settings) {}))

	select {
	case <-changes:
		t.Fatal("unexpected publish")
	default:
	}
}

func TestUpdateFailureKeepsPreviousValue(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	store := &Store{path: filepath.Join(blocker, "settings.yaml"), current: model.DefaultSettings()}

	err := store.Update(func(s *model.Settings) { s.Timers.Work = 1 })
	require.Error(t, err)
	require.Equal(t, 25, store.Duration(model.ModeWork))
}

func TestReloadPublishesExternalEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := Open(path)
	require.NoError(t, err)
	changes := store.Subscribe(2)

	edited := model.DefaultSettings()
	edited.Timers.ShortBreak = 7
	require.NoError(t, storage.SaveSettings(path, edited))

	require.NoError(t, store.Reload())
	require.Equal(t, 7, (<-changes).Timers.ShortBreak)

	require.NoError(t, store.Reload())
	select {
	case <-changes:
		t.Fatal("reload without change should not publish")
	default:
	}
}

func TestReloadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("version: 99\n"), 0o644))
	require.ErrorIs(t, store.Reload(), storage.ErrInvalidVersion)
	require.Equal(t, 25, store.Duration(model.ModeWork))
}

func TestSlowSubscriberGetsLatest(t *testing.T) {
	store := NewMemory(model.DefaultSettings())
	changes := store.Subscribe(1)

	for minutes := 30; minutes <= 33; minutes++ {
		m := minutes
		require.NoError(t, store.Update(func(s *model.Settings) { s.Timers.Work = m }))
	}

	require.Equal(t, 33, (<-changes).Timers.Work)
}

func TestCloseClosesSubscribers(t *testing.T) {
	store := NewMemory(model.DefaultSettings())
	changes := store.Subscribe(1)
	store.Close()
	_, ok := <-changes
	require.False(t, ok)
}
