package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"studydash/internal/core/model"
	"studydash/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSettingsPathFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log_level: error\n"), 0o644))

	out, err := execute(t, "settings", "path", "--settings", path, "--config", configFile)
	require.NoError(t, err)
	require.Equal(t, path, strings.TrimSpace(out))
}

func TestSettingsPathFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "from-config.yaml")
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("settings_path: "+path+"\nlog_level: error\n"), 0o644))

	out, err := execute(t, "settings", "path", "--config", configFile)
	require.NoError(t, err)
	require.Equal(t, path, strings.TrimSpace(out))
}

func TestSettingsShowPrintsStoredValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log_level: error\n"), 0o644))

	settings := model.DefaultSettings()
	settings.Timers.Work = 50
	require.NoError(t, storage.SaveSettings(path, settings))

	out, err := execute(t, "settings", "show", "--settings", path, "--config", configFile)
	require.NoError(t, err)
	require.Contains(t, out, "work: 50")
}

func TestInvalidConfigFails(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("pomodoro_tick: 1ns\n"), 0o644))

	_, err := execute(t, "settings", "path", "--config", configFile)
	require.Error(t, err)
	require.Contains(t, err.Error(), "pomodoro_tick")
}

func TestMissingExplicitConfigFails(t *testing.T) {
	_, err := execute(t, "settings", "path", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
