// Package storage persists user preferences as YAML.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"studydash/internal/core/model"
)

const settingsFileName = "settings.yaml"

const (
	minVolume = -60.0
	maxVolume = 10.0
)

// ErrInvalidVersion indicates a settings file written by a newer release.
var ErrInvalidVersion = errors.New("unsupported settings version")

type yamlTimers struct {
	Work       int `yaml:"work"`
	ShortBreak int `yaml:"short_break"`
	LongBreak  int `yaml:"long_break"`
}

type yamlClock struct {
	Type     string `yaml:"type"`
	Timezone string `yaml:"timezone"`
	Format   string `yaml:"format"`
}

type yamlSettings struct {
	Version          int        `yaml:"version"`
	Timers           yamlTimers `yaml:"timers"`
	Sound            string     `yaml:"sound"`
	Volume           *float64   `yaml:"volume,omitempty"`
	SpokenText       string     `yaml:"spoken_text"`
	CustomSoundPath  string     `yaml:"custom_sound_path,omitempty"`
	Clock            yamlClock  `yaml:"clock"`
	IdlePauseMinutes int        `yaml:"idle_pause_minutes"`
	LaunchAtLogin    bool       `yaml:"launch_at_login"`
}

// ResolvePath returns the default settings location for appName.
func ResolvePath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads preferences from path and merges them over the
// defaults field by field. A missing file yields the defaults.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	return DecodeSettings(rawData)
}

// DecodeSettings parses YAML preferences and merges them over the defaults.
func DecodeSettings(rawData []byte) (model.Settings, error) {
	settings := model.DefaultSettings()

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}
	if fileData.Version > model.SettingsVersion {
		return settings, fmt.Errorf("%w: %d", ErrInvalidVersion, fileData.Version)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes preferences to path, replacing the file atomically.
func SaveSettings(path string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := EncodeSettings(settings)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(serialized); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

// EncodeSettings renders preferences as YAML.
func EncodeSettings(settings model.Settings) ([]byte, error) {
	volume := settings.Volume
	fileData := yamlSettings{
		Version: model.SettingsVersion,
		Timers: yamlTimers{
			Work:       settings.Timers.Work,
			ShortBreak: settings.Timers.ShortBreak,
			LongBreak:  settings.Timers.LongBreak,
		},
		Sound:           settings.Sound,
		Volume:          &volume,
		SpokenText:      settings.SpokenText,
		CustomSoundPath: settings.CustomSoundPath,
		Clock: yamlClock{
			Type:     settings.Clock.Type,
			Timezone: settings.Clock.Timezone,
			Format:   settings.Clock.Format,
		},
		IdlePauseMinutes: int(settings.IdlePauseAfter / time.Minute),
		LaunchAtLogin:    settings.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	settings.Timers.Work = timerMinutes(fileData.Timers.Work, settings.Timers.Work)
	settings.Timers.ShortBreak = timerMinutes(fileData.Timers.ShortBreak, settings.Timers.ShortBreak)
	settings.Timers.LongBreak = timerMinutes(fileData.Timers.LongBreak, settings.Timers.LongBreak)

	if fileData.Sound != "" {
		settings.Sound = fileData.Sound
	}
	if fileData.Volume != nil && *fileData.Volume >= minVolume && *fileData.Volume <= maxVolume {
		settings.Volume = *fileData.Volume
	}
	if fileData.SpokenText != "" {
		settings.SpokenText = fileData.SpokenText
	}
	settings.CustomSoundPath = fileData.CustomSoundPath

	switch fileData.Clock.Type {
	case model.ClockDigital, model.ClockAnalog:
		settings.Clock.Type = fileData.Clock.Type
	}
	switch fileData.Clock.Format {
	case model.Format12h, model.Format24h:
		settings.Clock.Format = fileData.Clock.Format
	}
	if fileData.Clock.Timezone != "" {
		if _, err := time.LoadLocation(fileData.Clock.Timezone); err == nil {
			settings.Clock.Timezone = fileData.Clock.Timezone
		}
	}

	if fileData.IdlePauseMinutes > 0 {
		idle := min(fileData.IdlePauseMinutes, model.MaxTimerMinutes)
		settings.IdlePauseAfter = time.Duration(idle) * time.Minute
	}
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}

// timerMinutes keeps fallback for non-positive values and caps the rest.
func timerMinutes(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return min(value, model.MaxTimerMinutes)
}
