// Package config holds runtime options: how the process runs, as opposed
// to the user preferences kept in the settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppName names the config directory and env prefix.
const AppName = "studydash"

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "STUDYDASH"

// Options holds all runtime configuration.
type Options struct {
	Debug         bool          `mapstructure:"debug"`
	LogFile       string        `mapstructure:"log_file"`
	LogLevel      string        `mapstructure:"log_level"`
	SettingsPath  string        `mapstructure:"settings_path"`
	WatchSettings bool          `mapstructure:"watch_settings"`
	PomodoroTick  time.Duration `mapstructure:"pomodoro_tick"`
	StopwatchTick time.Duration `mapstructure:"stopwatch_tick"`
	IdlePoll      time.Duration `mapstructure:"idle_poll"`
	Language      string        `mapstructure:"language"`
}

// Defaults returns the built-in options.
func Defaults() Options {
	return Options{
		LogLevel:      "debug",
		WatchSettings: true,
		PomodoroTick:  time.Second,
		StopwatchTick: 10 * time.Millisecond,
		IdlePoll:      15 * time.Second,
	}
}

// SetDefaults registers Defaults on v so env overrides resolve.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("settings_path", defaults.SettingsPath)
	v.SetDefault("watch_settings", defaults.WatchSettings)
	v.SetDefault("pomodoro_tick", defaults.PomodoroTick)
	v.SetDefault("stopwatch_tick", defaults.StopwatchTick)
	v.SetDefault("idle_poll", defaults.IdlePoll)
	v.SetDefault("language", defaults.Language)
}

// Load reads options from configFile, or from config.yaml in the user
// config directory when configFile is empty, then applies STUDYDASH_*
// environment overrides. A missing default file is not an error.
func Load(v *viper.Viper, configFile string) (Options, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Options{}, fmt.Errorf("read config: %w", err)
		}
	}

	var options Options
	if err := v.Unmarshal(&options); err != nil {
		return Options{}, fmt.Errorf("decode config: %w", err)
	}
	if err := options.Validate(); err != nil {
		return Options{}, err
	}
	return options, nil
}

// Validate rejects tick intervals that would stall or spin the timers.
func (options Options) Validate() error {
	if options.PomodoroTick < 10*time.Millisecond || options.PomodoroTick > time.Minute {
		return fmt.Errorf("pomodoro_tick must be between 10ms and 1m, got %s", options.PomodoroTick)
	}
	if options.StopwatchTick < time.Millisecond || options.StopwatchTick > time.Second {
		return fmt.Errorf("stopwatch_tick must be between 1ms and 1s, got %s", options.StopwatchTick)
	}
	if options.IdlePoll < time.Second {
		return fmt.Errorf("idle_poll must be at least 1s, got %s", options.IdlePoll)
	}
	return nil
}
