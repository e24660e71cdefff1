package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"studydash/internal/config"
	"studydash/internal/i18n"
	"studydash/internal/logging"
	"studydash/internal/storage"
)

const teaLogFile = "studydash.log"

// rootState is shared by every subcommand of one invocation.
type rootState struct {
	v          *viper.Viper
	configFile string
	options    config.Options
	closeLog   func()
}

func newRootCmd() *cobra.Command {
	state := &rootState{v: viper.New()}

	root := &cobra.Command{
		Use:               config.AppName,
		Short:             "Pomodoro timer, world clock and stopwatch for study sessions",
		Long:              `Study Dash runs a Pomodoro cycle with stated tasks, a world clock and a stopwatch/countdown, as a tray app or in the terminal.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: state.setup,
		PersistentPostRun: state.teardown,
		RunE:              state.runGUI,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&state.configFile, "config", "c", "",
		"config file (default: <user config dir>/studydash/config.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-file", "", "write logs to this file")
	flags.String("settings", "", "preferences file (default: <user config dir>/studydash/settings.yaml)")
	flags.String("lang", "", "interface language, e.g. pt_BR")

	_ = state.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = state.v.BindPFlag("log_file", flags.Lookup("log-file"))
	_ = state.v.BindPFlag("settings_path", flags.Lookup("settings"))
	_ = state.v.BindPFlag("language", flags.Lookup("lang"))

	root.AddCommand(newGUICmd(state), newTUICmd(state), newSettingsCmd(state))
	return root
}

func (state *rootState) setup(cmd *cobra.Command, _ []string) error {
	options, err := config.Load(state.v, state.configFile)
	if err != nil {
		return err
	}
	state.options = options

	if err := state.initLogging(cmd.Name() == "tui"); err != nil {
		return err
	}
	lang := i18n.Init(options.Language)
	logging.Debug(logging.CatUI, "starting", "command", cmd.Name(), "version", version, "lang", lang)
	return nil
}

// initLogging routes logs to stderr for the desktop app. The terminal UI
// owns the screen, so it only logs when asked to and always to a file.
func (state *rootState) initLogging(terminal bool) error {
	options := state.options
	level := logging.ParseLevel(options.LogLevel)
	if !options.Debug && level < logging.LevelInfo {
		level = logging.LevelInfo
	}

	if terminal {
		if !options.Debug && options.LogFile == "" {
			logging.Disable()
			state.closeLog = func() {}
			return nil
		}
		path := options.LogFile
		if path == "" {
			path = teaLogFile
		}
		// Query the background before bubbletea owns stdin.
		_ = lipgloss.HasDarkBackground()
		closeLog, err := logging.InitWithTeaLog(path, level)
		if err != nil {
			return err
		}
		state.closeLog = closeLog
		return nil
	}

	closeLog, err := logging.Init(options.LogFile, level)
	if err != nil {
		return err
	}
	state.closeLog = closeLog
	return nil
}

func (state *rootState) teardown(*cobra.Command, []string) {
	if state.closeLog != nil {
		state.closeLog()
	}
}

// settingsPath returns the configured preferences file or the default one.
func (state *rootState) settingsPath() (string, error) {
	if state.options.SettingsPath != "" {
		return state.options.SettingsPath, nil
	}
	path, err := storage.ResolvePath(config.AppName)
	if err != nil {
		return "", fmt.Errorf("settings path: %w", err)
	}
	return path, nil
}
