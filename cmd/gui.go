package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"studydash/internal/config"
	"studydash/internal/core/clock"
	"studydash/internal/core/model"
	"studydash/internal/idlewatch"
	"studydash/internal/logging"
	"studydash/internal/platform"
	"studydash/internal/ui/dashboard"
	"studydash/internal/ui/preferences"
	"studydash/internal/ui/tray"
	"studydash/internal/worldclock"
	"studydash/resources"
)

const appID = "com.studydash.app"

func newGUICmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Run the desktop dashboard with a tray icon (default)",
		Args:  cobra.NoArgs,
		RunE:  state.runGUI,
	}
}

func (state *rootState) runGUI(cmd *cobra.Command, _ []string) error {
	guard, err := platform.AcquireSingleInstance(config.AppName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		logging.Warn(logging.CatPlatform, "another instance is running")
		fmt.Fprintln(cmd.ErrOrStderr(), "Study Dash is already running.")
		return nil
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	s, err := state.openSession(nil)
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID(appID)
	activeIcon := resources.MustIcon(resources.IconActive)
	pausedIcon := resources.MustIcon(resources.IconPaused)
	fyneApp.SetIcon(activeIcon)

	syncLogin := newLoginSync(newLoginItem(), s.store.Settings().LaunchAtLogin)

	prefs := preferences.New(fyneApp, s.store.Settings(), preferences.Callbacks{
		OnSave: func(updated model.Settings) {
			if err := s.store.Update(func(current *model.Settings) { *current = updated }); err != nil {
				logging.ErrorErr(logging.CatSettings, "save preferences failed", err)
			}
		},
		OnPreview: s.player.Notify,
	})

	dash := dashboard.New(fyneApp, dashboard.Deps{
		Cycle:         s.cycle,
		Timer:         s.timer,
		Clock:         worldclock.New(clock.System),
		ClockSettings: func() model.ClockSettings { return s.store.Settings().Clock },
		OnPreferences: prefs.Show,
	})

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        dash.Show,
			OnPreferences: prefs.Show,
			OnToggle: func() {
				if s.cycle.Snapshot().Active {
					s.cycle.Pause()
				} else {
					dash.Show()
					s.cycle.Start()
				}
			},
			OnReset:      s.cycle.Reset,
			OnSwitchMode: s.cycle.SwitchMode,
			OnQuit:       fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(pausedIcon)
		trayManager.Update(s.cycle.Snapshot())
	} else {
		logging.Warn(logging.CatUI, "system tray unsupported on this platform")
		dash.Window().SetCloseIntercept(fyneApp.Quit)
	}

	s.onSettings = func(updated model.Settings) {
		syncLogin(updated.LaunchAtLogin)
		fyne.Do(func() { prefs.UpdateSettings(updated) })
	}
	s.run()

	if trayManager != nil {
		events := s.cycle.Subscribe(16)
		go func() {
			for event := range events {
				snapshot := event.Snapshot
				fyne.Do(func() {
					trayManager.Update(snapshot)
					if snapshot.Active {
						desktopApp.SetSystemTrayIcon(activeIcon)
					} else {
						desktopApp.SetSystemTrayIcon(pausedIcon)
					}
				})
			}
		}()
	}

	idle := idlewatch.New(platform.NewIdleProvider(), s.cycle,
		func() time.Duration { return s.store.Settings().IdlePauseAfter },
		idlewatch.Config{PollInterval: state.options.IdlePoll})
	idle.Start()

	dash.Run()
	dash.Show()
	fyneApp.Run()

	idle.Stop()
	dash.Stop()
	s.close()
	return nil
}

type loginSetter interface {
	Set(enabled bool) error
}

// newLoginSync registers the login item for the stored preference right
// away and returns a function that re-registers it whenever it changes.
func newLoginSync(item loginSetter, enabled bool) func(bool) {
	apply := func(want bool) {
		if err := item.Set(want); err != nil {
			logging.ErrorErr(logging.CatPlatform, "login item update failed", err, "enabled", want)
		}
	}
	apply(enabled)
	return func(want bool) {
		if want == enabled {
			return
		}
		enabled = want
		apply(want)
	}
}

func newLoginItem() *platform.LoginItem {
	execPath, err := os.Executable()
	if err != nil {
		logging.ErrorErr(logging.CatPlatform, "resolve executable failed", err)
	}
	return platform.NewLoginItem("Study Dash", appID, execPath)
}

