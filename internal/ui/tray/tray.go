// Package tray keeps the system tray menu in sync with the Pomodoro cycle.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"studydash/internal/core/model"
	"studydash/internal/core/pomodoro"
	"studydash/internal/i18n"
)

const menuTitle = "Study Dash"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnToggle      func()
	OnReset       func()
	OnSwitchMode  func(model.Mode)
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	modeItem   *fyne.MenuItem
	running    bool
	status     string
}

// New creates a tray manager with the provided callbacks. A nil app is
// allowed; the menu state is still tracked.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		status:    i18n.T("Ready"),
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem(i18n.T("Start"), call(callbacks.OnToggle))

	modes := make([]*fyne.MenuItem, 0, len(model.Modes))
	for _, mode := range model.Modes {
		mode := mode
		modes = append(modes, fyne.NewMenuItem(i18n.ModeLabel(mode), func() {
			if manager.callbacks.OnSwitchMode != nil {
				manager.callbacks.OnSwitchMode(mode)
			}
		}))
	}
	manager.modeItem = fyne.NewMenuItem(i18n.T("Switch mode"), nil)
	manager.modeItem.ChildMenu = fyne.NewMenu("", modes...)

	manager.refreshStatus()
	return manager
}

func call(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}

// Update reflects a cycle snapshot in the status line and toggle label.
func (manager *Manager) Update(snapshot pomodoro.Snapshot) {
	manager.status = fmt.Sprintf("%s %s", i18n.ModeLabel(snapshot.Mode), pomodoro.FormatTimeLeft(snapshot.TimeLeft))
	manager.SetRunning(snapshot.Active)
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.status = status
	manager.refreshStatus()
}

// SetRunning switches the toggle between start and pause.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	if running {
		manager.toggleItem.Label = i18n.T("Pause")
	} else {
		manager.toggleItem.Label = i18n.T("Start")
	}
	manager.refreshStatus()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// ToggleLabel returns the current label of the start/pause item.
func (manager *Manager) ToggleLabel() string {
	return manager.toggleItem.Label
}

func (manager *Manager) refreshStatus() {
	status := manager.status
	if manager.running {
		status = "▶ " + status
	}
	manager.statusItem.Label = status
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem(i18n.T("Reset"), call(manager.callbacks.OnReset)),
		manager.modeItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(i18n.T("Show dashboard"), call(manager.callbacks.OnShow)),
		fyne.NewMenuItem(i18n.T("Preferences"), call(manager.callbacks.OnPreferences)),
		fyne.NewMenuItem(i18n.T("Quit"), call(manager.callbacks.OnQuit)),
	))
}
