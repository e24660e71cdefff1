package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/require"

	"studydash/internal/core/model"
	"studydash/internal/core/pomodoro"
)

type fakeDesktop struct {
	menus []*fyne.Menu
}

func (app *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu) { app.menus = append(app.menus, menu) }
func (app *fakeDesktop) SetSystemTrayIcon(fyne.Resource)   {}
func (app *fakeDesktop) SetSystemTrayWindow(fyne.Window)   {}

func TestUpdateReflectsSnapshot(t *testing.T) {
	app := &fakeDesktop{}
	manager := New(app, Callbacks{})

	manager.Update(pomodoro.Snapshot{Mode: model.ModeWork, TimeLeft: 1499, Active: true})
	require.Equal(t, "▶ Work 24:59", manager.Status())
	require.Equal(t, "Pause", manager.ToggleLabel())

	manager.Update(pomodoro.Snapshot{Mode: model.ModeShortBreak, TimeLeft: 300})
	require.Equal(t, "Short Break 05:00", manager.Status())
	require.Equal(t, "Start", manager.ToggleLabel())
	require.NotEmpty(t, app.menus)
}

func TestMenuInvokesCallbacks(t *testing.T) {
	app := &fakeDesktop{}
	var toggled, reset int
	var switched model.Mode
	New(app, Callbacks{
		OnToggle:     func() { toggled++ },
		OnReset:      func() { reset++ },
		OnSwitchMode: func(mode model.Mode) { switched = mode },
	})

	menu := app.menus[len(app.menus)-1]
	byLabel := map[string]*fyne.MenuItem{}
	for _, item := range menu.Items {
		byLabel[item.Label] = item
	}

	byLabel["Start"].Action()
	byLabel["Reset"].Action()
	byLabel["Switch mode"].ChildMenu.Items[2].Action()
	byLabel["Quit"].Action()

	require.Equal(t, 1, toggled)
	require.Equal(t, 1, reset)
	require.Equal(t, model.ModeLongBreak, switched)
}

func TestNilAppTracksState(t *testing.T) {
	manager := New(nil, Callbacks{})
	require.Equal(t, "Ready", manager.Status())
	manager.SetRunning(true)
	require.Equal(t, "Pause", manager.ToggleLabel())
}
