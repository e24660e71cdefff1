package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"studydash/internal/core/model"
)

func TestWindowSaveAppliesEdits(t *testing.T) {
	app := test.NewTempApp(t)

	var saved model.Settings
	prefs := New(app, model.DefaultSettings(), Callbacks{OnSave: func(s model.Settings) { saved = s }})

	prefs.work.SetText("50")
	prefs.sound.SetSelected("Retro Alert")
	prefs.clockFormat.SetSelected(format12h)
	test.Tap(prefs.saveButton)

	require.Equal(t, 50, saved.Timers.Work)
	require.Equal(t, "track6", saved.Sound)
	require.Equal(t, model.Format12h, saved.Clock.Format)
}

func TestWindowPreviewUsesDraft(t *testing.T) {
	app := test.NewTempApp(t)

	var gotSound, gotText string
	prefs := New(app, model.DefaultSettings(), Callbacks{OnPreview: func(sound, text string) {
		gotSound, gotText = sound, text
	}})

	prefs.sound.SetSelected("Text-to-Speech")
	prefs.spokenText.SetText("Stretch your legs")
	prefs.preview()

	require.Equal(t, "tts", gotSound)
	require.Equal(t, "Stretch your legs", gotText)
}
