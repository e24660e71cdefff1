// Package preferences is the desktop settings window.
package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"studydash/internal/audio"
	"studydash/internal/core/model"
	"studydash/internal/i18n"
	"studydash/internal/worldclock"
)

const (
	styleDigital = "Digital"
	styleAnalog  = "Analog"
	format24h    = "24h"
	format12h    = "12h"
)

// Callbacks connect the window to the rest of the application.
type Callbacks struct {
	OnSave    func(model.Settings)
	OnPreview func(soundID, spokenText string)
}

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  model.Settings
	callbacks Callbacks

	work        *widget.Entry
	shortBreak  *widget.Entry
	longBreak   *widget.Entry
	sound       *widget.Select
	volume      *widget.Slider
	volumeLabel *widget.Label
	spokenText  *widget.Entry
	customPath  *widget.Entry
	clockStyle  *widget.RadioGroup
	clockFormat *widget.RadioGroup
	timezone    *widget.SelectEntry
	idleMinutes *widget.Entry
	launch      *widget.Check
	saveButton  *widget.Button
}

// New creates a hidden preferences window.
func New(app fyne.App, settings model.Settings, callbacks Callbacks) *Window {
	prefs := &Window{
		window:    app.NewWindow(fmt.Sprintf("Study Dash %s", i18n.T("Preferences"))),
		settings:  settings,
		callbacks: callbacks,
	}

	prefs.work = numberEntry()
	prefs.shortBreak = numberEntry()
	prefs.longBreak = numberEntry()

	prefs.sound = widget.NewSelect(audio.Names(), nil)
	prefs.volumeLabel = widget.NewLabel("")
	prefs.volume = widget.NewSlider(audio.MinVolume, maxVolume)
	prefs.volume.Step = 1
	prefs.volume.OnChanged = func(value float64) {
		prefs.volumeLabel.SetText(fmt.Sprintf("%+.0f dB", value))
	}
	prefs.spokenText = widget.NewEntry()
	prefs.spokenText.SetPlaceHolder(model.DefaultSpokenText)

	prefs.customPath = widget.NewEntry()
	browse := widget.NewButton("…", prefs.browseSound)
	preview := widget.NewButton(i18n.T("Test sound"), prefs.preview)

	prefs.clockStyle = widget.NewRadioGroup([]string{styleDigital, styleAnalog}, nil)
	prefs.clockStyle.Horizontal = true
	prefs.clockFormat = widget.NewRadioGroup([]string{format24h, format12h}, nil)
	prefs.clockFormat.Horizontal = true
	prefs.timezone = widget.NewSelectEntry(worldclock.Zones())
	prefs.timezone.OnChanged = func(text string) {
		prefs.timezone.SetOptions(worldclock.Search(text))
	}

	prefs.idleMinutes = numberEntry()
	prefs.launch = widget.NewCheck(i18n.T("Launch at login"), nil)

	form := widget.NewForm(
		widget.NewFormItem(i18n.T("Work"), prefs.work),
		widget.NewFormItem(i18n.T("Short Break"), prefs.shortBreak),
		widget.NewFormItem(i18n.T("Long Break"), prefs.longBreak),
		widget.NewFormItem(i18n.T("Sound"), container.NewBorder(nil, nil, nil, preview, prefs.sound)),
		widget.NewFormItem(i18n.T("Volume"), container.NewBorder(nil, nil, nil, prefs.volumeLabel, prefs.volume)),
		widget.NewFormItem(i18n.T("Spoken text"), prefs.spokenText),
		widget.NewFormItem(i18n.T("Custom sound file"), container.NewBorder(nil, nil, nil, browse, prefs.customPath)),
		widget.NewFormItem(i18n.T("Clock style"), prefs.clockStyle),
		widget.NewFormItem(i18n.T("Time format"), prefs.clockFormat),
		widget.NewFormItem(i18n.T("Timezone"), prefs.timezone),
	)

	prefs.saveButton = widget.NewButton(i18n.T("Save"), prefs.handleSave)
	prefs.saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton(i18n.T("Cancel"), func() {
		prefs.UpdateSettings(prefs.settings)
		prefs.window.Hide()
	})
	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, prefs.saveButton)

	content := container.NewBorder(nil, buttons, nil, nil, container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("Pomodoro (min)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
		widget.NewLabel(i18n.T("Pause when idle (minutes, 0 = off)")),
		prefs.idleMinutes,
		prefs.launch,
	)))
	prefs.window.SetContent(content)
	prefs.window.Resize(fyne.NewSize(480, 560))
	prefs.window.SetCloseIntercept(prefs.window.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	values := ValuesFrom(settings)

	prefs.work.SetText(values.Work)
	prefs.shortBreak.SetText(values.ShortBreak)
	prefs.longBreak.SetText(values.LongBreak)
	prefs.sound.SetSelected(values.SoundName)
	prefs.volume.SetValue(values.Volume)
	prefs.spokenText.SetText(values.SpokenText)
	prefs.customPath.SetText(values.CustomSoundPath)
	prefs.clockStyle.SetSelected(styleDigital)
	if values.Analog {
		prefs.clockStyle.SetSelected(styleAnalog)
	}
	prefs.clockFormat.SetSelected(format24h)
	if values.TwelveHour {
		prefs.clockFormat.SetSelected(format12h)
	}
	prefs.timezone.SetText(values.Timezone)
	prefs.idleMinutes.SetText(values.IdleMinutes)
	prefs.launch.SetChecked(values.LaunchAtLogin)
}

func (prefs *Window) values() FormValues {
	return FormValues{
		Work:            prefs.work.Text,
		ShortBreak:      prefs.shortBreak.Text,
		LongBreak:       prefs.longBreak.Text,
		SoundName:       prefs.sound.Selected,
		Volume:          prefs.volume.Value,
		SpokenText:      prefs.spokenText.Text,
		CustomSoundPath: prefs.customPath.Text,
		Analog:          prefs.clockStyle.Selected == styleAnalog,
		TwelveHour:      prefs.clockFormat.Selected == format12h,
		Timezone:        prefs.timezone.Text,
		IdleMinutes:     prefs.idleMinutes.Text,
		LaunchAtLogin:   prefs.launch.Checked,
	}
}

func (prefs *Window) handleSave() {
	settings := prefs.values().Apply(prefs.settings)
	prefs.settings = settings
	if prefs.callbacks.OnSave != nil {
		prefs.callbacks.OnSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) preview() {
	if prefs.callbacks.OnPreview == nil {
		return
	}
	draft := prefs.values().Apply(prefs.settings)
	prefs.callbacks.OnPreview(draft.Sound, draft.Alert().Text)
}

func (prefs *Window) browseSound() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		prefs.customPath.SetText(reader.URI().Path())
		if sound, ok := audio.Lookup(audio.SoundCustom); ok {
			prefs.sound.SetSelected(sound.Name)
		}
	}, prefs.window)
}

func numberEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.Validator = func(text string) error {
		if _, ok := parsePositiveInt(text); !ok && text != "0" {
			return fmt.Errorf("enter a whole number")
		}
		return nil
	}
	return entry
}
