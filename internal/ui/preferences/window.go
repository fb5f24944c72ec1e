package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"focustimer/internal/core/model"
)

var themeOptions = []string{string(model.ThemeAuto), string(model.ThemeLight), string(model.ThemeDark)}

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	onSave     func(model.SettingsPatch)
	onCancel   func()
	workMin    *widget.Entry
	breakMin   *widget.Entry
	longMin    *widget.Entry
	interval   *widget.Entry
	sound      *widget.Check
	vibration  *widget.Check
	autoAdv    *widget.Check
	reminders  *widget.Check
	reminderAt *widget.Entry
	theme      *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings model.AppSettings, onSave func(model.SettingsPatch)) *Window {
	window := app.NewWindow("FocusTimer Settings")

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		workMin:    widget.NewEntry(),
		breakMin:   widget.NewEntry(),
		longMin:    widget.NewEntry(),
		interval:   widget.NewEntry(),
		sound:      widget.NewCheck("Sound", nil),
		vibration:  widget.NewCheck("Vibration", nil),
		autoAdv:    widget.NewCheck("Start the next phase automatically", nil),
		reminders:  widget.NewCheck("Daily reminders", nil),
		reminderAt: widget.NewEntry(),
		theme:      widget.NewSelect(themeOptions, nil),
	}
	prefs.reminderAt.SetPlaceHolder("HH:MM")
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus duration"), prefs.workMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break duration"), prefs.breakMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break duration"), prefs.longMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break every"), prefs.interval, widget.NewLabel("sessions")),
		prefs.autoAdv,
		widget.NewLabelWithStyle("Feedback", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.sound,
		prefs.vibration,
		container.NewHBox(prefs.reminders, prefs.reminderAt),
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Theme"), prefs.theme),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 460))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.AppSettings) {
	values := ValuesFromSettings(settings)
	prefs.workMin.SetText(values.WorkMinutes)
	prefs.breakMin.SetText(values.BreakMinutes)
	prefs.longMin.SetText(values.LongBreakMinutes)
	prefs.interval.SetText(values.LongBreakInterval)
	prefs.sound.SetChecked(values.SoundEnabled)
	prefs.vibration.SetChecked(values.VibrationEnabled)
	prefs.autoAdv.SetChecked(values.AutoAdvance)
	prefs.reminders.SetChecked(values.DailyReminders)
	prefs.reminderAt.SetText(values.ReminderTime)
	prefs.theme.SetSelected(string(values.Theme))
}

func (prefs *Window) values() Values {
	return Values{
		WorkMinutes:       prefs.workMin.Text,
		BreakMinutes:      prefs.breakMin.Text,
		LongBreakMinutes:  prefs.longMin.Text,
		LongBreakInterval: prefs.interval.Text,
		SoundEnabled:      prefs.sound.Checked,
		VibrationEnabled:  prefs.vibration.Checked,
		AutoAdvance:       prefs.autoAdv.Checked,
		DailyReminders:    prefs.reminders.Checked,
		ReminderTime:      prefs.reminderAt.Text,
		Theme:             model.Theme(prefs.theme.Selected),
	}
}

func (prefs *Window) handleSave() {
	if prefs.onSave != nil {
		prefs.onSave(prefs.values().Patch())
	}
	prefs.window.Hide()
}
