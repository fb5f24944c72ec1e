package timers

import (
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focustimer/internal/core/model"
)

// Store persists timer definitions.
type Store interface {
	List() ([]model.Definition, error)
	Save(definition model.Definition) (model.Definition, error)
	Delete(id string) error
}

// Window lists stored timers and edits them.
type Window struct {
	window   fyne.Window
	store    Store
	onStart  func(model.Definition)
	onChange func([]model.Definition)
	timers   []model.Definition
	selected int
	list     *widget.List
	start    *widget.Button
	edit     *widget.Button
	remove   *widget.Button
}

// New creates the timers window. onStart runs the chosen timer and
// onChange receives the list after every save or delete.
func New(app fyne.App, store Store, onStart func(model.Definition), onChange func([]model.Definition)) *Window {
	window := app.NewWindow("FocusTimer Timers")
	view := &Window{
		window:   window,
		store:    store,
		onStart:  onStart,
		onChange: onChange,
		selected: -1,
	}

	view.list = widget.NewList(
		func() int { return len(view.timers) },
		func() fyne.CanvasObject {
			return container.NewVBox(
				widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				widget.NewLabel(""),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id >= len(view.timers) {
				return
			}
			definition := view.timers[id]
			info := definition.Info()
			rows := item.(*fyne.Container).Objects
			rows[0].(*widget.Label).SetText(strings.TrimSpace(info.Emoji + " " + info.Name))
			rows[1].(*widget.Label).SetText(Summary(definition))
		},
	)
	view.list.OnSelected = func(id widget.ListItemID) {
		view.selected = id
		view.refreshButtons()
	}
	view.list.OnUnselected = func(widget.ListItemID) {
		view.selected = -1
		view.refreshButtons()
	}

	view.start = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), view.startSelected)
	view.start.Importance = widget.HighImportance
	view.edit = widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), view.editSelected)
	view.remove = widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), view.deleteSelected)

	addNormal := widget.NewButtonWithIcon("New timer", theme.ContentAddIcon(), func() {
		view.showNormalForm(model.NormalTimer{Repetitions: 4})
	})
	addSequence := widget.NewButtonWithIcon("New sequence", theme.ContentAddIcon(), func() {
		view.showSequenceForm(model.SequenceTimer{})
	})

	top := container.NewHBox(addNormal, addSequence)
	bottom := container.NewHBox(view.remove, layout.NewSpacer(), view.edit, view.start)
	window.SetContent(container.NewBorder(top, bottom, nil, nil, view.list))
	window.Resize(fyne.NewSize(420, 480))
	window.SetCloseIntercept(window.Hide)

	view.Reload()
	return view
}

// Show displays the window.
func (view *Window) Show() {
	view.Reload()
	view.window.Show()
	view.window.RequestFocus()
}

// Reload reads the timers from the store.
func (view *Window) Reload() {
	timers, err := view.store.List()
	if err != nil {
		log.Printf("timers: list: %v", err)
		return
	}
	view.timers = timers
	view.selected = -1
	view.list.UnselectAll()
	view.list.Refresh()
	view.refreshButtons()
}

func (view *Window) refreshButtons() {
	for _, button := range []*widget.Button{view.start, view.edit, view.remove} {
		if view.selectedTimer() == nil {
			button.Disable()
		} else {
			button.Enable()
		}
	}
}

func (view *Window) selectedTimer() model.Definition {
	if view.selected < 0 || view.selected >= len(view.timers) {
		return nil
	}
	return view.timers[view.selected]
}

func (view *Window) startSelected() {
	definition := view.selectedTimer()
	if definition == nil || view.onStart == nil {
		return
	}
	view.onStart(definition)
	view.window.Hide()
}

func (view *Window) editSelected() {
	switch timer := view.selectedTimer().(type) {
	case model.NormalTimer:
		view.showNormalForm(timer)
	case model.SequenceTimer:
		view.showSequenceForm(timer)
	}
}

func (view *Window) deleteSelected() {
	definition := view.selectedTimer()
	if definition == nil {
		return
	}
	info := definition.Info()
	dialog.ShowConfirm("Delete timer", "Delete \""+info.Name+"\"?", func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := view.store.Delete(info.ID); err != nil {
			dialog.ShowError(err, view.window)
			return
		}
		view.changed()
	}, view.window)
}

func (view *Window) save(definition model.Definition) error {
	if _, err := view.store.Save(definition); err != nil {
		return err
	}
	view.changed()
	return nil
}

func (view *Window) changed() {
	view.Reload()
	if view.onChange != nil {
		view.onChange(view.timers)
	}
}

func (view *Window) showNormalForm(timer model.NormalTimer) {
	values := NormalValuesFrom(timer)
	if values.Work == "" {
		values.Work = "25m"
	}
	name := entryWithText(values.Name)
	work := entryWithText(values.Work)
	breakEntry := entryWithText(values.Break)
	breakEntry.SetPlaceHolder("settings")
	longBreak := entryWithText(values.LongBreak)
	longBreak.SetPlaceHolder("settings")
	interval := entryWithText(values.LongBreakInterval)
	interval.SetPlaceHolder("settings")
	repetitions := entryWithText(values.Repetitions)
	emoji := selectWith(Emojis, values.Emoji)
	color := selectWith(Colors, values.Color)

	items := []*widget.FormItem{
		widget.NewFormItem("Name", name),
		widget.NewFormItem("Emoji", emoji),
		widget.NewFormItem("Color", color),
		widget.NewFormItem("Focus", work),
		widget.NewFormItem("Break", breakEntry),
		widget.NewFormItem("Long break", longBreak),
		widget.NewFormItem("Long break every", interval),
		widget.NewFormItem("Repetitions", repetitions),
	}
	form := dialog.NewForm(formTitle(timer.ID, "timer"), "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		edited, err := NormalValues{
			Name:              name.Text,
			Emoji:             emoji.Selected,
			Color:             color.Selected,
			Work:              work.Text,
			Break:             breakEntry.Text,
			LongBreak:         longBreak.Text,
			LongBreakInterval: interval.Text,
			Repetitions:       repetitions.Text,
		}.Timer(timer.TimerInfo)
		if err == nil {
			err = view.save(edited)
		}
		if err != nil {
			dialog.ShowError(err, view.window)
		}
	}, view.window)
	form.Resize(fyne.NewSize(380, 0))
	form.Show()
}

func (view *Window) showSequenceForm(timer model.SequenceTimer) {
	name := entryWithText(timer.Name)
	emoji := selectWith(Emojis, timer.Emoji)
	color := selectWith(Colors, timer.Color)
	segments := widget.NewMultiLineEntry()
	segments.SetPlaceHolder("20s work Sprint\n10s break")
	segments.SetText(FormatSegments(timer.Segments))
	segments.SetMinRowsVisible(6)

	items := []*widget.FormItem{
		widget.NewFormItem("Name", name),
		widget.NewFormItem("Emoji", emoji),
		widget.NewFormItem("Color", color),
		widget.NewFormItem("Segments", segments),
	}
	form := dialog.NewForm(formTitle(timer.ID, "sequence"), "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		info := model.TimerInfo{ID: timer.ID, Name: name.Text, Emoji: emoji.Selected, Color: color.Selected}
		edited, err := SequenceTimer(info, segments.Text)
		if err == nil {
			err = view.save(edited)
		}
		if err != nil {
			dialog.ShowError(err, view.window)
		}
	}, view.window)
	form.Resize(fyne.NewSize(380, 0))
	form.Show()
}

func formTitle(id, kind string) string {
	if id == "" {
		return "New " + kind
	}
	return "Edit " + kind
}

func entryWithText(text string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(text)
	return entry
}

func selectWith(options []string, selected string) *widget.Select {
	choice := widget.NewSelect(options, nil)
	if selected == "" {
		selected = options[0]
	}
	choice.SetSelected(selected)
	return choice
}
