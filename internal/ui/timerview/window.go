package timerview

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controls is the session control surface driven by the window buttons.
type Controls interface {
	PlayPause()
	Reset()
	Skip()
}

var (
	defaultWorkColor = color.NRGBA{R: 0xFF, G: 0x6B, B: 0x35, A: 0xFF}
	breakColor       = color.NRGBA{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF}
	longBreakColor   = color.NRGBA{R: 0x93, G: 0x33, B: 0xEA, A: 0xFF}
)

// Window shows the live session and its controls.
type Window struct {
	window      fyne.Window
	controls    Controls
	background  *canvas.Rectangle
	titleLabel  *canvas.Text
	phaseLabel  *canvas.Text
	timerLabel  *canvas.Text
	cycleLabel  *widget.Label
	progress    *widget.ProgressBar
	playButton  *widget.Button
	resetButton *widget.Button
	skipButton  *widget.Button
	workColor   color.Color
}

// New creates the timer window.
func New(app fyne.App, controls Controls) *Window {
	window := app.NewWindow("FocusTimer")

	background := canvas.NewRectangle(defaultWorkColor)

	titleLabel := canvas.NewText("Pomodoro", color.White)
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 20

	phaseLabel := canvas.NewText("Focus Time", color.White)
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextSize = 16

	timerLabel := canvas.NewText("--:--", color.White)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 56

	cycleLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	view := &Window{
		window:     window,
		controls:   controls,
		background: background,
		titleLabel: titleLabel,
		phaseLabel: phaseLabel,
		timerLabel: timerLabel,
		cycleLabel: cycleLabel,
		progress:   progress,
		workColor:  defaultWorkColor,
	}

	view.playButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		view.controls.PlayPause()
	})
	view.playButton.Importance = widget.HighImportance
	view.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		view.controls.Reset()
	})
	view.skipButton = widget.NewButtonWithIcon("Skip", theme.MediaSkipNextIcon(), func() {
		view.controls.Skip()
	})

	buttons := container.NewHBox(layout.NewSpacer(), view.resetButton, view.playButton, view.skipButton, layout.NewSpacer())
	content := container.NewVBox(
		titleLabel,
		phaseLabel,
		layout.NewSpacer(),
		timerLabel,
		cycleLabel,
		progress,
		layout.NewSpacer(),
		buttons,
	)

	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(360, 420))
	return view
}

// Window returns the underlying Fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// SetTimer updates the title and accent for the active definition.
// A nil definition shows the ad-hoc pomodoro.
func (view *Window) SetTimer(definition model.Definition) {
	title := "Pomodoro"
	accent := color.Color(defaultWorkColor)
	if definition != nil {
		info := definition.Info()
		title = strings.TrimSpace(info.Emoji + " " + info.Name)
		if parsed, ok := ParseHexColor(info.Color); ok {
			accent = parsed
		}
	}
	view.workColor = accent
	view.titleLabel.Text = title
	view.titleLabel.Refresh()
}

// Update renders an event from any goroutine.
func (view *Window) Update(event timekeeper.Event) {
	fyne.Do(func() {
		view.Render(event)
	})
}

// Render applies an event to the widgets. It must run on the UI goroutine.
func (view *Window) Render(event timekeeper.Event) {
	state := event.Session

	view.timerLabel.Text = FormatClock(state.TimeLeft)
	view.timerLabel.Refresh()
	view.phaseLabel.Text = event.Label
	view.phaseLabel.Refresh()
	view.cycleLabel.SetText(CycleText(state))
	view.progress.SetValue(event.Progress)

	view.background.FillColor = PhaseColor(state.Phase, state.IsBreak, view.workColor)
	view.background.Refresh()

	if state.IsRunning {
		view.playButton.SetText("Pause")
		view.playButton.SetIcon(theme.MediaPauseIcon())
	} else {
		view.playButton.SetText("Start")
		view.playButton.SetIcon(theme.MediaPlayIcon())
	}
	if state.Finished {
		view.playButton.Disable()
		view.skipButton.Disable()
	} else {
		view.playButton.Enable()
		view.skipButton.Enable()
	}
}

// FormatClock renders a duration as MM:SS.
func FormatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value / time.Second)
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// CycleText describes the position within the session.
func CycleText(state model.SessionState) string {
	if state.Finished {
		return "Complete"
	}
	if state.Phase == model.PhaseSegment {
		return fmt.Sprintf("Segment %d of %d", state.CurrentCycle, state.TotalCycles)
	}
	return fmt.Sprintf("Cycle %d of %d", state.CurrentCycle, state.TotalCycles)
}

// PhaseColor picks the background for a phase. Sequence breaks use the break color.
func PhaseColor(phase model.Phase, isBreak bool, workColor color.Color) color.Color {
	switch {
	case phase == model.PhaseLongBreak:
		return longBreakColor
	case isBreak:
		return breakColor
	default:
		return workColor
	}
}

// ParseHexColor parses "#RRGGBB".
func ParseHexColor(value string) (color.NRGBA, bool) {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(value) != 6 {
		return color.NRGBA{}, false
	}
	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(parsed >> 16), G: uint8(parsed >> 8), B: uint8(parsed), A: 0xFF}, true
}
