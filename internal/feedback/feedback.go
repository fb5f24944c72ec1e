// Package feedback turns timer cues into user-visible signals.
package feedback

import (
	"log"

	"focustimer/internal/core/model"

	"fyne.io/fyne/v2"
)

// Notifier sends desktop notifications. fyne.App implements it.
type Notifier interface {
	SendNotification(notification *fyne.Notification)
}

var cueMessages = map[model.SoundKind]string{
	model.SoundPhaseStart:       "Timer started",
	model.SoundWorkComplete:     "Focus block done. Time for a break.",
	model.SoundBreakComplete:    "Break over. Back to focus.",
	model.SoundSessionComplete:  "Session complete. Nice work!",
	model.SoundSegmentAdvance:   "Next segment",
	model.SoundSequenceComplete: "Sequence complete!",
}

// Desktop delivers cues as desktop notifications. Phase start and segment
// advance cues are only logged.
type Desktop struct {
	title    string
	notifier Notifier
}

// NewDesktop creates a Desktop sink that titles notifications with title.
func NewDesktop(title string, notifier Notifier) *Desktop {
	return &Desktop{title: title, notifier: notifier}
}

// PlaySound announces a cue.
func (desktop *Desktop) PlaySound(kind model.SoundKind) error {
	message, ok := cueMessages[kind]
	if !ok {
		return ErrUnknownCue
	}
	if desktop.notifier == nil || kind == model.SoundPhaseStart || kind == model.SoundSegmentAdvance {
		log.Printf("cue %s: %s", kind, message)
		return nil
	}
	desktop.notifier.SendNotification(fyne.NewNotification(desktop.title, message))
	return nil
}

// TriggerHaptic is a no-op: desktops have no vibration motor.
func (desktop *Desktop) TriggerHaptic(model.HapticStrength) error {
	return nil
}
