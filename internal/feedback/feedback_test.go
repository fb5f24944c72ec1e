package feedback

import (
	"testing"

	"focustimer/internal/core/model"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	sent []*fyne.Notification
}

func (notifier *recordingNotifier) SendNotification(notification *fyne.Notification) {
	notifier.sent = append(notifier.sent, notification)
}

func TestDesktop_NotifiesPhaseCompletions(t *testing.T) {
	notifier := &recordingNotifier{}
	desktop := NewDesktop("FocusTimer", notifier)

	require.NoError(t, desktop.PlaySound(model.SoundWorkComplete))
	require.NoError(t, desktop.PlaySound(model.SoundSequenceComplete))

	require.Len(t, notifier.sent, 2)
	assert.Equal(t, "FocusTimer", notifier.sent[0].Title)
	assert.Equal(t, "Focus block done. Time for a break.", notifier.sent[0].Content)
	assert.Equal(t, "Sequence complete!", notifier.sent[1].Content)
}

func TestDesktop_QuietCuesOnlyLogged(t *testing.T) {
	notifier := &recordingNotifier{}
	desktop := NewDesktop("FocusTimer", notifier)

	require.NoError(t, desktop.PlaySound(model.SoundPhaseStart))
	require.NoError(t, desktop.PlaySound(model.SoundSegmentAdvance))
	assert.Empty(t, notifier.sent)
}

func TestDesktop_UnknownCue(t *testing.T) {
	desktop := NewDesktop("FocusTimer", nil)
	assert.ErrorIs(t, desktop.PlaySound("boom"), ErrUnknownCue)
	assert.NoError(t, desktop.PlaySound(model.SoundSessionComplete))
	assert.NoError(t, desktop.TriggerHaptic(model.HapticMedium))
}
