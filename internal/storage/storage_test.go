package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"focustimer/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSettings_MissingFileUsesDefaults(t *testing.T) {
	store, err := OpenSettings(SettingsPath(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), store.Get())
}

func TestSettingsStore_UpdatePersists(t *testing.T) {
	path := SettingsPath(filepath.Join(t.TempDir(), "nested"))
	store, err := OpenSettings(path)
	require.NoError(t, err)

	sound := false
	work := 50 * time.Minute
	theme := model.ThemeDark
	updated, err := store.Update(model.SettingsPatch{SoundEnabled: &sound, WorkDuration: &work, Theme: &theme})
	require.NoError(t, err)
	assert.False(t, updated.SoundEnabled)

	reopened, err := OpenSettings(path)
	require.NoError(t, err)
	settings := reopened.Settings()
	assert.False(t, settings.SoundEnabled)
	assert.True(t, settings.VibrationEnabled)
	assert.True(t, settings.AutoAdvance)
	assert.Equal(t, 50*time.Minute, settings.WorkDuration)
	assert.Equal(t, 5*time.Minute, settings.BreakDuration)
	assert.Equal(t, model.ThemeDark, settings.Theme)
}

func TestOpenSettings_InvalidValuesFallBack(t *testing.T) {
	path := SettingsPath(t.TempDir())
	content := "work_seconds: -5\nlong_break_interval: 0\ntheme: neon\nreminder_time: later\nauto_advance: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := OpenSettings(path)
	require.NoError(t, err)
	settings := store.Get()
	assert.Equal(t, 25*time.Minute, settings.WorkDuration)
	assert.Equal(t, 4, settings.LongBreakInterval)
	assert.Equal(t, model.ThemeAuto, settings.Theme)
	assert.Equal(t, "09:00", settings.ReminderTime)
	assert.False(t, settings.AutoAdvance)
}

func TestOpenSettings_MalformedYaml(t *testing.T) {
	path := SettingsPath(t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("work_seconds: [\n"), 0o644))

	store, err := OpenSettings(path)
	assert.Error(t, err)
	assert.Equal(t, model.DefaultSettings(), store.Get())
}

func TestTimerStore_SaveListDelete(t *testing.T) {
	path := TimersPath(t.TempDir())
	store, err := OpenTimers(path)
	require.NoError(t, err)

	normal, err := store.Save(model.NormalTimer{
		TimerInfo:     model.TimerInfo{Name: "Classic", Emoji: "🍅", Color: "#FF6B35"},
		WorkDuration:  25 * time.Minute,
		BreakDuration: 5 * time.Minute,
		Repetitions:   4,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, normal.Info().ID)

	sequence, err := store.Save(model.SequenceTimer{
		TimerInfo: model.TimerInfo{Name: "Tabata"},
		Segments: []model.Segment{
			{Duration: 20 * time.Second, Label: "Go"},
			{Duration: 10 * time.Second, IsBreak: true},
		},
	})
	require.NoError(t, err)

	reopened, err := OpenTimers(path)
	require.NoError(t, err)
	timers, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, timers, 2)
	assert.Equal(t, normal, timers[0])
	assert.Equal(t, sequence, timers[1])

	require.NoError(t, reopened.Delete(normal.Info().ID))
	_, err = reopened.Get(normal.Info().ID)
	assert.ErrorIs(t, err, ErrTimerNotFound)
	assert.ErrorIs(t, reopened.Delete("missing"), ErrTimerNotFound)

	timers, err = reopened.List()
	require.NoError(t, err)
	require.Len(t, timers, 1)
	assert.Equal(t, model.KindSequence, timers[0].Kind())
}

func TestTimerStore_SaveReplacesByID(t *testing.T) {
	store, err := OpenTimers(TimersPath(t.TempDir()))
	require.NoError(t, err)

	saved, err := store.Save(model.NormalTimer{
		TimerInfo:    model.TimerInfo{Name: "Classic"},
		WorkDuration: time.Minute,
		Repetitions:  1,
	})
	require.NoError(t, err)

	edited := saved.(model.NormalTimer)
	edited.Name = "Renamed"
	edited.Repetitions = 3
	_, err = store.Save(edited)
	require.NoError(t, err)

	timers, err := store.List()
	require.NoError(t, err)
	require.Len(t, timers, 1)
	assert.Equal(t, "Renamed", timers[0].Info().Name)
	assert.Equal(t, 3, timers[0].(model.NormalTimer).Repetitions)
}

func TestTimerStore_RejectsInvalid(t *testing.T) {
	store, err := OpenTimers(TimersPath(t.TempDir()))
	require.NoError(t, err)

	_, err = store.Save(model.SequenceTimer{TimerInfo: model.TimerInfo{Name: "Empty"}})
	assert.ErrorIs(t, err, model.ErrInvalidDefinition)

	_, err = store.Save(nil)
	assert.ErrorIs(t, err, model.ErrInvalidDefinition)

	timers, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, timers)
}

func TestOpenTimers_SkipsInvalidEntries(t *testing.T) {
	path := TimersPath(t.TempDir())
	content := `timers:
  - id: a
    type: normal
    name: Good
    work_seconds: 60
    repetitions: 2
  - id: b
    type: sequence
    name: Empty
  - id: c
    type: laser
    name: Unknown
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := OpenTimers(path)
	assert.ErrorIs(t, err, model.ErrInvalidDefinition)

	timers, listErr := store.List()
	require.NoError(t, listErr)
	require.Len(t, timers, 1)
	assert.Equal(t, "a", timers[0].Info().ID)
}
