package timers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustimer/internal/core/model"
)

func TestParseSegments(t *testing.T) {
	segments, err := ParseSegments("# warmup\n5s work Jumping jacks\n\n3s break\n1m30s rest Cool down\n")
	require.NoError(t, err)
	assert.Equal(t, []model.Segment{
		{Duration: 5 * time.Second, Label: "Jumping jacks"},
		{Duration: 3 * time.Second, IsBreak: true},
		{Duration: 90 * time.Second, IsBreak: true, Label: "Cool down"},
	}, segments)
}

func TestParseSegments_Errors(t *testing.T) {
	for name, text := range map[string]string{
		"empty":        "  \n# only a comment\n",
		"missing kind": "5s",
		"bad duration": "five work",
		"unknown kind": "5s nap",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSegments(text)
			assert.Error(t, err)
		})
	}
}

func TestFormatSegments_RoundTrip(t *testing.T) {
	segments := []model.Segment{
		{Duration: 20 * time.Second, Label: "Go hard"},
		{Duration: 10 * time.Second, IsBreak: true},
		{Duration: 2*time.Minute + 5*time.Second},
	}
	text := FormatSegments(segments)
	assert.Equal(t, "20s work Go hard\n10s break\n2m5s work", text)

	parsed, err := ParseSegments(text)
	require.NoError(t, err)
	assert.Equal(t, segments, parsed)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "", FormatDuration(0))
	assert.Equal(t, "25m", FormatDuration(25*time.Minute))
	assert.Equal(t, "1h30m", FormatDuration(90*time.Minute))
	assert.Equal(t, "45s", FormatDuration(45*time.Second))
}

func TestNormalValues_Timer(t *testing.T) {
	values := NormalValues{
		Name:        "  Deep Work ",
		Emoji:       "🧠",
		Color:       "#45B7D1",
		Work:        "50m",
		Break:       "10m",
		Repetitions: "3",
	}
	timer, err := values.Timer(model.TimerInfo{ID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", timer.ID)
	assert.Equal(t, "Deep Work", timer.Name)
	assert.Equal(t, 50*time.Minute, timer.WorkDuration)
	assert.Equal(t, 10*time.Minute, timer.BreakDuration)
	assert.Zero(t, timer.LongBreakDuration)
	assert.Zero(t, timer.LongBreakInterval)
	assert.Equal(t, 3, timer.Repetitions)

	assert.Equal(t, values.Work, NormalValuesFrom(timer).Work)
	assert.Equal(t, "", NormalValuesFrom(timer).LongBreakInterval)
}

func TestNormalValues_TimerRejectsInvalid(t *testing.T) {
	_, err := NormalValues{Name: "x", Work: "soon"}.Timer(model.TimerInfo{})
	assert.Error(t, err)

	_, err = NormalValues{Name: "", Work: "25m"}.Timer(model.TimerInfo{})
	assert.ErrorIs(t, err, model.ErrInvalidDefinition)

	_, err = NormalValues{Name: "x", Work: "25m", Repetitions: "0"}.Timer(model.TimerInfo{})
	assert.ErrorIs(t, err, model.ErrInvalidDefinition)
}

func TestSequenceTimer(t *testing.T) {
	timer, err := SequenceTimer(model.TimerInfo{Name: " Tabata "}, "20s work\n10s break")
	require.NoError(t, err)
	assert.Equal(t, "Tabata", timer.Name)
	assert.Len(t, timer.Segments, 2)

	_, err = SequenceTimer(model.TimerInfo{Name: "Bad"}, "500ms work")
	assert.ErrorIs(t, err, model.ErrInvalidDefinition)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "25m focus · 5m break · 4×", Summary(model.NormalTimer{
		WorkDuration: 25 * time.Minute, BreakDuration: 5 * time.Minute, Repetitions: 4,
	}))
	assert.Equal(t, "2 segments · 30s total", Summary(model.SequenceTimer{Segments: []model.Segment{
		{Duration: 20 * time.Second}, {Duration: 10 * time.Second, IsBreak: true},
	}}))
}
