package timerview

import (
	"image/color"
	"testing"
	"time"

	"focustimer/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(25*time.Minute))
	assert.Equal(t, "00:09", FormatClock(9*time.Second))
	assert.Equal(t, "90:05", FormatClock(90*time.Minute+5*time.Second))
	assert.Equal(t, "00:00", FormatClock(-time.Second))
}

func TestCycleText(t *testing.T) {
	assert.Equal(t, "Cycle 2 of 4", CycleText(model.SessionState{CurrentCycle: 2, TotalCycles: 4, Phase: model.PhaseWork}))
	assert.Equal(t, "Segment 1 of 3", CycleText(model.SessionState{CurrentCycle: 1, TotalCycles: 3, Phase: model.PhaseSegment}))
	assert.Equal(t, "Complete", CycleText(model.SessionState{CurrentCycle: 3, TotalCycles: 3, Phase: model.PhaseSegment, Finished: true}))
}

func TestPhaseColor(t *testing.T) {
	work := color.NRGBA{R: 1, G: 2, B: 3, A: 0xFF}
	assert.Equal(t, color.Color(work), PhaseColor(model.PhaseWork, false, work))
	assert.Equal(t, color.Color(work), PhaseColor(model.PhaseSegment, false, work))
	assert.Equal(t, color.Color(breakColor), PhaseColor(model.PhaseBreak, true, work))
	assert.Equal(t, color.Color(breakColor), PhaseColor(model.PhaseSegment, true, work))
	assert.Equal(t, color.Color(longBreakColor), PhaseColor(model.PhaseLongBreak, true, work))
}

func TestParseHexColor(t *testing.T) {
	parsed, ok := ParseHexColor("#FF6B35")
	assert.True(t, ok)
	assert.Equal(t, defaultWorkColor, parsed)

	parsed, ok = ParseHexColor(" 4ecdc4 ")
	assert.True(t, ok)
	assert.Equal(t, breakColor, parsed)

	for _, value := range []string{"", "#FFF", "#GGGGGG", "#FF6B3500"} {
		_, ok := ParseHexColor(value)
		assert.False(t, ok, value)
	}
}
