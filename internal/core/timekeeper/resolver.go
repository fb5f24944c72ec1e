package timekeeper

import (
	"time"

	"focustimer/internal/core/model"
)

// Resolve returns the duration of a phase for the given cycle.
// A nil definition runs as a normal timer built from settings. Normal
// definitions override settings field by field; sequence definitions read
// the segment for the 1-indexed cycle and return 0 past the end.
func Resolve(definition model.Definition, settings model.AppSettings, phase model.Phase, cycle int) time.Duration {
	if sequence, ok := asSequence(definition); ok {
		segment, ok := sequence.Segment(cycle)
		if !ok {
			return 0
		}
		return segment.Duration
	}

	normal := asNormal(definition)
	switch phase {
	case model.PhaseBreak:
		return pick(normal.BreakDuration, settings.BreakDuration)
	case model.PhaseLongBreak:
		return pick(normal.LongBreakDuration, settings.LongBreakDuration)
	default:
		return pick(normal.WorkDuration, settings.WorkDuration)
	}
}

// LongBreakInterval returns the cycle interval between long breaks.
func LongBreakInterval(definition model.Definition, settings model.AppSettings) int {
	if normal := asNormal(definition); normal.LongBreakInterval > 0 {
		return normal.LongBreakInterval
	}
	if settings.LongBreakInterval > 0 {
		return settings.LongBreakInterval
	}
	return model.DefaultSettings().LongBreakInterval
}

// BreakPhase returns PhaseLongBreak when cycle is a multiple of the long break interval.
func BreakPhase(definition model.Definition, settings model.AppSettings, cycle int) model.Phase {
	if cycle%LongBreakInterval(definition, settings) == 0 {
		return model.PhaseLongBreak
	}
	return model.PhaseBreak
}

// TotalCycles returns the number of work cycles or segments in a session.
// Ad-hoc sessions run one long-break interval.
func TotalCycles(definition model.Definition, settings model.AppSettings) int {
	if sequence, ok := asSequence(definition); ok {
		return len(sequence.Segments)
	}
	if normal, ok := definitionAsNormal(definition); ok && normal.Repetitions > 0 {
		return normal.Repetitions
	}
	return LongBreakInterval(nil, settings)
}

func pick(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}

func asSequence(definition model.Definition) (model.SequenceTimer, bool) {
	switch timer := definition.(type) {
	case model.SequenceTimer:
		return timer, true
	case *model.SequenceTimer:
		if timer != nil {
			return *timer, true
		}
	}
	return model.SequenceTimer{}, false
}

func definitionAsNormal(definition model.Definition) (model.NormalTimer, bool) {
	switch timer := definition.(type) {
	case model.NormalTimer:
		return timer, true
	case *model.NormalTimer:
		if timer != nil {
			return *timer, true
		}
	}
	return model.NormalTimer{}, false
}

// asNormal returns the normal timer or a zero value whose fields all fall back to settings.
func asNormal(definition model.Definition) model.NormalTimer {
	normal, _ := definitionAsNormal(definition)
	return normal
}
