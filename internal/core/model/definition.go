package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDefinition indicates a timer definition that cannot be run.
var ErrInvalidDefinition = errors.New("invalid timer definition")

// TimerKind discriminates timer definition variants.
type TimerKind string

const (
	KindNormal   TimerKind = "normal"
	KindSequence TimerKind = "sequence"
)

// TimerInfo holds the user-facing identity of a timer definition.
type TimerInfo struct {
	ID    string
	Name  string
	Color string
	Emoji string
}

// Definition is a user-created timer configuration.
// Implemented only by NormalTimer and SequenceTimer.
type Definition interface {
	Kind() TimerKind
	Info() TimerInfo
	Validate() error
	Clone() Definition
	definition()
}

// NormalTimer alternates work and break phases for a number of repetitions.
// Zero break durations and a zero long-break interval fall back to AppSettings.
type NormalTimer struct {
	TimerInfo
	WorkDuration      time.Duration
	BreakDuration     time.Duration
	LongBreakDuration time.Duration
	LongBreakInterval int
	Repetitions       int
}

// Segment is one explicit phase of a sequence timer.
type Segment struct {
	Duration time.Duration
	IsBreak  bool
	Label    string
}

// SequenceTimer runs an ordered list of segments once.
type SequenceTimer struct {
	TimerInfo
	Segments []Segment
}

func (NormalTimer) definition()   {}
func (SequenceTimer) definition() {}

// Kind returns KindNormal.
func (timer NormalTimer) Kind() TimerKind { return KindNormal }

// Info returns the cosmetic fields.
func (timer NormalTimer) Info() TimerInfo { return timer.TimerInfo }

// Clone returns a copy of the timer.
func (timer NormalTimer) Clone() Definition { return timer }

// Validate checks durations and counters.
func (timer NormalTimer) Validate() error {
	if err := validateInfo(timer.TimerInfo); err != nil {
		return err
	}
	if err := positiveSeconds("work duration", timer.WorkDuration); err != nil {
		return err
	}
	if err := optionalSeconds("break duration", timer.BreakDuration); err != nil {
		return err
	}
	if err := optionalSeconds("long break duration", timer.LongBreakDuration); err != nil {
		return err
	}
	if timer.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions must be at least 1", ErrInvalidDefinition)
	}
	if timer.LongBreakInterval < 0 {
		return fmt.Errorf("%w: long break interval must not be negative", ErrInvalidDefinition)
	}
	return nil
}

// Kind returns KindSequence.
func (timer SequenceTimer) Kind() TimerKind { return KindSequence }

// Info returns the cosmetic fields.
func (timer SequenceTimer) Info() TimerInfo { return timer.TimerInfo }

// Clone returns a deep copy of the timer.
func (timer SequenceTimer) Clone() Definition {
	timer.Segments = append([]Segment(nil), timer.Segments...)
	return timer
}

// Validate checks that the sequence is non-empty and every segment has a duration.
func (timer SequenceTimer) Validate() error {
	if err := validateInfo(timer.TimerInfo); err != nil {
		return err
	}
	if len(timer.Segments) == 0 {
		return fmt.Errorf("%w: sequence has no segments", ErrInvalidDefinition)
	}
	for index, segment := range timer.Segments {
		if err := positiveSeconds(fmt.Sprintf("segment %d duration", index+1), segment.Duration); err != nil {
			return err
		}
	}
	return nil
}

// Segment returns the 1-indexed segment for a cycle.
func (timer SequenceTimer) Segment(cycle int) (Segment, bool) {
	if cycle < 1 || cycle > len(timer.Segments) {
		return Segment{}, false
	}
	return timer.Segments[cycle-1], true
}

// TotalDuration returns the sum of all segment durations.
func (timer SequenceTimer) TotalDuration() time.Duration {
	var total time.Duration
	for _, segment := range timer.Segments {
		total += segment.Duration
	}
	return total
}

func validateInfo(info TimerInfo) error {
	if strings.TrimSpace(info.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidDefinition)
	}
	return nil
}

func positiveSeconds(field string, value time.Duration) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be greater than 0", ErrInvalidDefinition, field)
	}
	return wholeSeconds(field, value)
}

func optionalSeconds(field string, value time.Duration) error {
	if value < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidDefinition, field)
	}
	return wholeSeconds(field, value)
}

func wholeSeconds(field string, value time.Duration) error {
	if value%time.Second != 0 {
		return fmt.Errorf("%w: %s must be whole seconds", ErrInvalidDefinition, field)
	}
	return nil
}
