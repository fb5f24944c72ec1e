package model

import "time"

// Phase identifies the kind of the active timed segment.
type Phase string

const (
	PhaseWork      Phase = "work"
	PhaseBreak     Phase = "break"
	PhaseLongBreak Phase = "long_break"
	PhaseSegment   Phase = "segment"
)

// IsBreak reports whether the phase is a break of a normal timer.
func (phase Phase) IsBreak() bool {
	return phase == PhaseBreak || phase == PhaseLongBreak
}

// SessionState is a snapshot of the live session.
type SessionState struct {
	IsRunning    bool
	TimeLeft     time.Duration
	IsBreak      bool
	CurrentCycle int
	TotalCycles  int

	Phase Phase
	// Finished is set once a sequence has run past its last segment.
	Finished bool
}

// SoundKind names a feedback cue.
type SoundKind string

const (
	SoundPhaseStart       SoundKind = "phase_start"
	SoundWorkComplete     SoundKind = "work_complete"
	SoundBreakComplete    SoundKind = "break_complete"
	SoundSessionComplete  SoundKind = "session_complete"
	SoundSegmentAdvance   SoundKind = "segment_advance"
	SoundSequenceComplete SoundKind = "sequence_complete"
)

// HapticStrength is the intensity of a haptic pulse.
type HapticStrength string

const (
	HapticLight  HapticStrength = "light"
	HapticMedium HapticStrength = "medium"
	HapticHeavy  HapticStrength = "heavy"
)
