package timekeeper

import (
	"time"

	"focustimer/internal/core/model"
)

// advanceLocked moves the session to its next phase. Natural completion and
// Skip both go through here.
func (keeper *TimeKeeper) advanceLocked() {
	if sequence, ok := asSequence(keeper.definition); ok {
		keeper.advanceSequenceLocked(sequence)
	} else {
		keeper.advanceNormalLocked()
	}
	keeper.cueHapticLocked(model.HapticMedium)
	keeper.syncTickerLocked()
	keeper.emitLocked(keeper.eventLocked(EventStateChange))
}

func (keeper *TimeKeeper) advanceNormalLocked() {
	settings := keeper.settingsLocked()
	state := &keeper.state

	if !state.IsBreak {
		state.IsBreak = true
		state.Phase = BreakPhase(keeper.definition, settings, state.CurrentCycle)
		keeper.enterPhaseLocked(Resolve(keeper.definition, settings, state.Phase, state.CurrentCycle))
		state.IsRunning = settings.AutoAdvance
		keeper.cueSoundLocked(model.SoundWorkComplete)
		return
	}

	if state.CurrentCycle < state.TotalCycles {
		state.CurrentCycle++
		state.IsBreak = false
		state.Phase = model.PhaseWork
		keeper.enterPhaseLocked(Resolve(keeper.definition, settings, model.PhaseWork, state.CurrentCycle))
		state.IsRunning = settings.AutoAdvance
		keeper.cueSoundLocked(model.SoundBreakComplete)
		return
	}

	keeper.resetLocked()
	keeper.cueSoundLocked(model.SoundSessionComplete)
	keeper.emitLocked(keeper.eventLocked(EventSessionComplete))
}

func (keeper *TimeKeeper) advanceSequenceLocked(sequence model.SequenceTimer) {
	state := &keeper.state
	next := state.CurrentCycle + 1

	segment, ok := sequence.Segment(next)
	if !ok {
		state.IsRunning = false
		state.TimeLeft = 0
		state.Finished = true
		keeper.cueSoundLocked(model.SoundSequenceComplete)
		keeper.emitLocked(keeper.eventLocked(EventSessionComplete))
		return
	}

	state.CurrentCycle = next
	state.IsBreak = segment.IsBreak
	state.Phase = model.PhaseSegment
	keeper.enterPhaseLocked(segment.Duration)
	state.IsRunning = true
	keeper.cueSoundLocked(model.SoundSegmentAdvance)
}

// resetLocked returns the session to the first phase of cycle 1, stopped.
func (keeper *TimeKeeper) resetLocked() {
	settings := keeper.settingsLocked()
	state := model.SessionState{
		CurrentCycle: 1,
		TotalCycles:  TotalCycles(keeper.definition, settings),
		Phase:        model.PhaseWork,
	}
	if sequence, ok := asSequence(keeper.definition); ok {
		first, _ := sequence.Segment(1)
		state.IsBreak = first.IsBreak
		state.Phase = model.PhaseSegment
	}
	keeper.state = state
	keeper.enterPhaseLocked(Resolve(keeper.definition, settings, state.Phase, 1))
	keeper.syncTickerLocked()
}

func (keeper *TimeKeeper) enterPhaseLocked(duration time.Duration) {
	keeper.phaseDuration = duration
	keeper.state.TimeLeft = duration
}
