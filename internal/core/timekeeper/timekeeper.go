package timekeeper

import (
	"log"
	"sync"
	"time"

	"focustimer/internal/core/model"
)

// SettingsSource provides the current global defaults.
type SettingsSource interface {
	Settings() model.AppSettings
}

// SettingsFunc adapts a function to SettingsSource.
type SettingsFunc func() model.AppSettings

// Settings calls fn.
func (fn SettingsFunc) Settings() model.AppSettings { return fn() }

// Feedback plays cues for phase changes. Calls are fire-and-forget.
type Feedback interface {
	PlaySound(kind model.SoundKind) error
	TriggerHaptic(strength model.HapticStrength) error
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	// TickInterval is the wall time per one-second decrement.
	TickInterval time.Duration
	Clock        Clock
}

type cue struct {
	sound  model.SoundKind
	haptic model.HapticStrength
}

// TimeKeeper owns the single live session and drives it through its phases.
type TimeKeeper struct {
	mu       sync.Mutex
	options  Config
	settings SettingsSource
	feedback Feedback

	definition    model.Definition
	state         model.SessionState
	phaseDuration time.Duration

	generation uint64
	stopTick   chan struct{}
	closed     bool

	events []chan Event
	cues   []cue
}

// New creates a TimeKeeper holding an ad-hoc session built from settings.
func New(settings SettingsSource, feedback Feedback, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = RealClock{}
	}
	if settings == nil {
		settings = SettingsFunc(model.DefaultSettings)
	}

	keeper := &TimeKeeper{
		options:  options,
		settings: settings,
		feedback: feedback,
	}
	keeper.resetLocked()
	return keeper
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start replaces the session with a new one for definition.
// A nil definition runs an ad-hoc normal timer from settings.
func (keeper *TimeKeeper) Start(definition model.Definition) {
	if definition != nil {
		if err := definition.Validate(); err != nil {
			log.Printf("start timer %q: %v; using settings", definition.Info().Name, err)
			definition = nil
		} else {
			definition = definition.Clone()
		}
	}

	keeper.mu.Lock()
	keeper.stopTickerLocked()
	keeper.definition = definition
	keeper.resetLocked()
	keeper.emitLocked(keeper.eventLocked(EventStateChange))
	keeper.mu.Unlock()
}

// PlayPause toggles the running state. Starting a phase that has not been
// touched yet plays the phase start cue; resuming mid-phase does not.
// A finished sequence stays stopped until Reset.
func (keeper *TimeKeeper) PlayPause() {
	keeper.mu.Lock()
	if keeper.state.Finished || keeper.state.TimeLeft <= 0 {
		keeper.mu.Unlock()
		return
	}

	keeper.cueHapticLocked(model.HapticMedium)
	if !keeper.state.IsRunning && keeper.state.TimeLeft == keeper.phaseDuration {
		keeper.cueSoundLocked(model.SoundPhaseStart)
	}
	keeper.state.IsRunning = !keeper.state.IsRunning
	keeper.syncTickerLocked()
	keeper.emitLocked(keeper.eventLocked(EventRunChange))
	cues := keeper.takeCuesLocked()
	keeper.mu.Unlock()

	keeper.dispatch(cues)
}

// Reset returns the session to cycle 1 with the first phase at full duration, stopped.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	keeper.resetLocked()
	keeper.cueHapticLocked(model.HapticMedium)
	keeper.emitLocked(keeper.eventLocked(EventStateChange))
	cues := keeper.takeCuesLocked()
	keeper.mu.Unlock()

	keeper.dispatch(cues)
}

// Skip ends the current phase immediately, exactly as if it had run out.
func (keeper *TimeKeeper) Skip() {
	keeper.mu.Lock()
	if keeper.state.Finished {
		keeper.mu.Unlock()
		return
	}
	keeper.advanceLocked()
	cues := keeper.takeCuesLocked()
	keeper.mu.Unlock()

	keeper.dispatch(cues)
}

// SettingsChanged re-resolves the current phase duration after a settings
// update. An untouched phase takes the new duration; a started one is
// clamped so the remaining time never exceeds it.
func (keeper *TimeKeeper) SettingsChanged() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state.Finished {
		return
	}

	settings := keeper.settingsLocked()
	duration := Resolve(keeper.definition, settings, keeper.state.Phase, keeper.state.CurrentCycle)
	if keeper.state.TimeLeft == keeper.phaseDuration || keeper.state.TimeLeft > duration {
		keeper.state.TimeLeft = duration
	}
	keeper.phaseDuration = duration
	if keeper.state.CurrentCycle == 1 && !keeper.state.IsRunning {
		keeper.state.TotalCycles = TotalCycles(keeper.definition, settings)
	}
	keeper.syncTickerLocked()
	keeper.emitLocked(keeper.eventLocked(EventStateChange))
}

// State returns a snapshot of the session.
func (keeper *TimeKeeper) State() model.SessionState {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Definition returns the snapshot the session was started with, or nil.
func (keeper *TimeKeeper) Definition() model.Definition {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.definition == nil {
		return nil
	}
	return keeper.definition.Clone()
}

// Snapshot returns the current state as a state change event.
func (keeper *TimeKeeper) Snapshot() Event {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.eventLocked(EventStateChange)
}

// PhaseLabel returns the display name of the current phase.
func (keeper *TimeKeeper) PhaseLabel() string {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.labelLocked()
}

// Progress returns the elapsed fraction of the current phase.
func (keeper *TimeKeeper) Progress() float64 {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.progressLocked()
}

// Stop cancels the tick source and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.state.IsRunning = false
	keeper.stopTickerLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) settingsLocked() model.AppSettings {
	return keeper.settings.Settings().Normalize()
}

func (keeper *TimeKeeper) labelLocked() string {
	if sequence, ok := asSequence(keeper.definition); ok {
		segment, _ := sequence.Segment(keeper.state.CurrentCycle)
		if segment.Label != "" {
			return segment.Label
		}
		if segment.IsBreak {
			return "Rest"
		}
		return "Active"
	}

	switch keeper.state.Phase {
	case model.PhaseLongBreak:
		return "Long Break"
	case model.PhaseBreak:
		return "Break"
	default:
		return "Focus Time"
	}
}

func (keeper *TimeKeeper) progressLocked() float64 {
	if keeper.state.Finished {
		return 1
	}
	if keeper.phaseDuration <= 0 {
		return 0
	}
	progress := 1 - float64(keeper.state.TimeLeft)/float64(keeper.phaseDuration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (keeper *TimeKeeper) eventLocked(eventType EventType) Event {
	return Event{
		Type:     eventType,
		Session:  keeper.state,
		Label:    keeper.labelLocked(),
		Progress: keeper.progressLocked(),
		At:       keeper.options.Clock.Now(),
	}
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (keeper *TimeKeeper) cueSoundLocked(kind model.SoundKind) {
	if keeper.settingsLocked().SoundEnabled {
		keeper.cues = append(keeper.cues, cue{sound: kind})
	}
}

func (keeper *TimeKeeper) cueHapticLocked(strength model.HapticStrength) {
	if keeper.settingsLocked().VibrationEnabled {
		keeper.cues = append(keeper.cues, cue{haptic: strength})
	}
}

func (keeper *TimeKeeper) takeCuesLocked() []cue {
	cues := keeper.cues
	keeper.cues = nil
	return cues
}

// dispatch delivers cues in order on a separate goroutine so feedback never
// delays a state change. Failures are logged and dropped.
func (keeper *TimeKeeper) dispatch(cues []cue) {
	if len(cues) == 0 || keeper.feedback == nil {
		return
	}
	feedback := keeper.feedback
	go func() {
		for _, item := range cues {
			if item.haptic != "" {
				if err := feedback.TriggerHaptic(item.haptic); err != nil {
					log.Printf("feedback haptic %s: %v", item.haptic, err)
				}
			}
			if item.sound != "" {
				if err := feedback.PlaySound(item.sound); err != nil {
					log.Printf("feedback sound %s: %v", item.sound, err)
				}
			}
		}
	}()
}
