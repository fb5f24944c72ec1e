package timekeeper

import (
	"sync"
	"testing"
	"time"

	"focustimer/internal/core/model"
)

type manualTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (ticker *manualTicker) C() <-chan time.Time { return ticker.ch }

func (ticker *manualTicker) Stop() {
	ticker.mu.Lock()
	ticker.stopped = true
	ticker.mu.Unlock()
}

func (ticker *manualTicker) isStopped() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.stopped
}

// fire delivers a tick without blocking when nobody is listening.
func (ticker *manualTicker) fire() {
	select {
	case ticker.ch <- time.Now():
	default:
	}
}

type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (clock *manualClock) Now() time.Time { return time.Unix(0, 0) }

func (clock *manualClock) NewTicker(time.Duration) Ticker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	ticker := &manualTicker{ch: make(chan time.Time, 1)}
	clock.tickers = append(clock.tickers, ticker)
	return ticker
}

func (clock *manualClock) count() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return len(clock.tickers)
}

func (clock *manualClock) last() *manualTicker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if len(clock.tickers) == 0 {
		return nil
	}
	return clock.tickers[len(clock.tickers)-1]
}

type recordingFeedback struct {
	mu      sync.Mutex
	sounds  []model.SoundKind
	haptics []model.HapticStrength
}

func (feedback *recordingFeedback) PlaySound(kind model.SoundKind) error {
	feedback.mu.Lock()
	defer feedback.mu.Unlock()
	feedback.sounds = append(feedback.sounds, kind)
	return nil
}

func (feedback *recordingFeedback) TriggerHaptic(strength model.HapticStrength) error {
	feedback.mu.Lock()
	defer feedback.mu.Unlock()
	feedback.haptics = append(feedback.haptics, strength)
	return nil
}

func (feedback *recordingFeedback) soundList() []model.SoundKind {
	feedback.mu.Lock()
	defer feedback.mu.Unlock()
	return append([]model.SoundKind(nil), feedback.sounds...)
}

func (feedback *recordingFeedback) hapticCount() int {
	feedback.mu.Lock()
	defer feedback.mu.Unlock()
	return len(feedback.haptics)
}

func testSettings() model.AppSettings {
	settings := model.DefaultSettings()
	settings.WorkDuration = 3 * time.Second
	settings.BreakDuration = 2 * time.Second
	settings.LongBreakDuration = 4 * time.Second
	settings.LongBreakInterval = 2
	return settings
}

func newTestKeeper(t *testing.T, settings model.AppSettings) (*TimeKeeper, *manualClock, *recordingFeedback) {
	t.Helper()
	clock := &manualClock{}
	feedback := &recordingFeedback{}
	keeper := New(SettingsFunc(func() model.AppSettings { return settings }), feedback, Config{Clock: clock})
	t.Cleanup(keeper.Stop)
	return keeper, clock, feedback
}

func ticks(keeper *TimeKeeper, count int) {
	for i := 0; i < count; i++ {
		keeper.Tick()
	}
}
