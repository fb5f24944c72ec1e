package timekeeper

import "time"

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers and reports the current time.
type Clock interface {
	Now() time.Time
	NewTicker(interval time.Duration) Ticker
}

// RealClock is a Clock backed by the time package.
type RealClock struct{}

// Now returns time.Now.
func (RealClock) Now() time.Time { return time.Now() }

// NewTicker wraps time.NewTicker.
func (RealClock) NewTicker(interval time.Duration) Ticker {
	return realTicker{ticker: time.NewTicker(interval)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (ticker realTicker) C() <-chan time.Time { return ticker.ticker.C }
func (ticker realTicker) Stop()               { ticker.ticker.Stop() }

// startTickerLocked replaces any live tick chain with a new one.
// The first tick arrives one full interval after the call.
func (keeper *TimeKeeper) startTickerLocked() {
	keeper.stopTickerLocked()
	keeper.generation++
	generation := keeper.generation
	stopCh := make(chan struct{})
	keeper.stopTick = stopCh

	ticker := keeper.options.Clock.NewTicker(keeper.options.TickInterval)
	go keeper.run(generation, ticker, stopCh)
}

// stopTickerLocked cancels the live tick chain. Ticks already in flight
// carry the old generation and are dropped.
func (keeper *TimeKeeper) stopTickerLocked() {
	if keeper.stopTick == nil {
		return
	}
	close(keeper.stopTick)
	keeper.stopTick = nil
	keeper.generation++
}

// syncTickerLocked keeps exactly one tick chain alive while the session runs.
func (keeper *TimeKeeper) syncTickerLocked() {
	if keeper.closed {
		keeper.stopTickerLocked()
		return
	}
	if keeper.state.IsRunning && keeper.state.TimeLeft > 0 {
		if keeper.stopTick == nil {
			keeper.startTickerLocked()
		}
		return
	}
	keeper.stopTickerLocked()
}

func (keeper *TimeKeeper) run(generation uint64, ticker Ticker, stopCh <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			if !keeper.tick(generation) {
				return
			}
		}
	}
}

// tick applies one tick from the chain identified by generation.
// It returns false when the chain is stale.
func (keeper *TimeKeeper) tick(generation uint64) bool {
	keeper.mu.Lock()
	if generation != keeper.generation {
		keeper.mu.Unlock()
		return false
	}
	keeper.tickLocked()
	cues := keeper.takeCuesLocked()
	keeper.mu.Unlock()

	keeper.dispatch(cues)
	return true
}

// Tick advances the running session by one second, exactly as the tick
// source does. It is a no-op while paused or at zero.
func (keeper *TimeKeeper) Tick() {
	keeper.mu.Lock()
	keeper.tickLocked()
	cues := keeper.takeCuesLocked()
	keeper.mu.Unlock()

	keeper.dispatch(cues)
}

func (keeper *TimeKeeper) tickLocked() {
	if !keeper.state.IsRunning || keeper.state.TimeLeft <= 0 {
		return
	}
	keeper.state.TimeLeft -= time.Second
	if keeper.state.TimeLeft < 0 {
		keeper.state.TimeLeft = 0
	}
	if keeper.state.TimeLeft == 0 {
		keeper.advanceLocked()
		return
	}
	keeper.emitLocked(keeper.eventLocked(EventProgress))
}
