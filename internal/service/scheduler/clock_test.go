package scheduler

import (
	"sync"
	"sync/atomic"
	"testing/synctest"
	"time"
)

// manualClock is a Clock whose ticks are delivered by the test.
type manualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// manualTicker never ticks on its own.
type manualTicker struct {
	c       chan time.Time
	stopped atomic.Bool
}

func newManualClock(now time.Time) *manualClock {
	return &manualClock{now: now}
}

// Now returns the time last set by the test.
func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Set moves the clock without ticking.
func (c *manualClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
}

//nolint:ireturn // Implements Clock.
func (c *manualClock) NewTicker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &manualTicker{c: make(chan time.Time)}
	c.tickers = append(c.tickers, t)

	return t
}

// Tick moves the clock to now, hands a tick to the most recent ticker and
// waits until it is processed. Must be called inside a synctest bubble.
func (c *manualClock) Tick(now time.Time) {
	synctest.Wait()
	c.Set(now)

	c.mu.Lock()
	t := c.tickers[len(c.tickers)-1]
	c.mu.Unlock()

	t.c <- now

	synctest.Wait()
}

// Tickers returns how many tickers were created.
func (c *manualClock) Tickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.tickers)
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() { t.stopped.Store(true) }

// countingClock counts clock reads, one per executed tick.
type countingClock struct {
	Clock

	reads atomic.Int64
}

func (c *countingClock) Now() time.Time {
	c.reads.Add(1)

	return c.Clock.Now()
}
