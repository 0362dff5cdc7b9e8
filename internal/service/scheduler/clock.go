package scheduler

import "time"

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock provides the time source and tick factory of a Scheduler.
// Tests substitute it to drive ticks by hand.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the Clock backed by the time package.
//
//nolint:gochecknoglobals // Stateless default, safe to share.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

//nolint:ireturn // Callers only need the Ticker behaviour.
func (systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

type systemTicker struct {
	*time.Ticker
}

func (t systemTicker) C() <-chan time.Time {
	return t.Ticker.C
}
