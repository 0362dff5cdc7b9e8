package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// DefaultInterval is the nominal tick period.
const DefaultInterval = time.Second

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval sets the tick period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// Scheduler watches the clock for a single target time of day.
//
// The comparison is an exact match on whole seconds. A tick that does not
// land on the target second (for example after the process was suspended)
// skips the alarm; there is no catch-up window.
type Scheduler struct {
	interval time.Duration
	clock    Clock

	// mu guards the fields below.
	mu        sync.Mutex
	target    alarm.TimeOfDay
	hasTarget bool
	state     alarm.State
	// active is the running tick source; non-nil exactly while state is armed.
	active *run

	// dispatchMu serialises tick bodies, including observer delivery, so Stop can wait them out.
	dispatchMu sync.Mutex

	observersMu sync.Mutex
	observers   []subscription
	nextID      uint64
}

// run is one started tick source.
type run struct {
	// ctx is cancelled when ticking halts; it carries the caller's logger.
	ctx    context.Context
	cancel context.CancelFunc
	// base keeps the logger values of ctx without its cancellation.
	base context.Context
	done chan struct{}
}

// New creates an idle scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		interval: DefaultInterval,
		clock:    SystemClock,
		state:    alarm.StateIdle,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the current lifecycle state.
func (s *Scheduler) State() alarm.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Target returns the stored target and whether one was ever set.
func (s *Scheduler) Target() (alarm.TimeOfDay, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.target, s.hasTarget
}

// SetAlarm stores a new target and clears the fired flag.
// An armed scheduler keeps ticking against the new target and a fired one is
// re-armed and resumes ticking. An idle scheduler stays idle until Start, so
// ticking runs exactly while the state is armed.
func (s *Scheduler) SetAlarm(ctx context.Context, target alarm.TimeOfDay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.state
	s.target = target
	s.hasTarget = true

	if previous == alarm.StateFired {
		s.state = alarm.StateIdle
		s.startLocked(ctx)
	}

	logger.InfoKV(ctx, "Alarm set", "target", target.String(), "previous_state", previous.String(), "state", s.state.String())
}

// Start begins periodic ticking. It is a no-op while ticking, before a
// target is set and after the alarm fired.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.active != nil:
		logger.Debugf(ctx, "Alarm clock already running")
	case !s.hasTarget:
		logger.Debugf(ctx, "Alarm clock has no target, not starting")
	case s.state == alarm.StateFired:
		logger.Debugf(ctx, "Alarm already fired, set a new time to re-arm")
	default:
		s.startLocked(ctx)
	}
}

// Stop halts ticking. It returns once the tick goroutine has exited and no
// notification is being delivered. Safe to call at any time.
//
// Called from a Handler, Stop halts a run started by that handler but does
// not wait: the caller is the tick goroutine itself.
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()

	r := s.active
	if r != nil {
		s.haltLocked()

		if s.state == alarm.StateArmed {
			s.state = alarm.StateIdle
		}
	}

	state := s.state
	s.mu.Unlock()

	if r != nil {
		logger.InfoKV(ctx, "Alarm clock stopped", "state", state.String())
	}

	if s.dispatching(ctx) {
		return
	}

	if r != nil {
		<-r.done
	}

	// Wait out a tick that is still delivering.
	s.dispatchMu.Lock()
	s.dispatchMu.Unlock() //nolint:staticcheck // Empty critical section is a barrier.
}

// OnTick checks now against the target on behalf of the running tick source.
// It does nothing unless the scheduler is armed.
func (s *Scheduler) OnTick(_ context.Context, now time.Time) {
	s.mu.Lock()
	r := s.active
	s.mu.Unlock()

	if r == nil {
		return
	}

	s.tick(r, now)
}

// startLocked launches a tick goroutine. The caller holds mu.
func (s *Scheduler) startLocked(ctx context.Context) {
	base := context.WithoutCancel(ctx)
	runCtx, cancel := context.WithCancel(base)

	r := &run{
		ctx:    runCtx,
		cancel: cancel,
		base:   base,
		done:   make(chan struct{}),
	}

	s.active = r
	s.state = alarm.StateArmed

	logger.InfoKV(ctx, "Alarm clock started. Checking time...", "target", s.target.String(), "interval", s.interval.String())

	go s.loop(r, s.clock.NewTicker(s.interval))
}

// haltLocked cancels the running tick source without waiting for it. The caller holds mu.
func (s *Scheduler) haltLocked() {
	s.active.cancel()
	s.active = nil
}

// loop checks once immediately and then on every tick until r is cancelled.
func (s *Scheduler) loop(r *run, ticker Ticker) {
	defer close(r.done)
	defer ticker.Stop()

	s.tick(r, s.clock.Now())

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C():
			s.tick(r, s.clock.Now())
		}
	}
}

// tick is the body of one time check for run r.
func (s *Scheduler) tick(r *run, now time.Time) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()

	// Cancellation is checked before anything else so a concurrent Stop wins.
	if r.ctx.Err() != nil || s.active != r || s.state != alarm.StateArmed {
		s.mu.Unlock()
		return
	}

	target := s.target
	if !target.Matches(now) {
		s.mu.Unlock()
		logger.DebugKV(r.base, "Tick", "now", alarm.TimeOfDayFrom(now).String(), "target", target.String())

		return
	}

	s.state = alarm.StateFired
	s.haltLocked()
	s.mu.Unlock()

	logger.InfoKV(r.base, "Alarm fired", "target", target.String(), "at", now.Format(time.TimeOnly))

	s.notify(r.base, Event{
		Target: target,
		At:     now,
	})
}
