package scheduler

import (
	"context"
	"time"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// Event describes an alarm going off.
type Event struct {
	// Target is the time of day the alarm was set for.
	Target alarm.TimeOfDay
	// At is the clock reading of the tick that matched.
	At time.Time
}

// Handler receives alarm events. It runs on the tick goroutine and may call
// back into the scheduler.
type Handler func(ctx context.Context, event Event)

// dispatchingKey marks the context handed to handlers; its value is the
// delivering scheduler.
type dispatchingKey struct{}

// subscription pairs an observer with the identity used to remove it.
type subscription struct {
	id      uint64
	handler Handler
}

// Subscribe registers h to be called when the alarm fires. Handlers run
// synchronously in registration order. The returned function removes the
// registration and may be called more than once.
func (s *Scheduler) Subscribe(h Handler) (unsubscribe func()) {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()

	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, handler: h})

	return func() {
		s.observersMu.Lock()
		defer s.observersMu.Unlock()

		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// notify delivers event to a snapshot of the current observers.
func (s *Scheduler) notify(ctx context.Context, event Event) {
	s.observersMu.Lock()
	observers := make([]subscription, len(s.observers))
	copy(observers, s.observers)
	s.observersMu.Unlock()

	ctx = context.WithValue(ctx, dispatchingKey{}, s)

	for _, sub := range observers {
		s.deliver(ctx, sub, event)
	}
}

// deliver isolates observers from each other's panics.
func (s *Scheduler) deliver(ctx context.Context, sub subscription, event Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorKV(ctx, "Alarm observer panicked", "observer", sub.id, "panic", r)
		}
	}()

	sub.handler(ctx, event)
}

// dispatching reports whether ctx belongs to a handler called by s.
func (s *Scheduler) dispatching(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	owner, ok := ctx.Value(dispatchingKey{}).(*Scheduler)

	return ok && owner == s
}
