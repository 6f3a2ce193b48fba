// Package shutdown implements the exit signal shared by the download and
// upload loops. Every blocking point in the loops selects on the signal so
// that a stop request is observed immediately rather than at the end of the
// current wait.
package shutdown

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Signal is a one-shot, process-wide stop request. Once stopped it never
// resets.
type Signal struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignal returns a Signal that hasn't been stopped.
func NewSignal() *Signal {
	ctx, cancel := context.WithCancel(context.Background())
	return &Signal{ctx: ctx, cancel: cancel}
}

// Stop requests shutdown and wakes every waiter. It's safe to call more than
// once and from multiple goroutines.
func (s *Signal) Stop() {
	s.cancel()
}

// Stopped returns whether Stop has been called.
func (s *Signal) Stopped() bool {
	return s.ctx.Err() != nil
}

// Done returns a channel that's closed when Stop is called.
func (s *Signal) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Context returns a context that's cancelled when Stop is called. It's used
// to abandon network calls that are in progress during shutdown.
func (s *Signal) Context() context.Context {
	return s.ctx
}

// Sleep waits for `d` according to `clock`. It returns false without waiting
// out the full duration if the signal is stopped first.
func (s *Signal) Sleep(clock clockwork.Clock, d time.Duration) bool {
	if s.Stopped() {
		return false
	}

	select {
	case <-clock.After(d):
		return !s.Stopped()
	case <-s.Done():
		return false
	}
}
