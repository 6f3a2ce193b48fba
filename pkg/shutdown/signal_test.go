package shutdown

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestStopIsMonotonic(t *testing.T) {
	s := NewSignal()
	assert.False(t, s.Stopped())
	assert.NoError(t, s.Context().Err())

	s.Stop()
	s.Stop()
	assert.True(t, s.Stopped())
	assert.Error(t, s.Context().Err())

	select {
	case <-s.Done():
	default:
		t.Error("Done should be closed after Stop")
	}
}

func TestSleepElapses(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewSignal()

	result := make(chan bool)
	go func() {
		result <- s.Sleep(clock, 10*time.Second)
	}()

	clock.BlockUntil(1)
	clock.Advance(10 * time.Second)
	assert.True(t, <-result)
}

func TestSleepWakesOnStop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewSignal()

	result := make(chan bool)
	go func() {
		result <- s.Sleep(clock, 10*time.Second)
	}()

	// The fake clock is never advanced, so the only way for Sleep to return
	// is by observing the stop.
	clock.BlockUntil(1)
	s.Stop()

	select {
	case ok := <-result:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Sleep didn't return after Stop")
	}
}

func TestSleepAfterStop(t *testing.T) {
	s := NewSignal()
	s.Stop()
	assert.False(t, s.Sleep(clockwork.NewFakeClock(), time.Hour))
}
