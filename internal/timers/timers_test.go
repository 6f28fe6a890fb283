package timers

import (
	"testing"
	"time"
)

func TestStartFires(t *testing.T) {
	s := NewSet()
	fired := make(chan struct{})

	s.Start(Ready, 10*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("Expected timer to fire, it did not")
	}

	// The fired timer unregisters itself.
	deadline := time.Now().Add(time.Second)
	for s.Pending(Ready) {
		if time.Now().After(deadline) {
			t.Fatal("Expected fired timer to no longer be pending")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStartReplacesPending(t *testing.T) {
	s := NewSet()
	fired := make(chan int, 2)

	s.Start(Round, 30*time.Millisecond, func() { fired <- 1 })
	s.Start(Round, 30*time.Millisecond, func() { fired <- 2 })

	select {
	case got := <-fired:
		if got != 2 {
			t.Errorf("Expected replacement timer to fire, got callback %d", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected replacement timer to fire")
	}

	select {
	case got := <-fired:
		t.Errorf("Expected replaced timer not to fire, got callback %d", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCancelStopsFiring(t *testing.T) {
	s := NewSet()
	fired := make(chan struct{}, 1)

	s.Start(Silence, 30*time.Millisecond, func() { fired <- struct{}{} })
	s.Cancel(Silence)

	if s.Pending(Silence) {
		t.Error("Expected cancelled timer to no longer be pending")
	}
	select {
	case <-fired:
		t.Error("Expected cancelled timer not to fire")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCancelAbsent(t *testing.T) {
	s := NewSet()
	// Cancelling a timer that was never started must be a no-op.
	s.Cancel(Agreement)
}

func TestCancelAll(t *testing.T) {
	s := NewSet()
	fired := make(chan Name, 4)

	for _, name := range []Name{Ready, Round, Agreement, Silence} {
		name := name
		s.Start(name, 30*time.Millisecond, func() { fired <- name })
	}
	s.CancelAll()

	for _, name := range []Name{Ready, Round, Agreement, Silence} {
		if s.Pending(name) {
			t.Errorf("Expected %s to no longer be pending after CancelAll", name)
		}
	}
	select {
	case name := <-fired:
		t.Errorf("Expected no timer to fire after CancelAll, %s fired", name)
	case <-time.After(100 * time.Millisecond):
	}
}
