// Package timers provides the named one-shot timers attached to a session.
package timers

import (
	"sync"
	"time"
)

// Name identifies one of the four session timers.
type Name string

const (
	// Ready reminds participants to send the ready command.
	Ready Name = "ready"
	// Round asks participants to wrap up a long discussion.
	Round Name = "round"
	// Agreement resets a one-sided done/next command when the partner
	// does not agree in time.
	Agreement Name = "agreement"
	// Silence ends the session when one participant stops replying.
	Silence Name = "silence"
)

// Set holds the pending timers for one session. Starting a timer under a
// name that already has a pending timer replaces it; timers never stack.
type Set struct {
	mu      sync.Mutex
	pending map[Name]*time.Timer
}

// NewSet creates an empty timer set.
func NewSet() *Set {
	return &Set{pending: make(map[Name]*time.Timer)}
}

// Start schedules fn to run once after d, cancelling any pending timer of
// the same name first. fn runs on a timer goroutine; callers route it back
// into the room's event queue rather than touching session state directly.
func (s *Set) Start(name Name, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[name]; ok {
		prev.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		// A replacement may already be registered under this name.
		if s.pending[name] == t {
			delete(s.pending, name)
		}
		s.mu.Unlock()
		fn()
	})
	s.pending[name] = t
}

// Cancel stops the pending timer with the given name. Cancelling an absent
// or already fired timer is a no-op.
func (s *Set) Cancel(name Name) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.pending[name]; ok {
		t.Stop()
		delete(s.pending, name)
	}
}

// CancelAll stops every pending timer. Used on session teardown.
func (s *Set) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, t := range s.pending {
		t.Stop()
		delete(s.pending, name)
	}
}

// Pending reports whether a timer with the given name is scheduled.
func (s *Set) Pending(name Name) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[name]
	return ok
}
