package simulation

import (
	"sync"
	"time"
)

// Verdict is how and when a run ended.
type Verdict struct {
	Outcome Outcome
	Diner   int       // Starved diner, if any.
	At      time.Time // Instant the end condition was sampled.
}

// State is the shared end-of-run flag. It only ever goes from running to
// ended, and the transition is decided under the lock so that exactly one
// caller wins it and gets to record the verdict.
type State struct {
	mu      sync.Mutex
	ended   bool
	verdict Verdict
}

// Ended returns true once the run is over.
func (s *State) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

// End ends the run with v. It returns true only for the call that ended it.
func (s *State) End(v Verdict) bool {
	return s.endWith(v, nil, nil)
}

// Verdict returns the verdict of the winning End (zero while running).
func (s *State) Verdict() Verdict {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verdict
}

// endWith ends the run and, if this call won, stamps v with now (when given)
// and runs fn before anyone else can observe the flag.
func (s *State) endWith(v Verdict, now func() time.Time, fn func(Verdict)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return false
	}
	s.ended = true
	if now != nil {
		v.At = now()
	}
	s.verdict = v
	if fn != nil {
		fn(v)
	}
	return true
}

// whileRunning runs fn under the lock unless the run has ended.
func (s *State) whileRunning(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return false
	}
	fn()
	return true
}
