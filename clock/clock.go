// Package clock provides the monotonic time source of the simulation and a
// cancellable precise wait.
package clock // "github.com/nickng/philo/clock"

import "time"

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Real is the wall clock of the process (time.Now carries a monotonic
// reading, so differences are immune to wall clock jumps).
type Real struct{}

func (Real) Now() time.Time        { return time.Now() }
func (Real) Sleep(d time.Duration) { time.Sleep(d) }

// Slice returns how long to sleep before re-checking, given how much time
// remains until the deadline. Slices shrink as the deadline nears.
func Slice(remaining time.Duration) time.Duration {
	switch {
	case remaining > 2*time.Millisecond:
		return time.Millisecond
	case remaining > 200*time.Microsecond:
		return remaining / 2
	default:
		return 50 * time.Microsecond
	}
}

// SleepUntil waits until deadline in bounded slices, calling cancelled
// between slices. It returns true if the deadline was reached and false if
// cancelled reported true first. A nil cancelled never cancels.
func SleepUntil(c Clock, deadline time.Time, cancelled func() bool) bool {
	for {
		if cancelled != nil && cancelled() {
			return false
		}
		remaining := deadline.Sub(c.Now())
		if remaining <= 0 {
			return true
		}
		s := Slice(remaining)
		if s > remaining {
			s = remaining
		}
		c.Sleep(s)
	}
}

// SleepFor is SleepUntil for a duration starting now.
func SleepFor(c Clock, d time.Duration, cancelled func() bool) bool {
	return SleepUntil(c, c.Now().Add(d), cancelled)
}

// Millis returns the whole milliseconds elapsed from start to t.
func Millis(start, t time.Time) int64 {
	return t.Sub(start).Milliseconds()
}
