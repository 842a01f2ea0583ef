package simulation

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/nickng/philo/clock"
)

// Event is something a diner does.
type Event int

const (
	Thinking Event = iota
	TookFork
	Eating
	Sleeping
	Died
)

var eventText = [...]string{
	Thinking: "is thinking",
	TookFork: "has taken a fork",
	Eating:   "is eating",
	Sleeping: "is sleeping",
	Died:     "died",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventText) {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventText[e]
}

var eventColour = [...]func(a ...interface{}) string{
	Thinking: color.New(color.FgBlue).SprintFunc(),
	TookFork: color.New(color.FgYellow).SprintFunc(),
	Eating:   color.New(color.FgGreen, color.Bold).SprintFunc(),
	Sleeping: color.New(color.FgCyan).SprintFunc(),
	Died:     color.New(color.FgRed, color.Bold).SprintFunc(),
}

// EventLog serialises the events of a run to one writer. Lines are
//
//	<elapsed_ms> <diner> <event>
//
// where elapsed_ms is measured from start to the instant the caller sampled
// the event, not to the instant the line gets written.
type EventLog struct {
	state  *State
	start  time.Time
	colour bool

	mu  sync.Mutex // Print lock; always taken inside state.mu.
	w   io.Writer
	err error
}

// NewEventLog creates an event log writing to w, muted once state ends.
func NewEventLog(w io.Writer, state *State, start time.Time, colour bool) *EventLog {
	return &EventLog{state: state, start: start, colour: colour, w: w}
}

// Record writes an event unless the run has ended. It returns false if the
// event was suppressed.
func (l *EventLog) Record(diner int, at time.Time, e Event) bool {
	return l.state.whileRunning(func() { l.write(diner, at, e) })
}

// Announce ends the run with a starvation verdict and writes the death as
// the last line. Only the caller that ends the run gets to write; everyone
// else gets false. The death is stamped with now inside the critical
// section, so it is never earlier than a line written before it.
func (l *EventLog) Announce(v Verdict, now func() time.Time) bool {
	return l.state.endWith(v, now, func(v Verdict) { l.write(v.Diner, v.At, Died) })
}

// Err returns the first write error.
func (l *EventLog) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *EventLog) write(diner int, at time.Time, e Event) {
	msg := e.String()
	if l.colour && int(e) < len(eventColour) {
		msg = eventColour[e](msg)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return
	}
	if _, err := fmt.Fprintf(l.w, "%d %d %s\n", clock.Millis(l.start, at), diner, msg); err != nil {
		l.err = err
	}
}
