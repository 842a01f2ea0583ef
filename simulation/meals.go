package simulation

import (
	"sync"
	"time"
)

// Meals is the meal record of one diner: when it last started eating and how
// many meals it has started. Only the diner writes it; the watchdog and the
// neighbours read.
type Meals struct {
	mu     sync.Mutex
	last   time.Time
	eaten  int
	hunger time.Duration // Longest gap between two meal starts (or start and first meal).
	hungry bool          // Waiting for forks.
}

func newMeals(start time.Time) *Meals {
	return &Meals{last: start}
}

// begin marks the start of a meal at t and returns the number of meals.
func (m *Meals) begin(t time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.Before(m.last) {
		t = m.last
	}
	if gap := t.Sub(m.last); gap > m.hunger {
		m.hunger = gap
	}
	m.last = t
	m.eaten++
	m.hungry = false
	return m.eaten
}

// want marks the diner as waiting for its forks until the next begin.
func (m *Meals) want() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hungry = true
}

// Claim is the standing of a diner in a contest for a shared fork.
type Claim struct {
	Diner  int
	Last   time.Time
	Eaten  int
	Hungry bool
}

// Outranks returns true if c should get a shared fork before o: it last ate
// earlier, or as early but fewer times, or is the lower id.
func (c Claim) Outranks(o Claim) bool {
	switch {
	case !c.Last.Equal(o.Last):
		return c.Last.Before(o.Last)
	case c.Eaten != o.Eaten:
		return c.Eaten < o.Eaten
	}
	return c.Diner < o.Diner
}

func (m *Meals) claim(diner int) Claim {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Claim{Diner: diner, Last: m.last, Eaten: m.eaten, Hungry: m.hungry}
}

// Last returns the start of the last meal (or of the run).
func (m *Meals) Last() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Eaten returns the number of meals started.
func (m *Meals) Eaten() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eaten
}

// Snapshot reads the whole record at once.
func (m *Meals) Snapshot() (last time.Time, eaten int, hunger time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.eaten, m.hunger
}
