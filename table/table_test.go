package table

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exclusion counts concurrent holders of each fork.
type exclusion struct {
	mu      sync.Mutex
	holders []int
	owner   []int
	maxSeen int
}

func newExclusion(n int) *exclusion {
	return &exclusion{holders: make([]int, n), owner: make([]int, n)}
}

func (e *exclusion) Taken(fork, diner int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.holders[fork]++
	e.owner[fork] = diner
	if e.holders[fork] > e.maxSeen {
		e.maxSeen = e.holders[fork]
	}
}

func (e *exclusion) Dropped(fork, diner int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.holders[fork]--
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(0, nil)
	assert.ErrorIs(t, err, ErrNoForks)
}

func TestSeats(t *testing.T) {
	r, err := New(5, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Len())

	s := r.Seat(1)
	assert.Equal(t, Seat{Diner: 1, Own: 0, Neighbour: 1}, s)
	first, second := s.Order()
	assert.Equal(t, []int{0, 1}, []int{first, second})

	s = r.Seat(2)
	first, second = s.Order()
	assert.Equal(t, []int{2, 1}, []int{first, second}, "even diners start with the neighbour fork")

	s = r.Seat(5)
	assert.Equal(t, Seat{Diner: 5, Own: 4, Neighbour: 0}, s)
	first, second = s.Order()
	assert.Equal(t, []int{4, 0}, []int{first, second})
	assert.False(t, s.Solo())
}

func TestSoloSeat(t *testing.T) {
	s := SeatOf(1, 1)
	assert.True(t, s.Solo())
	assert.Equal(t, 0, s.Own)
}

// Every fork is taken by exactly its two neighbours.
func TestRingSymmetry(t *testing.T) {
	for n := 2; n <= 9; n++ {
		users := make([]int, n)
		for id := 1; id <= n; id++ {
			s := SeatOf(n, id)
			users[s.Own]++
			users[s.Neighbour]++
		}
		for fork, u := range users {
			assert.Equal(t, 2, u, "n=%d fork=%d", n, fork)
		}
	}
}

// With parity ordering there is no cycle in the "holds first, waits for
// second" graph, for every table size.
func TestNoCircularWait(t *testing.T) {
	for n := 2; n <= 200; n++ {
		waitsFor := make(map[int]int) // fork held first -> fork waited for
		for id := 1; id <= n; id++ {
			first, second := SeatOf(n, id).Order()
			waitsFor[first] = second
		}
		// A cycle needs every fork to be some diner's first pick.
		assert.Less(t, len(waitsFor), n, "n=%d: every fork is a first pick", n)
	}
}

func TestPickDropExclusive(t *testing.T) {
	const n, rounds = 5, 200
	probe := newExclusion(n)
	r, err := New(n, probe)
	require.NoError(t, err)

	var meals atomic.Int64
	var wg sync.WaitGroup
	for id := 1; id <= n; id++ {
		wg.Add(1)
		go func(s Seat) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				taken := 0
				r.Pick(s, func() { taken++ })
				assert.Equal(t, 2, taken)
				meals.Add(1)
				r.Drop(s)
			}
		}(r.Seat(id))
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("diners deadlocked")
	}
	assert.Equal(t, int64(n*rounds), meals.Load())
	assert.Equal(t, 1, probe.maxSeen)
	for fork, h := range probe.holders {
		assert.Zero(t, h, "fork %d still held", fork)
	}
}
