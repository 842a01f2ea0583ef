// Package table models the forks laid on a round table: a ring of N
// exclusive resources, one per seat, each shared by two neighbouring diners.
//
// Diners are identified by 1..N and forks by index 0..N-1. Diner id sits at
// seat id-1: it owns fork id-1 and borrows fork id mod N from its neighbour.
// Odd diners pick up their own fork first and even diners their neighbour's
// first; the asymmetric order breaks the circular wait that a uniform order
// creates around the ring.
package table // "github.com/nickng/philo/table"

import (
	"errors"
	"fmt"
	"sync"
)

var ErrNoForks = errors.New("table: needs at least one fork")

// Probe observes fork ownership changes. It is called while the fork lock is
// held, so a probe sees take and drop events of one fork in order.
type Probe interface {
	Taken(fork, diner int)
	Dropped(fork, diner int)
}

// Ring is the set of forks.
type Ring struct {
	forks []sync.Mutex
	probe Probe
}

// New creates a ring of n forks. probe may be nil.
func New(n int, probe Probe) (*Ring, error) {
	if n < 1 {
		return nil, fmt.Errorf("%d forks: %w", n, ErrNoForks)
	}
	return &Ring{forks: make([]sync.Mutex, n), probe: probe}, nil
}

// Len returns the number of forks.
func (r *Ring) Len() int { return len(r.forks) }

// Acquire blocks until fork is held by diner.
func (r *Ring) Acquire(fork, diner int) {
	r.forks[fork].Lock()
	if r.probe != nil {
		r.probe.Taken(fork, diner)
	}
}

// Release gives fork back.
func (r *Ring) Release(fork, diner int) {
	if r.probe != nil {
		r.probe.Dropped(fork, diner)
	}
	r.forks[fork].Unlock()
}

// Seat is the pair of forks within reach of a diner.
type Seat struct {
	Diner     int
	Own       int // Fork at the diner's own index.
	Neighbour int // Fork shared with the next diner.
}

// SeatOf returns the seat of diner id (1-based) at a table of n.
func SeatOf(n, id int) Seat {
	return Seat{Diner: id, Own: id - 1, Neighbour: id % n}
}

// Solo returns true if both forks of the seat are the same fork, i.e. the
// diner is alone at the table and can never hold two forks.
func (s Seat) Solo() bool { return s.Own == s.Neighbour }

// Order returns the forks of the seat in acquisition order.
func (s Seat) Order() (first, second int) {
	if s.Diner%2 == 0 {
		return s.Neighbour, s.Own
	}
	return s.Own, s.Neighbour
}

// Seat returns the seat of diner id at this ring.
func (r *Ring) Seat(id int) Seat { return SeatOf(len(r.forks), id) }

// Pick acquires both forks of seat in acquisition order, calling taken after
// each acquisition.
func (r *Ring) Pick(s Seat, taken func()) {
	first, second := s.Order()
	r.Acquire(first, s.Diner)
	if taken != nil {
		taken()
	}
	r.Acquire(second, s.Diner)
	if taken != nil {
		taken()
	}
}

// Drop releases both forks of seat, own fork first.
func (r *Ring) Drop(s Seat) {
	r.Release(s.Own, s.Diner)
	r.Release(s.Neighbour, s.Diner)
}
