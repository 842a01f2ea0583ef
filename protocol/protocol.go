// Package protocol describes the fork protocol of a table of diners as a
// communicating system, for checking deadlock freedom and liveness with
// external tools.
//
// Forks are servers on a synchronous channel each: a fork is taken by
// sending to it and put down by sending again. Every diner takes its two
// forks in the order chosen by table.Seat, eats, puts its own fork down
// followed by its neighbour's, and starts over.
//
// The same protocol can be written as a MiGo program (Migo), a CFSM system
// (NewCFSMs), or a Graphviz graph of the table (NewGraphvizDot).
package protocol // "github.com/nickng/philo/protocol"

import (
	"errors"
	"fmt"

	"github.com/nickng/philo/config"
	"github.com/nickng/philo/table"
)

var ErrDiners = errors.New("protocol: diners out of range")

// Messages exchanged between a diner and a fork.
const (
	Take = "take"
	Put  = "put"
)

// Diner is a seat at the table and its acquisition order.
type Diner struct {
	table.Seat
	First  int
	Second int
}

// Protocol is the fork protocol of a table of n diners.
type Protocol struct {
	Forks  int
	Diners []Diner
}

// New creates the protocol of a table of n diners.
func New(n int) (*Protocol, error) {
	if n < 1 || n > config.MaxDiners {
		return nil, fmt.Errorf("%d diners: %w", n, ErrDiners)
	}
	p := &Protocol{Forks: n, Diners: make([]Diner, n)}
	for i := range p.Diners {
		s := table.SeatOf(n, i+1)
		first, second := s.Order()
		p.Diners[i] = Diner{Seat: s, First: first, Second: second}
	}
	return p, nil
}

// Solo returns true if the table has a single diner and a single fork.
func (p *Protocol) Solo() bool { return p.Forks == 1 }

// ForkName is the name of fork i in every output format.
func ForkName(i int) string { return fmt.Sprintf("fork%d", i) }

// DinerName is the name of diner id in every output format.
func DinerName(id int) string { return fmt.Sprintf("diner%d", id) }
