package protocol

import (
	"fmt"
	"io"

	"github.com/nickng/cfsm"
)

// CFSMs is the protocol as a system of communicating finite state machines,
// one machine per fork and one per diner.
type CFSMs struct {
	Sys    *cfsm.System
	Forks  []*cfsm.CFSM
	Diners []*cfsm.CFSM
}

// NewCFSMs creates the CFSM system of the protocol.
func NewCFSMs(p *Protocol) *CFSMs {
	sys := &CFSMs{
		Sys:    cfsm.NewSystem(),
		Forks:  make([]*cfsm.CFSM, p.Forks),
		Diners: make([]*cfsm.CFSM, len(p.Diners)),
	}
	for i := range sys.Forks {
		m := sys.Sys.NewMachine()
		m.Comment = ForkName(i)
		sys.Forks[i] = m
	}
	for i, d := range p.Diners {
		m := sys.Sys.NewMachine()
		m.Comment = DinerName(d.Diner)
		sys.Diners[i] = m
	}
	for i, m := range sys.Forks {
		sys.forkToMachine(m, p.users(i))
	}
	for i, d := range p.Diners {
		if p.Solo() {
			sys.soloToMachine(sys.Diners[i], d)
			continue
		}
		sys.dinerToMachine(sys.Diners[i], d)
	}
	return sys
}

// users returns the diners sharing fork i, in id order.
func (p *Protocol) users(fork int) []Diner {
	var ds []Diner
	for _, d := range p.Diners {
		if d.Own == fork || d.Neighbour == fork {
			ds = append(ds, d)
		}
	}
	return ds
}

// WriteTo implements io.WriterTo interface.
func (sys *CFSMs) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, sys.Sys.String())
	return int64(n), err
}

// PrintSummary writes the machine numbering of the system.
func (sys *CFSMs) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "Total of %d CFSMs (%d are forks)\n",
		len(sys.Forks)+len(sys.Diners), len(sys.Forks))
	for _, m := range sys.Forks {
		fmt.Fprintf(w, "\t%d\t= %s (fork)\n", m.ID, m.Comment)
	}
	for _, m := range sys.Diners {
		fmt.Fprintf(w, "\t%d\t= %s\n", m.ID, m.Comment)
	}
}

// forkToMachine serves each user in turn:
// q0 -- ?take --> q(d) -- ?put --> q0 for every diner d.
func (sys *CFSMs) forkToMachine(m *cfsm.CFSM, users []Diner) {
	q0 := m.NewState()
	for _, d := range users {
		peer := sys.Diners[d.Diner-1]
		qHeld := m.NewState()
		take := cfsm.NewRecv(peer, Take)
		take.SetNext(qHeld)
		q0.AddTransition(take)
		put := cfsm.NewRecv(peer, Put)
		put.SetNext(q0)
		qHeld.AddTransition(put)
	}
	m.Start = q0
}

// dinerToMachine is the eating cycle:
// q0 -- !take first --> q1 -- !take second --> q2 -- !put own --> q3 -- !put nb --> q0.
func (sys *CFSMs) dinerToMachine(m *cfsm.CFSM, d Diner) {
	steps := []struct {
		fork int
		msg  string
	}{
		{d.First, Take},
		{d.Second, Take},
		{d.Own, Put},
		{d.Neighbour, Put},
	}
	q0 := m.NewState()
	q := q0
	for i, step := range steps {
		next := q0
		if i < len(steps)-1 {
			next = m.NewState()
		}
		tr := cfsm.NewSend(sys.Forks[step.fork], step.msg)
		tr.SetNext(next)
		q.AddTransition(tr)
		q = next
	}
	m.Start = q0
}

// soloToMachine takes the only fork and never gets a second one.
func (sys *CFSMs) soloToMachine(m *cfsm.CFSM, d Diner) {
	q0 := m.NewState()
	qStuck := m.NewState()
	tr := cfsm.NewSend(sys.Forks[d.Own], Take)
	tr.SetNext(qStuck)
	q0.AddTransition(tr)
	m.Start = q0
}
