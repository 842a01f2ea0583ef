package protocol

import (
	"io"

	"github.com/nickng/migo/v3"
	"github.com/nickng/migo/v3/migoutil"
)

// Names of the MiGo process definitions.
const (
	migoMain = "main.main"
	migoFork = "fork"
	migoOdd  = "diner_odd"  // Own fork first.
	migoEven = "diner_even" // Neighbour fork first.
	migoSolo = "diner_solo" // Alone, waits for a second fork forever.
)

// variable is a MiGo name.
type variable string

func (v variable) Name() string   { return string(v) }
func (v variable) String() string { return string(v) }

func param(caller, callee string) *migo.Parameter {
	return &migo.Parameter{Caller: variable(caller), Callee: variable(callee)}
}

// Migo writes the protocol as a MiGo program.
func (p *Protocol) Migo() *migo.Program {
	prog := migo.NewProgram()

	main := migo.NewFunction(migoMain)
	for i := 0; i < p.Forks; i++ {
		ch := ForkName(i)
		main.AddStmts(&migo.NewChanStatement{Name: variable(ch), Chan: ch, Size: 0})
	}
	for i := 0; i < p.Forks; i++ {
		spawn := &migo.SpawnStatement{Name: migoFork, Params: []*migo.Parameter{}}
		spawn.AddParams(param(ForkName(i), "f"))
		main.AddStmts(spawn)
	}
	for _, d := range p.Diners {
		spawn := &migo.SpawnStatement{Name: dinerDef(p, d), Params: []*migo.Parameter{}}
		spawn.AddParams(param(ForkName(d.Own), "own"))
		if !p.Solo() {
			spawn.AddParams(param(ForkName(d.Neighbour), "nb"))
		}
		main.AddStmts(spawn)
	}
	main.HasComm = true
	prog.AddFunction(main)

	// fork(f): recv f (taken); recv f (put down); call fork(f)
	fork := migo.NewFunction(migoFork)
	fork.AddParams(param("f", "f"))
	fork.AddStmts(
		&migo.RecvStatement{Chan: "f"},
		&migo.RecvStatement{Chan: "f"},
		&migo.CallStatement{Name: migoFork, Params: []*migo.Parameter{param("f", "f")}},
	)
	prog.AddFunction(fork)

	if p.Solo() {
		solo := migo.NewFunction(migoSolo)
		solo.AddParams(param("own", "own"))
		solo.AddStmts(&migo.SendStatement{Chan: "own"}, &migo.RecvStatement{Chan: "own"})
		prog.AddFunction(solo)
		return prog
	}
	prog.AddFunction(dinerFunc(migoOdd, "own", "nb"))
	if p.Forks > 1 {
		prog.AddFunction(dinerFunc(migoEven, "nb", "own"))
	}
	return prog
}

// dinerFunc defines a diner taking forks first then second, and putting
// down own then nb.
func dinerFunc(name, first, second string) *migo.Function {
	fn := migo.NewFunction(name)
	fn.AddParams(param("own", "own"), param("nb", "nb"))
	fn.AddStmts(
		&migo.SendStatement{Chan: first},
		&migo.SendStatement{Chan: second},
		&migo.SendStatement{Chan: "own"},
		&migo.SendStatement{Chan: "nb"},
		&migo.CallStatement{Name: name, Params: []*migo.Parameter{param("own", "own"), param("nb", "nb")}},
	)
	return fn
}

func dinerDef(p *Protocol, d Diner) string {
	switch {
	case p.Solo():
		return migoSolo
	case d.First == d.Own:
		return migoOdd
	default:
		return migoEven
	}
}

// MigoWriter wraps a MiGo program for output.
type MigoWriter struct {
	Prog *migo.Program
}

// NewMigo creates the simplified MiGo program of the protocol.
func NewMigo(p *Protocol) *MigoWriter {
	prog := p.Migo()
	migoutil.SimplifyProgram(prog)
	return &MigoWriter{Prog: prog}
}

// WriteTo implements io.WriterTo interface.
func (m *MigoWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.Prog.String())
	return int64(n), err
}
