// Package simulation runs the dining philosophers: one goroutine per diner
// contending for the forks of a table.Ring, and one watchdog that ends the
// run the instant a diner starves or every diner has eaten enough.
//
// Stopping is cooperative. Diners check the shared State before every
// transition and between the slices of every eat and sleep hold; once the
// State has ended, the EventLog drops further diner events.
package simulation // "github.com/nickng/philo/simulation"

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nickng/philo/clock"
	"github.com/nickng/philo/config"
	"github.com/nickng/philo/table"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultWatchInterval = 500 * time.Microsecond
	DefaultStagger       = time.Millisecond
)

// Options are the tunables of a run. The zero value is usable.
type Options struct {
	Clock         clock.Clock   // Defaults to clock.Real.
	Probe         table.Probe   // Observes fork ownership (may be nil).
	Logger        *log.Logger   // Diagnostics (defaults to discard).
	Colour        bool          // Colour event messages.
	WatchInterval time.Duration // Watchdog polling interval.
	Stagger       time.Duration // Start delay of even diners.
}

// Simulation is a single run: it owns the forks, the shared state, the meal
// records, and the goroutines operating on them.
type Simulation struct {
	ID     uuid.UUID
	Logger *log.Logger

	cfg    *config.Config
	opts   Options
	clock  clock.Clock
	ring   *table.Ring
	state  *State
	events *EventLog
	diners []*diner
	start  time.Time

	once sync.Once
}

// New builds a simulation writing events to out. Nothing runs until Run.
// Construction either succeeds completely or returns an error without
// having started anything.
func New(cfg *config.Config, out io.Writer, opts Options) (*Simulation, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config: %w", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if out == nil {
		return nil, ErrNoOutput
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(ioutil.Discard, "", 0)
	}
	if opts.WatchInterval <= 0 {
		opts.WatchInterval = DefaultWatchInterval
	}
	if opts.Stagger <= 0 {
		opts.Stagger = DefaultStagger
	}
	ring, err := table.New(cfg.Diners, opts.Probe)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	sim := &Simulation{
		ID:     uuid.New(),
		Logger: opts.Logger,
		cfg:    cfg,
		opts:   opts,
		clock:  opts.Clock,
		ring:   ring,
		state:  new(State),
	}
	sim.events = NewEventLog(out, sim.state, time.Time{}, opts.Colour)
	sim.diners = make([]*diner, cfg.Diners)
	for i := range sim.diners {
		sim.diners[i] = &diner{id: i + 1, seat: ring.Seat(i + 1), sim: sim}
	}
	for i, d := range sim.diners {
		if d.seat.Solo() {
			continue
		}
		left := sim.diners[(i+cfg.Diners-1)%cfg.Diners]
		right := sim.diners[(i+1)%cfg.Diners]
		d.neighbours = append(d.neighbours, left)
		if right != left {
			d.neighbours = append(d.neighbours, right)
		}
	}
	return sim, nil
}

// Run starts the diners and the watchdog, and returns once all of them have
// stopped. Cancelling ctx ends the run without a death line. A Simulation
// runs at most once.
func (sim *Simulation) Run(ctx context.Context) (*Report, error) {
	err := ErrAlreadyRun
	var report *Report
	sim.once.Do(func() {
		report, err = sim.run(ctx)
	})
	return report, err
}

// begin stamps the start of the run: every diner has just eaten.
func (sim *Simulation) begin() {
	sim.start = sim.clock.Now()
	sim.events.start = sim.start
	for _, d := range sim.diners {
		d.meals = newMeals(sim.start)
	}
}

func (sim *Simulation) run(ctx context.Context) (*Report, error) {
	sim.begin()
	sim.Logger.Printf("run %s: %s", sim.ID, sim.cfg)

	stop := make(chan struct{})
	interrupted := make(chan struct{})
	go func() {
		defer close(interrupted)
		select {
		case <-ctx.Done():
			sim.state.End(Verdict{Outcome: Interrupted, At: sim.clock.Now()})
		case <-stop:
		}
	}()

	var g errgroup.Group
	for _, d := range sim.diners {
		d := d
		g.Go(func() error { d.run(); return nil })
	}
	w := &watchdog{sim: sim}
	g.Go(func() error { w.run(); return nil })
	g.Wait()
	close(stop)
	<-interrupted

	report := sim.report()
	sim.Logger.Print(report)
	return report, sim.events.Err()
}

func (sim *Simulation) report() *Report {
	v := sim.state.Verdict()
	r := &Report{
		ID:      sim.ID,
		Outcome: v.Outcome,
		Diner:   v.Diner,
		Meals:   make([]int, len(sim.diners)),
		Hunger:  make([]time.Duration, len(sim.diners)),
		Elapsed: sim.clock.Now().Sub(sim.start),
	}
	if !v.At.IsZero() {
		r.At = v.At.Sub(sim.start)
	}
	for i, d := range sim.diners {
		_, r.Meals[i], r.Hunger[i] = d.meals.Snapshot()
	}
	return r
}

// Config returns the configuration of the run.
func (sim *Simulation) Config() *config.Config { return sim.cfg }
