package simulation

import (
	"github.com/nickng/philo/clock"
	"github.com/nickng/philo/table"
)

// diner is one philosopher: it thinks, picks up its two forks, eats, puts the
// forks down and sleeps, until the run ends or it has eaten enough.
type diner struct {
	id         int
	seat       table.Seat
	meals      *Meals
	neighbours []*diner // Diners sharing a fork with this one.
	sim        *Simulation
}

// done is the stop predicate checked before every transition.
func (d *diner) done() bool {
	return d.sim.state.Ended() || d.sim.cfg.Sated(d.meals.Eaten())
}

func (d *diner) record(e Event) {
	d.sim.events.Record(d.id, d.sim.clock.Now(), e)
}

func (d *diner) run() {
	if d.seat.Solo() {
		d.alone()
		return
	}
	d.stagger()
	for {
		if d.done() {
			return
		}
		d.meals.want()
		d.record(Thinking)
		d.yield()
		if d.done() {
			return
		}
		d.sim.ring.Pick(d.seat, func() { d.record(TookFork) })
		if d.sim.state.Ended() {
			d.sim.ring.Drop(d.seat)
			return
		}
		d.eat()
		d.sim.ring.Drop(d.seat)
		if d.done() {
			return
		}
		d.record(Sleeping)
		clock.SleepFor(d.sim.clock, d.sim.cfg.TimeToSleep, d.sim.state.Ended)
	}
}

// yield waits while a hungry neighbour outranks this diner, so that a
// diner back from sleeping does not take a fork from one that has waited
// longer. The top ranked hungry diner never waits, so someone always
// progresses.
func (d *diner) yield() {
	for !d.sim.state.Ended() && d.outranked() {
		d.sim.clock.Sleep(d.sim.opts.WatchInterval)
	}
}

func (d *diner) outranked() bool {
	self := d.meals.claim(d.id)
	for _, n := range d.neighbours {
		if c := n.meals.claim(n.id); c.Hungry && c.Outranks(self) {
			return true
		}
	}
	return false
}

// eat starts a meal and holds the forks for time_to_eat. The meal start is
// recorded before the log line so the watchdog never sees a stale last meal.
func (d *diner) eat() {
	now := d.sim.clock.Now()
	d.meals.begin(now)
	d.sim.events.Record(d.id, now, Eating)
	clock.SleepUntil(d.sim.clock, now.Add(d.sim.cfg.TimeToEat), d.sim.state.Ended)
}

// stagger delays even diners so neighbours do not all reach for their first
// fork at the same instant.
func (d *diner) stagger() {
	if d.id%2 != 0 {
		return
	}
	delay := d.sim.opts.Stagger
	if d.sim.cfg.Diners == 2 {
		delay = d.sim.cfg.TimeToEat / 2
	}
	clock.SleepFor(d.sim.clock, delay, d.sim.state.Ended)
}

// alone is the single diner at the table: there is one fork, so it takes it
// and waits for the watchdog to declare it starved.
func (d *diner) alone() {
	d.sim.ring.Acquire(d.seat.Own, d.id)
	d.record(TookFork)
	for !d.sim.state.Ended() {
		d.sim.clock.Sleep(d.sim.opts.WatchInterval)
	}
	d.sim.ring.Release(d.seat.Own, d.id)
}
