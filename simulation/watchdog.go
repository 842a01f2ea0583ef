package simulation

// watchdog polls every diner's meal record and ends the run on the first
// starvation, or once every diner has eaten enough.
type watchdog struct {
	sim *Simulation
}

func (w *watchdog) run() {
	for !w.sim.state.Ended() {
		if w.scan() {
			return
		}
		w.sim.clock.Sleep(w.sim.opts.WatchInterval)
	}
}

// scan does one pass over the diners and returns true if the run is over.
//
// Starvation is checked first, in ascending diner order, so that among
// diners crossing the deadline in the same pass the lowest id is reported.
// A sated diner no longer eats and cannot starve.
func (w *watchdog) scan() bool {
	cfg := w.sim.cfg
	sated := 0
	for _, d := range w.sim.diners {
		last, eaten, _ := d.meals.Snapshot()
		if cfg.Sated(eaten) {
			sated++
			continue
		}
		now := w.sim.clock.Now()
		if now.Sub(last) > cfg.TimeToDie {
			w.sim.events.Announce(Verdict{Outcome: Starved, Diner: d.id}, w.sim.clock.Now)
			return true
		}
	}
	if cfg.Bounded() && sated == len(w.sim.diners) {
		w.sim.state.End(Verdict{Outcome: Completed, At: w.sim.clock.Now()})
		return true
	}
	return false
}
