package simulation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome is the way a run ends.
type Outcome int

const (
	Running     Outcome = iota // Not ended yet.
	Starved                    // A diner exceeded time_to_die.
	Completed                  // Every diner ate the required meals.
	Interrupted                // Stopped from outside.
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Starved:
		return "starved"
	case Completed:
		return "completed"
	case Interrupted:
		return "interrupted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Report is the summary of a finished run.
type Report struct {
	ID      uuid.UUID
	Outcome Outcome
	Diner   int             // Starved diner (Outcome == Starved).
	At      time.Duration   // Time of the verdict since start.
	Meals   []int           // Meals started, by diner id-1.
	Hunger  []time.Duration // Longest gap between meal starts, by diner id-1.
	Elapsed time.Duration   // Until every goroutine joined.
}

func (r *Report) String() string {
	switch r.Outcome {
	case Starved:
		return fmt.Sprintf("run %s: diner %d starved at %dms", r.ID, r.Diner, r.At.Milliseconds())
	default:
		return fmt.Sprintf("run %s: %s at %dms", r.ID, r.Outcome, r.At.Milliseconds())
	}
}

// TotalMeals is the sum of all meals started.
func (r *Report) TotalMeals() int {
	total := 0
	for _, m := range r.Meals {
		total += m
	}
	return total
}
