package fairness

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/nickng/philo/config"
	"github.com/nickng/philo/simulation"
	"github.com/stretchr/testify/assert"
)

func audit(t *testing.T, r *simulation.Report, cfg *config.Config) (Result, string) {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	res := Check(r, cfg, log.New(&buf, "", 0))
	return res, buf.String()
}

func fourDiners() *config.Config {
	return &config.Config{
		Diners:      4,
		TimeToDie:   400 * time.Millisecond,
		TimeToEat:   100 * time.Millisecond,
		TimeToSleep: 100 * time.Millisecond,
	}
}

func TestCheckFair(t *testing.T) {
	r := &simulation.Report{
		Outcome: simulation.Interrupted,
		Meals:   []int{5, 5, 4, 5},
		Hunger:  []time.Duration{205 * time.Millisecond, 210 * time.Millisecond, 300 * time.Millisecond, 200 * time.Millisecond},
	}
	res, out := audit(t, r, fourDiners())
	assert.True(t, res.Fair(), out)
	assert.Equal(t, 6, res.Total)
	assert.Contains(t, out, "✓ nobody starved (interrupted)")
	assert.Contains(t, out, "✓ meals are even (4-5)")
	assert.Contains(t, out, "Result: 0/6 checks failed")
}

func TestCheckUneven(t *testing.T) {
	r := &simulation.Report{
		Outcome: simulation.Interrupted,
		Meals:   []int{7, 5, 7, 5},
		Hunger:  make([]time.Duration, 4),
	}
	res, out := audit(t, r, fourDiners())
	assert.Equal(t, 1, res.Unsafe)
	assert.Contains(t, out, "❌ meals range from 5 to 7")
	assert.Contains(t, out, "Result: 1/6 checks failed")
	assert.NotContains(t, out, "unfair")
}

func TestCheckCloseCall(t *testing.T) {
	r := &simulation.Report{
		Outcome: simulation.Completed,
		Meals:   []int{3, 3, 3, 3},
		Hunger:  []time.Duration{0, 390 * time.Millisecond, 0, 0},
	}
	res, out := audit(t, r, fourDiners())
	assert.Equal(t, 1, res.Unsafe)
	assert.Contains(t, out, "Warning: diner 2 went 390ms between meals")
	assert.Contains(t, out, "note: longest gap allowed 360ms")
}

func TestCheckStarved(t *testing.T) {
	r := &simulation.Report{
		Outcome: simulation.Starved,
		Diner:   3,
		At:      401 * time.Millisecond,
		Meals:   []int{1, 1, 0, 1},
		Hunger:  make([]time.Duration, 4),
	}
	res, out := audit(t, r, fourDiners())
	assert.False(t, res.Fair())
	assert.Equal(t, 1, res.Unsafe)
	assert.Equal(t, 5, res.Total)
	assert.Contains(t, out, "❌ diner 3 starved at 401ms")
	assert.False(t, strings.Contains(out, "Warning"), out)
}

func TestCheckSolo(t *testing.T) {
	r := &simulation.Report{
		Outcome: simulation.Starved,
		Diner:   1,
		At:      800 * time.Millisecond,
		Meals:   []int{0},
		Hunger:  []time.Duration{0},
	}
	cfg := fourDiners()
	cfg.Diners = 1
	res, out := audit(t, r, cfg)
	assert.Equal(t, Result{Total: 1, Unsafe: 1}, res)
	assert.Contains(t, out, "Result: 1/1 checks failed")
}
