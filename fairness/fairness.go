// Package fairness audits a finished run for unfair scheduling.
//
// The audit looks at how dinner was shared out:
//  - If meal counts differ by more than one --> some diners were favoured
//  - If a diner went hungry for over 90% of time_to_die --> close call
//  - If a diner starved --> unfair by definition
package fairness

import (
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/nickng/philo/config"
	"github.com/nickng/philo/simulation"
)

// CloseCall is the fraction of time_to_die beyond which a hunger gap is
// flagged.
const CloseCall = 0.9

// Result counts the checks performed and how many of them failed.
type Result struct {
	Total  int
	Unsafe int
}

// Fair returns true if no check failed.
func (r Result) Fair() bool { return r.Unsafe == 0 }

// Analysis is a fairness audit in progress.
type Analysis struct {
	Result
	report *simulation.Report
	cfg    *config.Config
	logger *log.Logger
}

// Check audits report, a run of cfg, and logs a line per check.
func Check(report *simulation.Report, cfg *config.Config, logger *log.Logger) Result {
	fa := &Analysis{report: report, cfg: cfg, logger: logger}
	fa.checkStarved()
	fa.checkSpread()
	fa.checkHunger()
	paint := color.GreenString
	if fa.Unsafe > 0 {
		paint = color.RedString
	}
	fa.logger.Printf("%s", paint("Result: %d/%d checks failed", fa.Unsafe, fa.Total))
	return fa.Result
}

func (fa *Analysis) checkStarved() {
	fa.Total++
	if fa.report.Outcome == simulation.Starved {
		fa.Unsafe++
		fa.logger.Println(color.RedString("❌ diner %d starved at %dms", fa.report.Diner, fa.report.At.Milliseconds()))
		return
	}
	fa.logger.Println(color.GreenString("✓ nobody starved (%s)", fa.report.Outcome))
}

// checkSpread compares meal counts. A diner cut short by the end of the run
// may trail by one meal.
func (fa *Analysis) checkSpread() {
	if len(fa.report.Meals) < 2 {
		return
	}
	fa.Total++
	lo, hi := fa.report.Meals[0], fa.report.Meals[0]
	for _, m := range fa.report.Meals[1:] {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	if hi-lo > 1 {
		fa.Unsafe++
		fa.logger.Println(color.RedString("❌ meals range from %d to %d", lo, hi))
		return
	}
	fa.logger.Println(color.GreenString("✓ meals are even (%d-%d)", lo, hi))
}

func (fa *Analysis) checkHunger() {
	limit := time.Duration(float64(fa.cfg.TimeToDie) * CloseCall)
	for i, h := range fa.report.Hunger {
		if fa.report.Outcome == simulation.Starved && fa.report.Diner == i+1 {
			continue // Reported by checkStarved.
		}
		fa.Total++
		if h > limit {
			fa.Unsafe++
			fa.logger.Println(color.YellowString("Warning: diner %d went %dms between meals (limit %dms)",
				i+1, h.Milliseconds(), fa.cfg.TimeToDie.Milliseconds()))
		}
	}
	fa.logger.Println(color.BlueString("  note: longest gap allowed %dms", limit.Milliseconds()))
}
