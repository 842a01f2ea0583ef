// Package config holds the immutable parameters of a dining simulation and
// the validation of their textual (command line) form.
package config // "github.com/nickng/philo/config"

import (
	"fmt"
	"strconv"
	"time"
)

const (
	MaxDiners = 200   // Upper bound of the number of diners.
	MaxMillis = 10000 // Upper bound of every timing parameter (in ms).
)

// Config is the parameters of a simulation.
type Config struct {
	Diners      int
	TimeToDie   time.Duration
	TimeToEat   time.Duration
	TimeToSleep time.Duration
	MaxMeals    int // 0 means unbounded.
}

// Bounded returns true if the run completes after MaxMeals meals each.
func (c *Config) Bounded() bool { return c.MaxMeals > 0 }

// Sated returns true if meals satisfies the completion target.
func (c *Config) Sated(meals int) bool {
	return c.Bounded() && meals >= c.MaxMeals
}

// Validate checks the ranges of an already constructed Config.
func (c *Config) Validate() error {
	switch {
	case c.Diners < 1 || c.Diners > MaxDiners:
		return &ArgError{Name: ArgNames[0], Value: strconv.Itoa(c.Diners), Err: ErrOutOfRange}
	case !validMillis(c.TimeToDie):
		return &ArgError{Name: ArgNames[1], Value: c.TimeToDie.String(), Err: ErrOutOfRange}
	case !validMillis(c.TimeToEat):
		return &ArgError{Name: ArgNames[2], Value: c.TimeToEat.String(), Err: ErrOutOfRange}
	case !validMillis(c.TimeToSleep):
		return &ArgError{Name: ArgNames[3], Value: c.TimeToSleep.String(), Err: ErrOutOfRange}
	case c.MaxMeals < 0:
		return &ArgError{Name: ArgNames[4], Value: strconv.Itoa(c.MaxMeals), Err: ErrOutOfRange}
	}
	return nil
}

func (c *Config) String() string {
	s := fmt.Sprintf("diners=%d die=%dms eat=%dms sleep=%dms",
		c.Diners, c.TimeToDie.Milliseconds(), c.TimeToEat.Milliseconds(), c.TimeToSleep.Milliseconds())
	if c.Bounded() {
		s += fmt.Sprintf(" meals=%d", c.MaxMeals)
	}
	return s
}

func validMillis(d time.Duration) bool {
	return d >= time.Millisecond && d <= MaxMillis*time.Millisecond
}
