package config

import (
	"fmt"
	"strconv"
	"time"
)

// ArgNames are the names of the positional arguments, in order.
var ArgNames = [...]string{
	"number_of_philosophers",
	"time_to_die",
	"time_to_eat",
	"time_to_sleep",
	"number_of_times_each_philosopher_must_eat",
}

// ArgError is a rejected positional argument.
type ArgError struct {
	Name  string
	Value string
	Err   error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Err)
}

func (e *ArgError) Unwrap() error { return e.Err }

// Parse builds a Config from the positional arguments
//
//	diners time_to_die time_to_eat time_to_sleep [max_meals]
//
// Every argument must be a non-zero decimal number made of digits only (no
// sign, no spaces) fitting in a signed 32-bit integer.
func Parse(args []string) (*Config, error) {
	if len(args) < 4 || len(args) > 5 {
		return nil, fmt.Errorf("got %d: %w", len(args), ErrArgCount)
	}
	nums := make([]int, len(args))
	for i, arg := range args {
		n, err := ParseNumber(arg)
		if err != nil {
			return nil, &ArgError{Name: ArgNames[i], Value: arg, Err: err}
		}
		nums[i] = n
	}
	if nums[0] > MaxDiners {
		return nil, &ArgError{Name: ArgNames[0], Value: args[0], Err: ErrOutOfRange}
	}
	for i := 1; i < 4; i++ {
		if nums[i] > MaxMillis {
			return nil, &ArgError{Name: ArgNames[i], Value: args[i], Err: ErrOutOfRange}
		}
	}
	cfg := &Config{
		Diners:      nums[0],
		TimeToDie:   time.Duration(nums[1]) * time.Millisecond,
		TimeToEat:   time.Duration(nums[2]) * time.Millisecond,
		TimeToSleep: time.Duration(nums[3]) * time.Millisecond,
	}
	if len(nums) == 5 {
		cfg.MaxMeals = nums[4]
	}
	return cfg, nil
}

// ParseDiners parses a single diner count (1..MaxDiners).
func ParseDiners(arg string) (int, error) {
	n, err := ParseNumber(arg)
	if err != nil {
		return 0, &ArgError{Name: ArgNames[0], Value: arg, Err: err}
	}
	if n > MaxDiners {
		return 0, &ArgError{Name: ArgNames[0], Value: arg, Err: ErrOutOfRange}
	}
	return n, nil
}

// ParseNumber parses a strictly positive decimal made of digits only.
func ParseNumber(s string) (int, error) {
	if s == "" {
		return 0, ErrNotDecimal
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrNotDecimal
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, ErrOverflow // digits only, so the only failure is range
	}
	if n == 0 {
		return 0, ErrOutOfRange
	}
	return int(n), nil
}
