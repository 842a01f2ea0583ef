package simulation

// Predefined errors

import "errors"

var (
	ErrInvalidConfig = errors.New("simulation: invalid configuration")
	ErrNoOutput      = errors.New("simulation: no event output")
	ErrAlreadyRun    = errors.New("simulation: already run")
)
