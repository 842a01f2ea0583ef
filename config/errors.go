package config

// Predefined errors

import "errors"

var (
	ErrArgCount   = errors.New("expects 4 or 5 arguments")
	ErrNotDecimal = errors.New("not a plain decimal integer")
	ErrOverflow   = errors.New("exceeds 2147483647")
	ErrOutOfRange = errors.New("out of range")
)
