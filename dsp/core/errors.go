package core

import "errors"

// Sentinel errors shared by the signal, spectrum, interpolation and filter
// packages. Packages wrap them with context; test with errors.Is.
var (
	ErrEmptyInput       = errors.New("empty input")
	ErrLengthMismatch   = errors.New("length mismatch")
	ErrDomainMismatch   = errors.New("domain mismatch")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNotImplemented   = errors.New("not implemented")
)
