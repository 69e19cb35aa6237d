package rate

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned for missing or unparseable input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDomainError is returned when the growth factor is negative, which
	// has no real fractional power.
	ErrDomainError = errors.New("domain error")
)
