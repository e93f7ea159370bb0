package internal

import "errors"

var (
	// ErrInvalidPosition is returned by any Sheet operation given an
	// out-of-range or NonePosition position.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrParseFormula is returned when a formula cannot be parsed. The
	// sheet's state is left unchanged.
	ErrParseFormula = errors.New("formula parse error")

	// ErrCircularDependency is returned when installing a cell would
	// create a cycle through existing cells. The sheet's state is left
	// unchanged.
	ErrCircularDependency = errors.New("circular dependency")
)
