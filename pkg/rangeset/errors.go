package rangeset

import "errors"

var (
	// ErrInvalidRange is returned when a query range has start > end.
	ErrInvalidRange = errors.New("invalid range: start is bigger then end")
	// ErrInvalidRatio is returned when an overlap ratio falls outside (0, 1].
	ErrInvalidRatio = errors.New("invalid overlap ratio: must be in (0, 1]")
	// ErrInvariantViolation is returned when the sorted invariant is found
	// broken, which can only happen through misuse of the structure.
	ErrInvariantViolation = errors.New("range set invariant violated")
)
