package field

import "errors"

var (
	// ErrDuplicateBodyID is returned by AddBody when the id is already
	// present; the call is a no-op.
	ErrDuplicateBodyID = errors.New("field: duplicate body id")
	// ErrNonPositiveMass is returned by AddBody when mass <= 0.
	ErrNonPositiveMass = errors.New("field: mass must be positive")
)
