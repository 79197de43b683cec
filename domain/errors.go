package domain

import "errors"

var (
	// ErrCoordNotFound is returned when no coordinate matches a requested name prefix.
	ErrCoordNotFound = errors.New("coordinate not found")

	// ErrNoCandidates is returned when a name lookup has nothing to match against.
	ErrNoCandidates = errors.New("no candidate names")

	// ErrShapeMismatch is returned when replacement data does not fit a variable's shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrNotScalar is returned when a single value is requested from an array of size other than 1.
	ErrNotScalar = errors.New("array is not a single value")

	// ErrInvalidGridSize is returned for non-positive target grid sizes.
	ErrInvalidGridSize = errors.New("invalid grid size")

	// ErrNilInput is returned when a required dataset or array is nil.
	ErrNilInput = errors.New("nil input")
)
