package seq

import "errors"

// Errors returned by sequence operations.
var (
	// ErrOutOfRange is returned by Index/Range when a position or bound
	// falls outside the sequence's valid domain.
	ErrOutOfRange = errors.New("seq: index out of range")

	// ErrEmptySequence is returned by Min/Max when called on a sequence
	// that yields no values.
	ErrEmptySequence = errors.New("seq: empty sequence")

	// ErrInvalidArgument is returned by constructors given a malformed
	// configuration: a zero-length AR/MA coefficient vector, a zero
	// integer grid step, a non-positive grid count, and similar.
	ErrInvalidArgument = errors.New("seq: invalid argument")
)
