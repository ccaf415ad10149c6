package vector

import "errors"

// Errors returned by vector operations.
var (
	// ErrOutOfRange reports an index or bound outside [0, Len()). The
	// Dense* implementations do not return it: their At and Slice panic
	// on out-of-range access.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrLengthMismatch reports operands of unequal length. The Dense*
	// element-wise operations do not return it: they truncate to the
	// shorter operand.
	ErrLengthMismatch = errors.New("vector: length mismatch")
)
