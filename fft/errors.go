package fft

import "errors"

// ErrInvalidArgument is returned when a transform size or argument is
// out of the domain the engine supports (non-positive length, mismatched
// spectrum/sample lengths, and the like).
var ErrInvalidArgument = errors.New("fft: invalid argument")
