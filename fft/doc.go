// Package fft implements a mixed-strategy Fast Fourier Transform engine for
// arbitrary transform lengths, including prime lengths.
//
// A Plan factors its size N into small codelets (radix 2..6), composite
// Cooley-Tukey stages (transpose, recurse, twiddle-multiply, transpose,
// recurse, transpose), Rader's algorithm for primes above the codelet range,
// and Bluestein's chirp-Z transform for primes too large for Rader to be
// worthwhile. Plans are built once and may be executed repeatedly against
// different buffers of the same size.
package fft
