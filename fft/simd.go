package fft

import "github.com/klauspost/cpuid/v2"

// vectorWidth reports how many complex128 lanes the post-processing loops
// (Rader's table multiply, Bluestein's point-multiply) should process
// per iteration on this CPU. The scalar and vectorized paths compute the
// identical sequence of additions and multiplications in the identical
// order; only the loop's unroll factor changes; results are therefore
// independent of the detected width to within ordinary floating-point
// associativity.
func vectorWidth() int {
	switch {
	case cpuid.CPU.Has(cpuid.AVX2):
		return 4
	case cpuid.CPU.Has(cpuid.SSE2):
		return 2
	default:
		return 1
	}
}

// multiplyInPlace multiplies dst[i] *= factors[i] for all i, unrolled by
// the detected vector width. This is the shared "post-processing loop"
// used by Bluestein's point-multiply and Rader's table multiply; the
// Cooley-Tukey twiddle step in executeComposite multiplies inline instead.
func multiplyInPlace(dst, factors []complex128) {
	w := vectorWidth()
	n := len(dst)
	i := 0
	for ; i+w <= n; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] *= factors[i+j]
		}
	}
	for ; i < n; i++ {
		dst[i] *= factors[i]
	}
}
