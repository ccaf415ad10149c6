package fft

import "math"

// ForwardReal computes the full length-N complex spectrum of a real input
// of length N. The classic split-radix trick is used for even N >= 4: a
// length N/2 complex FFT of the input reinterpreted as interleaved
// real/imaginary pairs is combined via the standard post-twiddle into the
// full spectrum, including the redundant conjugate half (so the returned
// slice always has length N, matching the complex-origin spectrum shape).
func ForwardReal(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrInvalidArgument
	}
	if n == 1 {
		return []complex128{complex(x[0], 0)}, nil
	}
	if n == 2 {
		return []complex128{
			complex(x[0]+x[1], 0),
			complex(x[0]-x[1], 0),
		}, nil
	}
	if n%2 != 0 {
		z := make([]complex128, n)
		for i, v := range x {
			z[i] = complex(v, 0)
		}
		if err := ForwardComplex(z); err != nil {
			return nil, err
		}
		return z, nil
	}

	half := n / 2
	z := make([]complex128, half)
	for i := 0; i < half; i++ {
		z[i] = complex(x[2*i], x[2*i+1])
	}
	if err := ForwardComplex(z); err != nil {
		return nil, err
	}

	f := make([]complex128, n)
	for k := 0; k < half; k++ {
		km := (half - k) % half
		zk := z[k]
		zkm := cmplxConj(z[km])
		sum := zk + zkm
		diff := zk - zkm
		theta := -2 * math.Pi * float64(k) / float64(n)
		sin, cos := math.Sincos(theta)
		tw := complex(cos, sin)
		rot := complex(0, -1) * tw * diff
		f[k] = 0.5 * (sum + rot)
	}
	f[half] = complex(real(z[0])-imag(z[0]), 0)
	for k := 1; k < half; k++ {
		f[n-k] = cmplxConj(f[k])
	}
	return f, nil
}

// InverseReal recovers a length-n real signal from its full complex
// spectrum (length n, conjugate-symmetric for a genuinely real signal).
// It runs the ordinary inverse complex transform and discards the
// (nominally zero) imaginary remainder.
func InverseReal(spectrum []complex128, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidArgument
	}
	if len(spectrum) != n {
		return nil, ErrInvalidArgument
	}
	work := make([]complex128, n)
	copy(work, spectrum)
	p, err := cachedPlan(n)
	if err != nil {
		return nil, err
	}
	inverseInPlace(work, p)

	out := make([]float64, n)
	for i, v := range work {
		out[i] = real(v)
	}
	return out, nil
}
