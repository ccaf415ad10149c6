package fft

import "math"

// buildBluesteinPlan constructs a leaf for a prime n > RaderThreshold using
// Bluestein's chirp-Z transform: the length-n DFT is rewritten as a length-M
// cyclic convolution, where M = FindSmooth(2n-1) is the smallest 2,3,5-
// smooth integer covering the linear convolution without wraparound.
func buildBluesteinPlan(n int) *Plan {
	m := FindSmooth(2*n - 1)

	chirp := make([]complex128, n)
	for k := 0; k < n; k++ {
		theta := math.Pi * float64(k) * float64(k) / float64(n)
		sin, cos := math.Sincos(theta)
		chirp[k] = complex(cos, sin)
	}

	padded := make([]complex128, m)
	padded[0] = chirp[0]
	for k := 1; k < n; k++ {
		padded[k] = chirp[k]
		padded[m-k] = chirp[k]
	}

	child := buildPlan(m)
	child.execute(padded)

	return &Plan{
		n:              n,
		kind:           kindBluestein,
		bluesteinM:     m,
		bluesteinChirp: chirp,
		bluesteinFFT:   padded,
		bluesteinChild: child,
		pool:           newBufferPool(m),
	}
}

// executeBluestein applies the Bluestein leaf to a single length-n operand.
func (p *Plan) executeBluestein(a []complex128) {
	n, m := p.n, p.bluesteinM
	work := p.pool.rent()
	defer p.pool.release(work)

	for k := 0; k < n; k++ {
		work[k] = a[k] * cmplxConj(p.bluesteinChirp[k])
	}
	for k := n; k < m; k++ {
		work[k] = 0
	}

	p.bluesteinChild.execute(work)
	multiplyInPlace(work, p.bluesteinFFT)
	inverseInPlace(work, p.bluesteinChild)

	for k := 0; k < n; k++ {
		a[k] = work[k] * cmplxConj(p.bluesteinChirp[k])
	}
}

func cmplxConj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
