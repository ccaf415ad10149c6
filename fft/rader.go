package fft

import "math"

// buildRaderPlan constructs a leaf for a prime n (6 < n <= RaderThreshold)
// using Rader's reduction of a prime-length DFT to a length n-1 cyclic
// convolution. It finds a primitive root g mod n, recovers its modular
// inverse via the extended Euclidean algorithm, precomputes and forward
// transforms the permuted twiddle table, and emits a child plan for the
// length n-1 convolution.
func buildRaderPlan(n int) *Plan {
	g := primitiveRoot(n)
	gInv := modInverse(g, n)

	table := make([]complex128, n-1)
	for q := 0; q < n-1; q++ {
		exp := modPow(gInv, q, n)
		theta := -2 * math.Pi * float64(exp) / float64(n)
		sin, cos := math.Sincos(theta)
		table[q] = complex(cos, sin)
	}

	child := buildPlan(n - 1)
	child.execute(table)

	return &Plan{
		n:          n,
		kind:       kindRader,
		raderG:     g,
		raderGInv:  gInv,
		raderTable: table,
		raderChild: child,
	}
}

// executeRader applies the Rader leaf to a single length-n operand.
func (p *Plan) executeRader(a []complex128) {
	n := p.n
	b := make([]complex128, n-1)
	sum := a[0]
	for q := 0; q < n-1; q++ {
		idx := modPow(p.raderG, q, n)
		b[q] = a[idx]
		sum += a[idx]
	}

	p.raderChild.execute(b)
	multiplyInPlace(b, p.raderTable)
	inverseInPlace(b, p.raderChild)

	for q := 0; q < n-1; q++ {
		target := modPow(p.raderGInv, q, n)
		a[target] = b[q] + a[0]
	}
	a[0] = sum
}
