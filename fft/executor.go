package fft

import "fmt"

// Execute transforms a in place, computing the forward DFT X[k] =
// sum_n a[n]*exp(-2*pi*i*n*k/N). len(a) must equal the plan's length.
func (p *Plan) Execute(a []complex128) error {
	if len(a) != p.n {
		return fmt.Errorf("fft: %w: buffer length %d does not match plan length %d", ErrInvalidArgument, len(a), p.n)
	}
	p.execute(a)
	return nil
}

func (p *Plan) execute(a []complex128) {
	switch p.kind {
	case kindCodelet:
		codelet(a)
	case kindComposite:
		p.executeComposite(a)
	case kindRader:
		p.executeRader(a)
	case kindBluestein:
		p.executeBluestein(a)
	}
}

// executeComposite implements the transpose-based Cooley-Tukey step:
// transpose (N1 x N2), apply the N1-point plan N2 times, twiddle-multiply,
// transpose, apply the N2-point plan N1 times, final transpose.
func (p *Plan) executeComposite(a []complex128) {
	n, n1, n2 := p.n, p.n1, p.n2

	t1 := make([]complex128, n)
	transpose(t1, a, n1, n2) // (n1 x n2) -> (n2 x n1); t1 rows are n2, each length n1

	opChunk := n2
	if n > RecursiveThreshold {
		opChunk = maxInt(RecursiveThreshold/n1, 1)
	}
	parallelCall(n2, opChunk, func(start, count int) {
		for r := start; r < start+count; r++ {
			p.child1.execute(t1[r*n1 : (r+1)*n1])
		}
	})

	// Twiddle multiply: for (i,j) in [0,n2) x [0,n1), multiply
	// t1[n1*i+j] by exp(-2*pi*i*i*j/n).
	for i := 0; i < n2; i++ {
		tw := newTwiddleRecurrence(i, n)
		row := t1[i*n1 : (i+1)*n1]
		row[0] *= tw.value()
		for j := 1; j < n1; j++ {
			row[j] *= tw.next()
		}
	}

	t2 := make([]complex128, n)
	transpose(t2, t1, n2, n1) // (n2 x n1) -> (n1 x n2)

	opChunk2 := n1
	if n > RecursiveThreshold {
		opChunk2 = maxInt(RecursiveThreshold/n2, 1)
	}
	parallelCall(n1, opChunk2, func(start, count int) {
		for r := start; r < start+count; r++ {
			p.child2.execute(t2[r*n2 : (r+1)*n2])
		}
	})

	// Final transpose: (n1 x n2) -> (n2 x n1), which is the natural output
	// order k = k2*n1+k1.
	transpose(a, t2, n1, n2)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// inverseInPlace computes the inverse DFT of buf using plan's forward
// Execute via the conjugate trick: conjugate, forward transform, conjugate,
// divide by the length. Used internally by Rader and Bluestein to invert
// their child convolution transforms.
func inverseInPlace(buf []complex128, plan *Plan) {
	n := len(buf)
	for i := range buf {
		buf[i] = cmplxConj(buf[i])
	}
	plan.execute(buf)
	scale := complex(1/float64(n), 0)
	for i := range buf {
		buf[i] = cmplxConj(buf[i]) * scale
	}
}
