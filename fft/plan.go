package fft

import (
	"fmt"
	"strings"
)

type nodeKind int

const (
	kindCodelet nodeKind = iota
	kindComposite
	kindRader
	kindBluestein
)

// Plan is a precomputed recipe for transforming a complex array of a fixed
// length N. Building a Plan factors N and precomputes whatever twiddle,
// chirp, or Rader tables the chosen strategy needs; Execute then applies
// that recipe to a caller-supplied buffer. A Plan is immutable after
// construction and its read-only tables may be shared across goroutines.
// Its Bluestein buffer pool guards its free list with a mutex, so a single
// Plan may be executed from several goroutines at once.
type Plan struct {
	n    int
	kind nodeKind

	// composite (Cooley-Tukey)
	n1, n2           int
	child1, child2   *Plan
	integratedRadix1 bool

	// rader
	raderG, raderGInv int
	raderTable        []complex128
	raderChild        *Plan

	// bluestein
	bluesteinM    int
	bluesteinChirp []complex128
	bluesteinFFT   []complex128
	bluesteinChild *Plan
	pool           *bufferPool
}

// NewPlan builds a transform plan for a positive length n.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fft: %w: size %d must be positive", ErrInvalidArgument, n)
	}
	return buildPlan(n), nil
}

// buildPlan implements the recursive factorization algorithm: codelet
// leaves for N <= MaxRadix, composite Cooley-Tukey stages for factorable N,
// and Rader or Bluestein leaves for primes above the codelet range.
func buildPlan(n int) *Plan {
	if n <= MaxRadix {
		return &Plan{n: n, kind: kindCodelet}
	}

	if n1, n2, ok := factorPair(n); ok {
		p := &Plan{n: n, kind: kindComposite, n1: n1, n2: n2}
		p.child1 = buildPlan(n1)
		p.child2 = buildPlan(n2)
		p.integratedRadix1 = n1 <= MaxRadix
		return p
	}

	// n is prime.
	if n <= RaderThreshold {
		return buildRaderPlan(n)
	}
	return buildBluesteinPlan(n)
}

// Describe returns a diagnostic textual tree of the plan's structure,
// naming which strategy was chosen at each level.
func (p *Plan) Describe() string {
	var b strings.Builder
	p.describe(&b, 0)
	return b.String()
}

func (p *Plan) describe(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	switch p.kind {
	case kindCodelet:
		fmt.Fprintf(b, "%sCodelet-%d\n", indent, p.n)
	case kindComposite:
		tag := "Composite"
		if p.integratedRadix1 {
			tag = "IntegratedComposite"
		}
		fmt.Fprintf(b, "%s%s(N=%d, %d x %d)\n", indent, tag, p.n, p.n1, p.n2)
		p.child1.describe(b, depth+1)
		p.child2.describe(b, depth+1)
	case kindRader:
		fmt.Fprintf(b, "%sRader(N=%d, g=%d, g^-1=%d)\n", indent, p.n, p.raderG, p.raderGInv)
		p.raderChild.describe(b, depth+1)
	case kindBluestein:
		fmt.Fprintf(b, "%sBluestein(N=%d, M=%d)\n", indent, p.n, p.bluesteinM)
		p.bluesteinChild.describe(b, depth+1)
	}
}

// Len reports the transform length this plan was built for.
func (p *Plan) Len() int {
	return p.n
}
