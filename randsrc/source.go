package randsrc

import (
	"math"
	"math/rand/v2"
)

// RandomSource supplies uniform draws consumed by the Random sequence
// variants.
type RandomSource interface {
	// NextDouble returns a uniform draw in [0,1).
	NextDouble() float64
	// NextInt returns a uniform draw in [lo,hi).
	NextInt(lo, hi int32) int32
}

// NormalSource supplies normal-distributed draws consumed by the Normal,
// AR and MA sequence variants.
type NormalSource interface {
	// NextDouble returns a single draw from N(0, variance).
	NextDouble() float64
	// NextDoubles returns two independent draws from N(0, variance).
	NextDoubles() (float64, float64)
}

// Default is the reference RandomSource, backed by math/rand/v2.
type Default struct {
	rng *rand.Rand
}

// NewDefault creates a Default source seeded from the runtime's entropy pool.
func NewDefault() *Default {
	return &Default{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewDefaultSeeded creates a Default source with a deterministic seed,
// useful for reproducible tests.
func NewDefaultSeeded(seed1, seed2 uint64) *Default {
	return &Default{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// NextDouble returns a uniform draw in [0,1).
func (d *Default) NextDouble() float64 {
	return d.rng.Float64()
}

// NextInt returns a uniform draw in [lo,hi).
func (d *Default) NextInt(lo, hi int32) int32 {
	if hi <= lo {
		return lo
	}
	return lo + int32(d.rng.IntN(int(hi-lo)))
}

// NormalDefault is the reference NormalSource, backed by math/rand/v2 via
// the Box-Muller transform.
type NormalDefault struct {
	rng      *rand.Rand
	variance float64
	spare    float64
	hasSpare bool
}

// NewNormalDefault creates a NormalDefault source with the given variance,
// seeded from the runtime's entropy pool.
func NewNormalDefault(variance float64) *NormalDefault {
	return &NormalDefault{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), variance: variance}
}

// NewNormalDefaultSeeded creates a NormalDefault source with a deterministic
// seed, useful for reproducible tests.
func NewNormalDefaultSeeded(variance float64, seed1, seed2 uint64) *NormalDefault {
	return &NormalDefault{rng: rand.New(rand.NewPCG(seed1, seed2)), variance: variance}
}

// NextDoubles returns two independent N(0, variance) draws from a single
// Box-Muller pass.
func (d *NormalDefault) NextDoubles() (float64, float64) {
	u1 := d.rng.Float64()
	for u1 == 0 {
		u1 = d.rng.Float64()
	}
	u2 := d.rng.Float64()
	r := math.Sqrt(-2 * math.Log(u1))
	sigma := math.Sqrt(d.variance)
	return sigma * r * math.Cos(2*math.Pi*u2), sigma * r * math.Sin(2*math.Pi*u2)
}

// NextDouble returns a single N(0, variance) draw. Each call consumes one
// Box-Muller pair and caches the spare value for the following call.
func (d *NormalDefault) NextDouble() float64 {
	if d.hasSpare {
		d.hasSpare = false
		return d.spare
	}
	a, b := d.NextDoubles()
	d.spare = b
	d.hasSpare = true
	return a
}
