package seq

import "math"

// Stats is a running accumulator of count, mean, variance, skewness,
// kurtosis, min and max. It consumes one value at a time via Push, so it
// can be driven by a sequence's iteration without ever materializing the
// stream — this is what StatsInt and StatsReal return.
//
// The second-through-fourth central moments are updated with Pébay's
// single-pass recurrence so that Push never revisits earlier values;
// naive two-pass or sum-of-powers formulations either require buffering
// the whole stream or are numerically unstable for long runs.
type Stats struct {
	count   int64
	mean    float64
	m2      float64
	m3      float64
	m4      float64
	min     float64
	max     float64
	hasData bool
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{}
}

// Push folds x into the accumulator.
func (s *Stats) Push(x float64) {
	n1 := float64(s.count)
	s.count++
	n := float64(s.count)

	delta := x - s.mean
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * n1

	s.mean += deltaN
	s.m4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
	s.m3 += term1*deltaN*(n-2) - 3*deltaN*s.m2
	s.m2 += term1

	if !s.hasData || x < s.min {
		s.min = x
	}
	if !s.hasData || x > s.max {
		s.max = x
	}
	s.hasData = true
}

// Count returns the number of values pushed so far.
func (s *Stats) Count() int64 { return s.count }

// Mean returns the running arithmetic mean, or 0 if no values were pushed.
func (s *Stats) Mean() float64 { return s.mean }

// Variance returns the sample variance (Bessel-corrected), or 0 if fewer
// than two values were pushed.
func (s *Stats) Variance() float64 {
	if s.count < 2 {
		return 0
	}
	return s.m2 / float64(s.count-1)
}

// Skewness returns the sample skewness, or 0 if no spread has been observed.
func (s *Stats) Skewness() float64 {
	if s.m2 == 0 {
		return 0
	}
	return math.Sqrt(float64(s.count)) * s.m3 / math.Pow(s.m2, 1.5)
}

// Kurtosis returns the excess kurtosis (0 for a normal distribution), or
// 0 if no spread has been observed.
func (s *Stats) Kurtosis() float64 {
	if s.m2 == 0 {
		return 0
	}
	return float64(s.count)*s.m4/(s.m2*s.m2) - 3.0
}

// Min returns the smallest value pushed, or 0 if none was pushed.
func (s *Stats) Min() float64 { return s.min }

// Max returns the largest value pushed, or 0 if none was pushed.
func (s *Stats) Max() float64 { return s.max }
