package seq

import "github.com/MeKo-Christian/austra-core/vector"

// intIndexFinder yields successive indices of a vector at which a value
// or predicate matches, expressed domain-agnostically via a closure so
// it serves both real- and complex-vector callers without duplicating
// the iteration logic.
type intIndexFinder struct {
	n   int
	at  func(i int) bool
	idx int
}

func newIntIndexFinder(n int, matches func(i int) bool) IntSequence {
	return &intIndexFinder{n: n, at: matches}
}

// NewIntIndexFinderReal yields the successive indices of vec at which
// pred holds.
func NewIntIndexFinderReal(vec vector.RealVector, pred func(float64) bool) IntSequence {
	return newIntIndexFinder(vec.Len(), func(i int) bool { return pred(vec.At(i)) })
}

// NewIntIndexFinderRealValue yields the successive indices of vec whose
// value equals value exactly.
func NewIntIndexFinderRealValue(vec vector.RealVector, value float64) IntSequence {
	return NewIntIndexFinderReal(vec, func(x float64) bool { return x == value })
}

// NewIntIndexFinderComplex yields the successive indices of vec at which
// pred holds.
func NewIntIndexFinderComplex(vec vector.ComplexVector, pred func(complex128) bool) IntSequence {
	return newIntIndexFinder(vec.Len(), func(i int) bool { return pred(vec.At(i)) })
}

// NewIntIndexFinderComplexValue yields the successive indices of vec
// whose value equals value exactly.
func NewIntIndexFinderComplexValue(vec vector.ComplexVector, value complex128) IntSequence {
	return NewIntIndexFinderComplex(vec, func(x complex128) bool { return x == value })
}

func (f *intIndexFinder) Next() (int32, bool) {
	for f.idx < f.n {
		i := f.idx
		f.idx++
		if f.at(i) {
			return int32(i), true
		}
	}
	return 0, false
}

func (f *intIndexFinder) Reset() IntSequence { f.idx = 0; return f }

func (f *intIndexFinder) Len() int {
	count := 0
	for {
		_, ok := f.Next()
		if !ok {
			return count
		}
		count++
	}
}

func (f *intIndexFinder) HasLength() bool  { return false }
func (f *intIndexFinder) HasStorage() bool { return false }
func (f *intIndexFinder) Clone() IntSequence {
	return &intIndexFinder{n: f.n, at: f.at}
}
