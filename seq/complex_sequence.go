package seq

import (
	"fmt"
	"math/cmplx"

	"github.com/MeKo-Christian/austra-core/vector"
)

// ComplexSequence is the hot-path contract every complex128 sequence
// variant implements directly. There is no total order over complex128,
// so unlike IntSequence/RealSequence this domain has no Min/Max/Sort.
type ComplexSequence interface {
	Next() (complex128, bool)
	Reset() ComplexSequence
	Len() int
	HasLength() bool
	HasStorage() bool
	Clone() ComplexSequence
}

type (
	complexIndexer       interface{ IndexAt(i int) (complex128, error) }
	complexRanger        interface{ SubRange(start, end int) (ComplexSequence, bool) }
	complexStorer        interface{ Storage() vector.ComplexVector }
	complexSummer        interface{ AnalyticSum() (complex128, bool) }
	complexProducter     interface{ AnalyticProduct() (complex128, bool) }
	complexDistincter    interface{ AnalyticDistinct() (ComplexSequence, bool) }
	complexContainer     interface{ AnalyticContains(v complex128) (bool, bool) }
	complexZeroContainer interface{ AnalyticContainsZero() (bool, bool) }
	complexNegater       interface{ AnalyticNegate() (ComplexSequence, bool) }
	complexShifter       interface{ AnalyticShift(shift complex128) (ComplexSequence, bool) }
	complexScaler        interface{ AnalyticScale(factor complex128) (ComplexSequence, bool) }
)

// IndexComplex returns the value at position i.
func IndexComplex(s ComplexSequence, i int) (complex128, error) {
	if i < 0 {
		return 0, fmt.Errorf("seq: %w: negative index %d", ErrOutOfRange, i)
	}
	if ix, ok := s.(complexIndexer); ok {
		return ix.IndexAt(i)
	}
	c := s.Clone()
	for j := 0; j <= i; j++ {
		v, ok := c.Next()
		if !ok {
			return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
		}
		if j == i {
			return v, nil
		}
	}
	return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
}

// SliceComplex returns the sub-sequence [start, end).
func SliceComplex(s ComplexSequence, start, end int) (ComplexSequence, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("seq: %w: range [%d,%d)", ErrOutOfRange, start, end)
	}
	if r, ok := s.(complexRanger); ok {
		if sub, ok2 := r.SubRange(start, end); ok2 {
			return sub, nil
		}
	}
	data := MaterializeComplex(s)
	if end > len(data) {
		return nil, fmt.Errorf("seq: %w: range [%d,%d) over length %d", ErrOutOfRange, start, end, len(data))
	}
	out := make([]complex128, end-start)
	copy(out, data[start:end])
	return NewComplexFromVector(vector.NewDenseComplexes(out)), nil
}

// SumComplex reduces s to the sum of its values. Empty sequences sum to 0.
func SumComplex(s ComplexSequence) complex128 {
	if a, ok := s.(complexSummer); ok {
		if v, ok2 := a.AnalyticSum(); ok2 {
			return v
		}
	}
	if st, ok := s.(complexStorer); ok {
		return st.Storage().Sum()
	}
	var total complex128
	for {
		v, ok := s.Next()
		if !ok {
			return total
		}
		total += v
	}
}

// ProductComplex reduces s to the product of its values. Empty sequences
// multiply to 1.
func ProductComplex(s ComplexSequence) complex128 {
	if a, ok := s.(complexProducter); ok {
		if v, ok2 := a.AnalyticProduct(); ok2 {
			return v
		}
	}
	if st, ok := s.(complexStorer); ok {
		return st.Storage().Product()
	}
	total := complex128(1)
	for {
		v, ok := s.Next()
		if !ok {
			return total
		}
		total *= v
	}
}

// FirstComplex returns the value after one Next call, or NaN+i*NaN if s
// is empty.
func FirstComplex(s ComplexSequence) complex128 {
	v, ok := s.Next()
	if !ok {
		return cmplx.NaN()
	}
	return v
}

// LastComplex iterates s to exhaustion and returns the last yielded
// value, or NaN+i*NaN if s is empty.
func LastComplex(s ComplexSequence) complex128 {
	last := cmplx.NaN()
	for {
		v, ok := s.Next()
		if !ok {
			return last
		}
		last = v
	}
}

// AllComplex reports whether pred holds for every value in s.
func AllComplex(s ComplexSequence, pred func(complex128) bool) bool {
	for {
		v, ok := s.Next()
		if !ok {
			return true
		}
		if !pred(v) {
			return false
		}
	}
}

// AnyComplex reports whether pred holds for some value in s.
func AnyComplex(s ComplexSequence, pred func(complex128) bool) bool {
	for {
		v, ok := s.Next()
		if !ok {
			return false
		}
		if pred(v) {
			return true
		}
	}
}

// ReduceComplex left-folds s starting from seed.
func ReduceComplex(s ComplexSequence, seed complex128, f func(acc, v complex128) complex128) complex128 {
	acc := seed
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// ContainsComplex reports whether target appears in s.
func ContainsComplex(s ComplexSequence, target complex128) bool {
	if a, ok := s.(complexContainer); ok {
		if v, ok2 := a.AnalyticContains(target); ok2 {
			return v
		}
	}
	if st, ok := s.(complexStorer); ok {
		return st.Storage().Contains(target)
	}
	return AnyComplex(s, func(v complex128) bool { return v == target })
}

// ContainsZeroComplex reports whether s contains the value 0.
func ContainsZeroComplex(s ComplexSequence) bool {
	if a, ok := s.(complexZeroContainer); ok {
		if v, ok2 := a.AnalyticContainsZero(); ok2 {
			return v
		}
	}
	return ContainsComplex(s, 0)
}

// DistinctComplex returns the unique values of s in stream order.
func DistinctComplex(s ComplexSequence) ComplexSequence {
	if a, ok := s.(complexDistincter); ok {
		if v, ok2 := a.AnalyticDistinct(); ok2 {
			return v
		}
	}
	data := MaterializeComplex(s)
	seen := make(map[complex128]struct{}, len(data))
	out := make([]complex128, 0, len(data))
	for _, v := range data {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return NewComplexFromVector(vector.NewDenseComplexes(out))
}

// MaterializeComplex drains s into a freshly allocated slice.
func MaterializeComplex(s ComplexSequence) []complex128 {
	if st, ok := s.(complexStorer); ok {
		src := st.Storage().AsSlice()
		out := make([]complex128, len(src))
		copy(out, src)
		return out
	}
	if s.HasLength() {
		n := s.Len()
		out := make([]complex128, 0, n)
		for {
			v, ok := s.Next()
			if !ok {
				return out
			}
			out = append(out, v)
		}
	}
	var out []complex128
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ToVectorComplex is an alias for MaterializeComplex, packaged as a
// vector.ComplexVector.
func ToVectorComplex(s ComplexSequence) vector.ComplexVector {
	return vector.NewDenseComplexes(MaterializeComplex(s))
}

// TakeWhileComplex yields s's values until pred first fails.
func TakeWhileComplex(s ComplexSequence, pred func(complex128) bool) ComplexSequence {
	return &complexTakeWhile{source: s, pred: pred}
}

// TakeUntilValueComplex yields s's values through and including the
// first occurrence of sentinel, then stops.
func TakeUntilValueComplex(s ComplexSequence, sentinel complex128) ComplexSequence {
	return &complexTakeUntil{source: s, pred: func(v complex128) bool { return v == sentinel }}
}

// TakeUntilPredicateComplex yields s's values through and including the
// first value for which pred holds, then stops.
func TakeUntilPredicateComplex(s ComplexSequence, pred func(complex128) bool) ComplexSequence {
	return &complexTakeUntil{source: s, pred: pred}
}
