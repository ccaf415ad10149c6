package seq

import (
	"fmt"
	"math"
	"sort"

	"github.com/MeKo-Christian/austra-core/vector"
)

// RealSequence is the hot-path contract every float64 sequence variant
// implements directly.
type RealSequence interface {
	Next() (float64, bool)
	Reset() RealSequence
	Len() int
	HasLength() bool
	HasStorage() bool
	Clone() RealSequence
}

type (
	realIndexer       interface{ IndexAt(i int) (float64, error) }
	realRanger        interface{ SubRange(start, end int) (RealSequence, bool) }
	realStorer        interface{ Storage() vector.RealVector }
	realSummer        interface{ AnalyticSum() (float64, bool) }
	realProducter     interface{ AnalyticProduct() (float64, bool) }
	realMinner        interface{ AnalyticMin() (float64, bool) }
	realMaxer         interface{ AnalyticMax() (float64, bool) }
	realDistincter    interface{ AnalyticDistinct() (RealSequence, bool) }
	realSorter        interface{ AnalyticSort(desc bool) (RealSequence, bool) }
	realContainer     interface{ AnalyticContains(v float64) (bool, bool) }
	realZeroContainer interface{ AnalyticContainsZero() (bool, bool) }
	realNegater       interface{ AnalyticNegate() (RealSequence, bool) }
	realShifter       interface{ AnalyticShift(shift float64) (RealSequence, bool) }
	realScaler        interface{ AnalyticScale(factor float64) (RealSequence, bool) }
)

// IndexReal returns the value at position i.
func IndexReal(s RealSequence, i int) (float64, error) {
	if i < 0 {
		return 0, fmt.Errorf("seq: %w: negative index %d", ErrOutOfRange, i)
	}
	if ix, ok := s.(realIndexer); ok {
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

// SliceReal returns the sub-sequence [start, end).
func SliceReal(s RealSequence, start, end int) (RealSequence, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("seq: %w: range [%d,%d)", ErrOutOfRange, start, end)
	}
	if r, ok := s.(realRanger); ok {
		if sub, ok2 := r.SubRange(start, end); ok2 {
			return sub, nil
		}
	}
	data := MaterializeReal(s)
	if end > len(data) {
		return nil, fmt.Errorf("seq: %w: range [%d,%d) over length %d", ErrOutOfRange, start, end, len(data))
	}
	out := make([]float64, end-start)
	copy(out, data[start:end])
	return NewRealFromVector(vector.NewDenseReals(out)), nil
}

// SumReal reduces s to the sum of its values. Empty sequences sum to 0.
func SumReal(s RealSequence) float64 {
	if a, ok := s.(realSummer); ok {
		if v, ok2 := a.AnalyticSum(); ok2 {
			return v
		}
	}
	if st, ok := s.(realStorer); ok {
		return st.Storage().Sum()
	}
	var total float64
	for {
		v, ok := s.Next()
		if !ok {
			return total
		}
		total += v
	}
}

// ProductReal reduces s to the product of its values. Empty sequences
// multiply to 1.
func ProductReal(s RealSequence) float64 {
	if a, ok := s.(realProducter); ok {
		if v, ok2 := a.AnalyticProduct(); ok2 {
			return v
		}
	}
	if st, ok := s.(realStorer); ok {
		return st.Storage().Product()
	}
	total := 1.0
	for {
		v, ok := s.Next()
		if !ok {
			return total
		}
		total *= v
	}
}

// MinReal returns the smallest value in s, or ErrEmptySequence if empty.
func MinReal(s RealSequence) (float64, error) {
	if a, ok := s.(realMinner); ok {
		if v, ok2 := a.AnalyticMin(); ok2 {
			return v, nil
		}
	}
	if st, ok := s.(realStorer); ok {
		v := st.Storage()
		if v.Len() == 0 {
			return 0, ErrEmptySequence
		}
		return v.Min(), nil
	}
	v, ok := s.Next()
	if !ok {
		return 0, ErrEmptySequence
	}
	m := v
	for {
		v, ok := s.Next()
		if !ok {
			return m, nil
		}
		if v < m {
			m = v
		}
	}
}

// MaxReal returns the largest value in s, or ErrEmptySequence if empty.
func MaxReal(s RealSequence) (float64, error) {
	if a, ok := s.(realMaxer); ok {
		if v, ok2 := a.AnalyticMax(); ok2 {
			return v, nil
		}
	}
	if st, ok := s.(realStorer); ok {
		v := st.Storage()
		if v.Len() == 0 {
			return 0, ErrEmptySequence
		}
		return v.Max(), nil
	}
	v, ok := s.Next()
	if !ok {
		return 0, ErrEmptySequence
	}
	m := v
	for {
		v, ok := s.Next()
		if !ok {
			return m, nil
		}
		if v > m {
			m = v
		}
	}
}

// FirstReal returns the value after one Next call, or NaN if s is empty.
func FirstReal(s RealSequence) float64 {
	v, ok := s.Next()
	if !ok {
		return math.NaN()
	}
	return v
}

// LastReal iterates s to exhaustion and returns the last yielded value, or
// NaN if s is empty.
func LastReal(s RealSequence) float64 {
	last := math.NaN()
	for {
		v, ok := s.Next()
		if !ok {
			return last
		}
		last = v
	}
}

// AllReal reports whether pred holds for every value in s.
func AllReal(s RealSequence, pred func(float64) bool) bool {
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

// AnyReal reports whether pred holds for some value in s.
func AnyReal(s RealSequence, pred func(float64) bool) bool {
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

// ReduceReal left-folds s starting from seed.
func ReduceReal(s RealSequence, seed float64, f func(acc, v float64) float64) float64 {
	acc := seed
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// ContainsReal reports whether target appears in s.
func ContainsReal(s RealSequence, target float64) bool {
	if a, ok := s.(realContainer); ok {
		if v, ok2 := a.AnalyticContains(target); ok2 {
			return v
		}
	}
	if st, ok := s.(realStorer); ok {
		return st.Storage().Contains(target)
	}
	return AnyReal(s, func(v float64) bool { return v == target })
}

// ContainsZeroReal reports whether s contains the value 0.
func ContainsZeroReal(s RealSequence) bool {
	if a, ok := s.(realZeroContainer); ok {
		if v, ok2 := a.AnalyticContainsZero(); ok2 {
			return v
		}
	}
	return ContainsReal(s, 0)
}

// DistinctReal returns the unique values of s in stream order.
func DistinctReal(s RealSequence) RealSequence {
	if a, ok := s.(realDistincter); ok {
		if v, ok2 := a.AnalyticDistinct(); ok2 {
			return v
		}
	}
	data := MaterializeReal(s)
	seen := make(map[float64]struct{}, len(data))
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return NewRealFromVector(vector.NewDenseReals(out))
}

// SortReal returns s sorted ascending.
func SortReal(s RealSequence) RealSequence {
	if a, ok := s.(realSorter); ok {
		if v, ok2 := a.AnalyticSort(false); ok2 {
			return v
		}
	}
	data := MaterializeReal(s)
	sort.Float64s(data)
	return NewRealFromVector(vector.NewDenseReals(data))
}

// SortDescReal returns s sorted descending.
func SortDescReal(s RealSequence) RealSequence {
	if a, ok := s.(realSorter); ok {
		if v, ok2 := a.AnalyticSort(true); ok2 {
			return v
		}
	}
	data := MaterializeReal(s)
	sort.Sort(sort.Reverse(sort.Float64Slice(data)))
	return NewRealFromVector(vector.NewDenseReals(data))
}

// StatsReal drives a Stats accumulator from s's values.
func StatsReal(s RealSequence) *Stats {
	st := NewStats()
	for {
		v, ok := s.Next()
		if !ok {
			return st
		}
		st.Push(v)
	}
}

// MaterializeReal drains s into a freshly allocated slice.
func MaterializeReal(s RealSequence) []float64 {
	if st, ok := s.(realStorer); ok {
		src := st.Storage().AsSlice()
		out := make([]float64, len(src))
		copy(out, src)
		return out
	}
	if s.HasLength() {
		n := s.Len()
		out := make([]float64, 0, n)
		for {
			v, ok := s.Next()
			if !ok {
				return out
			}
			out = append(out, v)
		}
	}
	var out []float64
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ToVectorReal is an alias for MaterializeReal, packaged as a vector.RealVector.
func ToVectorReal(s RealSequence) vector.RealVector {
	return vector.NewDenseReals(MaterializeReal(s))
}

// TakeWhileReal yields s's values until pred first fails.
func TakeWhileReal(s RealSequence, pred func(float64) bool) RealSequence {
	return &realTakeWhile{source: s, pred: pred}
}

// TakeUntilValueReal yields s's values through and including the first
// occurrence of sentinel, then stops.
func TakeUntilValueReal(s RealSequence, sentinel float64) RealSequence {
	return &realTakeUntil{source: s, pred: func(v float64) bool { return v == sentinel }}
}

// TakeUntilPredicateReal yields s's values through and including the
// first value for which pred holds, then stops.
func TakeUntilPredicateReal(s RealSequence, pred func(float64) bool) RealSequence {
	return &realTakeUntil{source: s, pred: pred}
}
