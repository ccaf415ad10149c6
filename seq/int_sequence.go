package seq

import (
	"fmt"
	"sort"

	"github.com/MeKo-Christian/austra-core/vector"
)

// IntSequence is the hot-path contract every int32 sequence variant
// implements directly. Cold-path operations (reductions, arithmetic,
// combinators) are package-level functions that dispatch to the small
// optional interfaces below when a variant implements one, and fall back
// to iterating this contract otherwise.
type IntSequence interface {
	// Next advances the cursor and returns the next value, or (0, false)
	// at end of stream.
	Next() (int32, bool)
	// Reset rewinds the cursor to the Pristine state and returns the
	// receiver, so callers can chain s.Reset().Next().
	Reset() IntSequence
	// Len returns the exact count when HasLength is true; otherwise it
	// falls back to iterating to exhaustion, which is destructive.
	Len() int
	// HasLength reports whether Len is an O(1) exact count.
	HasLength() bool
	// HasStorage reports whether the sequence is backed by a dense
	// vector.IntVector retrievable without iteration cost. Implies
	// HasLength.
	HasStorage() bool
	// Clone returns a shallow copy with a fresh, Pristine cursor.
	Clone() IntSequence
}

// Optional fast-path interfaces. A variant implements whichever of these
// applies to it; package-level functions check for each via a type
// assertion before falling back to generic iteration. This is the
// "tagged variant, cold-path overrides looked up by match" design from
// the sequence engine's design notes, expressed as Go's standard
// optional-interface idiom (compare io.ReaderFrom, io.WriterTo) instead
// of a base-class virtual-method table.
type (
	intIndexer       interface{ IndexAt(i int) (int32, error) }
	intRanger        interface{ SubRange(start, end int) (IntSequence, bool) }
	intStorer        interface{ Storage() vector.IntVector }
	intSummer        interface{ AnalyticSum() (int32, bool) }
	intProducter     interface{ AnalyticProduct() (int32, bool) }
	intMinner        interface{ AnalyticMin() (int32, bool) }
	intMaxer         interface{ AnalyticMax() (int32, bool) }
	intDistincter    interface{ AnalyticDistinct() (IntSequence, bool) }
	intSorter        interface{ AnalyticSort(desc bool) (IntSequence, bool) }
	intContainer     interface{ AnalyticContains(v int32) (bool, bool) }
	intZeroContainer interface{ AnalyticContainsZero() (bool, bool) }
	intNegater       interface{ AnalyticNegate() (IntSequence, bool) }
	intShifter       interface{ AnalyticShift(shift int32) (IntSequence, bool) }
	intScaler        interface{ AnalyticScale(factor int32) (IntSequence, bool) }
)

// IndexInt returns the value at position i. Variants that can compute
// this in O(1) (range, grid, repeat, vector-backed) do so via IndexAt;
// everything else iterates a clone.
func IndexInt(s IntSequence, i int) (int32, error) {
	if i < 0 {
		return 0, fmt.Errorf("seq: %w: negative index %d", ErrOutOfRange, i)
	}
	if ix, ok := s.(intIndexer); ok {
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

// SliceInt returns the sub-sequence [start, end). Vector-backed and
// analytically described variants slice without materializing; other
// sequences are materialized and the slice taken from the result.
func SliceInt(s IntSequence, start, end int) (IntSequence, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("seq: %w: range [%d,%d)", ErrOutOfRange, start, end)
	}
	if r, ok := s.(intRanger); ok {
		if sub, ok2 := r.SubRange(start, end); ok2 {
			return sub, nil
		}
	}
	data := MaterializeInt(s)
	if end > len(data) {
		return nil, fmt.Errorf("seq: %w: range [%d,%d) over length %d", ErrOutOfRange, start, end, len(data))
	}
	out := make([]int32, end-start)
	copy(out, data[start:end])
	return NewIntFromVector(vector.NewDenseInts(out)), nil
}

// SumInt reduces s to the sum of its values. Empty sequences sum to 0,
// the additive identity.
func SumInt(s IntSequence) int32 {
	if a, ok := s.(intSummer); ok {
		if v, ok2 := a.AnalyticSum(); ok2 {
			return v
		}
	}
	if st, ok := s.(intStorer); ok {
		return st.Storage().Sum()
	}
	var total int32
	for {
		v, ok := s.Next()
		if !ok {
			return total
		}
		total += v
	}
}

// ProductInt reduces s to the product of its values. Empty sequences
// multiply to 1, the multiplicative identity.
func ProductInt(s IntSequence) int32 {
	if a, ok := s.(intProducter); ok {
		if v, ok2 := a.AnalyticProduct(); ok2 {
			return v
		}
	}
	if st, ok := s.(intStorer); ok {
		return st.Storage().Product()
	}
	total := int32(1)
	for {
		v, ok := s.Next()
		if !ok {
			return total
		}
		total *= v
	}
}

// MinInt returns the smallest value in s, or ErrEmptySequence if s yields
// nothing.
func MinInt(s IntSequence) (int32, error) {
	if a, ok := s.(intMinner); ok {
		if v, ok2 := a.AnalyticMin(); ok2 {
			return v, nil
		}
	}
	if st, ok := s.(intStorer); ok {
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

// MaxInt returns the largest value in s, or ErrEmptySequence if s yields
// nothing.
func MaxInt(s IntSequence) (int32, error) {
	if a, ok := s.(intMaxer); ok {
		if v, ok2 := a.AnalyticMax(); ok2 {
			return v, nil
		}
	}
	if st, ok := s.(intStorer); ok {
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

// FirstInt returns the value after one Next call, or 0 (the integer
// sentinel) if s is empty.
func FirstInt(s IntSequence) int32 {
	v, ok := s.Next()
	if !ok {
		return 0
	}
	return v
}

// LastInt iterates s to exhaustion and returns the last yielded value, or
// 0 if s is empty.
func LastInt(s IntSequence) int32 {
	var last int32
	for {
		v, ok := s.Next()
		if !ok {
			return last
		}
		last = v
	}
}

// AllInt reports whether pred holds for every value in s, short-circuiting
// on the first failure.
func AllInt(s IntSequence, pred func(int32) bool) bool {
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

// AnyInt reports whether pred holds for some value in s, short-circuiting
// on the first success.
func AnyInt(s IntSequence, pred func(int32) bool) bool {
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

// ReduceInt left-folds s starting from seed.
func ReduceInt(s IntSequence, seed int32, f func(acc, v int32) int32) int32 {
	acc := seed
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// ContainsInt reports whether target appears in s. Range and grid test
// membership on the arithmetic progression; vector-backed sequences scan
// the backing vector; everything else iterates.
func ContainsInt(s IntSequence, target int32) bool {
	if a, ok := s.(intContainer); ok {
		if v, ok2 := a.AnalyticContains(target); ok2 {
			return v
		}
	}
	if st, ok := s.(intStorer); ok {
		return st.Storage().Contains(target)
	}
	return AnyInt(s, func(v int32) bool { return v == target })
}

// ContainsZeroInt reports whether s contains the value 0.
func ContainsZeroInt(s IntSequence) bool {
	if a, ok := s.(intZeroContainer); ok {
		if v, ok2 := a.AnalyticContainsZero(); ok2 {
			return v
		}
	}
	return ContainsInt(s, 0)
}

// DistinctInt returns the unique values of s in stream order.
func DistinctInt(s IntSequence) IntSequence {
	if a, ok := s.(intDistincter); ok {
		if v, ok2 := a.AnalyticDistinct(); ok2 {
			return v
		}
	}
	data := MaterializeInt(s)
	seen := make(map[int32]struct{}, len(data))
	out := make([]int32, 0, len(data))
	for _, v := range data {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return NewIntFromVector(vector.NewDenseInts(out))
}

// SortInt returns s sorted ascending.
func SortInt(s IntSequence) IntSequence {
	if a, ok := s.(intSorter); ok {
		if v, ok2 := a.AnalyticSort(false); ok2 {
			return v
		}
	}
	data := MaterializeInt(s)
	sort.Slice(data, func(i, j int) bool { return data[i] < data[j] })
	return NewIntFromVector(vector.NewDenseInts(data))
}

// SortDescInt returns s sorted descending.
func SortDescInt(s IntSequence) IntSequence {
	if a, ok := s.(intSorter); ok {
		if v, ok2 := a.AnalyticSort(true); ok2 {
			return v
		}
	}
	data := MaterializeInt(s)
	sort.Slice(data, func(i, j int) bool { return data[i] > data[j] })
	return NewIntFromVector(vector.NewDenseInts(data))
}

// StatsInt drives a Stats accumulator from s's values.
func StatsInt(s IntSequence) *Stats {
	st := NewStats()
	for {
		v, ok := s.Next()
		if !ok {
			return st
		}
		st.Push(float64(v))
	}
}

// MaterializeInt drains s into a freshly allocated slice. When
// s.HasLength() is true the slice is preallocated to the exact length;
// otherwise it grows via append while s is consumed to exhaustion.
func MaterializeInt(s IntSequence) []int32 {
	if st, ok := s.(intStorer); ok {
		src := st.Storage().AsSlice()
		out := make([]int32, len(src))
		copy(out, src)
		return out
	}
	if s.HasLength() {
		n := s.Len()
		out := make([]int32, 0, n)
		for {
			v, ok := s.Next()
			if !ok {
				return out
			}
			out = append(out, v)
		}
	}
	var out []int32
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ToVectorInt is an alias for MaterializeInt, packaged as a vector.IntVector.
func ToVectorInt(s IntSequence) vector.IntVector {
	return vector.NewDenseInts(MaterializeInt(s))
}
