package seq

import (
	"fmt"

	"github.com/MeKo-Christian/austra-core/randsrc"
	"github.com/MeKo-Christian/austra-core/vector"
)

// --- Range -------------------------------------------------------------

// intRange is the integer closed interval [first,last], ascending when
// first<=last and descending otherwise. Its sum, min/max, containment,
// distinctness, sort order and negation are all free — no element is
// ever materialized to answer them.
type intRange struct {
	first, last int32
	idx         int
}

// NewIntRange returns the sequence of integers from first to last
// inclusive, ascending if first<=last and descending otherwise.
func NewIntRange(first, last int32) IntSequence {
	return &intRange{first: first, last: last}
}

func (r *intRange) step() int32 {
	if r.last >= r.first {
		return 1
	}
	return -1
}

func (r *intRange) length() int {
	if r.last >= r.first {
		return int(r.last-r.first) + 1
	}
	return int(r.first-r.last) + 1
}

func (r *intRange) Next() (int32, bool) {
	if r.idx >= r.length() {
		return 0, false
	}
	v := r.first + int32(r.idx)*r.step()
	r.idx++
	return v, true
}

func (r *intRange) Reset() IntSequence        { r.idx = 0; return r }
func (r *intRange) Len() int                  { return r.length() }
func (r *intRange) HasLength() bool           { return true }
func (r *intRange) HasStorage() bool          { return false }
func (r *intRange) Clone() IntSequence        { return &intRange{first: r.first, last: r.last} }
func (r *intRange) bounds() (lo, hi int32)    { lo, hi = r.first, r.last; if lo > hi { lo, hi = hi, lo }; return }

func (r *intRange) IndexAt(i int) (int32, error) {
	if i < 0 || i >= r.length() {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return r.first + int32(i)*r.step(), nil
}

func (r *intRange) SubRange(start, end int) (IntSequence, bool) {
	if start < 0 || end > r.length() || start > end {
		return nil, false
	}
	if start == end {
		return &intRepeat{n: 0}, true // empty
	}
	step := r.step()
	newFirst := r.first + int32(start)*step
	newLast := r.first + int32(end-1)*step
	return &intRange{first: newFirst, last: newLast}, true
}

func (r *intRange) AnalyticSum() (int32, bool) {
	lo, hi := r.bounds()
	n := int64(hi-lo) + 1
	return int32((int64(lo) + int64(hi)) * n / 2), true
}

func (r *intRange) AnalyticMin() (int32, bool) { lo, _ := r.bounds(); return lo, true }
func (r *intRange) AnalyticMax() (int32, bool) { _, hi := r.bounds(); return hi, true }

func (r *intRange) AnalyticDistinct() (IntSequence, bool) {
	return &intRange{first: r.first, last: r.last}, true
}

func (r *intRange) AnalyticSort(desc bool) (IntSequence, bool) {
	lo, hi := r.bounds()
	if desc {
		return &intRange{first: hi, last: lo}, true
	}
	return &intRange{first: lo, last: hi}, true
}

func (r *intRange) AnalyticContains(v int32) (bool, bool) {
	lo, hi := r.bounds()
	return v >= lo && v <= hi, true
}

func (r *intRange) AnalyticContainsZero() (bool, bool) {
	lo, hi := r.bounds()
	return 0 >= lo && 0 <= hi, true
}

func (r *intRange) AnalyticNegate() (IntSequence, bool) {
	return &intRange{first: -r.first, last: -r.last}, true
}

func (r *intRange) AnalyticShift(shift int32) (IntSequence, bool) {
	return &intRange{first: r.first + shift, last: r.last + shift}, true
}

func (r *intRange) AnalyticScale(factor int32) (IntSequence, bool) {
	if factor == 0 {
		return &intRepeat{n: r.length(), v: 0}, true
	}
	g, err := NewIntGrid(r.first*factor, r.step()*factor, r.last*factor)
	if err != nil {
		return nil, false
	}
	return g, true
}

// --- Grid with step -----------------------------------------------------

// intGrid is the arithmetic progression first, first+step, ..., not
// necessarily reaching last exactly. Supports a negative step for
// descending progressions.
type intGrid struct {
	first, step, last int32
	idx               int
}

// NewIntGrid returns the arithmetic progression first, first+step, ...,
// first+floor((last-first)/step)*step. step must be non-zero.
func NewIntGrid(first, step, last int32) (IntSequence, error) {
	if step == 0 {
		return nil, fmt.Errorf("seq: %w: grid step must be non-zero", ErrInvalidArgument)
	}
	return &intGrid{first: first, step: step, last: last}, nil
}

func (g *intGrid) count() int {
	if g.step > 0 {
		if g.last < g.first {
			return 0
		}
		return int((g.last-g.first)/g.step) + 1
	}
	if g.last > g.first {
		return 0
	}
	return int((g.first-g.last)/(-g.step)) + 1
}

func (g *intGrid) valueAt(i int) int32 { return g.first + int32(i)*g.step }

func (g *intGrid) Next() (int32, bool) {
	if g.idx >= g.count() {
		return 0, false
	}
	v := g.valueAt(g.idx)
	g.idx++
	return v, true
}

func (g *intGrid) Reset() IntSequence { g.idx = 0; return g }
func (g *intGrid) Len() int           { return g.count() }
func (g *intGrid) HasLength() bool    { return true }
func (g *intGrid) HasStorage() bool   { return false }
func (g *intGrid) Clone() IntSequence {
	return &intGrid{first: g.first, step: g.step, last: g.last}
}

func (g *intGrid) IndexAt(i int) (int32, error) {
	if i < 0 || i >= g.count() {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return g.valueAt(i), nil
}

func (g *intGrid) SubRange(start, end int) (IntSequence, bool) {
	if start < 0 || end > g.count() || start > end {
		return nil, false
	}
	if start == end {
		return &intGrid{first: 0, step: 1, last: -1}, true
	}
	newFirst := g.valueAt(start)
	newLast := g.valueAt(end - 1)
	return &intGrid{first: newFirst, step: g.step, last: newLast}, true
}

func (g *intGrid) AnalyticSum() (int32, bool) {
	n := g.count()
	if n == 0 {
		return 0, true
	}
	last := g.valueAt(n - 1)
	return int32((int64(g.first) + int64(last)) * int64(n) / 2), true
}

func (g *intGrid) AnalyticSort(desc bool) (IntSequence, bool) {
	n := g.count()
	if n == 0 {
		return &intGrid{first: 0, step: 1, last: -1}, true
	}
	last := g.valueAt(n - 1)
	ascending := g.step > 0
	if ascending == !desc {
		return &intGrid{first: g.first, step: g.step, last: last}, true
	}
	return &intGrid{first: last, step: -g.step, last: g.first}, true
}

func (g *intGrid) AnalyticContains(v int32) (bool, bool) {
	n := g.count()
	if n == 0 {
		return false, true
	}
	diff := v - g.first
	if g.step > 0 {
		if diff < 0 {
			return false, true
		}
	} else if diff > 0 {
		return false, true
	}
	return diff%g.step == 0 && diff/g.step < int32(n) && diff/g.step >= 0, true
}

func (g *intGrid) AnalyticNegate() (IntSequence, bool) {
	n := g.count()
	if n == 0 {
		return &intGrid{first: 0, step: 1, last: -1}, true
	}
	last := g.valueAt(n - 1)
	return &intGrid{first: -g.first, step: -g.step, last: -last}, true
}

func (g *intGrid) AnalyticShift(shift int32) (IntSequence, bool) {
	return &intGrid{first: g.first + shift, step: g.step, last: g.last + shift}, true
}

func (g *intGrid) AnalyticScale(factor int32) (IntSequence, bool) {
	if factor == 0 {
		return &intRepeat{n: g.count(), v: 0}, true
	}
	return &intGrid{first: g.first * factor, step: g.step * factor, last: g.last * factor}, true
}

// --- Repeat --------------------------------------------------------------

// intRepeat yields n copies of a single value. Every reduction over it
// has a closed form.
type intRepeat struct {
	n   int
	v   int32
	idx int
}

// NewIntRepeat returns n copies of v.
func NewIntRepeat(n int, v int32) IntSequence {
	return &intRepeat{n: n, v: v}
}

func (r *intRepeat) Next() (int32, bool) {
	if r.idx >= r.n {
		return 0, false
	}
	r.idx++
	return r.v, true
}

func (r *intRepeat) Reset() IntSequence { r.idx = 0; return r }
func (r *intRepeat) Len() int           { return r.n }
func (r *intRepeat) HasLength() bool    { return true }
func (r *intRepeat) HasStorage() bool   { return false }
func (r *intRepeat) Clone() IntSequence { return &intRepeat{n: r.n, v: r.v} }

func (r *intRepeat) IndexAt(i int) (int32, error) {
	if i < 0 || i >= r.n {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return r.v, nil
}

func (r *intRepeat) SubRange(start, end int) (IntSequence, bool) {
	if start < 0 || end > r.n || start > end {
		return nil, false
	}
	return &intRepeat{n: end - start, v: r.v}, true
}

func (r *intRepeat) AnalyticSum() (int32, bool)     { return r.v * int32(r.n), true }
func (r *intRepeat) AnalyticProduct() (int32, bool) { return intPow(r.v, r.n), true }
func (r *intRepeat) AnalyticMin() (int32, bool)     { return r.v, r.n > 0 }
func (r *intRepeat) AnalyticMax() (int32, bool)     { return r.v, r.n > 0 }

func (r *intRepeat) AnalyticDistinct() (IntSequence, bool) {
	if r.n == 0 {
		return &intRepeat{n: 0, v: r.v}, true
	}
	return &intRepeat{n: 1, v: r.v}, true
}

func (r *intRepeat) AnalyticSort(desc bool) (IntSequence, bool) {
	return &intRepeat{n: r.n, v: r.v}, true
}

func (r *intRepeat) AnalyticContains(v int32) (bool, bool) { return r.n > 0 && v == r.v, true }
func (r *intRepeat) AnalyticContainsZero() (bool, bool)    { return r.n > 0 && r.v == 0, true }
func (r *intRepeat) AnalyticNegate() (IntSequence, bool)   { return &intRepeat{n: r.n, v: -r.v}, true }

func (r *intRepeat) AnalyticShift(shift int32) (IntSequence, bool) {
	return &intRepeat{n: r.n, v: r.v + shift}, true
}

func (r *intRepeat) AnalyticScale(factor int32) (IntSequence, bool) {
	return &intRepeat{n: r.n, v: r.v * factor}, true
}

func intPow(base int32, exp int) int32 {
	result := int32(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// --- Vector-backed --------------------------------------------------------

// intVectorBacked wraps a dense vector.IntVector for indexed access and
// SIMD-delegated reductions/arithmetic.
type intVectorBacked struct {
	vec vector.IntVector
	idx int
}

// NewIntFromVector wraps v as a has-storage IntSequence.
func NewIntFromVector(v vector.IntVector) IntSequence {
	return &intVectorBacked{vec: v}
}

func (v *intVectorBacked) Next() (int32, bool) {
	if v.idx >= v.vec.Len() {
		return 0, false
	}
	val := v.vec.At(v.idx)
	v.idx++
	return val, true
}

func (v *intVectorBacked) Reset() IntSequence   { v.idx = 0; return v }
func (v *intVectorBacked) Len() int             { return v.vec.Len() }
func (v *intVectorBacked) HasLength() bool      { return true }
func (v *intVectorBacked) HasStorage() bool     { return true }
func (v *intVectorBacked) Clone() IntSequence   { return &intVectorBacked{vec: v.vec} }
func (v *intVectorBacked) Storage() vector.IntVector { return v.vec }

func (v *intVectorBacked) IndexAt(i int) (int32, error) {
	if i < 0 || i >= v.vec.Len() {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return v.vec.At(i), nil
}

func (v *intVectorBacked) SubRange(start, end int) (IntSequence, bool) {
	if start < 0 || end > v.vec.Len() || start > end {
		return nil, false
	}
	return &intVectorBacked{vec: v.vec.Slice(start, end)}, true
}

// --- Random ----------------------------------------------------------------

// intRandom draws n independent samples from [lo,hi) via a RandomSource.
// Per the sequence engine's determinism invariant, random variants are
// explicitly exempt from replaying identically after Reset.
type intRandom struct {
	n      int
	lo, hi int32
	src    randsrc.RandomSource
	idx    int
}

// NewIntRandom returns n draws from src.NextInt(lo, hi).
func NewIntRandom(n int, lo, hi int32, src randsrc.RandomSource) IntSequence {
	return &intRandom{n: n, lo: lo, hi: hi, src: src}
}

func (r *intRandom) Next() (int32, bool) {
	if r.idx >= r.n {
		return 0, false
	}
	r.idx++
	return r.src.NextInt(r.lo, r.hi), true
}

func (r *intRandom) Reset() IntSequence { r.idx = 0; return r }
func (r *intRandom) Len() int           { return r.n }
func (r *intRandom) HasLength() bool    { return true }
func (r *intRandom) HasStorage() bool   { return false }
func (r *intRandom) Clone() IntSequence {
	return &intRandom{n: r.n, lo: r.lo, hi: r.hi, src: r.src}
}

// --- Unfold ------------------------------------------------------------

// intUnfold1 is x[0]=seed, x[i+1]=f(x[i]), for n terms.
type intUnfold1 struct {
	n       int
	seed    int32
	f       func(int32) int32
	idx     int
	cur     int32
	started bool
}

// NewIntUnfold returns n terms of x[0]=seed, x[i+1]=f(x[i]).
func NewIntUnfold(n int, seed int32, f func(int32) int32) IntSequence {
	return &intUnfold1{n: n, seed: seed, f: f}
}

func (u *intUnfold1) Next() (int32, bool) {
	if u.idx >= u.n {
		return 0, false
	}
	if !u.started {
		u.cur = u.seed
		u.started = true
	} else {
		u.cur = u.f(u.cur)
	}
	u.idx++
	return u.cur, true
}

func (u *intUnfold1) Reset() IntSequence { u.idx = 0; u.started = false; return u }
func (u *intUnfold1) Len() int           { return u.n }
func (u *intUnfold1) HasLength() bool    { return true }
func (u *intUnfold1) HasStorage() bool   { return false }
func (u *intUnfold1) Clone() IntSequence {
	return &intUnfold1{n: u.n, seed: u.seed, f: u.f}
}

// intUnfoldIdx is x[0]=seed, x[i+1]=f(i+1, x[i]), for n terms.
type intUnfoldIdx struct {
	n       int
	seed    int32
	f       func(int, int32) int32
	idx     int
	cur     int32
	started bool
}

// NewIntUnfoldIndexed returns n terms of x[0]=seed, x[i+1]=f(i+1, x[i]).
func NewIntUnfoldIndexed(n int, seed int32, f func(i int, prev int32) int32) IntSequence {
	return &intUnfoldIdx{n: n, seed: seed, f: f}
}

func (u *intUnfoldIdx) Next() (int32, bool) {
	if u.idx >= u.n {
		return 0, false
	}
	if !u.started {
		u.cur = u.seed
		u.started = true
	} else {
		u.cur = u.f(u.idx, u.cur)
	}
	u.idx++
	return u.cur, true
}

func (u *intUnfoldIdx) Reset() IntSequence { u.idx = 0; u.started = false; return u }
func (u *intUnfoldIdx) Len() int           { return u.n }
func (u *intUnfoldIdx) HasLength() bool    { return true }
func (u *intUnfoldIdx) HasStorage() bool   { return false }
func (u *intUnfoldIdx) Clone() IntSequence {
	return &intUnfoldIdx{n: u.n, seed: u.seed, f: u.f}
}

// intUnfold2 is x[0]=seed1, x[1]=seed2, x[i+2]=f(x[i], x[i+1]), for n terms.
type intUnfold2 struct {
	n          int
	seed1      int32
	seed2      int32
	f          func(a, b int32) int32
	idx        int
	x0, x1     int32
}

// NewIntUnfold2 returns n terms of the two-seed recurrence
// x[0]=seed1, x[1]=seed2, x[i+2]=f(x[i], x[i+1]).
func NewIntUnfold2(n int, seed1, seed2 int32, f func(a, b int32) int32) IntSequence {
	return &intUnfold2{n: n, seed1: seed1, seed2: seed2, f: f}
}

func (u *intUnfold2) Next() (int32, bool) {
	if u.idx >= u.n {
		return 0, false
	}
	var v int32
	switch u.idx {
	case 0:
		v = u.seed1
	case 1:
		v = u.seed2
	default:
		v = u.f(u.x0, u.x1)
	}
	u.x0, u.x1 = u.x1, v
	u.idx++
	return v, true
}

func (u *intUnfold2) Reset() IntSequence { u.idx = 0; u.x0, u.x1 = 0, 0; return u }
func (u *intUnfold2) Len() int           { return u.n }
func (u *intUnfold2) HasLength() bool    { return true }
func (u *intUnfold2) HasStorage() bool   { return false }
func (u *intUnfold2) Clone() IntSequence {
	return &intUnfold2{n: u.n, seed1: u.seed1, seed2: u.seed2, f: u.f}
}

// --- Map / Filter / Zip (fused combinators) --------------------------------

// intMap applies f to every value of source. Constructing a Map over an
// existing Map (or FilteredMapped) fuses the two function applications
// into one node instead of nesting wrappers.
type intMap struct {
	source IntSequence
	f      func(int32) int32
}

// MapInt returns the sequence of f applied to every value of s, fusing
// with an already-mapped or already-filtered-then-mapped source so the
// result never nests more than one map layer.
func MapInt(s IntSequence, f func(int32) int32) IntSequence {
	switch src := s.(type) {
	case *intMap:
		return &intMap{source: src.source, f: chainInt(src.f, f)}
	case *intFilteredMapped:
		return &intFilteredMapped{source: src.source, pred: src.pred, f: chainInt(src.f, f)}
	case *intFilter:
		return &intFilteredMapped{source: src.source, pred: src.pred, f: f}
	default:
		return &intMap{source: s, f: f}
	}
}

func chainInt(first, second func(int32) int32) func(int32) int32 {
	return func(x int32) int32 { return second(first(x)) }
}

func (m *intMap) Next() (int32, bool) {
	v, ok := m.source.Next()
	if !ok {
		return 0, false
	}
	return m.f(v), true
}

func (m *intMap) Reset() IntSequence { m.source.Reset(); return m }
func (m *intMap) Len() int           { return m.source.Len() }
func (m *intMap) HasLength() bool    { return m.source.HasLength() }
func (m *intMap) HasStorage() bool   { return false }
func (m *intMap) Clone() IntSequence {
	return &intMap{source: m.source.Clone(), f: m.f}
}

// intFilter keeps only the values of source for which pred holds.
type intFilter struct {
	source IntSequence
	pred   func(int32) bool
}

// FilterInt returns the sequence of s's values for which pred holds.
func FilterInt(s IntSequence, pred func(int32) bool) IntSequence {
	return &intFilter{source: s, pred: pred}
}

func (f *intFilter) Next() (int32, bool) {
	for {
		v, ok := f.source.Next()
		if !ok {
			return 0, false
		}
		if f.pred(v) {
			return v, true
		}
	}
}

func (f *intFilter) Reset() IntSequence { f.source.Reset(); return f }
func (f *intFilter) Len() int {
	count := 0
	for {
		_, ok := f.Next()
		if !ok {
			return count
		}
		count++
	}
}
func (f *intFilter) HasLength() bool  { return false }
func (f *intFilter) HasStorage() bool { return false }
func (f *intFilter) Clone() IntSequence {
	return &intFilter{source: f.source.Clone(), pred: f.pred}
}

// intFilteredMapped is the fused result of filter(pred).map(f): a single
// node performing both the predicate test and the transformation.
type intFilteredMapped struct {
	source IntSequence
	pred   func(int32) bool
	f      func(int32) int32
}

func (fm *intFilteredMapped) Next() (int32, bool) {
	for {
		v, ok := fm.source.Next()
		if !ok {
			return 0, false
		}
		if fm.pred(v) {
			return fm.f(v), true
		}
	}
}

func (fm *intFilteredMapped) Reset() IntSequence { fm.source.Reset(); return fm }
func (fm *intFilteredMapped) Len() int {
	count := 0
	for {
		_, ok := fm.Next()
		if !ok {
			return count
		}
		count++
	}
}
func (fm *intFilteredMapped) HasLength() bool  { return false }
func (fm *intFilteredMapped) HasStorage() bool { return false }
func (fm *intFilteredMapped) Clone() IntSequence {
	return &intFilteredMapped{source: fm.source.Clone(), pred: fm.pred, f: fm.f}
}

// intZip consumes a and b in lockstep, applying f, stopping at the
// shorter of the two.
type intZip struct {
	a, b IntSequence
	f    func(x, y int32) int32
}

// ZipInt returns the pairwise application of f over a and b, stopping at
// the shorter operand.
func ZipInt(a, b IntSequence, f func(x, y int32) int32) IntSequence {
	return &intZip{a: a, b: b, f: f}
}

func (z *intZip) Next() (int32, bool) {
	va, oka := z.a.Next()
	vb, okb := z.b.Next()
	if !oka || !okb {
		return 0, false
	}
	return z.f(va, vb), true
}

func (z *intZip) Reset() IntSequence { z.a.Reset(); z.b.Reset(); return z }

func (z *intZip) Len() int {
	if z.HasLength() {
		al, bl := z.a.Len(), z.b.Len()
		if al < bl {
			return al
		}
		return bl
	}
	count := 0
	for {
		_, ok := z.Next()
		if !ok {
			return count
		}
		count++
	}
}

func (z *intZip) HasLength() bool  { return z.a.HasLength() && z.b.HasLength() }
func (z *intZip) HasStorage() bool { return false }
func (z *intZip) Clone() IntSequence {
	return &intZip{a: z.a.Clone(), b: z.b.Clone(), f: z.f}
}
