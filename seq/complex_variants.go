package seq

import (
	"fmt"
	"math/cmplx"

	"github.com/MeKo-Christian/austra-core/randsrc"
	"github.com/MeKo-Christian/austra-core/vector"
)

// --- Grid by count -------------------------------------------------------

// complexGrid is n+1 evenly spaced complex values between lower and
// upper, interpolated linearly along the straight line joining them.
type complexGrid struct {
	lower, upper complex128
	n            int
	idx          int
}

// NewComplexGrid returns n+1 evenly spaced values between lower and
// upper.
func NewComplexGrid(lower complex128, n int, upper complex128) (ComplexSequence, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seq: %w: grid count must be positive", ErrInvalidArgument)
	}
	return &complexGrid{lower: lower, upper: upper, n: n}, nil
}

func (g *complexGrid) delta() complex128 { return (g.upper - g.lower) / complex(float64(g.n), 0) }

func (g *complexGrid) valueAt(i int) complex128 { return g.lower + complex(float64(i), 0)*g.delta() }

func (g *complexGrid) Next() (complex128, bool) {
	if g.idx > g.n {
		return 0, false
	}
	v := g.valueAt(g.idx)
	g.idx++
	return v, true
}

func (g *complexGrid) Reset() ComplexSequence { g.idx = 0; return g }
func (g *complexGrid) Len() int               { return g.n + 1 }
func (g *complexGrid) HasLength() bool        { return true }
func (g *complexGrid) HasStorage() bool       { return false }
func (g *complexGrid) Clone() ComplexSequence {
	return &complexGrid{lower: g.lower, upper: g.upper, n: g.n}
}

func (g *complexGrid) IndexAt(i int) (complex128, error) {
	if i < 0 || i > g.n {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return g.valueAt(i), nil
}

func (g *complexGrid) AnalyticSum() (complex128, bool) {
	var total complex128
	for i := 0; i <= g.n; i++ {
		total += g.valueAt(i)
	}
	return total, true
}

// --- Repeat ----------------------------------------------------------------

type complexRepeat struct {
	n   int
	v   complex128
	idx int
}

// NewComplexRepeat returns n copies of v.
func NewComplexRepeat(n int, v complex128) ComplexSequence {
	return &complexRepeat{n: n, v: v}
}

func (r *complexRepeat) Next() (complex128, bool) {
	if r.idx >= r.n {
		return 0, false
	}
	r.idx++
	return r.v, true
}

func (r *complexRepeat) Reset() ComplexSequence { r.idx = 0; return r }
func (r *complexRepeat) Len() int               { return r.n }
func (r *complexRepeat) HasLength() bool        { return true }
func (r *complexRepeat) HasStorage() bool       { return false }
func (r *complexRepeat) Clone() ComplexSequence { return &complexRepeat{n: r.n, v: r.v} }

func (r *complexRepeat) IndexAt(i int) (complex128, error) {
	if i < 0 || i >= r.n {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return r.v, nil
}

func (r *complexRepeat) SubRange(start, end int) (ComplexSequence, bool) {
	if start < 0 || end > r.n || start > end {
		return nil, false
	}
	return &complexRepeat{n: end - start, v: r.v}, true
}

func (r *complexRepeat) AnalyticSum() (complex128, bool) {
	return r.v * complex(float64(r.n), 0), true
}

func (r *complexRepeat) AnalyticProduct() (complex128, bool) {
	return cmplx.Pow(r.v, complex(float64(r.n), 0)), true
}

func (r *complexRepeat) AnalyticDistinct() (ComplexSequence, bool) {
	if r.n == 0 {
		return &complexRepeat{n: 0, v: r.v}, true
	}
	return &complexRepeat{n: 1, v: r.v}, true
}

func (r *complexRepeat) AnalyticContains(v complex128) (bool, bool) { return v == r.v, true }
func (r *complexRepeat) AnalyticContainsZero() (bool, bool)        { return r.v == 0, true }
func (r *complexRepeat) AnalyticNegate() (ComplexSequence, bool) {
	return &complexRepeat{n: r.n, v: -r.v}, true
}

func (r *complexRepeat) AnalyticShift(shift complex128) (ComplexSequence, bool) {
	return &complexRepeat{n: r.n, v: r.v + shift}, true
}

func (r *complexRepeat) AnalyticScale(factor complex128) (ComplexSequence, bool) {
	return &complexRepeat{n: r.n, v: r.v * factor}, true
}

// --- Vector-backed ---------------------------------------------------------

type complexVectorBacked struct {
	vec vector.ComplexVector
	idx int
}

// NewComplexFromVector wraps v as a has-storage ComplexSequence.
func NewComplexFromVector(v vector.ComplexVector) ComplexSequence {
	return &complexVectorBacked{vec: v}
}

func (v *complexVectorBacked) Next() (complex128, bool) {
	if v.idx >= v.vec.Len() {
		return 0, false
	}
	val := v.vec.At(v.idx)
	v.idx++
	return val, true
}

func (v *complexVectorBacked) Reset() ComplexSequence     { v.idx = 0; return v }
func (v *complexVectorBacked) Len() int                   { return v.vec.Len() }
func (v *complexVectorBacked) HasLength() bool            { return true }
func (v *complexVectorBacked) HasStorage() bool           { return true }
func (v *complexVectorBacked) Clone() ComplexSequence      { return &complexVectorBacked{vec: v.vec} }
func (v *complexVectorBacked) Storage() vector.ComplexVector { return v.vec }

func (v *complexVectorBacked) IndexAt(i int) (complex128, error) {
	if i < 0 || i >= v.vec.Len() {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return v.vec.At(i), nil
}

func (v *complexVectorBacked) SubRange(start, end int) (ComplexSequence, bool) {
	if start < 0 || end > v.vec.Len() || start > end {
		return nil, false
	}
	return &complexVectorBacked{vec: v.vec.Slice(start, end)}, true
}

// --- Random / normal random --------------------------------------------

type complexRandom struct {
	n           int
	lo, hi      float64
	src         randsrc.RandomSource
	idx         int
}

// NewComplexRandom returns n draws with real and imaginary parts each
// independently drawn from src.NextDouble scaled into [lo,hi).
func NewComplexRandom(n int, lo, hi float64, src randsrc.RandomSource) ComplexSequence {
	return &complexRandom{n: n, lo: lo, hi: hi, src: src}
}

func (r *complexRandom) Next() (complex128, bool) {
	if r.idx >= r.n {
		return 0, false
	}
	r.idx++
	re := r.lo + r.src.NextDouble()*(r.hi-r.lo)
	im := r.lo + r.src.NextDouble()*(r.hi-r.lo)
	return complex(re, im), true
}

func (r *complexRandom) Reset() ComplexSequence { r.idx = 0; return r }
func (r *complexRandom) Len() int               { return r.n }
func (r *complexRandom) HasLength() bool        { return true }
func (r *complexRandom) HasStorage() bool       { return false }
func (r *complexRandom) Clone() ComplexSequence {
	return &complexRandom{n: r.n, lo: r.lo, hi: r.hi, src: r.src}
}

type complexNormalRandom struct {
	n   int
	src randsrc.NormalSource
	idx int
}

// NewComplexNormalRandom returns n draws with real and imaginary parts
// each independently drawn from src.
func NewComplexNormalRandom(n int, src randsrc.NormalSource) ComplexSequence {
	return &complexNormalRandom{n: n, src: src}
}

func (r *complexNormalRandom) Next() (complex128, bool) {
	if r.idx >= r.n {
		return 0, false
	}
	r.idx++
	re := r.src.NextDouble()
	im := r.src.NextDouble()
	return complex(re, im), true
}

func (r *complexNormalRandom) Reset() ComplexSequence { r.idx = 0; return r }
func (r *complexNormalRandom) Len() int               { return r.n }
func (r *complexNormalRandom) HasLength() bool        { return true }
func (r *complexNormalRandom) HasStorage() bool       { return false }
func (r *complexNormalRandom) Clone() ComplexSequence {
	return &complexNormalRandom{n: r.n, src: r.src}
}

// --- Unfold ------------------------------------------------------------

type complexUnfold1 struct {
	n       int
	seed    complex128
	f       func(complex128) complex128
	idx     int
	cur     complex128
	started bool
}

// NewComplexUnfold returns n terms of x[0]=seed, x[i+1]=f(x[i]).
func NewComplexUnfold(n int, seed complex128, f func(complex128) complex128) ComplexSequence {
	return &complexUnfold1{n: n, seed: seed, f: f}
}

func (u *complexUnfold1) Next() (complex128, bool) {
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

func (u *complexUnfold1) Reset() ComplexSequence { u.idx = 0; u.started = false; return u }
func (u *complexUnfold1) Len() int               { return u.n }
func (u *complexUnfold1) HasLength() bool        { return true }
func (u *complexUnfold1) HasStorage() bool       { return false }
func (u *complexUnfold1) Clone() ComplexSequence {
	return &complexUnfold1{n: u.n, seed: u.seed, f: u.f}
}

type complexUnfoldIdx struct {
	n       int
	seed    complex128
	f       func(int, complex128) complex128
	idx     int
	cur     complex128
	started bool
}

// NewComplexUnfoldIndexed returns n terms of x[0]=seed, x[i+1]=f(i+1, x[i]).
func NewComplexUnfoldIndexed(n int, seed complex128, f func(i int, prev complex128) complex128) ComplexSequence {
	return &complexUnfoldIdx{n: n, seed: seed, f: f}
}

func (u *complexUnfoldIdx) Next() (complex128, bool) {
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

func (u *complexUnfoldIdx) Reset() ComplexSequence { u.idx = 0; u.started = false; return u }
func (u *complexUnfoldIdx) Len() int               { return u.n }
func (u *complexUnfoldIdx) HasLength() bool        { return true }
func (u *complexUnfoldIdx) HasStorage() bool       { return false }
func (u *complexUnfoldIdx) Clone() ComplexSequence {
	return &complexUnfoldIdx{n: u.n, seed: u.seed, f: u.f}
}

type complexUnfold2 struct {
	n            int
	seed1, seed2 complex128
	f            func(a, b complex128) complex128
	idx          int
	x0, x1       complex128
}

// NewComplexUnfold2 returns n terms of x[0]=seed1, x[1]=seed2,
// x[i+2]=f(x[i], x[i+1]).
func NewComplexUnfold2(n int, seed1, seed2 complex128, f func(a, b complex128) complex128) ComplexSequence {
	return &complexUnfold2{n: n, seed1: seed1, seed2: seed2, f: f}
}

func (u *complexUnfold2) Next() (complex128, bool) {
	if u.idx >= u.n {
		return 0, false
	}
	var v complex128
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

func (u *complexUnfold2) Reset() ComplexSequence { u.idx = 0; u.x0, u.x1 = 0, 0; return u }
func (u *complexUnfold2) Len() int               { return u.n }
func (u *complexUnfold2) HasLength() bool        { return true }
func (u *complexUnfold2) HasStorage() bool       { return false }
func (u *complexUnfold2) Clone() ComplexSequence {
	return &complexUnfold2{n: u.n, seed1: u.seed1, seed2: u.seed2, f: u.f}
}

// --- Map / Filter / Zip (fused combinators) --------------------------------

type complexMap struct {
	source ComplexSequence
	f      func(complex128) complex128
}

// MapComplex returns the sequence of f applied to every value of s,
// fusing with an already-mapped or already-filtered-then-mapped source.
func MapComplex(s ComplexSequence, f func(complex128) complex128) ComplexSequence {
	switch src := s.(type) {
	case *complexMap:
		return &complexMap{source: src.source, f: chainComplex(src.f, f)}
	case *complexFilteredMapped:
		return &complexFilteredMapped{source: src.source, pred: src.pred, f: chainComplex(src.f, f)}
	case *complexFilter:
		return &complexFilteredMapped{source: src.source, pred: src.pred, f: f}
	default:
		return &complexMap{source: s, f: f}
	}
}

func chainComplex(first, second func(complex128) complex128) func(complex128) complex128 {
	return func(x complex128) complex128 { return second(first(x)) }
}

func (m *complexMap) Next() (complex128, bool) {
	v, ok := m.source.Next()
	if !ok {
		return 0, false
	}
	return m.f(v), true
}

func (m *complexMap) Reset() ComplexSequence { m.source.Reset(); return m }
func (m *complexMap) Len() int               { return m.source.Len() }
func (m *complexMap) HasLength() bool        { return m.source.HasLength() }
func (m *complexMap) HasStorage() bool       { return false }
func (m *complexMap) Clone() ComplexSequence {
	return &complexMap{source: m.source.Clone(), f: m.f}
}

type complexFilter struct {
	source ComplexSequence
	pred   func(complex128) bool
}

// FilterComplex returns the sequence of s's values for which pred holds.
func FilterComplex(s ComplexSequence, pred func(complex128) bool) ComplexSequence {
	return &complexFilter{source: s, pred: pred}
}

func (f *complexFilter) Next() (complex128, bool) {
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

func (f *complexFilter) Reset() ComplexSequence { f.source.Reset(); return f }
func (f *complexFilter) Len() int {
	count := 0
	for {
		_, ok := f.Next()
		if !ok {
			return count
		}
		count++
	}
}
func (f *complexFilter) HasLength() bool  { return false }
func (f *complexFilter) HasStorage() bool { return false }
func (f *complexFilter) Clone() ComplexSequence {
	return &complexFilter{source: f.source.Clone(), pred: f.pred}
}

type complexFilteredMapped struct {
	source ComplexSequence
	pred   func(complex128) bool
	f      func(complex128) complex128
}

func (fm *complexFilteredMapped) Next() (complex128, bool) {
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

func (fm *complexFilteredMapped) Reset() ComplexSequence { fm.source.Reset(); return fm }
func (fm *complexFilteredMapped) Len() int {
	count := 0
	for {
		_, ok := fm.Next()
		if !ok {
			return count
		}
		count++
	}
}
func (fm *complexFilteredMapped) HasLength() bool  { return false }
func (fm *complexFilteredMapped) HasStorage() bool { return false }
func (fm *complexFilteredMapped) Clone() ComplexSequence {
	return &complexFilteredMapped{source: fm.source.Clone(), pred: fm.pred, f: fm.f}
}

type complexZip struct {
	a, b ComplexSequence
	f    func(x, y complex128) complex128
}

// ZipComplex returns the pairwise application of f over a and b,
// stopping at the shorter operand.
func ZipComplex(a, b ComplexSequence, f func(x, y complex128) complex128) ComplexSequence {
	return &complexZip{a: a, b: b, f: f}
}

func (z *complexZip) Next() (complex128, bool) {
	va, oka := z.a.Next()
	vb, okb := z.b.Next()
	if !oka || !okb {
		return 0, false
	}
	return z.f(va, vb), true
}

func (z *complexZip) Reset() ComplexSequence { z.a.Reset(); z.b.Reset(); return z }

func (z *complexZip) Len() int {
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

func (z *complexZip) HasLength() bool  { return z.a.HasLength() && z.b.HasLength() }
func (z *complexZip) HasStorage() bool { return false }
func (z *complexZip) Clone() ComplexSequence {
	return &complexZip{a: z.a.Clone(), b: z.b.Clone(), f: z.f}
}

// --- Take-while / take-until ------------------------------------------

type complexTakeWhile struct {
	source ComplexSequence
	pred   func(complex128) bool
	done   bool
}

func (t *complexTakeWhile) Next() (complex128, bool) {
	if t.done {
		return 0, false
	}
	v, ok := t.source.Next()
	if !ok || !t.pred(v) {
		t.done = true
		return 0, false
	}
	return v, true
}

func (t *complexTakeWhile) Reset() ComplexSequence { t.source.Reset(); t.done = false; return t }
func (t *complexTakeWhile) Len() int {
	count := 0
	for {
		_, ok := t.Next()
		if !ok {
			return count
		}
		count++
	}
}
func (t *complexTakeWhile) HasLength() bool  { return false }
func (t *complexTakeWhile) HasStorage() bool { return false }
func (t *complexTakeWhile) Clone() ComplexSequence {
	return &complexTakeWhile{source: t.source.Clone(), pred: t.pred}
}

type complexTakeUntil struct {
	source ComplexSequence
	pred   func(complex128) bool
	done   bool
}

func (t *complexTakeUntil) Next() (complex128, bool) {
	if t.done {
		return 0, false
	}
	v, ok := t.source.Next()
	if !ok {
		t.done = true
		return 0, false
	}
	if t.pred(v) {
		t.done = true
	}
	return v, true
}

func (t *complexTakeUntil) Reset() ComplexSequence { t.source.Reset(); t.done = false; return t }
func (t *complexTakeUntil) Len() int {
	count := 0
	for {
		_, ok := t.Next()
		if !ok {
			return count
		}
		count++
	}
}
func (t *complexTakeUntil) HasLength() bool  { return false }
func (t *complexTakeUntil) HasStorage() bool { return false }
func (t *complexTakeUntil) Clone() ComplexSequence {
	return &complexTakeUntil{source: t.source.Clone(), pred: t.pred}
}
