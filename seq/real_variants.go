package seq

import (
	"fmt"
	"math"

	"github.com/MeKo-Christian/austra-core/randsrc"
	"github.com/MeKo-Christian/austra-core/vector"
)

// --- Range (integer-valued, real-typed) ------------------------------------

// realRange is the real-domain analogue of intRange: the whole-valued
// sequence first, first±1, ..., last.
type realRange struct {
	first, last float64
	idx         int
}

// NewRealRange returns the whole-valued sequence from first to last
// inclusive, ascending if first<=last and descending otherwise.
func NewRealRange(first, last float64) RealSequence {
	return &realRange{first: first, last: last}
}

func (r *realRange) step() float64 {
	if r.last >= r.first {
		return 1
	}
	return -1
}

func (r *realRange) length() int {
	return int(math.Abs(r.last-r.first)) + 1
}

func (r *realRange) Next() (float64, bool) {
	if r.idx >= r.length() {
		return 0, false
	}
	v := r.first + float64(r.idx)*r.step()
	r.idx++
	return v, true
}

func (r *realRange) Reset() RealSequence { r.idx = 0; return r }
func (r *realRange) Len() int            { return r.length() }
func (r *realRange) HasLength() bool     { return true }
func (r *realRange) HasStorage() bool    { return false }
func (r *realRange) Clone() RealSequence { return &realRange{first: r.first, last: r.last} }

func (r *realRange) bounds() (lo, hi float64) {
	lo, hi = r.first, r.last
	if lo > hi {
		lo, hi = hi, lo
	}
	return
}

func (r *realRange) IndexAt(i int) (float64, error) {
	if i < 0 || i >= r.length() {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return r.first + float64(i)*r.step(), nil
}

func (r *realRange) SubRange(start, end int) (RealSequence, bool) {
	if start < 0 || end > r.length() || start > end {
		return nil, false
	}
	if start == end {
		return &realRepeat{n: 0}, true
	}
	step := r.step()
	newFirst := r.first + float64(start)*step
	newLast := r.first + float64(end-1)*step
	return &realRange{first: newFirst, last: newLast}, true
}

func (r *realRange) AnalyticSum() (float64, bool) {
	lo, hi := r.bounds()
	n := hi - lo + 1
	return (lo + hi) * n / 2, true
}

func (r *realRange) AnalyticMin() (float64, bool) { lo, _ := r.bounds(); return lo, true }
func (r *realRange) AnalyticMax() (float64, bool) { _, hi := r.bounds(); return hi, true }

func (r *realRange) AnalyticDistinct() (RealSequence, bool) {
	return &realRange{first: r.first, last: r.last}, true
}

func (r *realRange) AnalyticSort(desc bool) (RealSequence, bool) {
	lo, hi := r.bounds()
	if desc {
		return &realRange{first: hi, last: lo}, true
	}
	return &realRange{first: lo, last: hi}, true
}

func (r *realRange) AnalyticContains(v float64) (bool, bool) {
	lo, hi := r.bounds()
	return v >= lo && v <= hi, true
}

func (r *realRange) AnalyticContainsZero() (bool, bool) {
	lo, hi := r.bounds()
	return 0 >= lo && 0 <= hi, true
}

func (r *realRange) AnalyticNegate() (RealSequence, bool) {
	return &realRange{first: -r.first, last: -r.last}, true
}

func (r *realRange) AnalyticShift(shift float64) (RealSequence, bool) {
	return &realRange{first: r.first + shift, last: r.last + shift}, true
}

func (r *realRange) AnalyticScale(factor float64) (RealSequence, bool) {
	data := MaterializeReal(&realRange{first: r.first, last: r.last})
	out := make([]float64, len(data))
	for i, x := range data {
		out[i] = x * factor
	}
	return NewRealFromVector(vector.NewDenseReals(out)), true
}

// --- Grid by count -------------------------------------------------------

// realGrid is n+1 evenly spaced values between lower and upper.
type realGrid struct {
	lower, upper float64
	n            int
	idx          int
}

// NewRealGrid returns n+1 evenly spaced values between lower and upper.
func NewRealGrid(lower float64, n int, upper float64) (RealSequence, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seq: %w: grid count must be positive", ErrInvalidArgument)
	}
	return &realGrid{lower: lower, upper: upper, n: n}, nil
}

func (g *realGrid) delta() float64 { return (g.upper - g.lower) / float64(g.n) }

func (g *realGrid) valueAt(i int) float64 { return g.lower + float64(i)*g.delta() }

func (g *realGrid) Next() (float64, bool) {
	if g.idx > g.n {
		return 0, false
	}
	v := g.valueAt(g.idx)
	g.idx++
	return v, true
}

func (g *realGrid) Reset() RealSequence { g.idx = 0; return g }
func (g *realGrid) Len() int            { return g.n + 1 }
func (g *realGrid) HasLength() bool     { return true }
func (g *realGrid) HasStorage() bool    { return false }
func (g *realGrid) Clone() RealSequence { return &realGrid{lower: g.lower, upper: g.upper, n: g.n} }

func (g *realGrid) IndexAt(i int) (float64, error) {
	if i < 0 || i > g.n {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return g.valueAt(i), nil
}

func (g *realGrid) AnalyticSum() (float64, bool) {
	total := 0.0
	for i := 0; i <= g.n; i++ {
		total += g.valueAt(i)
	}
	return total, true
}

func (g *realGrid) AnalyticMin() (float64, bool) {
	if g.delta() >= 0 {
		return g.lower, true
	}
	return g.upper, true
}

func (g *realGrid) AnalyticMax() (float64, bool) {
	if g.delta() >= 0 {
		return g.upper, true
	}
	return g.lower, true
}

func (g *realGrid) AnalyticSort(desc bool) (RealSequence, bool) {
	ascending := g.delta() >= 0
	if ascending == !desc {
		return &realGrid{lower: g.lower, upper: g.upper, n: g.n}, true
	}
	return &realGrid{lower: g.upper, upper: g.lower, n: g.n}, true
}

// --- Repeat ----------------------------------------------------------------

// realRepeat yields n copies of a single value.
type realRepeat struct {
	n   int
	v   float64
	idx int
}

// NewRealRepeat returns n copies of v.
func NewRealRepeat(n int, v float64) RealSequence {
	return &realRepeat{n: n, v: v}
}

func (r *realRepeat) Next() (float64, bool) {
	if r.idx >= r.n {
		return 0, false
	}
	r.idx++
	return r.v, true
}

func (r *realRepeat) Reset() RealSequence { r.idx = 0; return r }
func (r *realRepeat) Len() int            { return r.n }
func (r *realRepeat) HasLength() bool     { return true }
func (r *realRepeat) HasStorage() bool    { return false }
func (r *realRepeat) Clone() RealSequence { return &realRepeat{n: r.n, v: r.v} }

func (r *realRepeat) IndexAt(i int) (float64, error) {
	if i < 0 || i >= r.n {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return r.v, nil
}

func (r *realRepeat) SubRange(start, end int) (RealSequence, bool) {
	if start < 0 || end > r.n || start > end {
		return nil, false
	}
	return &realRepeat{n: end - start, v: r.v}, true
}

func (r *realRepeat) AnalyticSum() (float64, bool)     { return r.v * float64(r.n), true }
func (r *realRepeat) AnalyticProduct() (float64, bool) { return math.Pow(r.v, float64(r.n)), true }
func (r *realRepeat) AnalyticMin() (float64, bool)     { return r.v, r.n > 0 }
func (r *realRepeat) AnalyticMax() (float64, bool)     { return r.v, r.n > 0 }

func (r *realRepeat) AnalyticDistinct() (RealSequence, bool) {
	if r.n == 0 {
		return &realRepeat{n: 0, v: r.v}, true
	}
	return &realRepeat{n: 1, v: r.v}, true
}

func (r *realRepeat) AnalyticSort(desc bool) (RealSequence, bool) {
	return &realRepeat{n: r.n, v: r.v}, true
}

func (r *realRepeat) AnalyticContains(v float64) (bool, bool) { return r.n > 0 && v == r.v, true }
func (r *realRepeat) AnalyticContainsZero() (bool, bool)      { return r.n > 0 && r.v == 0, true }
func (r *realRepeat) AnalyticNegate() (RealSequence, bool)    { return &realRepeat{n: r.n, v: -r.v}, true }

func (r *realRepeat) AnalyticShift(shift float64) (RealSequence, bool) {
	return &realRepeat{n: r.n, v: r.v + shift}, true
}

func (r *realRepeat) AnalyticScale(factor float64) (RealSequence, bool) {
	return &realRepeat{n: r.n, v: r.v * factor}, true
}

// --- Vector-backed ---------------------------------------------------------

type realVectorBacked struct {
	vec vector.RealVector
	idx int
}

// NewRealFromVector wraps v as a has-storage RealSequence.
func NewRealFromVector(v vector.RealVector) RealSequence {
	return &realVectorBacked{vec: v}
}

func (v *realVectorBacked) Next() (float64, bool) {
	if v.idx >= v.vec.Len() {
		return 0, false
	}
	val := v.vec.At(v.idx)
	v.idx++
	return val, true
}

func (v *realVectorBacked) Reset() RealSequence        { v.idx = 0; return v }
func (v *realVectorBacked) Len() int                   { return v.vec.Len() }
func (v *realVectorBacked) HasLength() bool            { return true }
func (v *realVectorBacked) HasStorage() bool           { return true }
func (v *realVectorBacked) Clone() RealSequence        { return &realVectorBacked{vec: v.vec} }
func (v *realVectorBacked) Storage() vector.RealVector { return v.vec }

func (v *realVectorBacked) IndexAt(i int) (float64, error) {
	if i < 0 || i >= v.vec.Len() {
		return 0, fmt.Errorf("seq: %w: index %d", ErrOutOfRange, i)
	}
	return v.vec.At(i), nil
}

func (v *realVectorBacked) SubRange(start, end int) (RealSequence, bool) {
	if start < 0 || end > v.vec.Len() || start > end {
		return nil, false
	}
	return &realVectorBacked{vec: v.vec.Slice(start, end)}, true
}

// --- Random / normal random --------------------------------------------

type realRandom struct {
	n      int
	lo, hi float64
	src    randsrc.RandomSource
	idx    int
}

// NewRealRandom returns n draws from src.NextDouble scaled into [lo,hi).
func NewRealRandom(n int, lo, hi float64, src randsrc.RandomSource) RealSequence {
	return &realRandom{n: n, lo: lo, hi: hi, src: src}
}

func (r *realRandom) Next() (float64, bool) {
	if r.idx >= r.n {
		return 0, false
	}
	r.idx++
	return r.lo + r.src.NextDouble()*(r.hi-r.lo), true
}

func (r *realRandom) Reset() RealSequence { r.idx = 0; return r }
func (r *realRandom) Len() int            { return r.n }
func (r *realRandom) HasLength() bool     { return true }
func (r *realRandom) HasStorage() bool    { return false }
func (r *realRandom) Clone() RealSequence {
	return &realRandom{n: r.n, lo: r.lo, hi: r.hi, src: r.src}
}

type realNormalRandom struct {
	n   int
	src randsrc.NormalSource
	idx int
}

// NewRealNormalRandom returns n draws from src.
func NewRealNormalRandom(n int, src randsrc.NormalSource) RealSequence {
	return &realNormalRandom{n: n, src: src}
}

func (r *realNormalRandom) Next() (float64, bool) {
	if r.idx >= r.n {
		return 0, false
	}
	r.idx++
	return r.src.NextDouble(), true
}

func (r *realNormalRandom) Reset() RealSequence { r.idx = 0; return r }
func (r *realNormalRandom) Len() int            { return r.n }
func (r *realNormalRandom) HasLength() bool     { return true }
func (r *realNormalRandom) HasStorage() bool    { return false }
func (r *realNormalRandom) Clone() RealSequence {
	return &realNormalRandom{n: r.n, src: r.src}
}

// --- Unfold ------------------------------------------------------------

type realUnfold1 struct {
	n       int
	seed    float64
	f       func(float64) float64
	idx     int
	cur     float64
	started bool
}

// NewRealUnfold returns n terms of x[0]=seed, x[i+1]=f(x[i]).
func NewRealUnfold(n int, seed float64, f func(float64) float64) RealSequence {
	return &realUnfold1{n: n, seed: seed, f: f}
}

func (u *realUnfold1) Next() (float64, bool) {
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

func (u *realUnfold1) Reset() RealSequence { u.idx = 0; u.started = false; return u }
func (u *realUnfold1) Len() int            { return u.n }
func (u *realUnfold1) HasLength() bool     { return true }
func (u *realUnfold1) HasStorage() bool    { return false }
func (u *realUnfold1) Clone() RealSequence { return &realUnfold1{n: u.n, seed: u.seed, f: u.f} }

type realUnfoldIdx struct {
	n       int
	seed    float64
	f       func(int, float64) float64
	idx     int
	cur     float64
	started bool
}

// NewRealUnfoldIndexed returns n terms of x[0]=seed, x[i+1]=f(i+1, x[i]).
func NewRealUnfoldIndexed(n int, seed float64, f func(i int, prev float64) float64) RealSequence {
	return &realUnfoldIdx{n: n, seed: seed, f: f}
}

func (u *realUnfoldIdx) Next() (float64, bool) {
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

func (u *realUnfoldIdx) Reset() RealSequence { u.idx = 0; u.started = false; return u }
func (u *realUnfoldIdx) Len() int            { return u.n }
func (u *realUnfoldIdx) HasLength() bool     { return true }
func (u *realUnfoldIdx) HasStorage() bool    { return false }
func (u *realUnfoldIdx) Clone() RealSequence {
	return &realUnfoldIdx{n: u.n, seed: u.seed, f: u.f}
}

type realUnfold2 struct {
	n            int
	seed1, seed2 float64
	f            func(a, b float64) float64
	idx          int
	x0, x1       float64
}

// NewRealUnfold2 returns n terms of x[0]=seed1, x[1]=seed2,
// x[i+2]=f(x[i], x[i+1]).
func NewRealUnfold2(n int, seed1, seed2 float64, f func(a, b float64) float64) RealSequence {
	return &realUnfold2{n: n, seed1: seed1, seed2: seed2, f: f}
}

func (u *realUnfold2) Next() (float64, bool) {
	if u.idx >= u.n {
		return 0, false
	}
	var v float64
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

func (u *realUnfold2) Reset() RealSequence { u.idx = 0; u.x0, u.x1 = 0, 0; return u }
func (u *realUnfold2) Len() int            { return u.n }
func (u *realUnfold2) HasLength() bool     { return true }
func (u *realUnfold2) HasStorage() bool    { return false }
func (u *realUnfold2) Clone() RealSequence {
	return &realUnfold2{n: u.n, seed1: u.seed1, seed2: u.seed2, f: u.f}
}

// --- AR(p) / MA(q) -----------------------------------------------------

// realAR is an autoregressive process of order p:
// x[t] = coeffs . (x[t-1], ..., x[t-p]) + N(0, sigma^2).
type realAR struct {
	n       int
	coeffs  []float64
	src     randsrc.NormalSource
	idx     int
	history []float64 // most recent len(coeffs) values, newest last
}

// NewRealAR returns n terms of an AR(p) process with the given
// coefficients and innovation source, initialized from a zero history.
func NewRealAR(n int, coeffs []float64, src randsrc.NormalSource) (RealSequence, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("seq: %w: AR coefficients must be non-empty", ErrInvalidArgument)
	}
	return &realAR{n: n, coeffs: coeffs, src: src, history: make([]float64, len(coeffs))}, nil
}

func (a *realAR) Next() (float64, bool) {
	if a.idx >= a.n {
		return 0, false
	}
	p := len(a.coeffs)
	var pred float64
	for i := 0; i < p; i++ {
		// history[p-1] is x[t-1], history[p-2] is x[t-2], ...
		pred += a.coeffs[i] * a.history[p-1-i]
	}
	x := pred + a.src.NextDouble()
	copy(a.history, a.history[1:])
	a.history[p-1] = x
	a.idx++
	return x, true
}

func (a *realAR) Reset() RealSequence {
	a.idx = 0
	for i := range a.history {
		a.history[i] = 0
	}
	return a
}
func (a *realAR) Len() int         { return a.n }
func (a *realAR) HasLength() bool  { return true }
func (a *realAR) HasStorage() bool { return false }
func (a *realAR) Clone() RealSequence {
	coeffs := make([]float64, len(a.coeffs))
	copy(coeffs, a.coeffs)
	return &realAR{n: a.n, coeffs: coeffs, src: a.src, history: make([]float64, len(coeffs))}
}

// realMA is a moving-average process of order q:
// x[t] = mean + eps[t] + coeffs . (eps[t-1], ..., eps[t-q]).
type realMA struct {
	n        int
	mean     float64
	coeffs   []float64
	src      randsrc.NormalSource
	idx      int
	epsHist  []float64 // most recent len(coeffs) innovations, newest last
}

// NewRealMA returns n terms of an MA(q) process with the given mean,
// coefficients and innovation source, initialized from a zero innovation
// history.
func NewRealMA(n int, mean float64, coeffs []float64, src randsrc.NormalSource) (RealSequence, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("seq: %w: MA coefficients must be non-empty", ErrInvalidArgument)
	}
	return &realMA{n: n, mean: mean, coeffs: coeffs, src: src, epsHist: make([]float64, len(coeffs))}, nil
}

func (m *realMA) Next() (float64, bool) {
	if m.idx >= m.n {
		return 0, false
	}
	q := len(m.coeffs)
	eps := m.src.NextDouble()
	var x float64
	x = m.mean + eps
	for i := 0; i < q; i++ {
		x += m.coeffs[i] * m.epsHist[q-1-i]
	}
	copy(m.epsHist, m.epsHist[1:])
	m.epsHist[q-1] = eps
	m.idx++
	return x, true
}

func (m *realMA) Reset() RealSequence {
	m.idx = 0
	for i := range m.epsHist {
		m.epsHist[i] = 0
	}
	return m
}
func (m *realMA) Len() int         { return m.n }
func (m *realMA) HasLength() bool  { return true }
func (m *realMA) HasStorage() bool { return false }
func (m *realMA) Clone() RealSequence {
	coeffs := make([]float64, len(m.coeffs))
	copy(coeffs, m.coeffs)
	return &realMA{n: m.n, mean: m.mean, coeffs: coeffs, src: m.src, epsHist: make([]float64, len(coeffs))}
}

// --- Map / Filter / Zip (fused combinators) --------------------------------

type realMap struct {
	source RealSequence
	f      func(float64) float64
}

// MapReal returns the sequence of f applied to every value of s, fusing
// with an already-mapped or already-filtered-then-mapped source.
func MapReal(s RealSequence, f func(float64) float64) RealSequence {
	switch src := s.(type) {
	case *realMap:
		return &realMap{source: src.source, f: chainReal(src.f, f)}
	case *realFilteredMapped:
		return &realFilteredMapped{source: src.source, pred: src.pred, f: chainReal(src.f, f)}
	case *realFilter:
		return &realFilteredMapped{source: src.source, pred: src.pred, f: f}
	default:
		return &realMap{source: s, f: f}
	}
}

func chainReal(first, second func(float64) float64) func(float64) float64 {
	return func(x float64) float64 { return second(first(x)) }
}

func (m *realMap) Next() (float64, bool) {
	v, ok := m.source.Next()
	if !ok {
		return 0, false
	}
	return m.f(v), true
}

func (m *realMap) Reset() RealSequence { m.source.Reset(); return m }
func (m *realMap) Len() int            { return m.source.Len() }
func (m *realMap) HasLength() bool     { return m.source.HasLength() }
func (m *realMap) HasStorage() bool    { return false }
func (m *realMap) Clone() RealSequence { return &realMap{source: m.source.Clone(), f: m.f} }

type realFilter struct {
	source RealSequence
	pred   func(float64) bool
}

// FilterReal returns the sequence of s's values for which pred holds.
func FilterReal(s RealSequence, pred func(float64) bool) RealSequence {
	return &realFilter{source: s, pred: pred}
}

func (f *realFilter) Next() (float64, bool) {
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

func (f *realFilter) Reset() RealSequence { f.source.Reset(); return f }
func (f *realFilter) Len() int {
	count := 0
	for {
		_, ok := f.Next()
		if !ok {
			return count
		}
		count++
	}
}
func (f *realFilter) HasLength() bool  { return false }
func (f *realFilter) HasStorage() bool { return false }
func (f *realFilter) Clone() RealSequence {
	return &realFilter{source: f.source.Clone(), pred: f.pred}
}

type realFilteredMapped struct {
	source RealSequence
	pred   func(float64) bool
	f      func(float64) float64
}

func (fm *realFilteredMapped) Next() (float64, bool) {
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

func (fm *realFilteredMapped) Reset() RealSequence { fm.source.Reset(); return fm }
func (fm *realFilteredMapped) Len() int {
	count := 0
	for {
		_, ok := fm.Next()
		if !ok {
			return count
		}
		count++
	}
}
func (fm *realFilteredMapped) HasLength() bool  { return false }
func (fm *realFilteredMapped) HasStorage() bool { return false }
func (fm *realFilteredMapped) Clone() RealSequence {
	return &realFilteredMapped{source: fm.source.Clone(), pred: fm.pred, f: fm.f}
}

type realZip struct {
	a, b RealSequence
	f    func(x, y float64) float64
}

// ZipReal returns the pairwise application of f over a and b, stopping at
// the shorter operand.
func ZipReal(a, b RealSequence, f func(x, y float64) float64) RealSequence {
	return &realZip{a: a, b: b, f: f}
}

func (z *realZip) Next() (float64, bool) {
	va, oka := z.a.Next()
	vb, okb := z.b.Next()
	if !oka || !okb {
		return 0, false
	}
	return z.f(va, vb), true
}

func (z *realZip) Reset() RealSequence { z.a.Reset(); z.b.Reset(); return z }

func (z *realZip) Len() int {
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

func (z *realZip) HasLength() bool  { return z.a.HasLength() && z.b.HasLength() }
func (z *realZip) HasStorage() bool { return false }
func (z *realZip) Clone() RealSequence {
	return &realZip{a: z.a.Clone(), b: z.b.Clone(), f: z.f}
}

// --- Take-while / take-until ------------------------------------------

type realTakeWhile struct {
	source RealSequence
	pred   func(float64) bool
	done   bool
}

func (t *realTakeWhile) Next() (float64, bool) {
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

func (t *realTakeWhile) Reset() RealSequence { t.source.Reset(); t.done = false; return t }
func (t *realTakeWhile) Len() int {
	count := 0
	for {
		_, ok := t.Next()
		if !ok {
			return count
		}
		count++
	}
}
func (t *realTakeWhile) HasLength() bool  { return false }
func (t *realTakeWhile) HasStorage() bool { return false }
func (t *realTakeWhile) Clone() RealSequence {
	return &realTakeWhile{source: t.source.Clone(), pred: t.pred}
}

type realTakeUntil struct {
	source RealSequence
	pred   func(float64) bool
	done   bool
}

func (t *realTakeUntil) Next() (float64, bool) {
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

func (t *realTakeUntil) Reset() RealSequence { t.source.Reset(); t.done = false; return t }
func (t *realTakeUntil) Len() int {
	count := 0
	for {
		_, ok := t.Next()
		if !ok {
			return count
		}
		count++
	}
}
func (t *realTakeUntil) HasLength() bool  { return false }
func (t *realTakeUntil) HasStorage() bool { return false }
func (t *realTakeUntil) Clone() RealSequence {
	return &realTakeUntil{source: t.source.Clone(), pred: t.pred}
}
