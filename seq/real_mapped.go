package seq

// realMappedComplex applies a complex128->float64 function over a
// ComplexSequence, crossing element domains into RealSequence. It is
// intentionally its own type rather than routed through MapReal: its
// source speaks ComplexSequence, not RealSequence.
type realMappedComplex struct {
	source ComplexSequence
	f      func(complex128) float64
}

// NewRealMappedComplex returns the real-valued sequence f(s[i]) for a
// complex source s.
func NewRealMappedComplex(s ComplexSequence, f func(complex128) float64) RealSequence {
	return &realMappedComplex{source: s, f: f}
}

func (m *realMappedComplex) Next() (float64, bool) {
	v, ok := m.source.Next()
	if !ok {
		return 0, false
	}
	return m.f(v), true
}

func (m *realMappedComplex) Reset() RealSequence { m.source.Reset(); return m }
func (m *realMappedComplex) Len() int            { return m.source.Len() }
func (m *realMappedComplex) HasLength() bool     { return m.source.HasLength() }
func (m *realMappedComplex) HasStorage() bool    { return false }
func (m *realMappedComplex) Clone() RealSequence {
	return &realMappedComplex{source: m.source.Clone(), f: m.f}
}

// realMappedInt applies an int32->float64 function over an IntSequence,
// crossing element domains into RealSequence.
type realMappedInt struct {
	source IntSequence
	f      func(int32) float64
}

// NewRealMappedInt returns the real-valued sequence f(s[i]) for an int
// source s.
func NewRealMappedInt(s IntSequence, f func(int32) float64) RealSequence {
	return &realMappedInt{source: s, f: f}
}

func (m *realMappedInt) Next() (float64, bool) {
	v, ok := m.source.Next()
	if !ok {
		return 0, false
	}
	return m.f(v), true
}

func (m *realMappedInt) Reset() RealSequence { m.source.Reset(); return m }
func (m *realMappedInt) Len() int            { return m.source.Len() }
func (m *realMappedInt) HasLength() bool     { return m.source.HasLength() }
func (m *realMappedInt) HasStorage() bool    { return false }
func (m *realMappedInt) Clone() RealSequence {
	return &realMappedInt{source: m.source.Clone(), f: m.f}
}
