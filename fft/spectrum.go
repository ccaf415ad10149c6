package fft

import (
	"github.com/MeKo-Christian/austra-core/vector"
)

// Spectrum is a frozen Fourier transform result: the complex coefficients,
// their magnitudes and phases, and an inverse transform back to the
// original samples. Two variants exist. A real-origin spectrum remembers
// the length of the real signal it came from and by default presents only
// the lower half (the upper half is the redundant conjugate mirror); a
// complex-origin spectrum always presents the full range.
type Spectrum struct {
	full       []complex128
	realOrigin bool
	sourceLen  int
	fullRange  bool
}

// NewComplexSpectrum wraps the full transform output of a complex-valued
// signal. The spectrum always presents its full range.
func NewComplexSpectrum(full []complex128) *Spectrum {
	return &Spectrum{full: full, realOrigin: false, sourceLen: len(full)}
}

// NewRealSpectrum wraps the full transform output of a real-valued signal
// of the given source length. By default only the lower half (the
// non-redundant half, including the Nyquist bin) is presented; call
// ShowFullRange to toggle the complete, conjugate-symmetric range.
func NewRealSpectrum(full []complex128, sourceLen int) *Spectrum {
	return &Spectrum{full: full, realOrigin: true, sourceLen: sourceLen}
}

// ShowFullRange toggles whether a real-origin spectrum presents its full,
// conjugate-symmetric range or just the lower half. No-op for a
// complex-origin spectrum, which always shows the full range.
func (s *Spectrum) ShowFullRange(full bool) {
	s.fullRange = full
}

// effectiveLen is the number of bins currently presented.
func (s *Spectrum) effectiveLen() int {
	if !s.realOrigin || s.fullRange {
		return len(s.full)
	}
	return s.sourceLen/2 + 1
}

// Len reports the number of bins currently presented.
func (s *Spectrum) Len() int {
	return s.effectiveLen()
}

// At returns the i-th presented bin.
func (s *Spectrum) At(i int) (complex128, error) {
	if i < 0 || i >= s.effectiveLen() {
		return 0, ErrInvalidArgument
	}
	return s.full[i], nil
}

// Slice returns the presented bins in [lo, hi) as a dense complex vector.
func (s *Spectrum) Slice(lo, hi int) (vector.ComplexVector, error) {
	n := s.effectiveLen()
	if lo < 0 || hi > n || lo > hi {
		return nil, ErrInvalidArgument
	}
	out := make([]complex128, hi-lo)
	copy(out, s.full[lo:hi])
	return vector.NewDenseComplexes(out), nil
}

// Vector returns the presented bins as a dense complex vector.
func (s *Spectrum) Vector() vector.ComplexVector {
	n := s.effectiveLen()
	out := make([]complex128, n)
	copy(out, s.full[:n])
	return vector.NewDenseComplexes(out)
}

// Magnitudes returns |X[k]| for each presented bin.
func (s *Spectrum) Magnitudes() vector.RealVector {
	return s.Vector().Magnitudes()
}

// Phases returns arg(X[k]) for each presented bin.
func (s *Spectrum) Phases() vector.RealVector {
	return s.Vector().Phases()
}

// InverseComplex reconstructs the original complex samples from the full
// stored range. InverseReal yields the real samples of a real-origin
// spectrum (also reconstructed from the full stored range, independent of
// ShowFullRange) and fails with ErrInvalidArgument for a complex-origin
// spectrum.
func (s *Spectrum) InverseComplex() ([]complex128, error) {
	out := make([]complex128, len(s.full))
	copy(out, s.full)
	if err := InverseComplex(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Spectrum) InverseReal() ([]float64, error) {
	if !s.realOrigin {
		return nil, ErrInvalidArgument
	}
	return InverseReal(s.full, s.sourceLen)
}
