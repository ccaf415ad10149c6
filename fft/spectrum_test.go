package fft

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestComplexSpectrumRoundTrip(t *testing.T) {
	t.Parallel()

	x := []complex128{1, 2, 3, 4, 5, 6, 7}
	full := append([]complex128(nil), x...)
	if err := ForwardComplex(full); err != nil {
		t.Fatalf("ForwardComplex: %v", err)
	}

	s := NewComplexSpectrum(full)
	if s.Len() != len(x) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(x))
	}

	back, err := s.InverseComplex()
	if err != nil {
		t.Fatalf("InverseComplex: %v", err)
	}
	for i := range x {
		if cmplx.Abs(back[i]-x[i]) > 1e-9 {
			t.Errorf("[%d] = %v, want %v", i, back[i], x[i])
		}
	}
}

func TestRealSpectrumDefaultsToLowerHalf(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	full, err := ForwardReal(x)
	if err != nil {
		t.Fatalf("ForwardReal: %v", err)
	}

	s := NewRealSpectrum(full, len(x))
	wantLower := len(x)/2 + 1
	if got := s.Len(); got != wantLower {
		t.Errorf("Len() = %d, want %d", got, wantLower)
	}

	s.ShowFullRange(true)
	if got := s.Len(); got != len(x) {
		t.Errorf("Len() after ShowFullRange = %d, want %d", got, len(x))
	}

	back, err := s.InverseReal()
	if err != nil {
		t.Fatalf("InverseReal: %v", err)
	}
	for i := range x {
		if math.Abs(back[i]-x[i]) > 1e-9 {
			t.Errorf("[%d] = %v, want %v", i, back[i], x[i])
		}
	}
}

func TestSpectrumAtOutOfRange(t *testing.T) {
	t.Parallel()

	s := NewComplexSpectrum([]complex128{1, 2, 3, 4})
	if _, err := s.At(-1); err == nil {
		t.Error("expected error for negative index")
	}
	if _, err := s.At(4); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestSpectrumMagnitudesAndPhases(t *testing.T) {
	t.Parallel()

	s := NewComplexSpectrum([]complex128{3, complex(0, 4), -5, complex(0, -2)})
	mags := s.Magnitudes()
	want := []float64{3, 4, 5, 2}
	for i, w := range want {
		if math.Abs(mags.At(i)-w) > 1e-9 {
			t.Errorf("mag[%d] = %v, want %v", i, mags.At(i), w)
		}
	}
	phases := s.Phases()
	wantPhase := []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2}
	for i, w := range wantPhase {
		if math.Abs(phases.At(i)-w) > 1e-9 {
			t.Errorf("phase[%d] = %v, want %v", i, phases.At(i), w)
		}
	}
}
