package seq

import (
	"math/cmplx"
	"testing"

	"github.com/MeKo-Christian/austra-core/vector"
)

func approxEqualComplex(a, b complex128, eps float64) bool {
	return cmplx.Abs(a-b) <= eps
}

func TestComplexRepeatReductions(t *testing.T) {
	t.Parallel()
	r := NewComplexRepeat(4, complex(2, 1))
	got := SumComplex(r)
	want := complex(8, 4)
	if !approxEqualComplex(got, want, 1e-9) {
		t.Errorf("sum = %v, want %v", got, want)
	}
}

func TestComplexGridMaterialize(t *testing.T) {
	t.Parallel()
	g, err := NewComplexGrid(complex(0, 0), 2, complex(2, 4))
	if err != nil {
		t.Fatalf("NewComplexGrid: %v", err)
	}
	got := MaterializeComplex(g)
	want := []complex128{0, complex(1, 2), complex(2, 4)}
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d want %d", len(got), len(want))
	}
	for i := range want {
		if !approxEqualComplex(got[i], want[i], 1e-9) {
			t.Errorf("got[%d]=%v want %v", i, got[i], want[i])
		}
	}
}

func TestComplexFirstLastEmptySentinel(t *testing.T) {
	t.Parallel()
	empty := NewComplexRepeat(0, 1)
	got := FirstComplex(empty)
	if !cmplx.IsNaN(got) {
		t.Errorf("first() of empty sequence = %v, want NaN", got)
	}
	if last := LastComplex(NewComplexRepeat(0, 1)); !cmplx.IsNaN(last) {
		t.Errorf("last() of empty sequence = %v, want NaN", last)
	}
}

func TestComplexFilterMapFusion(t *testing.T) {
	t.Parallel()
	v := []complex128{1, 2, 3, 4, 5, 6}
	s := NewComplexFromVector(vector.NewDenseComplexes(v))
	filtered := FilterComplex(s, func(x complex128) bool { return real(x) > 2 })
	mapped := MapComplex(filtered, func(x complex128) complex128 { return x * x })
	if _, ok := mapped.(*complexFilteredMapped); !ok {
		t.Fatalf("expected *complexFilteredMapped, got %T", mapped)
	}
	got := MaterializeComplex(mapped)
	want := []complex128{9, 16, 25, 36}
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d want %d", len(got), len(want))
	}
	for i := range want {
		if !approxEqualComplex(got[i], want[i], 1e-9) {
			t.Errorf("got[%d]=%v want %v", i, got[i], want[i])
		}
	}
}

func TestComplexDotIsHermitian(t *testing.T) {
	t.Parallel()
	a := NewComplexFromVector(vector.NewDenseComplexes([]complex128{complex(1, 1), complex(2, 0)}))
	b := NewComplexFromVector(vector.NewDenseComplexes([]complex128{complex(0, 1), complex(1, 1)}))
	got := DotComplex(a, b)
	// Σ a·conj(b): (1+i)(−i) + (2)(1−i) = (1 − i) + (2 − 2i) = 3 − 3i
	want := complex(3, -3)
	if !approxEqualComplex(got, want, 1e-9) {
		t.Errorf("dot = %v, want %v", got, want)
	}
}
