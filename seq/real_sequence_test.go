package seq

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestRealGridMaterialize(t *testing.T) {
	t.Parallel()
	g, err := NewRealGrid(0.0, 4, 1.0)
	if err != nil {
		t.Fatalf("NewRealGrid: %v", err)
	}
	got := MaterializeReal(g)
	want := []float64{0.0, 0.25, 0.5, 0.75, 1.0}
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d want %d", len(got), len(want))
	}
	for i := range want {
		if !approxEqual(got[i], want[i], 1e-12) {
			t.Errorf("got[%d]=%v want %v", i, got[i], want[i])
		}
	}
}

func TestRealGridSortDescFirst(t *testing.T) {
	t.Parallel()
	g, err := NewRealGrid(0.0, 4, 1.0)
	if err != nil {
		t.Fatalf("NewRealGrid: %v", err)
	}
	sorted := SortDescReal(g)
	if got := FirstReal(sorted); !approxEqual(got, 1.0, 1e-12) {
		t.Errorf("sort_desc().first() = %v, want 1.0", got)
	}
}

func TestRealFilterMapSum(t *testing.T) {
	t.Parallel()
	s := NewRealRange(1, 1000)
	filtered := FilterReal(s, func(x float64) bool { return int64(x)%2 == 0 })
	mapped := MapReal(filtered, func(x float64) float64 { return x * x })
	got := SumReal(mapped)
	want := 166666500000.0
	if !approxEqual(got, want, 1e-3) {
		t.Errorf("sum = %v, want %v", got, want)
	}
}

func TestRealRepeatProductDistinct(t *testing.T) {
	t.Parallel()
	r := NewRealRepeat(5, 3)
	if got := ProductReal(r); !approxEqual(got, 243, 1e-9) {
		t.Errorf("product = %v, want 243", got)
	}
	d := DistinctReal(NewRealRepeat(5, 3))
	got := MaterializeReal(d)
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("distinct = %v, want [3]", got)
	}
}

func TestRealFirstLastEmptySentinel(t *testing.T) {
	t.Parallel()
	empty := NewRealRepeat(0, 1)
	if got := FirstReal(empty); !math.IsNaN(got) {
		t.Errorf("first() of empty sequence = %v, want NaN", got)
	}
	empty2 := NewRealRepeat(0, 1)
	if got := LastReal(empty2); !math.IsNaN(got) {
		t.Errorf("last() of empty sequence = %v, want NaN", got)
	}
}

func TestRealMinMaxEmptyError(t *testing.T) {
	t.Parallel()
	empty := NewRealRepeat(0, 1)
	if _, err := MinReal(empty); err == nil {
		t.Fatal("expected error from Min on empty sequence")
	}
}

func TestRealTakeWhile(t *testing.T) {
	t.Parallel()
	s := NewRealRange(1, 10)
	tw := TakeWhileReal(s, func(x float64) bool { return x < 5 })
	got := MaterializeReal(tw)
	want := []float64{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d]=%v want %v", i, got[i], want[i])
		}
	}
}

func TestRealTakeUntilValue(t *testing.T) {
	t.Parallel()
	s := NewRealRange(1, 10)
	tu := TakeUntilValueReal(s, 5)
	got := MaterializeReal(tu)
	want := []float64{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d]=%v want %v", i, got[i], want[i])
		}
	}
}

func TestRealARDeterministicGivenSource(t *testing.T) {
	t.Parallel()
	coeffs := []float64{0.5}
	zeroSrc := constantNormalSource{}
	ar, err := NewRealAR(5, coeffs, zeroSrc)
	if err != nil {
		t.Fatalf("NewRealAR: %v", err)
	}
	got := MaterializeReal(ar)
	for i, v := range got {
		if v != 0 {
			t.Errorf("AR with zero innovations should stay at 0, got %v at %d", v, i)
		}
	}
}

func TestRealMAZeroCoeffsRejected(t *testing.T) {
	t.Parallel()
	if _, err := NewRealMA(5, 0, nil, constantNormalSource{}); err == nil {
		t.Fatal("expected error for empty MA coefficients")
	}
}

// constantNormalSource always returns 0, used to make AR/MA tests
// deterministic without depending on randsrc.
type constantNormalSource struct{}

func (constantNormalSource) NextDouble() float64          { return 0 }
func (constantNormalSource) NextDoubles() (float64, float64) { return 0, 0 }
