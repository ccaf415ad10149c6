package vector

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestDenseIntsReductions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []int32
		sum     int32
		min     int32
		max     int32
		product int32
	}{
		{"empty", nil, 0, 0, 0, 1},
		{"single", []int32{7}, 7, 7, 7, 7},
		{"mixed", []int32{3, -1, 4, 1, 5}, 12, -1, 5, -60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := NewDenseInts(tt.data)
			if got := v.Sum(); got != tt.sum {
				t.Errorf("Sum() = %d, want %d", got, tt.sum)
			}
			if got := v.Min(); got != tt.min {
				t.Errorf("Min() = %d, want %d", got, tt.min)
			}
			if got := v.Max(); got != tt.max {
				t.Errorf("Max() = %d, want %d", got, tt.max)
			}
			if got := v.Product(); got != tt.product {
				t.Errorf("Product() = %d, want %d", got, tt.product)
			}
		})
	}
}

func TestDenseIntsElementWise(t *testing.T) {
	t.Parallel()

	a := NewDenseInts([]int32{1, 2, 3})
	b := NewDenseInts([]int32{10, 20, 30, 40})

	sum := a.Add(b)
	if sum.Len() != 3 {
		t.Fatalf("Add truncates to shorter operand: got len %d, want 3", sum.Len())
	}
	want := []int32{11, 22, 33}
	for i, w := range want {
		if sum.At(i) != w {
			t.Errorf("Add()[%d] = %d, want %d", i, sum.At(i), w)
		}
	}

	if got := a.Dot(b); got != 1*10+2*20+3*30 {
		t.Errorf("Dot() = %d, want %d", got, 1*10+2*20+3*30)
	}

	neg := a.Negate()
	for i, x := range []int32{-1, -2, -3} {
		if neg.At(i) != x {
			t.Errorf("Negate()[%d] = %d, want %d", i, neg.At(i), x)
		}
	}
}

func TestDenseIntsContains(t *testing.T) {
	t.Parallel()
	v := NewDenseInts([]int32{5, 10, 15})
	if !v.Contains(10) {
		t.Error("Contains(10) = false, want true")
	}
	if v.Contains(11) {
		t.Error("Contains(11) = true, want false")
	}
	idx, ok := v.IndexOf(15)
	if !ok || idx != 2 {
		t.Errorf("IndexOf(15) = (%d, %v), want (2, true)", idx, ok)
	}
}

func TestDenseRealsReductions(t *testing.T) {
	t.Parallel()
	v := NewDenseReals([]float64{1.5, -2.5, 3.0})
	if !approxEqual(v.Sum(), 2.0, 1e-12) {
		t.Errorf("Sum() = %v, want 2.0", v.Sum())
	}
	if !approxEqual(v.Product(), 1.5*-2.5*3.0, 1e-12) {
		t.Errorf("Product() = %v, want %v", v.Product(), 1.5*-2.5*3.0)
	}
}

func TestDenseComplexesDotIsHermitian(t *testing.T) {
	t.Parallel()
	a := NewDenseComplexes([]complex128{complex(1, 1), complex(2, 0)})
	b := NewDenseComplexes([]complex128{complex(0, 1), complex(1, -1)})

	got := a.Dot(b)
	want := complex(1, 1)*complex(0, -1) + complex(2, 0)*complex(1, 1)
	if got != want {
		t.Errorf("Dot() = %v, want %v", got, want)
	}
}

func TestDenseComplexesMagnitudePhase(t *testing.T) {
	t.Parallel()
	v := NewDenseComplexes([]complex128{complex(3, 4)})
	mag := v.Magnitudes()
	if !approxEqual(mag.At(0), 5.0, 1e-12) {
		t.Errorf("Magnitudes()[0] = %v, want 5.0", mag.At(0))
	}
	phase := v.Phases()
	if !approxEqual(phase.At(0), math.Atan2(4, 3), 1e-12) {
		t.Errorf("Phases()[0] = %v, want %v", phase.At(0), math.Atan2(4, 3))
	}
}
