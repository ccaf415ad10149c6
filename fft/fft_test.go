package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sync"
	"testing"
)

// naiveDFT is a brute-force O(n^2) reference transform used only to check
// the planned executor against the textbook definition.
func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			theta := -2 * math.Pi * float64(k*j) / float64(n)
			sin, cos := math.Sincos(theta)
			sum += x[j] * complex(cos, sin)
		}
		out[k] = sum
	}
	return out
}

func approxEqualSlice(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if cmplx.Abs(got[i]-want[i]) > eps {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestForwardComplexMatchesNaiveDFT(t *testing.T) {
	t.Parallel()

	sizes := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 16, 17, 23, 30, 60}
	for _, n := range sizes {
		rng := rand.New(rand.NewSource(int64(n)))
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
		}
		want := naiveDFT(x)

		got := append([]complex128(nil), x...)
		if err := ForwardComplex(got); err != nil {
			t.Fatalf("n=%d: ForwardComplex: %v", n, err)
		}
		approxEqualSlice(t, got, want, 1e-6)
	}
}

// TestComplexRoundTrip covers testable property 8.
func TestComplexRoundTrip(t *testing.T) {
	t.Parallel()

	// 1081 = 23*47 exceeds RecursiveThreshold, forcing the balanced-split
	// search in factor.go and the multi-goroutine branch of parallelCall
	// for a composite whose inner child (23) is prime and above
	// RaderThreshold, i.e. a Bluestein leaf reached concurrently.
	for _, n := range []int{1, 2, 5, 7, 17, 23, 60, 360, 1081, 2048, 4999, 10000} {
		rng := rand.New(rand.NewSource(int64(n) + 1))
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
		}
		buf := append([]complex128(nil), x...)
		if err := ForwardComplex(buf); err != nil {
			t.Fatalf("n=%d: forward: %v", n, err)
		}
		if err := InverseComplex(buf); err != nil {
			t.Fatalf("n=%d: inverse: %v", n, err)
		}
		approxEqualSlice(t, buf, x, 1e-9)
	}
}

// TestLinearity covers testable property 9.
func TestLinearity(t *testing.T) {
	t.Parallel()

	n := 17
	rng := rand.New(rand.NewSource(99))
	x := make([]complex128, n)
	y := make([]complex128, n)
	for i := range x {
		x[i] = complex(rng.Float64(), rng.Float64())
		y[i] = complex(rng.Float64(), rng.Float64())
	}
	alpha := complex(1.5, -0.5)
	beta := complex(-0.75, 2.0)

	combined := make([]complex128, n)
	for i := range combined {
		combined[i] = alpha*x[i] + beta*y[i]
	}
	if err := ForwardComplex(combined); err != nil {
		t.Fatalf("forward: %v", err)
	}

	fx := append([]complex128(nil), x...)
	fy := append([]complex128(nil), y...)
	if err := ForwardComplex(fx); err != nil {
		t.Fatalf("forward fx: %v", err)
	}
	if err := ForwardComplex(fy); err != nil {
		t.Fatalf("forward fy: %v", err)
	}

	want := make([]complex128, n)
	for i := range want {
		want[i] = alpha*fx[i] + beta*fy[i]
	}
	approxEqualSlice(t, combined, want, 1e-6)
}

// TestParseval covers testable property 10.
func TestParseval(t *testing.T) {
	t.Parallel()

	n := 23
	rng := rand.New(rand.NewSource(7))
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	var energyTime float64
	for _, v := range x {
		energyTime += real(v)*real(v) + imag(v)*imag(v)
	}

	spec := append([]complex128(nil), x...)
	if err := ForwardComplex(spec); err != nil {
		t.Fatalf("forward: %v", err)
	}
	var energyFreq float64
	for _, v := range spec {
		energyFreq += real(v)*real(v) + imag(v)*imag(v)
	}
	energyFreq /= float64(n)

	if math.Abs(energyTime-energyFreq) > 1e-6*math.Max(1, energyTime) {
		t.Errorf("Parseval mismatch: time=%v freq/N=%v", energyTime, energyFreq)
	}
}

// TestDCBin covers testable property 11.
func TestDCBin(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 5, 7, 17, 23, 60} {
		rng := rand.New(rand.NewSource(int64(n) * 3))
		x := make([]complex128, n)
		var sum complex128
		for i := range x {
			x[i] = complex(rng.Float64(), rng.Float64())
			sum += x[i]
		}
		buf := append([]complex128(nil), x...)
		if err := ForwardComplex(buf); err != nil {
			t.Fatalf("n=%d: forward: %v", n, err)
		}
		if cmplx.Abs(buf[0]-sum) > 1e-9 {
			t.Errorf("n=%d: DC bin = %v, want %v", n, buf[0], sum)
		}
	}
}

// TestForwardRealScenarioS5 covers the concrete scenario S5.
func TestForwardRealScenarioS5(t *testing.T) {
	t.Parallel()

	got, err := ForwardReal([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("ForwardReal: %v", err)
	}
	want := []complex128{
		complex(10, 0),
		complex(-2, 2),
		complex(-2, 0),
		complex(-2, -2),
	}
	approxEqualSlice(t, got, want, 1e-9)
}

// TestForwardComplexScenarioS6 exercises the Rader path (length 7).
func TestForwardComplexScenarioS6(t *testing.T) {
	t.Parallel()

	a := make([]complex128, 7)
	a[0] = 1
	if err := ForwardComplex(a); err != nil {
		t.Fatalf("ForwardComplex: %v", err)
	}
	for i, v := range a {
		if cmplx.Abs(v-1) > 1e-9 {
			t.Errorf("[%d] = %v, want 1", i, v)
		}
	}
}

// TestForwardComplexScenarioS7 exercises the Bluestein path (length 23).
func TestForwardComplexScenarioS7(t *testing.T) {
	t.Parallel()

	a := make([]complex128, 23)
	a[0] = 1
	if err := ForwardComplex(a); err != nil {
		t.Fatalf("ForwardComplex: %v", err)
	}
	for i, v := range a {
		if cmplx.Abs(v-1) > 1e-9 {
			t.Errorf("[%d] = %v, want 1", i, v)
		}
	}
}

// TestRealRoundTrip covers testable property 7 across a spread of lengths,
// including small, prime, and composite sizes.
func TestRealRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 17, 23, 60, 100, 360, 1081, 2048, 10000} {
		rng := rand.New(rand.NewSource(int64(n) + 1000))
		x := make([]float64, n)
		for i := range x {
			x[i] = rng.Float64()*2 - 1
		}
		spec, err := ForwardReal(x)
		if err != nil {
			t.Fatalf("n=%d: ForwardReal: %v", n, err)
		}
		back, err := InverseReal(spec, n)
		if err != nil {
			t.Fatalf("n=%d: InverseReal: %v", n, err)
		}
		for i := range x {
			if math.Abs(back[i]-x[i]) > 1e-9*math.Max(1, math.Abs(x[i])) {
				t.Errorf("n=%d: back[%d] = %v, want %v", n, i, back[i], x[i])
			}
		}
	}
}

// TestCompositeWithBluesteinChildConcurrent drives N=1081=23*47, a
// composite whose inner child (23) is prime and above RaderThreshold, i.e.
// a Bluestein leaf. 1081 exceeds RecursiveThreshold, so executeComposite's
// parallelCall(47, 44, ...) takes the multi-goroutine branch and dispatches
// the shared Bluestein-leaf *Plan concurrently across chunks. Run under
// `go test -race` this exercises exactly the bufferPool contention the
// mutex in pool.go guards against.
func TestCompositeWithBluesteinChildConcurrent(t *testing.T) {
	t.Parallel()

	const n = 1081
	p, err := NewPlan(n)
	if err != nil {
		t.Fatalf("NewPlan(%d): %v", n, err)
	}

	var wg sync.WaitGroup
	for trial := 0; trial < 8; trial++ {
		trial := trial
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(trial)))
			x := make([]complex128, n)
			for i := range x {
				x[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
			}
			want := naiveDFT(x)

			got := append([]complex128(nil), x...)
			if err := p.Execute(got); err != nil {
				t.Errorf("trial %d: Execute: %v", trial, err)
				return
			}
			approxEqualSlice(t, got, want, 1e-5)
		}()
	}
	wg.Wait()
}

// TestForwardComplexSharedCacheConcurrent covers the same shared-Plan
// hazard as seen through the public API: cachedPlan hands out a single
// *Plan per size, so concurrent ForwardComplex calls at the same size
// share a Plan (and, for sizes whose factorization bottoms out in a
// Bluestein leaf, a bufferPool) the same way executeComposite's internal
// ParallelCall chunks do.
func TestForwardComplexSharedCacheConcurrent(t *testing.T) {
	t.Parallel()

	const n = 1081
	var wg sync.WaitGroup
	for trial := 0; trial < 8; trial++ {
		trial := trial
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(trial) + 500))
			x := make([]complex128, n)
			for i := range x {
				x[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
			}
			buf := append([]complex128(nil), x...)
			if err := ForwardComplex(buf); err != nil {
				t.Errorf("trial %d: ForwardComplex: %v", trial, err)
				return
			}
			if err := InverseComplex(buf); err != nil {
				t.Errorf("trial %d: InverseComplex: %v", trial, err)
				return
			}
			approxEqualSlice(t, buf, x, 1e-9)
		}()
	}
	wg.Wait()
}
