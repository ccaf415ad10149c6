package seq

import "testing"

// TestMapFusionInvariant covers testable property 1: s.map(f).map(g)
// yields the same stream as s.map(x -> g(f(x))), with a single fused
// node rather than two nested wrappers.
func TestMapFusionInvariant(t *testing.T) {
	t.Parallel()
	f := func(x float64) float64 { return x + 1 }
	g := func(x float64) float64 { return x * 2 }

	fused := MapReal(MapReal(NewRealRange(1, 5), f), g)
	direct := MapReal(NewRealRange(1, 5), func(x float64) float64 { return g(f(x)) })

	gotFused := MaterializeReal(fused)
	gotDirect := MaterializeReal(direct)
	if len(gotFused) != len(gotDirect) {
		t.Fatalf("length mismatch: %d vs %d", len(gotFused), len(gotDirect))
	}
	for i := range gotFused {
		if gotFused[i] != gotDirect[i] {
			t.Errorf("index %d: fused=%v direct=%v", i, gotFused[i], gotDirect[i])
		}
	}

	if _, ok := fused.(*realMap); !ok {
		t.Fatalf("expected single *realMap layer, got %T", fused)
	}
	if inner, ok := fused.(*realMap).source.(*realMap); ok {
		t.Fatalf("expected depth-one map, found nested *realMap: %v", inner)
	}
}

// TestFilterMapFusionInvariant covers testable property 2.
func TestFilterMapFusionInvariant(t *testing.T) {
	t.Parallel()
	pred := func(x float64) bool { return x > 2 }
	f := func(x float64) float64 { return x * x }

	fused := MapReal(FilterReal(NewRealRange(1, 6), pred), f)
	if _, ok := fused.(*realFilteredMapped); !ok {
		t.Fatalf("expected *realFilteredMapped, got %T", fused)
	}

	got := MaterializeReal(fused)
	want := []float64{9, 16, 25, 36}
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d]=%v want %v", i, got[i], want[i])
		}
	}
}

// TestResetIdempotenceInvariant covers testable property 3.
func TestResetIdempotenceInvariant(t *testing.T) {
	t.Parallel()
	s := NewRealRange(1, 5)
	s.Next()
	s.Next()
	s.Reset()
	got := MaterializeReal(s)

	fresh := MaterializeReal(NewRealRange(1, 5))
	if len(got) != len(fresh) {
		t.Fatalf("len(got)=%d want %d", len(got), len(fresh))
	}
	for i := range fresh {
		if got[i] != fresh[i] {
			t.Errorf("got[%d]=%v want %v", i, got[i], fresh[i])
		}
	}
}

// TestMaterializeEquivalenceInvariant covers testable property 4.
func TestMaterializeEquivalenceInvariant(t *testing.T) {
	t.Parallel()
	s := NewRealRange(1, 7)
	if !s.HasLength() {
		t.Fatal("expected HasLength() true for a range")
	}
	wantLen := s.Len()
	data := MaterializeReal(s)
	if len(data) != wantLen {
		t.Fatalf("len(materialize())=%d want Len()=%d", len(data), wantLen)
	}

	s2 := NewRealRange(1, 7)
	for i, want := range data {
		v, ok := s2.Next()
		if !ok {
			t.Fatalf("sequence exhausted early at %d", i)
		}
		if v != want {
			t.Errorf("next()[%d]=%v want %v", i, v, want)
		}
	}
}
