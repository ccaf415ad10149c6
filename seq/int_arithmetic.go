package seq

import "github.com/MeKo-Christian/austra-core/vector"

// intVectorPair returns a and b's underlying storage, trimmed to their
// common length, if either operand has storage; the operand lacking
// storage is materialized first so the vectorized path can still be
// used, per the "either has storage" decision rule. The third result
// reports whether the vectorized path applies at all; it is false when
// neither operand has storage.
func intVectorPair(a, b IntSequence) (va, vb vector.IntVector, ok bool) {
	sa, aOk := a.(intStorer)
	sb, bOk := b.(intStorer)
	if !aOk && !bOk {
		return nil, nil, false
	}
	va = intStorageOf(a, sa, aOk)
	vb = intStorageOf(b, sb, bOk)
	n := va.Len()
	if vb.Len() < n {
		n = vb.Len()
	}
	return va.Slice(0, n), vb.Slice(0, n), true
}

func intStorageOf(s IntSequence, st intStorer, ok bool) vector.IntVector {
	if ok {
		return st.Storage()
	}
	return vector.NewDenseInts(MaterializeInt(s))
}

// AddInt returns the elementwise sum of a and b. If neither has storage,
// the result is a lazily fused Zip; if either does, both are
// materialized and the vectorized add of the underlying dense vector is
// used, producing a vector-backed sequence.
func AddInt(a, b IntSequence) IntSequence {
	if va, vb, ok := intVectorPair(a, b); ok {
		return NewIntFromVector(va.Add(vb))
	}
	return ZipInt(a, b, func(x, y int32) int32 { return x + y })
}

// SubInt returns the elementwise difference a - b, following the same
// storage-vs-zip dispatch as AddInt.
func SubInt(a, b IntSequence) IntSequence {
	if va, vb, ok := intVectorPair(a, b); ok {
		return NewIntFromVector(va.Sub(vb))
	}
	return ZipInt(a, b, func(x, y int32) int32 { return x - y })
}

// PointwiseMultiplyInt returns the elementwise product of a and b.
func PointwiseMultiplyInt(a, b IntSequence) IntSequence {
	if va, vb, ok := intVectorPair(a, b); ok {
		return NewIntFromVector(va.Mul(vb))
	}
	return ZipInt(a, b, func(x, y int32) int32 { return x * y })
}

// PointwiseDivideInt returns the elementwise quotient of a and b.
func PointwiseDivideInt(a, b IntSequence) IntSequence {
	if va, vb, ok := intVectorPair(a, b); ok {
		return NewIntFromVector(va.Div(vb))
	}
	return ZipInt(a, b, func(x, y int32) int32 { return x / y })
}

// DotInt is the dot product of a and b: vectorized when either has
// storage, otherwise a fused Zip-then-Sum.
func DotInt(a, b IntSequence) int32 {
	if va, vb, ok := intVectorPair(a, b); ok {
		return va.Dot(vb)
	}
	return SumInt(ZipInt(a, b, func(x, y int32) int32 { return x * y }))
}

// AddScalarInt adds s to every value of seq. Range/grid/repeat shift
// analytically; vector-backed sequences use the vectorized add-scalar;
// everything else falls back to a fused Map.
func AddScalarInt(seq IntSequence, s int32) IntSequence {
	if a, ok := seq.(intShifter); ok {
		if v, ok2 := a.AnalyticShift(s); ok2 {
			return v
		}
	}
	if st, ok := seq.(intStorer); ok {
		return NewIntFromVector(st.Storage().AddScalar(s))
	}
	return MapInt(seq, func(x int32) int32 { return x + s })
}

// ScaleInt multiplies every value of seq by s, following the same
// analytic > storage > map dispatch as AddScalarInt.
func ScaleInt(seq IntSequence, s int32) IntSequence {
	if a, ok := seq.(intScaler); ok {
		if v, ok2 := a.AnalyticScale(s); ok2 {
			return v
		}
	}
	if st, ok := seq.(intStorer); ok {
		return NewIntFromVector(st.Storage().ScaleScalar(s))
	}
	return MapInt(seq, func(x int32) int32 { return x * s })
}

// NegateInt negates every value of seq.
func NegateInt(seq IntSequence) IntSequence {
	if a, ok := seq.(intNegater); ok {
		if v, ok2 := a.AnalyticNegate(); ok2 {
			return v
		}
	}
	if st, ok := seq.(intStorer); ok {
		return NewIntFromVector(st.Storage().Negate())
	}
	return MapInt(seq, func(x int32) int32 { return -x })
}
