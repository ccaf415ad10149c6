package seq

import "github.com/MeKo-Christian/austra-core/vector"

// realVectorPair returns a and b's underlying storage, trimmed to their
// common length, if either operand has storage; the operand lacking
// storage is materialized first so the vectorized path can still be
// used, per the "either has storage" decision rule. The third result
// reports whether the vectorized path applies at all; it is false when
// neither operand has storage.
func realVectorPair(a, b RealSequence) (va, vb vector.RealVector, ok bool) {
	sa, aOk := a.(realStorer)
	sb, bOk := b.(realStorer)
	if !aOk && !bOk {
		return nil, nil, false
	}
	va = realStorageOf(a, sa, aOk)
	vb = realStorageOf(b, sb, bOk)
	n := va.Len()
	if vb.Len() < n {
		n = vb.Len()
	}
	return va.Slice(0, n), vb.Slice(0, n), true
}

func realStorageOf(s RealSequence, st realStorer, ok bool) vector.RealVector {
	if ok {
		return st.Storage()
	}
	return vector.NewDenseReals(MaterializeReal(s))
}

// AddReal returns the elementwise sum of a and b, vectorized when either
// has storage, otherwise a fused Zip.
func AddReal(a, b RealSequence) RealSequence {
	if va, vb, ok := realVectorPair(a, b); ok {
		return NewRealFromVector(va.Add(vb))
	}
	return ZipReal(a, b, func(x, y float64) float64 { return x + y })
}

// SubReal returns the elementwise difference a - b.
func SubReal(a, b RealSequence) RealSequence {
	if va, vb, ok := realVectorPair(a, b); ok {
		return NewRealFromVector(va.Sub(vb))
	}
	return ZipReal(a, b, func(x, y float64) float64 { return x - y })
}

// PointwiseMultiplyReal returns the elementwise product of a and b.
func PointwiseMultiplyReal(a, b RealSequence) RealSequence {
	if va, vb, ok := realVectorPair(a, b); ok {
		return NewRealFromVector(va.Mul(vb))
	}
	return ZipReal(a, b, func(x, y float64) float64 { return x * y })
}

// PointwiseDivideReal returns the elementwise quotient of a and b.
func PointwiseDivideReal(a, b RealSequence) RealSequence {
	if va, vb, ok := realVectorPair(a, b); ok {
		return NewRealFromVector(va.Div(vb))
	}
	return ZipReal(a, b, func(x, y float64) float64 { return x / y })
}

// DotReal is the dot product of a and b.
func DotReal(a, b RealSequence) float64 {
	if va, vb, ok := realVectorPair(a, b); ok {
		return va.Dot(vb)
	}
	return SumReal(ZipReal(a, b, func(x, y float64) float64 { return x * y }))
}

// AddScalarReal adds s to every value of seq.
func AddScalarReal(seq RealSequence, s float64) RealSequence {
	if a, ok := seq.(realShifter); ok {
		if v, ok2 := a.AnalyticShift(s); ok2 {
			return v
		}
	}
	if st, ok := seq.(realStorer); ok {
		return NewRealFromVector(st.Storage().AddScalar(s))
	}
	return MapReal(seq, func(x float64) float64 { return x + s })
}

// ScaleReal multiplies every value of seq by s.
func ScaleReal(seq RealSequence, s float64) RealSequence {
	if a, ok := seq.(realScaler); ok {
		if v, ok2 := a.AnalyticScale(s); ok2 {
			return v
		}
	}
	if st, ok := seq.(realStorer); ok {
		return NewRealFromVector(st.Storage().ScaleScalar(s))
	}
	return MapReal(seq, func(x float64) float64 { return x * s })
}

// NegateReal negates every value of seq.
func NegateReal(seq RealSequence) RealSequence {
	if a, ok := seq.(realNegater); ok {
		if v, ok2 := a.AnalyticNegate(); ok2 {
			return v
		}
	}
	if st, ok := seq.(realStorer); ok {
		return NewRealFromVector(st.Storage().Negate())
	}
	return MapReal(seq, func(x float64) float64 { return -x })
}
