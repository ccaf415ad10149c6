package seq

import (
	"math/cmplx"

	"github.com/MeKo-Christian/austra-core/vector"
)

// complexVectorPair returns a and b's underlying storage, trimmed to
// their common length, if either operand has storage; the operand
// lacking storage is materialized first so the vectorized path can
// still be used, per the "either has storage" decision rule. The third
// result reports whether the vectorized path applies at all; it is false
// when neither operand has storage.
func complexVectorPair(a, b ComplexSequence) (va, vb vector.ComplexVector, ok bool) {
	sa, aOk := a.(complexStorer)
	sb, bOk := b.(complexStorer)
	if !aOk && !bOk {
		return nil, nil, false
	}
	va = complexStorageOf(a, sa, aOk)
	vb = complexStorageOf(b, sb, bOk)
	n := va.Len()
	if vb.Len() < n {
		n = vb.Len()
	}
	return va.Slice(0, n), vb.Slice(0, n), true
}

func complexStorageOf(s ComplexSequence, st complexStorer, ok bool) vector.ComplexVector {
	if ok {
		return st.Storage()
	}
	return vector.NewDenseComplexes(MaterializeComplex(s))
}

// AddComplex returns the elementwise sum of a and b, vectorized when
// either has storage, otherwise a fused Zip.
func AddComplex(a, b ComplexSequence) ComplexSequence {
	if va, vb, ok := complexVectorPair(a, b); ok {
		return NewComplexFromVector(va.Add(vb))
	}
	return ZipComplex(a, b, func(x, y complex128) complex128 { return x + y })
}

// SubComplex returns the elementwise difference a - b.
func SubComplex(a, b ComplexSequence) ComplexSequence {
	if va, vb, ok := complexVectorPair(a, b); ok {
		return NewComplexFromVector(va.Sub(vb))
	}
	return ZipComplex(a, b, func(x, y complex128) complex128 { return x - y })
}

// PointwiseMultiplyComplex returns the elementwise product of a and b.
func PointwiseMultiplyComplex(a, b ComplexSequence) ComplexSequence {
	if va, vb, ok := complexVectorPair(a, b); ok {
		return NewComplexFromVector(va.Mul(vb))
	}
	return ZipComplex(a, b, func(x, y complex128) complex128 { return x * y })
}

// PointwiseDivideComplex returns the elementwise quotient of a and b.
func PointwiseDivideComplex(a, b ComplexSequence) ComplexSequence {
	if va, vb, ok := complexVectorPair(a, b); ok {
		return NewComplexFromVector(va.Div(vb))
	}
	return ZipComplex(a, b, func(x, y complex128) complex128 { return x / y })
}

// DotComplex is the Hermitian inner product Σ x·conj(y) of a and b.
func DotComplex(a, b ComplexSequence) complex128 {
	if va, vb, ok := complexVectorPair(a, b); ok {
		return va.Dot(vb)
	}
	return SumComplex(ZipComplex(a, b, func(x, y complex128) complex128 { return x * cmplx.Conj(y) }))
}

// AddScalarComplex adds s to every value of seq.
func AddScalarComplex(seq ComplexSequence, s complex128) ComplexSequence {
	if a, ok := seq.(complexShifter); ok {
		if v, ok2 := a.AnalyticShift(s); ok2 {
			return v
		}
	}
	if st, ok := seq.(complexStorer); ok {
		return NewComplexFromVector(st.Storage().AddScalar(s))
	}
	return MapComplex(seq, func(x complex128) complex128 { return x + s })
}

// ScaleComplex multiplies every value of seq by s.
func ScaleComplex(seq ComplexSequence, s complex128) ComplexSequence {
	if a, ok := seq.(complexScaler); ok {
		if v, ok2 := a.AnalyticScale(s); ok2 {
			return v
		}
	}
	if st, ok := seq.(complexStorer); ok {
		return NewComplexFromVector(st.Storage().ScaleScalar(s))
	}
	return MapComplex(seq, func(x complex128) complex128 { return x * s })
}

// NegateComplex negates every value of seq.
func NegateComplex(seq ComplexSequence) ComplexSequence {
	if a, ok := seq.(complexNegater); ok {
		if v, ok2 := a.AnalyticNegate(); ok2 {
			return v
		}
	}
	if st, ok := seq.(complexStorer); ok {
		return NewComplexFromVector(st.Storage().Negate())
	}
	return MapComplex(seq, func(x complex128) complex128 { return -x })
}
