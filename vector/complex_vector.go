package vector

import "math/cmplx"

// ComplexVector is the dense-array contract for complex numbers with
// 64-bit real and imaginary components. There is no total order over
// complex128, so ComplexVector has no Min/Max — magnitude-ordering
// reductions, if ever needed, belong to the caller.
type ComplexVector interface {
	Len() int
	At(i int) complex128
	Slice(lo, hi int) ComplexVector

	Sum() complex128
	Product() complex128
	// Dot computes the Hermitian inner product Σ x[i]*conj(y[i]).
	Dot(other ComplexVector) complex128

	Add(other ComplexVector) ComplexVector
	Sub(other ComplexVector) ComplexVector
	Mul(other ComplexVector) ComplexVector
	Div(other ComplexVector) ComplexVector

	AddScalar(s complex128) ComplexVector
	ScaleScalar(s complex128) ComplexVector
	Negate() ComplexVector

	Magnitudes() RealVector
	Phases() RealVector

	AsSlice() []complex128
	Contains(v complex128) bool
	IndexOf(v complex128) (int, bool)
}

// DenseComplexes is the reference ComplexVector implementation: a flat
// []complex128.
type DenseComplexes struct {
	data []complex128
}

// NewDenseComplexes wraps data as a ComplexVector. data is not copied.
func NewDenseComplexes(data []complex128) *DenseComplexes {
	return &DenseComplexes{data: data}
}

func (v *DenseComplexes) Len() int { return len(v.data) }

func (v *DenseComplexes) At(i int) complex128 { return v.data[i] }

func (v *DenseComplexes) Slice(lo, hi int) ComplexVector {
	return &DenseComplexes{data: v.data[lo:hi]}
}

func (v *DenseComplexes) AsSlice() []complex128 { return v.data }

func (v *DenseComplexes) Sum() complex128 {
	var s complex128
	for _, x := range v.data {
		s += x
	}
	return s
}

func (v *DenseComplexes) Product() complex128 {
	p := complex128(1)
	for _, x := range v.data {
		p *= x
	}
	return p
}

func (v *DenseComplexes) Dot(other ComplexVector) complex128 {
	n := min(v.Len(), other.Len())
	var s complex128
	for i := 0; i < n; i++ {
		s += v.data[i] * cmplx.Conj(other.At(i))
	}
	return s
}

func (v *DenseComplexes) elementWise(other ComplexVector, op func(a, b complex128) complex128) ComplexVector {
	n := min(v.Len(), other.Len())
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = op(v.data[i], other.At(i))
	}
	return &DenseComplexes{data: out}
}

func (v *DenseComplexes) Add(other ComplexVector) ComplexVector {
	return v.elementWise(other, func(a, b complex128) complex128 { return a + b })
}

func (v *DenseComplexes) Sub(other ComplexVector) ComplexVector {
	return v.elementWise(other, func(a, b complex128) complex128 { return a - b })
}

func (v *DenseComplexes) Mul(other ComplexVector) ComplexVector {
	return v.elementWise(other, func(a, b complex128) complex128 { return a * b })
}

func (v *DenseComplexes) Div(other ComplexVector) ComplexVector {
	return v.elementWise(other, func(a, b complex128) complex128 { return a / b })
}

func (v *DenseComplexes) AddScalar(s complex128) ComplexVector {
	out := make([]complex128, len(v.data))
	for i, x := range v.data {
		out[i] = x + s
	}
	return &DenseComplexes{data: out}
}

func (v *DenseComplexes) ScaleScalar(s complex128) ComplexVector {
	out := make([]complex128, len(v.data))
	for i, x := range v.data {
		out[i] = x * s
	}
	return &DenseComplexes{data: out}
}

func (v *DenseComplexes) Negate() ComplexVector {
	out := make([]complex128, len(v.data))
	for i, x := range v.data {
		out[i] = -x
	}
	return &DenseComplexes{data: out}
}

func (v *DenseComplexes) Magnitudes() RealVector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = cmplx.Abs(x)
	}
	return &DenseReals{data: out}
}

func (v *DenseComplexes) Phases() RealVector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = cmplx.Phase(x)
	}
	return &DenseReals{data: out}
}

func (v *DenseComplexes) Contains(target complex128) bool {
	for _, x := range v.data {
		if x == target {
			return true
		}
	}
	return false
}

func (v *DenseComplexes) IndexOf(target complex128) (int, bool) {
	for i, x := range v.data {
		if x == target {
			return i, true
		}
	}
	return -1, false
}
