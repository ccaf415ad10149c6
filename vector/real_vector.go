package vector

// RealVector is the dense-array contract for 64-bit floating point reals.
type RealVector interface {
	Len() int
	At(i int) float64
	Slice(lo, hi int) RealVector

	Sum() float64
	Min() float64
	Max() float64
	Product() float64
	Dot(other RealVector) float64

	Add(other RealVector) RealVector
	Sub(other RealVector) RealVector
	Mul(other RealVector) RealVector
	Div(other RealVector) RealVector

	AddScalar(s float64) RealVector
	ScaleScalar(s float64) RealVector
	Negate() RealVector

	AsSlice() []float64
	Contains(v float64) bool
	IndexOf(v float64) (int, bool)
}

// DenseReals is the reference RealVector implementation: a flat []float64.
type DenseReals struct {
	data []float64
}

// NewDenseReals wraps data as a RealVector. data is not copied.
func NewDenseReals(data []float64) *DenseReals {
	return &DenseReals{data: data}
}

func (v *DenseReals) Len() int { return len(v.data) }

func (v *DenseReals) At(i int) float64 { return v.data[i] }

func (v *DenseReals) Slice(lo, hi int) RealVector {
	return &DenseReals{data: v.data[lo:hi]}
}

func (v *DenseReals) AsSlice() []float64 { return v.data }

func (v *DenseReals) Sum() float64 {
	var s float64
	for _, x := range v.data {
		s += x
	}
	return s
}

func (v *DenseReals) Min() float64 {
	if len(v.data) == 0 {
		return 0
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func (v *DenseReals) Max() float64 {
	if len(v.data) == 0 {
		return 0
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func (v *DenseReals) Product() float64 {
	p := 1.0
	for _, x := range v.data {
		p *= x
	}
	return p
}

func (v *DenseReals) Dot(other RealVector) float64 {
	n := min(v.Len(), other.Len())
	var s float64
	for i := 0; i < n; i++ {
		s += v.data[i] * other.At(i)
	}
	return s
}

func (v *DenseReals) elementWise(other RealVector, op func(a, b float64) float64) RealVector {
	n := min(v.Len(), other.Len())
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = op(v.data[i], other.At(i))
	}
	return &DenseReals{data: out}
}

func (v *DenseReals) Add(other RealVector) RealVector {
	return v.elementWise(other, func(a, b float64) float64 { return a + b })
}

func (v *DenseReals) Sub(other RealVector) RealVector {
	return v.elementWise(other, func(a, b float64) float64 { return a - b })
}

func (v *DenseReals) Mul(other RealVector) RealVector {
	return v.elementWise(other, func(a, b float64) float64 { return a * b })
}

func (v *DenseReals) Div(other RealVector) RealVector {
	return v.elementWise(other, func(a, b float64) float64 { return a / b })
}

func (v *DenseReals) AddScalar(s float64) RealVector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x + s
	}
	return &DenseReals{data: out}
}

func (v *DenseReals) ScaleScalar(s float64) RealVector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x * s
	}
	return &DenseReals{data: out}
}

func (v *DenseReals) Negate() RealVector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = -x
	}
	return &DenseReals{data: out}
}

func (v *DenseReals) Contains(target float64) bool {
	for _, x := range v.data {
		if x == target {
			return true
		}
	}
	return false
}

func (v *DenseReals) IndexOf(target float64) (int, bool) {
	for i, x := range v.data {
		if x == target {
			return i, true
		}
	}
	return -1, false
}
