package vector

// IntVector is the dense-array contract for 32-bit signed integers.
// Indexing and slicing follow ordinary Go slice semantics (they panic on
// out-of-range access); callers that need a recoverable error, such as
// seq.IndexInt, validate bounds themselves before calling in.
type IntVector interface {
	Len() int
	At(i int) int32
	Slice(lo, hi int) IntVector

	Sum() int32
	Min() int32
	Max() int32
	Product() int32
	Dot(other IntVector) int32

	Add(other IntVector) IntVector
	Sub(other IntVector) IntVector
	Mul(other IntVector) IntVector
	Div(other IntVector) IntVector

	AddScalar(s int32) IntVector
	ScaleScalar(s int32) IntVector
	Negate() IntVector

	AsSlice() []int32
	Contains(v int32) bool
	IndexOf(v int32) (int, bool)
}

// DenseInts is the reference IntVector implementation: a flat []int32.
type DenseInts struct {
	data []int32
}

// NewDenseInts wraps data as an IntVector. data is not copied.
func NewDenseInts(data []int32) *DenseInts {
	return &DenseInts{data: data}
}

func (v *DenseInts) Len() int { return len(v.data) }

func (v *DenseInts) At(i int) int32 { return v.data[i] }

func (v *DenseInts) Slice(lo, hi int) IntVector {
	return &DenseInts{data: v.data[lo:hi]}
}

func (v *DenseInts) AsSlice() []int32 { return v.data }

func (v *DenseInts) Sum() int32 {
	var s int32
	for _, x := range v.data {
		s += x
	}
	return s
}

func (v *DenseInts) Min() int32 {
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

func (v *DenseInts) Max() int32 {
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

func (v *DenseInts) Product() int32 {
	p := int32(1)
	for _, x := range v.data {
		p *= x
	}
	return p
}

func (v *DenseInts) Dot(other IntVector) int32 {
	n := min(v.Len(), other.Len())
	var s int32
	for i := 0; i < n; i++ {
		s += v.data[i] * other.At(i)
	}
	return s
}

func (v *DenseInts) elementWise(other IntVector, op func(a, b int32) int32) IntVector {
	n := min(v.Len(), other.Len())
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		out[i] = op(v.data[i], other.At(i))
	}
	return &DenseInts{data: out}
}

func (v *DenseInts) Add(other IntVector) IntVector {
	return v.elementWise(other, func(a, b int32) int32 { return a + b })
}

func (v *DenseInts) Sub(other IntVector) IntVector {
	return v.elementWise(other, func(a, b int32) int32 { return a - b })
}

func (v *DenseInts) Mul(other IntVector) IntVector {
	return v.elementWise(other, func(a, b int32) int32 { return a * b })
}

func (v *DenseInts) Div(other IntVector) IntVector {
	return v.elementWise(other, func(a, b int32) int32 { return a / b })
}

func (v *DenseInts) AddScalar(s int32) IntVector {
	out := make([]int32, len(v.data))
	for i, x := range v.data {
		out[i] = x + s
	}
	return &DenseInts{data: out}
}

func (v *DenseInts) ScaleScalar(s int32) IntVector {
	out := make([]int32, len(v.data))
	for i, x := range v.data {
		out[i] = x * s
	}
	return &DenseInts{data: out}
}

func (v *DenseInts) Negate() IntVector {
	out := make([]int32, len(v.data))
	for i, x := range v.data {
		out[i] = -x
	}
	return &DenseInts{data: out}
}

func (v *DenseInts) Contains(target int32) bool {
	for _, x := range v.data {
		if x == target {
			return true
		}
	}
	return false
}

func (v *DenseInts) IndexOf(target int32) (int, bool) {
	for i, x := range v.data {
		if x == target {
			return i, true
		}
	}
	return -1, false
}
