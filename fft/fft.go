package fft

import "sync"

// planCache memoizes plans by size, mirroring the size-keyed FFT state
// cache pattern: constructing a plan is comparatively expensive for large
// N, and the common case calls the same size repeatedly.
var (
	planCache   = make(map[int]*Plan)
	planCacheMu sync.Mutex
)

func cachedPlan(n int) (*Plan, error) {
	planCacheMu.Lock()
	defer planCacheMu.Unlock()
	if p, ok := planCache[n]; ok {
		return p, nil
	}
	p, err := NewPlan(n)
	if err != nil {
		return nil, err
	}
	planCache[n] = p
	return p, nil
}

// ForwardComplex transforms a in place, computing its forward DFT.
func ForwardComplex(a []complex128) error {
	p, err := cachedPlan(len(a))
	if err != nil {
		return err
	}
	return p.Execute(a)
}

// InverseComplex transforms a in place, computing its inverse DFT
// (including the 1/N normalization).
func InverseComplex(a []complex128) error {
	n := len(a)
	p, err := cachedPlan(n)
	if err != nil {
		return err
	}
	inverseInPlace(a, p)
	return nil
}
