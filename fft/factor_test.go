package fft

import "testing"

func TestIsPrime(t *testing.T) {
	t.Parallel()

	primes := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 97}
	for _, p := range primes {
		if !isPrime(p) {
			t.Errorf("isPrime(%d) = false, want true", p)
		}
	}

	composites := []int{1, 4, 6, 8, 9, 360, 1024}
	for _, n := range composites {
		if isPrime(n) {
			t.Errorf("isPrime(%d) = true, want false", n)
		}
	}
}

func TestFindSmooth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
	}{
		{1, 1},
		{7, 8},
		{11, 12},
		{17, 18},
		{23, 24},
		{45, 45},
	}
	for _, tc := range tests {
		if got := FindSmooth(tc.in); got != tc.want {
			t.Errorf("FindSmooth(%d) = %d, want %d", tc.in, got, tc.want)
		}
		if !isSmooth(FindSmooth(tc.in)) {
			t.Errorf("FindSmooth(%d) = %d is not smooth", tc.in, FindSmooth(tc.in))
		}
	}
}

func TestFactorPairSmallRadixPreference(t *testing.T) {
	t.Parallel()

	n1, n2, ok := factorPair(360)
	if !ok {
		t.Fatal("expected 360 to factor")
	}
	if n1*n2 != 360 {
		t.Errorf("n1*n2 = %d, want 360", n1*n2)
	}
	if n1 != 4 {
		t.Errorf("n1 = %d, want 4 (radix-4 preferred first)", n1)
	}
}

func TestFactorPairBalancedForLargeN(t *testing.T) {
	t.Parallel()

	n := RecursiveThreshold + 1
	n1, n2, ok := factorPair(n * 2)
	if !ok {
		t.Fatalf("expected %d to factor", n*2)
	}
	if n1*n2 != n*2 {
		t.Errorf("n1*n2 = %d, want %d", n1*n2, n*2)
	}
	// 2050 = 2*5*5*41; the largest divisor <= ceil(sqrt(2050)) = 46 is 41.
	if n1 != 41 || n2 != 50 {
		t.Errorf("factorPair(%d) = (%d, %d), want balanced split (41, 50)", n*2, n1, n2)
	}
}

func TestPrimitiveRootAndModInverse(t *testing.T) {
	t.Parallel()

	for _, p := range []int{5, 7, 11, 13, 17, 19} {
		g := primitiveRoot(p)
		gInv := modInverse(g, p)
		if got := modPow(g, 1, p) * gInv % p; got != 1 {
			t.Errorf("p=%d: g=%d, g^-1=%d, g*g^-1 mod p = %d, want 1", p, g, gInv, got)
		}
		// g must actually generate the full group: g^(p-1) == 1 and no
		// smaller positive power equals 1 for any prime divisor of p-1.
		seen := map[int]bool{}
		cur := 1
		for k := 0; k < p-1; k++ {
			cur = (cur * g) % p
			seen[cur] = true
		}
		if len(seen) != p-1 {
			t.Errorf("p=%d: g=%d only generates %d of %d elements", p, g, len(seen), p-1)
		}
	}
}
