// Command austra exercises the FFT engine from the command line.
//
// Usage:
//
//	austra describe <n>
//	austra roundtrip <n>
//	austra bench <n>
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/MeKo-Christian/austra-core/fft"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <command> <n>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  describe <n>   print the FFT plan built for size n\n")
		fmt.Fprintf(os.Stderr, "  roundtrip <n>  forward then inverse a random complex array of size n\n")
		fmt.Fprintf(os.Stderr, "  bench <n>      time repeated forward transforms of size n\n")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	n, err := strconv.Atoi(flag.Arg(1))
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "Error: n must be a positive integer, got %q\n", flag.Arg(1))
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "describe":
		err = runDescribe(n)
	case "roundtrip":
		err = runRoundtrip(n)
	case "bench":
		err = runBench(n)
	default:
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDescribe(n int) error {
	p, err := fft.NewPlan(n)
	if err != nil {
		return err
	}
	fmt.Print(p.Describe())
	return nil
}

func runRoundtrip(n int) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	buf := append([]complex128(nil), x...)
	if err := fft.ForwardComplex(buf); err != nil {
		return err
	}
	if err := fft.InverseComplex(buf); err != nil {
		return err
	}

	var maxRelErr float64
	for i := range x {
		diff := buf[i] - x[i]
		errAbs := math.Hypot(real(diff), imag(diff))
		scale := math.Hypot(real(x[i]), imag(x[i]))
		if scale < 1 {
			scale = 1
		}
		if rel := errAbs / scale; rel > maxRelErr {
			maxRelErr = rel
		}
	}
	fmt.Printf("n=%d max relative error = %g\n", n, maxRelErr)
	return nil
}

func runBench(n int) error {
	rng := rand.New(rand.NewSource(1))
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	const iterations = 100
	start := time.Now()
	for i := 0; i < iterations; i++ {
		buf := append([]complex128(nil), x...)
		if err := fft.ForwardComplex(buf); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("n=%d: %d forward transforms in %s (%s/transform)\n", n, iterations, elapsed, elapsed/iterations)
	return nil
}
