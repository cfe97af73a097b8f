package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/signal"
)

func ExampleSine() {
	s, err := signal.Sine(1000, 250, 1, 0)
	if err != nil {
		panic(err)
	}
	x := s.WindowedSamples(0, 5)
	for i := range x {
		if math.Abs(x[i]) < 1e-12 {
			x[i] = 0
		}
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleNormalize() {
	x, err := signal.Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", x[0], x[1], x[2])

	// Output:
	// -0.40 0.20 0.80
}

func ExampleConvolve() {
	a, _ := signal.NewFinite(1000, 1, []float64{1, 2})
	b, _ := signal.NewFinite(1000, -2, []float64{1, 1, 1})

	out, _ := signal.Convolve(a, b)
	f := out.(signal.Finite)
	fmt.Printf("start=%d samples=%.0f\n", f.Start(), f.Samples())

	// Output:
	// start=-1 samples=[1 3 3 2]
}

func ExampleAdd() {
	a, _ := signal.NewFinite(1000, 0, []float64{1, 1})
	c, _ := signal.Constant(1000, 0.5)

	sum, _ := signal.Add(a, c)
	fmt.Println(sum.WindowedSamples(-1, 4))

	// Output:
	// [0.5 1.5 1.5 0.5]
}
