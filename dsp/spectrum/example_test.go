package spectrum_test

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleUnwrapPhase() {
	wrapped := []float64{2.8, -2.7, -2.6}
	unwrapped := spectrum.UnwrapPhase(wrapped)
	fmt.Printf("%.3f %.3f %.3f\n", unwrapped[0], unwrapped[1], unwrapped[2])
	// Output:
	// 2.800 3.583 3.683
}

func ExampleSmoothFractionalOctave() {
	freq := []float64{100, 125, 160, 200, 250, 315}
	vals := []float64{1, 1, 9, 1, 1, 1}
	out, _ := spectrum.SmoothFractionalOctave(freq, vals, 3)
	fmt.Printf("%.1f %.1f %.1f\n", out[1], out[2], out[3])
	// Output:
	// 1.0 9.0 1.0
}

func ExampleSpectrum_Value() {
	s, _ := spectrum.New(series.New([]float64{100, 200}, false), []complex128{1, 3})
	fmt.Println(s.Value(50), s.Value(150), s.Value(1000))
	// Output:
	// (1+0i) (2+0i) (3+0i)
}

func ExampleNewFFTSpectrumFromTime() {
	s, _ := spectrum.NewFFTSpectrumFromTime([]float64{1, 1, 1, 1}, 4, 0, nil)
	bins, _ := s.Bins()
	fmt.Println(len(bins), s.Frequencies())
	fmt.Printf("%.1f %.1f\n", cmplx.Abs(bins[0]), cmplx.Abs(bins[2]))
	// Output:
	// 3 Series(lin, n=3, [0..2])
	// 4.0 0.0
}
