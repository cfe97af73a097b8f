package series

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Series is an ordered sequence of real values plus a logarithmic-scale flag.
// Its length is fixed at construction.
type Series struct {
	values []float64
	log    bool
}

// New returns a Series holding a copy of values.
func New(values []float64, log bool) Series {
	return Series{values: append([]float64(nil), values...), log: log}
}

// Linear returns n evenly spaced values from `from` to `to` inclusive.
func Linear(from, to float64, n int) (Series, error) {
	if n < 2 {
		return Series{}, fmt.Errorf("series: linear series needs at least 2 points: %d: %w", n, core.ErrInvalidParameter)
	}
	values := make([]float64, n)
	floats.Span(values, from, to)
	return Series{values: values}, nil
}

// Logarithmic returns n logarithmically spaced values from `from` to `to`
// inclusive. Both bounds must be > 0.
func Logarithmic(from, to float64, n int) (Series, error) {
	if n < 2 {
		return Series{}, fmt.Errorf("series: logarithmic series needs at least 2 points: %d: %w", n, core.ErrInvalidParameter)
	}
	if from <= 0 || to <= 0 {
		return Series{}, fmt.Errorf("series: logarithmic bounds must be > 0: [%g, %g]: %w", from, to, core.ErrInvalidParameter)
	}
	values := make([]float64, n)
	floats.LogSpan(values, from, to)
	return Series{values: values, log: true}, nil
}

// FFTBins returns the frequencies of the non-negative half spectrum of an
// FFT of length n at the given sample rate: k*sampleRate/n for k = 0..n/2.
func FFTBins(n int, sampleRate float64) Series {
	if n <= 0 {
		return Series{}
	}
	values := make([]float64, n/2+1)
	df := sampleRate / float64(n)
	for k := range values {
		values[k] = float64(k) * df
	}
	return Series{values: values}
}

// Len returns the number of values.
func (s Series) Len() int { return len(s.values) }

// At returns the i-th value.
func (s Series) At(i int) float64 { return s.values[i] }

// IsLog reports whether the series is meant to be displayed on a log scale.
func (s Series) IsLog() bool { return s.log }

// Values returns a copy of the values.
func (s Series) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// Min returns the first value (series are ascending by convention).
func (s Series) Min() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	return s.values[0]
}

// Max returns the last value.
func (s Series) Max() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	return s.values[len(s.values)-1]
}

// Equal reports value-based equality, including the log flag.
func (s Series) Equal(o Series) bool {
	if s.log != o.log || len(s.values) != len(o.values) {
		return false
	}
	for i, v := range s.values {
		if v != o.values[i] {
			return false
		}
	}
	return true
}

// IsAscending reports whether the values are strictly increasing.
func (s Series) IsAscending() bool {
	for i := 1; i < len(s.values); i++ {
		if !(s.values[i] > s.values[i-1]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (s Series) String() string {
	scale := "lin"
	if s.log {
		scale = "log"
	}
	if len(s.values) == 0 {
		return "Series(" + scale + ", empty)"
	}
	return fmt.Sprintf("Series(%s, n=%d, [%g..%g])", scale, len(s.values), s.Min(), s.Max())
}
