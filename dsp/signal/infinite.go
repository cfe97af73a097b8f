package signal

import (
	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

// SampleFunc returns the sample at index i.
type SampleFunc func(i int) float64

// RangeFunc returns length samples starting at index start.
type RangeFunc func(start, length int) []float64

// InfiniteSignal evaluates a sampling function on demand.
type InfiniteSignal struct {
	base
	window RangeFunc
}

func (*InfiniteSignal) infinite() {}

// NewInfinite wraps a per-index sampling function.
func NewInfinite(sampleRate float64, fn SampleFunc) (*InfiniteSignal, error) {
	if err := validRate(sampleRate); err != nil {
		return nil, err
	}
	return newInfinite(sampleRate, perIndex(fn)), nil
}

// NewInfiniteRange wraps a per-window sampling function.
func NewInfiniteRange(sampleRate float64, fn RangeFunc) (*InfiniteSignal, error) {
	if err := validRate(sampleRate); err != nil {
		return nil, err
	}
	return newInfinite(sampleRate, fn), nil
}

func newInfinite(sampleRate float64, fn RangeFunc) *InfiniteSignal {
	return &InfiniteSignal{base: base{sampleRate: sampleRate}, window: fn}
}

func perIndex(fn SampleFunc) RangeFunc {
	return func(start, length int) []float64 {
		out := make([]float64, length)
		for i := range out {
			out[i] = fn(start + i)
		}
		return out
	}
}

// WindowedSamples evaluates the signal on [start, start+length). A window
// function returning the wrong number of samples is zero-padded or
// truncated.
func (s *InfiniteSignal) WindowedSamples(start, length int) []float64 {
	if length <= 0 {
		return []float64{}
	}
	out := s.window(start, length)
	if len(out) == length {
		return out
	}
	fixed := make([]float64, length)
	copy(fixed, out)
	return fixed
}

// SyntheticSignal is an Infinite signal with a closed-form spectrum.
type SyntheticSignal struct {
	*InfiniteSignal
	response func(f float64) complex128
}

// NewSynthetic pairs a sampling function with its frequency response.
func NewSynthetic(sampleRate float64, fn SampleFunc, response func(f float64) complex128) (*SyntheticSignal, error) {
	inf, err := NewInfinite(sampleRate, fn)
	if err != nil {
		return nil, err
	}
	return &SyntheticSignal{InfiniteSignal: inf, response: response}, nil
}

// Spectrum evaluates the analytic response at freqs.
func (s *SyntheticSignal) Spectrum(freqs series.Series) *spectrum.Spectrum {
	values := make([]complex128, freqs.Len())
	for i := range values {
		values[i] = s.response(freqs.At(i))
	}
	sp, _ := spectrum.New(freqs, values)
	return sp
}
