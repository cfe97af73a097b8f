package signal

import (
	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/fft"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

// FiniteSignal holds samples on [Start, Stop). Its samples and its FFT
// spectrum are two cached views; whichever one the signal was built from
// is present, the other is derived on first request.
type FiniteSignal struct {
	base
	start    int
	length   int
	samples  *core.Lazy[[]float64]
	spectrum *core.Lazy[*spectrum.FFTSpectrum]
}

// NewFinite copies samples into a Finite signal beginning at index start.
func NewFinite(sampleRate float64, start int, samples []float64) (*FiniteSignal, error) {
	if err := validRate(sampleRate); err != nil {
		return nil, err
	}
	return newFinite(sampleRate, start, append([]float64(nil), samples...)), nil
}

// newFinite takes ownership of samples.
func newFinite(sampleRate float64, start int, samples []float64) *FiniteSignal {
	f := &FiniteSignal{
		base:    base{sampleRate: sampleRate},
		start:   start,
		length:  len(samples),
		samples: core.Ready(samples),
	}
	f.spectrum = core.NewLazy(func() *spectrum.FFTSpectrum {
		if f.length == 0 {
			return nil
		}
		s, _ := spectrum.NewFFTSpectrumFromTime(f.samples.Get(), f.sampleRate, f.length, fft.Default())
		return s
	})
	return f
}

// NewFiniteFromSpectrum builds a Finite signal of length s.N() whose
// samples are reconstructed from s on first access.
func NewFiniteFromSpectrum(s *spectrum.FFTSpectrum, start int) *FiniteSignal {
	f := &FiniteSignal{
		base:     base{sampleRate: s.SampleRate()},
		start:    start,
		length:   s.N(),
		spectrum: core.Ready(s),
	}
	f.samples = core.NewLazy(func() []float64 {
		td, err := s.TimeDomain()
		out := make([]float64, f.length)
		if err == nil {
			copy(out, td)
		}
		return out
	})
	return f
}

// Start returns the index of the first sample.
func (f *FiniteSignal) Start() int { return f.start }

// Length returns the number of samples.
func (f *FiniteSignal) Length() int { return f.length }

// Stop returns the index one past the last sample.
func (f *FiniteSignal) Stop() int { return f.start + f.length }

// Samples returns the samples on [Start, Stop). The slice is shared.
func (f *FiniteSignal) Samples() []float64 { return f.samples.Get() }

// FFTSpectrum returns the half spectrum of the samples with N = Length().
// It is nil for an empty signal.
func (f *FiniteSignal) FFTSpectrum() *spectrum.FFTSpectrum { return f.spectrum.Get() }

// WindowedSamples returns the samples on [start, start+length) with zeros
// outside [Start, Stop).
func (f *FiniteSignal) WindowedSamples(start, length int) []float64 {
	if length <= 0 {
		return []float64{}
	}
	out := make([]float64, length)

	lo := max(start, f.start)
	hi := min(start+length, f.Stop())
	if lo < hi {
		copy(out[lo-start:hi-start], f.Samples()[lo-f.start:hi-f.start])
	}
	return out
}
