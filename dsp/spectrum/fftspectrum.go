package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/fft"
	"github.com/cwbudde/algo-signal/dsp/series"
)

type timeCell struct {
	samples []float64
	err     error
}

type binCell struct {
	bins []complex128
	err  error
}

// FFTSpectrum is the half spectrum of a real sequence of length N, held
// together with the sequence itself. One representation is supplied at
// construction; the other is computed through the Transformer on first
// request and cached.
type FFTSpectrum struct {
	sampleRate float64
	n          int
	engine     fft.Transformer

	time     *core.Lazy[timeCell]
	bins     *core.Lazy[binCell]
	spectrum *core.Lazy[*Spectrum]
}

// NewFFTSpectrumFromTime wraps samples zero-padded or truncated to n. n <= 0
// uses len(samples). A nil engine selects fft.Default().
func NewFFTSpectrumFromTime(samples []float64, sampleRate float64, n int, engine fft.Transformer) (*FFTSpectrum, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("spectrum: %w", core.ErrEmptyInput)
	}
	if err := validateRate(sampleRate); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = len(samples)
	}

	padded := make([]float64, n)
	copy(padded, samples)

	s := newFFTSpectrum(sampleRate, n, engine)
	s.time = core.Ready(timeCell{samples: padded})
	s.bins = core.NewLazy(func() binCell {
		bins, err := s.engine.Forward(padded, n)
		return binCell{bins: bins, err: err}
	})
	return s, nil
}

// NewFFTSpectrumFromValues wraps a half spectrum. The time-domain length is
// inferred from the last bin: a negligible imaginary part means an even
// length, anything else an odd one.
func NewFFTSpectrumFromValues(values []complex128, sampleRate float64, engine fft.Transformer) (*FFTSpectrum, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("spectrum: %w", core.ErrEmptyInput)
	}
	if err := validateRate(sampleRate); err != nil {
		return nil, err
	}

	bins := append([]complex128(nil), values...)

	s := newFFTSpectrum(sampleRate, fft.InferLength(bins), engine)
	s.bins = core.Ready(binCell{bins: bins})
	s.time = core.NewLazy(func() timeCell {
		samples, err := s.engine.Inverse(bins)
		return timeCell{samples: samples, err: err}
	})
	return s, nil
}

func newFFTSpectrum(sampleRate float64, n int, engine fft.Transformer) *FFTSpectrum {
	if engine == nil {
		engine = fft.Default()
	}
	s := &FFTSpectrum{sampleRate: sampleRate, n: n, engine: engine}
	s.spectrum = core.NewLazy(func() *Spectrum {
		cell := s.bins.Get()
		if cell.err != nil {
			return nil
		}
		return newSpectrum(s.Frequencies(), cell.bins)
	})
	return s
}

func validateRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("spectrum: sample rate %v: %w", sampleRate, core.ErrInvalidParameter)
	}
	return nil
}

// N returns the time-domain length.
func (s *FFTSpectrum) N() int { return s.n }

// SampleRate returns the sample rate in Hz.
func (s *FFTSpectrum) SampleRate() float64 { return s.sampleRate }

// Frequencies returns the bin centre frequencies k*fs/N, k = 0..N/2.
func (s *FFTSpectrum) Frequencies() series.Series {
	return series.FFTBins(s.n, s.sampleRate)
}

// Bins returns the N/2+1 half-spectrum bins. The slice is shared.
func (s *FFTSpectrum) Bins() ([]complex128, error) {
	cell := s.bins.Get()
	return cell.bins, cell.err
}

// TimeDomain returns the N time samples. The slice is shared.
func (s *FFTSpectrum) TimeDomain() ([]float64, error) {
	cell := s.time.Get()
	return cell.samples, cell.err
}

// Spectrum returns the bins as a Spectrum over Frequencies().
func (s *FFTSpectrum) Spectrum() (*Spectrum, error) {
	if sp := s.spectrum.Get(); sp != nil {
		return sp, nil
	}
	_, err := s.Bins()
	return nil, err
}

// HasTimeDomain reports whether the time samples are already available.
func (s *FFTSpectrum) HasTimeDomain() bool { return s.time.Done() }

// HasBins reports whether the half spectrum is already available.
func (s *FFTSpectrum) HasBins() bool { return s.bins.Done() }
