package spectrum

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/interp"
	"github.com/cwbudde/algo-signal/dsp/series"
)

// Spectrum is a complex frequency response sampled at ascending
// frequencies. It is immutable after construction; derived views are
// computed once and cached.
type Spectrum struct {
	freqs  series.Series
	f      []float64
	values []complex128

	magnitude *core.Lazy[[]float64]
	phase     *core.Lazy[[]float64]
	delay     *core.Lazy[[]float64]
	db        *core.Lazy[[]float64]
}

// New pairs freqs with values. Both must have the same length. values is
// copied.
func New(freqs series.Series, values []complex128) (*Spectrum, error) {
	if freqs.Len() != len(values) {
		return nil, fmt.Errorf("spectrum: %d frequencies, %d values: %w", freqs.Len(), len(values), core.ErrLengthMismatch)
	}
	return newSpectrum(freqs, append([]complex128(nil), values...)), nil
}

// newSpectrum takes ownership of values.
func newSpectrum(freqs series.Series, values []complex128) *Spectrum {
	s := &Spectrum{
		freqs:  freqs,
		f:      freqs.Values(),
		values: values,
	}
	s.magnitude = core.NewLazy(func() []float64 { return Magnitude(s.values) })
	s.phase = core.NewLazy(func() []float64 { return UnwrapPhase(Phase(s.values)) })
	s.delay = core.NewLazy(func() []float64 {
		d, _ := GroupDelay(s.f, s.phase.Get())
		return d
	})
	s.db = core.NewLazy(func() []float64 {
		mag := s.magnitude.Get()
		out := make([]float64, len(mag))
		for i, m := range mag {
			out[i] = core.LinearToDB(m)
		}
		return out
	})
	return s
}

// Frequencies returns the frequency axis.
func (s *Spectrum) Frequencies() series.Series { return s.freqs }

// Len returns the number of bins.
func (s *Spectrum) Len() int { return len(s.values) }

// At returns the complex value of bin i.
func (s *Spectrum) At(i int) complex128 { return s.values[i] }

// Values returns a copy of the complex values.
func (s *Spectrum) Values() []complex128 {
	return append([]complex128(nil), s.values...)
}

// Value returns the response at frequency f. Outside the stored range the
// nearest edge value is returned; inside, the bracketing pair is found by
// an ascending scan and interpolated linearly.
func (s *Spectrum) Value(f float64) complex128 {
	n := len(s.values)
	switch {
	case n == 0:
		return 0
	case f <= s.f[0]:
		return s.values[0]
	case f >= s.f[n-1]:
		return s.values[n-1]
	}

	i := 1
	for s.f[i] < f {
		i++
	}
	f0, f1 := s.f[i-1], s.f[i]
	if f1 == f0 {
		return s.values[i]
	}
	t := complex((f-f0)/(f1-f0), 0)
	return s.values[i-1] + t*(s.values[i]-s.values[i-1])
}

// Magnitude returns |H(f)| per bin. The slice is shared; do not modify it.
func (s *Spectrum) Magnitude() []float64 { return s.magnitude.Get() }

// Phase returns the unwrapped phase in radians. The slice is shared.
func (s *Spectrum) Phase() []float64 { return s.phase.Get() }

// GroupDelay returns -dphi/domega in seconds. The slice is shared.
func (s *Spectrum) GroupDelay() []float64 { return s.delay.Get() }

// MagnitudeDB returns 20*log10|H(f)|. The slice is shared.
func (s *Spectrum) MagnitudeDB() []float64 { return s.db.Get() }

// Multiply returns the bin-wise product. Both spectra must share the same
// frequency axis.
func (s *Spectrum) Multiply(o *Spectrum) (*Spectrum, error) {
	return s.combine(o, func(a, b complex128) complex128 { return a * b })
}

// Divide returns the bin-wise quotient s/o. Division by a zero bin yields
// complex infinities or NaN.
func (s *Spectrum) Divide(o *Spectrum) (*Spectrum, error) {
	return s.combine(o, func(a, b complex128) complex128 { return a / b })
}

func (s *Spectrum) combine(o *Spectrum, op func(a, b complex128) complex128) (*Spectrum, error) {
	if !s.freqs.Equal(o.freqs) {
		return nil, fmt.Errorf("spectrum: frequency axes differ: %w", core.ErrDomainMismatch)
	}
	out := make([]complex128, len(s.values))
	for i := range out {
		out[i] = op(s.values[i], o.values[i])
	}
	return newSpectrum(s.freqs, out), nil
}

// Resample evaluates the spectrum on a new frequency axis. Magnitude and
// unwrapped phase are interpolated separately with in; a nil in uses
// linear interpolation holding the edge values.
func (s *Spectrum) Resample(freqs series.Series, in *interp.Interpolator) (*Spectrum, error) {
	if in == nil {
		in = interp.New()
	}
	targets := freqs.Values()

	mag, err := in.Interpolate(s.f, s.Magnitude(), targets)
	if err != nil {
		return nil, fmt.Errorf("spectrum: resample magnitude: %w", err)
	}
	phase, err := in.Interpolate(s.f, s.Phase(), targets)
	if err != nil {
		return nil, fmt.Errorf("spectrum: resample phase: %w", err)
	}

	out := make([]complex128, len(targets))
	for i := range out {
		out[i] = cmplx.Rect(mag[i], phase[i])
	}
	return newSpectrum(freqs, out), nil
}

// Smooth returns a spectrum whose magnitude is 1/fraction-octave smoothed
// while the unwrapped phase is kept. Frequencies must be positive and
// strictly ascending.
func (s *Spectrum) Smooth(fraction int) (*Spectrum, error) {
	mag, err := SmoothFractionalOctave(s.f, s.Magnitude(), fraction)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	phase := s.Phase()
	out := make([]complex128, len(mag))
	for i := range out {
		out[i] = cmplx.Rect(mag[i], phase[i])
	}
	return newSpectrum(s.freqs, out), nil
}
