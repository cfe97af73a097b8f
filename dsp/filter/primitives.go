package filter

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

// Gain scales every sample by a linear factor.
type Gain struct {
	Base
	factor float64
}

// NewGain returns a Gain filter with the given linear factor.
func NewGain(sampleRate, factor float64) (*Gain, error) {
	b, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Gain{Base: b, factor: factor}, nil
}

// Factor returns the linear gain factor.
func (g *Gain) Factor() float64 { return g.factor }

// SetFactor sets the linear gain factor.
func (g *Gain) SetFactor(factor float64) {
	if g.factor == factor {
		return
	}
	g.factor = factor
	g.changed()
}

// GainDB returns the gain in dB. Negative factors report the level of
// their magnitude.
func (g *Gain) GainDB() float64 { return core.LinearToDB(math.Abs(g.factor)) }

// SetGainDB sets a positive gain factor from a level in dB.
func (g *Gain) SetGainDB(db float64) { g.SetFactor(core.DBToLinear(db)) }

// HasEffect reports whether the filter is enabled and the factor is not 1.
func (g *Gain) HasEffect() bool { return g.enabled && g.factor != 1 }

// HasInfiniteImpulseResponse returns false.
func (g *Gain) HasInfiniteImpulseResponse() bool { return false }

// Process returns factor*s.
func (g *Gain) Process(s signal.Signal) (signal.Signal, error) {
	if !g.HasEffect() {
		return s, nil
	}
	if err := g.checkRate(s); err != nil {
		return nil, err
	}
	return signal.Scale(s, g.factor), nil
}

// ImpulseResponse returns the first length samples of the impulse response.
func (g *Gain) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return g.impulseResponse(g, length)
}

// FrequencyResponse returns the constant factor at every frequency.
func (g *Gain) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	if !g.HasEffect() {
		return flatResponse(freqs)
	}
	k := complex(g.factor, 0)
	return closedForm(freqs, func(float64) complex128 { return k })
}

// Invert negates every sample.
type Invert struct {
	Base
}

// NewInvert returns a polarity inversion filter.
func NewInvert(sampleRate float64) (*Invert, error) {
	b, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Invert{Base: b}, nil
}

// HasEffect reports whether the filter is enabled.
func (v *Invert) HasEffect() bool { return v.enabled }

// HasInfiniteImpulseResponse returns false.
func (v *Invert) HasInfiniteImpulseResponse() bool { return false }

// Process returns -s.
func (v *Invert) Process(s signal.Signal) (signal.Signal, error) {
	if !v.HasEffect() {
		return s, nil
	}
	if err := v.checkRate(s); err != nil {
		return nil, err
	}
	return signal.Negate(s), nil
}

// ImpulseResponse returns the first length samples of the impulse response.
func (v *Invert) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return v.impulseResponse(v, length)
}

// FrequencyResponse returns -1 at every frequency.
func (v *Invert) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	if !v.HasEffect() {
		return flatResponse(freqs)
	}
	return closedForm(freqs, func(float64) complex128 { return -1 })
}

// Delay shifts a signal later in time by round(seconds*fs) samples.
type Delay struct {
	Base
	seconds float64
}

// NewDelay returns a Delay filter.
func NewDelay(sampleRate, seconds float64) (*Delay, error) {
	b, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Delay{Base: b, seconds: seconds}, nil
}

// Seconds returns the delay time.
func (d *Delay) Seconds() float64 { return d.seconds }

// SetSeconds sets the delay time.
func (d *Delay) SetSeconds(seconds float64) {
	if d.seconds == seconds {
		return
	}
	d.seconds = seconds
	d.changed()
}

// Samples returns the delay rounded to whole samples.
func (d *Delay) Samples() int {
	n := math.Round(d.seconds * d.sampleRate)
	if math.IsNaN(n) || math.Abs(n) > math.MaxInt32 {
		return 0
	}
	return int(n)
}

// HasEffect reports whether the filter is enabled and the rounded delay is
// not zero.
func (d *Delay) HasEffect() bool { return d.enabled && d.Samples() != 0 }

// HasInfiniteImpulseResponse returns false.
func (d *Delay) HasInfiniteImpulseResponse() bool { return false }

// Process delays s. A Finite input keeps its start index and gains N
// leading zeros; negative delays and Infinite inputs are shifted instead.
func (d *Delay) Process(s signal.Signal) (signal.Signal, error) {
	if !d.HasEffect() {
		return s, nil
	}
	if err := d.checkRate(s); err != nil {
		return nil, err
	}

	n := d.Samples()
	f, ok := s.(signal.Finite)
	if !ok || n < 0 {
		return signal.Shift(s, n), nil
	}

	out := make([]float64, n+f.Length())
	copy(out[n:], f.Samples())
	return signal.NewFinite(d.sampleRate, f.Start(), out)
}

// ImpulseResponse returns the first length samples of the impulse response.
func (d *Delay) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return d.impulseResponse(d, length)
}

// FrequencyResponse returns the linear-phase term exp(-j*2*pi*f*N/fs).
func (d *Delay) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	if !d.HasEffect() {
		return flatResponse(freqs)
	}
	n := float64(d.Samples())
	return closedForm(freqs, func(f float64) complex128 {
		return cmplx.Exp(complex(0, -2*math.Pi*f*n/d.sampleRate))
	})
}

// Dirac is the identity filter. It never has an effect.
type Dirac struct {
	Base
}

// NewDirac returns an identity filter.
func NewDirac(sampleRate float64) (*Dirac, error) {
	b, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Dirac{Base: b}, nil
}

// HasEffect returns false.
func (*Dirac) HasEffect() bool { return false }

// HasInfiniteImpulseResponse returns false.
func (*Dirac) HasInfiniteImpulseResponse() bool { return false }

// Process returns s.
func (*Dirac) Process(s signal.Signal) (signal.Signal, error) {
	return s, nil
}

// ImpulseResponse returns the unit impulse truncated to length.
func (d *Dirac) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return d.impulseResponse(d, length)
}

// FrequencyResponse returns 1 at every frequency.
func (*Dirac) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	return flatResponse(freqs)
}

// Zero replaces every sample with 0.
type Zero struct {
	Base
}

// NewZero returns a filter that silences its input.
func NewZero(sampleRate float64) (*Zero, error) {
	b, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Zero{Base: b}, nil
}

// HasEffect reports whether the filter is enabled.
func (z *Zero) HasEffect() bool { return z.enabled }

// HasInfiniteImpulseResponse returns false.
func (z *Zero) HasInfiniteImpulseResponse() bool { return false }

// Process returns an all-zero signal of the same kind and extent as s.
func (z *Zero) Process(s signal.Signal) (signal.Signal, error) {
	if !z.HasEffect() {
		return s, nil
	}
	if err := z.checkRate(s); err != nil {
		return nil, err
	}
	if f, ok := s.(signal.Finite); ok {
		return signal.NewFinite(z.sampleRate, f.Start(), make([]float64, f.Length()))
	}
	return signal.Constant(z.sampleRate, 0)
}

// ImpulseResponse returns the first length samples of the impulse response.
func (z *Zero) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return z.impulseResponse(z, length)
}

// FrequencyResponse returns 0 at every frequency.
func (z *Zero) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	if !z.HasEffect() {
		return flatResponse(freqs)
	}
	return closedForm(freqs, func(float64) complex128 { return 0 })
}
