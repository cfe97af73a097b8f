package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/filter/biquad"
	"github.com/cwbudde/algo-signal/dsp/filter/design"
	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

// BiquadType selects the response shape of a [Biquad].
type BiquadType int

const (
	Lowpass BiquadType = iota
	Highpass
	Peaking
	Bandpass
	Notch
	LowShelf
	HighShelf
	Allpass
)

var biquadTypeNames = [...]string{
	Lowpass:   "lowpass",
	Highpass:  "highpass",
	Peaking:   "peaking",
	Bandpass:  "bandpass",
	Notch:     "notch",
	LowShelf:  "lowshelf",
	HighShelf: "highshelf",
	Allpass:   "allpass",
}

func (t BiquadType) String() string {
	if t >= 0 && int(t) < len(biquadTypeNames) {
		return biquadTypeNames[t]
	}
	return fmt.Sprintf("BiquadType(%d)", int(t))
}

// ParseBiquadType resolves a case-insensitive type name.
func ParseBiquadType(name string) (BiquadType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for t, n := range biquadTypeNames {
		if n == key {
			return BiquadType(t), nil
		}
	}
	return 0, fmt.Errorf("filter: unknown biquad type %q: %w", name, core.ErrInvalidParameter)
}

// UsesGain reports whether the gain parameter shapes the response.
func (t BiquadType) UsesGain() bool {
	return t == Peaking || t == LowShelf || t == HighShelf
}

// Biquad is a second-order recursive filter parameterized by type, corner
// frequency, quality factor and gain. Coefficients are recomputed in every
// setter.
type Biquad struct {
	Base
	typ    BiquadType
	freq   float64
	q      float64
	gainDB float64
	coeffs biquad.Coefficients
}

// NewBiquad returns a Biquad filter. Out-of-range parameters are accepted
// and leave the filter without effect.
func NewBiquad(sampleRate float64, typ BiquadType, freq, q, gainDB float64) (*Biquad, error) {
	b, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	f := &Biquad{Base: b, typ: typ, freq: freq, q: q, gainDB: gainDB}
	f.recompute()
	return f, nil
}

// Type returns the response shape.
func (f *Biquad) Type() BiquadType { return f.typ }

// Frequency returns the corner or center frequency in Hz.
func (f *Biquad) Frequency() float64 { return f.freq }

// Q returns the quality factor.
func (f *Biquad) Q() float64 { return f.q }

// GainDB returns the gain in dB.
func (f *Biquad) GainDB() float64 { return f.gainDB }

// Coefficients returns the current section coefficients.
func (f *Biquad) Coefficients() biquad.Coefficients { return f.coeffs }

// Poles returns the z-plane poles of the current section.
func (f *Biquad) Poles() [2]complex128 { return f.coeffs.Poles() }

// Zeros returns the z-plane zeros of the current section.
func (f *Biquad) Zeros() [2]complex128 { return f.coeffs.Zeros() }

// IsStable reports whether both poles lie strictly inside the unit circle.
func (f *Biquad) IsStable() bool { return f.coeffs.IsStable() }

// SetType changes the response shape.
func (f *Biquad) SetType(typ BiquadType) {
	if f.typ == typ {
		return
	}
	f.typ = typ
	f.recompute()
	f.changed()
}

// SetFrequency changes the corner frequency.
func (f *Biquad) SetFrequency(hz float64) { f.setParam(&f.freq, hz) }

// SetQ changes the quality factor.
func (f *Biquad) SetQ(q float64) { f.setParam(&f.q, q) }

// SetGainDB changes the gain.
func (f *Biquad) SetGainDB(db float64) { f.setParam(&f.gainDB, db) }

func (f *Biquad) setParam(dst *float64, v float64) {
	if *dst == v {
		return
	}
	*dst = v
	f.recompute()
	f.changed()
}

func (f *Biquad) recompute() {
	fs := f.sampleRate
	switch f.typ {
	case Lowpass:
		f.coeffs = design.Lowpass(f.freq, f.q, fs)
	case Highpass:
		f.coeffs = design.Highpass(f.freq, f.q, fs)
	case Peaking:
		f.coeffs = design.Peak(f.freq, f.gainDB, f.q, fs)
	case Bandpass:
		f.coeffs = design.Bandpass(f.freq, f.q, fs)
	case Notch:
		f.coeffs = design.Notch(f.freq, f.q, fs)
	case LowShelf:
		f.coeffs = design.LowShelf(f.freq, f.gainDB, f.q, fs)
	case HighShelf:
		f.coeffs = design.HighShelf(f.freq, f.gainDB, f.q, fs)
	case Allpass:
		f.coeffs = design.Allpass(f.freq, f.q, fs)
	default:
		f.coeffs = biquad.Identity()
	}
}

// valid reports whether the parameters describe a realizable section.
func (f *Biquad) valid() bool {
	if !(f.q > 0) || math.IsInf(f.q, 1) {
		return false
	}
	if !(f.freq > 0) || f.freq >= f.sampleRate/2 {
		return false
	}
	if f.typ.UsesGain() && (math.IsNaN(f.gainDB) || math.IsInf(f.gainDB, 0)) {
		return false
	}
	return f.typ >= 0 && int(f.typ) < len(biquadTypeNames)
}

// HasEffect reports whether the filter is enabled and its parameters are
// in range.
func (f *Biquad) HasEffect() bool { return f.enabled && f.valid() }

// HasInfiniteImpulseResponse returns true.
func (*Biquad) HasInfiniteImpulseResponse() bool { return true }

// Process runs s through the section. The result is Infinite.
func (f *Biquad) Process(s signal.Signal) (signal.Signal, error) {
	if !f.HasEffect() {
		return s, nil
	}
	if err := f.checkRate(s); err != nil {
		return nil, err
	}
	c := f.coeffs
	warmup := c.DecayLength(decayTolerance, maxWarmup)
	return processRecursive(s, warmup, func() runner { return biquad.NewSection(c) })
}

// ImpulseResponse returns the first length samples of the impulse response.
func (f *Biquad) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return f.impulseResponse(f, length)
}

// FrequencyResponse evaluates the section transfer function at freqs.
func (f *Biquad) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	if !f.HasEffect() {
		return flatResponse(freqs)
	}
	c := f.coeffs
	return closedForm(freqs, func(hz float64) complex128 {
		return c.Response(hz, f.sampleRate)
	})
}
