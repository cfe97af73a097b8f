package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

// Errors returned by filter construction and processing.
var (
	ErrInvalidSampleRate  = fmt.Errorf("filter: sample rate must be positive and finite: %w", core.ErrInvalidParameter)
	ErrSampleRateMismatch = fmt.Errorf("filter: %w", signal.ErrSampleRateMismatch)
	ErrIndexOutOfRange    = fmt.Errorf("filter: index out of range: %w", core.ErrInvalidParameter)
	ErrNilFilter          = errors.New("filter: nil filter")
)

// Filter transforms signals sampled at a fixed rate.
//
// A disabled filter, or one whose parameters are out of range, has no
// effect: Process returns its input unchanged and FrequencyResponse is
// flat.
type Filter interface {
	SampleRate() float64
	Enabled() bool
	SetEnabled(enabled bool)

	// HasEffect reports whether Process would alter its input.
	HasEffect() bool
	HasInfiniteImpulseResponse() bool

	Process(s signal.Signal) (signal.Signal, error)
	ImpulseResponse(length int) (*signal.FiniteSignal, error)
	FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error)

	// Subscribe registers fn for change notifications and returns a
	// function that removes it.
	Subscribe(fn func()) (cancel func())
}

// Base carries the state shared by all filters: the sample rate, the
// enabled flag, the change emitter and the impulse-response cache.
type Base struct {
	sampleRate float64
	enabled    bool
	changes    core.Emitter

	irLength int
	ir       *signal.FiniteSignal
}

func newBase(sampleRate float64) (Base, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return Base{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	return Base{sampleRate: sampleRate, enabled: true}, nil
}

// SampleRate returns the sample rate in Hz.
func (b *Base) SampleRate() float64 { return b.sampleRate }

// Enabled reports whether the filter is switched on.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled switches the filter on or off.
func (b *Base) SetEnabled(enabled bool) {
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	b.changed()
}

// Subscribe registers fn for change notifications.
func (b *Base) Subscribe(fn func()) (cancel func()) {
	return b.changes.Subscribe(fn)
}

// changed drops cached state and notifies subscribers once.
func (b *Base) changed() {
	b.ir = nil
	b.irLength = 0
	b.changes.Emit()
}

func (b *Base) checkRate(s signal.Signal) error {
	if s.SampleRate() != b.sampleRate {
		return fmt.Errorf("%w: filter %v Hz, signal %v Hz", ErrSampleRateMismatch, b.sampleRate, s.SampleRate())
	}
	return nil
}

// impulseResponse returns the first length samples of f's response to a
// unit impulse at index 0. The result is cached on b until the next change.
func (b *Base) impulseResponse(f Filter, length int) (*signal.FiniteSignal, error) {
	length = max(length, 0)
	if b.ir != nil && b.irLength == length {
		return b.ir, nil
	}

	d, err := signal.Dirac(b.sampleRate)
	if err != nil {
		return nil, err
	}
	out, err := f.Process(d)
	if err != nil {
		return nil, err
	}

	b.ir = signal.WindowedSignal(out, 0, length)
	b.irLength = length
	return b.ir, nil
}

// flatResponse is the response of a filter without effect.
func flatResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	values := make([]complex128, freqs.Len())
	for i := range values {
		values[i] = 1
	}
	return spectrum.New(freqs, values)
}

// closedForm evaluates h at every frequency of freqs.
func closedForm(freqs series.Series, h func(f float64) complex128) (*spectrum.Spectrum, error) {
	values := make([]complex128, freqs.Len())
	for i := range values {
		values[i] = h(freqs.At(i))
	}
	return spectrum.New(freqs, values)
}
