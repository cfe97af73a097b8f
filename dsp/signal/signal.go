package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

// Errors returned by signal construction and combinators.
var (
	ErrSampleRateMismatch = fmt.Errorf("signal: sample rate mismatch: %w", core.ErrDomainMismatch)
	ErrInvalidSampleRate  = fmt.Errorf("signal: sample rate must be positive and finite: %w", core.ErrInvalidParameter)
	ErrInvalidFrequency   = fmt.Errorf("signal: frequency out of range: %w", core.ErrInvalidParameter)
	ErrUnsupported        = fmt.Errorf("signal: %w", errors.ErrUnsupported)
)

// Signal is a discrete-time signal with a fixed sample rate.
type Signal interface {
	SampleRate() float64
	Name() string
	SetName(name string)

	// Subscribe registers fn for change notifications and returns a
	// function that removes it.
	Subscribe(fn func()) (cancel func())

	// WindowedSamples returns exactly length samples starting at index
	// start. Negative lengths yield an empty slice.
	WindowedSamples(start, length int) []float64
}

// Finite is a signal with support on [Start, Stop).
type Finite interface {
	Signal
	Start() int
	Length() int
	Stop() int

	// Samples returns the samples on [Start, Stop). The slice is shared
	// and must not be modified.
	Samples() []float64
}

// Infinite is a signal defined at every index.
type Infinite interface {
	Signal
	infinite()
}

// Synthetic is an Infinite signal with an analytic spectrum.
type Synthetic interface {
	Infinite
	Spectrum(freqs series.Series) *spectrum.Spectrum
}

// base carries the identity shared by all signal kinds.
type base struct {
	sampleRate float64
	name       string
	changes    core.Emitter
}

// SampleRate returns the sample rate in Hz.
func (b *base) SampleRate() float64 { return b.sampleRate }

// Name returns the display name.
func (b *base) Name() string { return b.name }

// SetName sets the display name and notifies subscribers.
func (b *base) SetName(name string) {
	b.name = name
	b.changes.Emit()
}

// Subscribe registers fn for change notifications.
func (b *base) Subscribe(fn func()) (cancel func()) {
	return b.changes.Subscribe(fn)
}

func validRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}

func sameRate(a, b Signal) error {
	if a.SampleRate() != b.SampleRate() {
		return fmt.Errorf("%w: %v Hz vs %v Hz", ErrSampleRateMismatch, a.SampleRate(), b.SampleRate())
	}
	return nil
}

// WindowedSignal samples s over [start, start+length) into a Finite signal.
func WindowedSignal(s Signal, start, length int) *FiniteSignal {
	return newFinite(s.SampleRate(), start, s.WindowedSamples(start, length))
}
