package filter

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
	"github.com/cwbudde/algo-signal/internal/polyroot"
)

// IIR is a recursive filter of arbitrary fixed order:
//
//	H(z) = (B[0] + B[1]z^-1 + ... + B[n]z^-n) / (A[0] + A[1]z^-1 + ... + A[n]z^-n)
//
// Coefficients are stored normalized so that A[0] == 1.
type IIR struct {
	Base
	b, a  []float64
	poles []complex128
}

// NewIIR returns an IIR filter. b and a must be non-empty, of equal length,
// and a[0] must be non-zero.
func NewIIR(sampleRate float64, b, a []float64) (*IIR, error) {
	base, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	f := &IIR{Base: base}
	if err := f.assign(b, a, -1); err != nil {
		return nil, err
	}
	return f, nil
}

// Order returns the filter order.
func (f *IIR) Order() int { return len(f.a) - 1 }

// B returns a copy of the normalized numerator coefficients.
func (f *IIR) B() []float64 { return slices.Clone(f.b) }

// A returns a copy of the normalized denominator coefficients.
func (f *IIR) A() []float64 { return slices.Clone(f.a) }

// SetCoefficients replaces both coefficient arrays. The order is fixed at
// construction.
func (f *IIR) SetCoefficients(b, a []float64) error {
	if err := f.assign(b, a, f.Order()); err != nil {
		return err
	}
	f.changed()
	return nil
}

func (f *IIR) assign(b, a []float64, order int) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("filter: iir coefficients: %w", core.ErrEmptyInput)
	}
	if len(a) != len(b) {
		return fmt.Errorf("filter: iir coefficients %d vs %d: %w", len(b), len(a), core.ErrLengthMismatch)
	}
	if order >= 0 && len(a)-1 != order {
		return fmt.Errorf("filter: iir order %d, want %d: %w", len(a)-1, order, core.ErrLengthMismatch)
	}
	a0 := a[0]
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return fmt.Errorf("filter: iir a[0] = %v: %w", a0, core.ErrInvalidParameter)
	}

	nb := make([]float64, len(b))
	na := make([]float64, len(a))
	for i := range a {
		nb[i] = b[i] / a0
		na[i] = a[i] / a0
	}
	f.b, f.a = nb, na

	// Multiplying A(z^-1) by z^n gives a polynomial in descending powers
	// with the same coefficient order.
	f.poles, _ = polyroot.Roots(na)
	return nil
}

// Poles returns the z-plane poles. It is nil if root finding failed.
func (f *IIR) Poles() []complex128 { return slices.Clone(f.poles) }

// IsStable reports whether all poles lie strictly inside the unit circle.
func (f *IIR) IsStable() bool {
	return f.poles != nil && polyroot.MaxRadius(f.poles) < 1
}

func (f *IIR) identity() bool {
	if f.b[0] != 1 {
		return false
	}
	for i := 1; i < len(f.a); i++ {
		if f.a[i] != 0 || f.b[i] != 0 {
			return false
		}
	}
	return true
}

func (f *IIR) finite() bool {
	for i := range f.a {
		if math.IsNaN(f.a[i]) || math.IsInf(f.a[i], 0) || math.IsNaN(f.b[i]) || math.IsInf(f.b[i], 0) {
			return false
		}
	}
	return true
}

// HasEffect reports whether the filter is enabled, its coefficients are
// finite and it is not the identity.
func (f *IIR) HasEffect() bool { return f.enabled && f.finite() && !f.identity() }

// HasInfiniteImpulseResponse returns true.
func (*IIR) HasInfiniteImpulseResponse() bool { return true }

// warmup estimates the settling length from the largest pole radius.
func (f *IIR) warmup() int {
	r := polyroot.MaxRadius(f.poles)
	switch {
	case f.poles == nil || r >= 1:
		return maxWarmup
	case r == 0:
		return len(f.a)
	}
	n := int(math.Ceil(math.Log(decayTolerance)/math.Log(r))) + len(f.a)
	return min(n, maxWarmup)
}

// Process runs s through the filter. The result is Infinite.
func (f *IIR) Process(s signal.Signal) (signal.Signal, error) {
	if !f.HasEffect() {
		return s, nil
	}
	if err := f.checkRate(s); err != nil {
		return nil, err
	}
	b, a := f.b, f.a
	return processRecursive(s, f.warmup(), func() runner { return newDirectForm(b, a) })
}

// ImpulseResponse returns the first length samples of the impulse response.
func (f *IIR) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return f.impulseResponse(f, length)
}

// FrequencyResponse evaluates B(z)/A(z) on the unit circle at freqs.
func (f *IIR) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	if !f.HasEffect() {
		return flatResponse(freqs)
	}
	return closedForm(freqs, func(hz float64) complex128 {
		zi := cmplx.Exp(complex(0, -2*math.Pi*hz/f.sampleRate))
		return evalAscending(f.b, zi) / evalAscending(f.a, zi)
	})
}

// evalAscending evaluates c[0] + c[1]x + ... + c[n]x^n.
func evalAscending(c []float64, x complex128) complex128 {
	var v complex128
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + complex(c[i], 0)
	}
	return v
}
