package filter

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

// ErrCorrectionNotImplemented is returned by the correcting filter's
// response computation.
var ErrCorrectionNotImplemented = fmt.Errorf("filter: correcting response: %w", core.ErrNotImplemented)

// UpdateMode controls when a [Correcting] filter recomputes its response.
type UpdateMode int

const (
	// UpdateAutomatic recomputes whenever a source filter changes.
	UpdateAutomatic UpdateMode = iota
	// UpdateManual recomputes only on an explicit Update call.
	UpdateManual
)

func (m UpdateMode) String() string {
	switch m {
	case UpdateAutomatic:
		return "automatic"
	case UpdateManual:
		return "manual"
	default:
		return fmt.Sprintf("UpdateMode(%d)", int(m))
	}
}

// CorrectingOption configures a [Correcting] filter.
type CorrectingOption func(*Correcting)

// WithCorrectingLogger sets the logger that receives automatic-update
// failures. The default is the logrus standard logger.
func WithCorrectingLogger(l logrus.FieldLogger) CorrectingOption {
	return func(c *Correcting) {
		if l != nil {
			c.log = l
		}
	}
}

// WithUpdateMode sets the initial update mode.
func WithUpdateMode(m UpdateMode) CorrectingOption {
	return func(c *Correcting) { c.mode = m }
}

// Correcting holds the configuration of a compensating FIR filter derived
// from a target and a reference filter. The response computation itself is
// not implemented: Update and Process fail with
// [ErrCorrectionNotImplemented].
type Correcting struct {
	Base

	target, reference            Filter
	cancelTarget, cancelRef      func()
	maxBoost, maxCut             float64
	boostThreshold, cutThreshold float64
	boostRatio, cutRatio         float64
	length                       int
	mode                         UpdateMode

	log logrus.FieldLogger
}

// NewCorrecting returns an unconfigured correcting filter.
func NewCorrecting(sampleRate float64, opts ...CorrectingOption) (*Correcting, error) {
	b, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	c := &Correcting{
		Base:         b,
		maxBoost:     12,
		maxCut:       24,
		boostRatio:   1,
		cutRatio:     1,
		length:       1024,
		mode:         UpdateAutomatic,
		log:          logrus.StandardLogger(),
		cancelTarget: func() {},
		cancelRef:    func() {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Target returns the filter whose response is to be matched.
func (c *Correcting) Target() Filter { return c.target }

// Reference returns the filter being corrected.
func (c *Correcting) Reference() Filter { return c.reference }

// SetTarget sets the filter whose response is to be matched.
func (c *Correcting) SetTarget(f Filter) error {
	return c.setSource(&c.target, &c.cancelTarget, f)
}

// SetReference sets the filter being corrected.
func (c *Correcting) SetReference(f Filter) error {
	return c.setSource(&c.reference, &c.cancelRef, f)
}

func (c *Correcting) setSource(dst *Filter, cancel *func(), f Filter) error {
	if f != nil && f.SampleRate() != c.sampleRate {
		return fmt.Errorf("%w: filter %v Hz, source %v Hz", ErrSampleRateMismatch, c.sampleRate, f.SampleRate())
	}
	(*cancel)()
	*dst = f
	*cancel = func() {}
	if f != nil {
		*cancel = f.Subscribe(c.sourceChanged)
	}
	c.changed()
	c.sourceChanged()
	return nil
}

func (c *Correcting) sourceChanged() {
	if c.mode != UpdateAutomatic {
		return
	}
	if err := c.Update(); err != nil {
		c.log.WithError(err).WithField("mode", c.mode.String()).Warn("filter: correcting update failed")
	}
}

// Update recomputes the correction response.
func (c *Correcting) Update() error {
	if c.target == nil && c.reference == nil {
		return nil
	}
	return ErrCorrectionNotImplemented
}

// MaximumBoost returns the boost limit in dB.
func (c *Correcting) MaximumBoost() float64 { return c.maxBoost }

// SetMaximumBoost sets the boost limit in dB.
func (c *Correcting) SetMaximumBoost(db float64) { c.setFloat(&c.maxBoost, db) }

// MaximumCut returns the cut limit in dB.
func (c *Correcting) MaximumCut() float64 { return c.maxCut }

// SetMaximumCut sets the cut limit in dB.
func (c *Correcting) SetMaximumCut(db float64) { c.setFloat(&c.maxCut, db) }

// BoostThreshold returns the level in dB above which boost is compressed.
func (c *Correcting) BoostThreshold() float64 { return c.boostThreshold }

// SetBoostThreshold sets the boost compression threshold in dB.
func (c *Correcting) SetBoostThreshold(db float64) { c.setFloat(&c.boostThreshold, db) }

// CutThreshold returns the level in dB above which cut is compressed.
func (c *Correcting) CutThreshold() float64 { return c.cutThreshold }

// SetCutThreshold sets the cut compression threshold in dB.
func (c *Correcting) SetCutThreshold(db float64) { c.setFloat(&c.cutThreshold, db) }

// BoostRatio returns the compression ratio applied above the boost
// threshold.
func (c *Correcting) BoostRatio() float64 { return c.boostRatio }

// SetBoostRatio sets the boost compression ratio.
func (c *Correcting) SetBoostRatio(r float64) { c.setFloat(&c.boostRatio, r) }

// CutRatio returns the compression ratio applied above the cut threshold.
func (c *Correcting) CutRatio() float64 { return c.cutRatio }

// SetCutRatio sets the cut compression ratio.
func (c *Correcting) SetCutRatio(r float64) { c.setFloat(&c.cutRatio, r) }

// Length returns the correction kernel length in samples.
func (c *Correcting) Length() int { return c.length }

// SetLength sets the correction kernel length in samples.
func (c *Correcting) SetLength(n int) {
	if c.length == n {
		return
	}
	c.length = n
	c.changed()
}

// UpdateMode returns the update mode.
func (c *Correcting) UpdateMode() UpdateMode { return c.mode }

// SetUpdateMode sets the update mode.
func (c *Correcting) SetUpdateMode(m UpdateMode) {
	if c.mode == m {
		return
	}
	c.mode = m
	c.changed()
}

func (c *Correcting) setFloat(dst *float64, v float64) {
	if *dst == v {
		return
	}
	*dst = v
	c.changed()
}

// HasEffect reports whether the filter is enabled and has a source filter.
func (c *Correcting) HasEffect() bool {
	return c.enabled && (c.target != nil || c.reference != nil)
}

// HasInfiniteImpulseResponse returns false.
func (*Correcting) HasInfiniteImpulseResponse() bool { return false }

// Process returns s unchanged without effect and fails otherwise.
func (c *Correcting) Process(s signal.Signal) (signal.Signal, error) {
	if !c.HasEffect() {
		return s, nil
	}
	if err := c.checkRate(s); err != nil {
		return nil, err
	}
	return nil, ErrCorrectionNotImplemented
}

// ImpulseResponse returns the first length samples of the impulse response.
func (c *Correcting) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return c.impulseResponse(c, length)
}

// FrequencyResponse is flat without effect and fails otherwise.
func (c *Correcting) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	if !c.HasEffect() {
		return flatResponse(freqs)
	}
	return nil, ErrCorrectionNotImplemented
}
