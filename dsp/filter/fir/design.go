package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/window"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidTaps is returned for non-positive tap counts or an even
	// tap count where a center tap is required.
	ErrInvalidTaps = fmt.Errorf("fir: invalid tap count: %w", core.ErrInvalidParameter)
	// ErrInvalidCutoff is returned when the cutoff is outside (0, fs/2).
	ErrInvalidCutoff = fmt.Errorf("fir: cutoff must be in (0, fs/2): %w", core.ErrInvalidParameter)
)

// DefaultWindow is the window applied to windowed-sinc designs unless
// overridden with [WithWindow].
const DefaultWindow = window.TypeBlackman

// Option configures a windowed-sinc design.
type Option func(*designConfig)

type designConfig struct {
	window     window.Type
	windowOpts []window.Option
}

// WithWindow selects the taper applied to the ideal sinc response.
func WithWindow(t window.Type, opts ...window.Option) Option {
	return func(c *designConfig) {
		c.window = t
		c.windowOpts = opts
	}
}

// SincLowpass designs a linear-phase lowpass with the given number of taps
// by windowing the ideal sinc response. The taps are normalized to unity
// gain at DC.
func SincLowpass(cutoffHz, sampleRate float64, taps int, opts ...Option) ([]float64, error) {
	if taps <= 0 {
		return nil, ErrInvalidTaps
	}
	if !(sampleRate > 0) || !(cutoffHz > 0) || cutoffHz >= sampleRate/2 {
		return nil, ErrInvalidCutoff
	}

	cfg := designConfig{window: DefaultWindow}
	for _, opt := range opts {
		opt(&cfg)
	}

	fc := cutoffHz / sampleRate
	mid := float64(taps-1) / 2
	h := make([]float64, taps)
	for i := range h {
		h[i] = 2 * fc * sinc(2*fc*(float64(i)-mid))
	}

	if taps > 1 {
		w := window.Generate(cfg.window, taps, cfg.windowOpts...)
		for i := range h {
			h[i] *= w[i]
		}
	}

	if sum := floats.Sum(h); sum != 0 {
		floats.Scale(1/sum, h)
	}

	return h, nil
}

// SincHighpass designs a linear-phase highpass by spectral inversion of
// [SincLowpass]. The tap count must be odd so that a center tap exists.
func SincHighpass(cutoffHz, sampleRate float64, taps int, opts ...Option) ([]float64, error) {
	if taps <= 0 || taps%2 == 0 {
		return nil, ErrInvalidTaps
	}

	h, err := SincLowpass(cutoffHz, sampleRate, taps, opts...)
	if err != nil {
		return nil, err
	}

	floats.Scale(-1, h)
	h[taps/2]++

	return h, nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
