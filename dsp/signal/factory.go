package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Dirac returns the unit impulse at index 0.
func Dirac(sampleRate float64) (*FiniteSignal, error) {
	f, err := NewFinite(sampleRate, 0, []float64{1})
	if err != nil {
		return nil, err
	}
	f.name = "Dirac"
	return f, nil
}

// Constant returns the Infinite signal x[n] = value.
func Constant(sampleRate, value float64) (*InfiniteSignal, error) {
	s, err := NewInfiniteRange(sampleRate, func(_, length int) []float64 {
		out := make([]float64, length)
		for i := range out {
			out[i] = value
		}
		return out
	})
	if err != nil {
		return nil, err
	}
	s.name = fmt.Sprintf("Constant %g", value)
	return s, nil
}

// Sine returns x[n] = amplitude * sin(2*pi*freqHz*n/fs + phase) for all n.
func Sine(sampleRate, freqHz, amplitude, phase float64) (*InfiniteSignal, error) {
	step := 2 * math.Pi * freqHz / sampleRate
	s, err := NewInfinite(sampleRate, func(i int) float64 {
		return amplitude * math.Sin(step*float64(i)+phase)
	})
	if err != nil {
		return nil, err
	}
	s.name = fmt.Sprintf("Sine %g Hz", freqHz)
	return s, nil
}

// WhiteNoise returns length samples of seeded uniform noise in
// [-amplitude, amplitude] starting at index 0.
func WhiteNoise(sampleRate float64, length int, amplitude float64, seed int64) (*FiniteSignal, error) {
	if err := validRate(sampleRate); err != nil {
		return nil, err
	}
	x, err := uniformNoise(amplitude, length, seed)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	f := newFinite(sampleRate, 0, x)
	f.name = "White noise"
	return f, nil
}

// LogSweep returns an exponential sine sweep from startHz to endHz lasting
// duration seconds. Each octave takes the same time:
//
//	x(t) = sin(2*pi*f1*T/ln(f2/f1) * (exp(t/T*ln(f2/f1)) - 1))
func LogSweep(sampleRate, startHz, endHz, duration float64) (*FiniteSignal, error) {
	if err := validRate(sampleRate); err != nil {
		return nil, err
	}
	if !(startHz > 0) || !(endHz > startHz) || endHz > sampleRate/2 {
		return nil, fmt.Errorf("%w: sweep %v Hz to %v Hz", ErrInvalidFrequency, startHz, endHz)
	}
	n := int(math.Round(duration * sampleRate))
	if n <= 0 {
		return nil, fmt.Errorf("signal: sweep duration %v s: %w", duration, core.ErrInvalidParameter)
	}

	out := make([]float64, n)
	lnRatio := math.Log(endHz / startHz)
	k := 2 * math.Pi * startHz * duration / lnRatio
	for i := range out {
		t := float64(i) / sampleRate
		out[i] = math.Sin(k * (math.Exp(t/duration*lnRatio) - 1))
	}

	f := newFinite(sampleRate, 0, out)
	f.name = fmt.Sprintf("Log sweep %g-%g Hz", startHz, endHz)
	return f, nil
}

// IdealLowpass returns the impulse response of a brick-wall lowpass with
// corner cutoffHz, which must lie in (0, fs/2). Its spectrum is 1 below the
// corner, 0.5 at it and 0 above.
func IdealLowpass(sampleRate, cutoffHz float64) (*SyntheticSignal, error) {
	wc, err := idealCorner(sampleRate, cutoffHz)
	if err != nil {
		return nil, err
	}
	s, err := NewSynthetic(sampleRate,
		func(i int) float64 { return lowpassTap(wc, i) },
		func(f float64) complex128 { return complex(brickwall(math.Abs(f), cutoffHz), 0) },
	)
	if err != nil {
		return nil, err
	}
	s.name = fmt.Sprintf("Ideal lowpass %g Hz", cutoffHz)
	return s, nil
}

// IdealHighpass returns the impulse response of a brick-wall highpass with
// corner cutoffHz in (0, fs/2): a Dirac minus the matching ideal lowpass.
func IdealHighpass(sampleRate, cutoffHz float64) (*SyntheticSignal, error) {
	wc, err := idealCorner(sampleRate, cutoffHz)
	if err != nil {
		return nil, err
	}
	s, err := NewSynthetic(sampleRate,
		func(i int) float64 {
			h := -lowpassTap(wc, i)
			if i == 0 {
				h++
			}
			return h
		},
		func(f float64) complex128 { return complex(1-brickwall(math.Abs(f), cutoffHz), 0) },
	)
	if err != nil {
		return nil, err
	}
	s.name = fmt.Sprintf("Ideal highpass %g Hz", cutoffHz)
	return s, nil
}

// idealCorner returns the corner as a fraction of the sample rate.
func idealCorner(sampleRate, cutoffHz float64) (float64, error) {
	if err := validRate(sampleRate); err != nil {
		return 0, err
	}
	if !(cutoffHz > 0) || !(cutoffHz < sampleRate/2) {
		return 0, fmt.Errorf("%w: corner %v Hz at %v Hz sample rate", ErrInvalidFrequency, cutoffHz, sampleRate)
	}
	return cutoffHz / sampleRate, nil
}

// lowpassTap is h[i] = 2*wc*sinc(2*wc*i) with normalized sinc.
func lowpassTap(wc float64, i int) float64 {
	if i == 0 {
		return 2 * wc
	}
	x := math.Pi * float64(i)
	return math.Sin(2*wc*x) / x
}

func brickwall(f, cutoff float64) float64 {
	switch {
	case f < cutoff:
		return 1
	case f == cutoff:
		return 0.5
	default:
		return 0
	}
}
