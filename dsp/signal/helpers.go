package signal

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-signal/dsp/fft"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
	"github.com/cwbudde/algo-signal/dsp/window"
)

// Crop returns the part of f on [start, start+length), zero-filled where
// the window leaves f's range.
func Crop(f Finite, start, length int) *FiniteSignal {
	return WindowedSignal(f, start, length)
}

// Shift delays s by n samples: the output at index i is s at i-n.
func Shift(s Signal, n int) Signal {
	switch v := s.(type) {
	case Finite:
		return newFinite(v.SampleRate(), v.Start()+n, v.Samples())
	case *SyntheticSignal:
		fs := v.SampleRate()
		return &SyntheticSignal{
			InfiniteSignal: shiftedInfinite(v, n),
			response: func(f float64) complex128 {
				return v.response(f) * cmplx.Exp(complex(0, -2*math.Pi*f*float64(n)/fs))
			},
		}
	default:
		return shiftedInfinite(s, n)
	}
}

func shiftedInfinite(s Signal, n int) *InfiniteSignal {
	return newInfinite(s.SampleRate(), func(start, length int) []float64 {
		return s.WindowedSamples(start-n, length)
	})
}

// ApplyWindow multiplies f by a window of type t spanning its length.
func ApplyWindow(f Finite, t window.Type, opts ...window.Option) *FiniteSignal {
	out := append([]float64(nil), f.Samples()...)
	window.Apply(t, out, opts...)
	return newFinite(f.SampleRate(), f.Start(), out)
}

// NormalizeSignal scales f so that its largest absolute sample equals
// peak. A silent signal stays silent.
func NormalizeSignal(f Finite, peak float64) (*FiniteSignal, error) {
	if f.Length() == 0 {
		return newFinite(f.SampleRate(), f.Start(), []float64{}), nil
	}
	out, err := Normalize(f.Samples(), peak)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	return newFinite(f.SampleRate(), f.Start(), out), nil
}

// Peak returns the largest absolute sample of f, or 0 when f is empty.
func Peak(f Finite) float64 {
	if f.Length() == 0 {
		return 0
	}
	return floats.Norm(f.Samples(), math.Inf(1))
}

// SpectrumOf transforms f's samples, zero-padded or truncated to n (n <= 0
// uses f.Length()). A nil engine selects fft.Default().
func SpectrumOf(f Finite, n int, engine fft.Transformer) (*spectrum.FFTSpectrum, error) {
	if fs, ok := f.(*FiniteSignal); ok && engine == nil && (n <= 0 || n == fs.length) {
		if s := fs.FFTSpectrum(); s != nil {
			return s, nil
		}
	}
	s, err := spectrum.NewFFTSpectrumFromTime(f.Samples(), f.SampleRate(), n, engine)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	return s, nil
}

// Reverse mirrors f around index 0: the output at i is f at -i.
func Reverse(f Finite) *FiniteSignal {
	out := slices.Clone(f.Samples())
	slices.Reverse(out)
	return newFinite(f.SampleRate(), -(f.Stop() - 1), out)
}
