package signal

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-signal/dsp/conv"
)

// Add returns a + b. Two Finite operands give a Finite result over the
// union of their ranges with zeros in any gap; otherwise the result is
// Infinite.
func Add(a, b Signal) (Signal, error) {
	if err := sameRate(a, b); err != nil {
		return nil, err
	}

	fa, aFinite := a.(Finite)
	fb, bFinite := b.(Finite)
	if aFinite && bFinite {
		sum, start := conv.AddShifted(fa.Samples(), fa.Start(), fb.Samples(), fb.Start())
		if sum == nil {
			sum = []float64{}
		}
		return newFinite(a.SampleRate(), start, sum), nil
	}

	out := newInfinite(a.SampleRate(), func(start, length int) []float64 {
		x := a.WindowedSamples(start, length)
		floats.Add(x, b.WindowedSamples(start, length))
		return x
	})
	return out, nil
}

// Multiply returns the sample-wise product a * b. Two Finite operands give
// a Finite result over the overlap of their ranges, which may be empty.
func Multiply(a, b Signal) (Signal, error) {
	if err := sameRate(a, b); err != nil {
		return nil, err
	}

	fa, aFinite := a.(Finite)
	fb, bFinite := b.(Finite)
	if aFinite && bFinite {
		start := max(fa.Start(), fb.Start())
		n := max(min(fa.Stop(), fb.Stop())-start, 0)
		out := make([]float64, n)
		if n > 0 {
			vecmath.MulBlock(out, fa.WindowedSamples(start, n), fb.WindowedSamples(start, n))
		}
		return newFinite(a.SampleRate(), start, out), nil
	}

	out := newInfinite(a.SampleRate(), func(start, length int) []float64 {
		x := a.WindowedSamples(start, length)
		vecmath.MulBlockInPlace(x, b.WindowedSamples(start, length))
		return x
	})
	return out, nil
}

// Negate returns -s of the same kind.
func Negate(s Signal) Signal {
	return Scale(s, -1)
}

// Scale returns k*s of the same kind.
func Scale(s Signal, k float64) Signal {
	switch v := s.(type) {
	case Finite:
		out := append([]float64(nil), v.Samples()...)
		floats.Scale(k, out)
		return newFinite(v.SampleRate(), v.Start(), out)
	case *SyntheticSignal:
		return &SyntheticSignal{
			InfiniteSignal: scaledInfinite(v, k),
			response:       func(f float64) complex128 { return complex(k, 0) * v.response(f) },
		}
	default:
		return scaledInfinite(s, k)
	}
}

func scaledInfinite(s Signal, k float64) *InfiniteSignal {
	return newInfinite(s.SampleRate(), func(start, length int) []float64 {
		x := s.WindowedSamples(start, length)
		floats.Scale(k, x)
		return x
	})
}

// Convolve returns a * b (linear convolution).
//
// Two Finite operands give a Finite result of length lenA+lenB-1 that
// starts at startA+startB. A Finite kernel against an Infinite signal gives
// a streaming Infinite result. Two Infinite operands return ErrUnsupported.
func Convolve(a, b Signal) (Signal, error) {
	if err := sameRate(a, b); err != nil {
		return nil, err
	}

	fa, aFinite := a.(Finite)
	fb, bFinite := b.(Finite)
	switch {
	case aFinite && bFinite:
		return convolveFinite(fa, fb)
	case aFinite:
		return convolveStreaming(fa, b), nil
	case bFinite:
		return convolveStreaming(fb, a), nil
	default:
		return nil, fmt.Errorf("%w: convolution of two infinite signals", ErrUnsupported)
	}
}

func convolveFinite(a, b Finite) (*FiniteSignal, error) {
	if a.Length() == 0 || b.Length() == 0 {
		return newFinite(a.SampleRate(), a.Start()+b.Start(), []float64{}), nil
	}
	out, err := conv.FFT(a.Samples(), b.Samples())
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	return newFinite(a.SampleRate(), a.Start()+b.Start(), out), nil
}

// convolveStreaming evaluates kernel * x per requested window. For a window
// [start, start+length) the kernel is convolved separately with the
// kernel-length history block preceding the window and with the window
// itself; both partial results are summed over their full spans and the
// requested range is cut out.
func convolveStreaming(kernel Finite, x Signal) *InfiniteSignal {
	return newInfinite(x.SampleRate(), func(start, length int) []float64 {
		m := kernel.Length()
		if m == 0 {
			return make([]float64, length)
		}
		k, ks := kernel.Samples(), kernel.Start()

		// Input index that lines up with output index start.
		origin := start - ks

		hist := x.WindowedSamples(origin-m, m)
		win := x.WindowedSamples(origin, length)

		ch, chStart, err := conv.Shifted(k, ks, hist, origin-m)
		if err != nil {
			return make([]float64, length)
		}
		cw, cwStart, err := conv.Shifted(k, ks, win, origin)
		if err != nil {
			return make([]float64, length)
		}

		sum, sumStart := conv.AddShifted(ch, chStart, cw, cwStart)
		out := make([]float64, length)
		copy(out, sum[start-sumStart:])
		return out
	})
}
