package filter

import (
	"github.com/cwbudde/algo-signal/dsp/signal"
)

const (
	// decayTolerance is the relative envelope level below which an
	// impulse response is treated as settled.
	decayTolerance = 1e-12
	// maxWarmup caps the warm-up run of unstable or slowly decaying
	// recursive filters.
	maxWarmup = 1 << 16
)

// runner is a stateful recursive filter kernel.
type runner interface {
	ProcessBlock(buf []float64)
}

// processRecursive returns the Infinite output of a recursive filter
// driven by x.
//
// A Finite input is filtered from its first sample, so output windows
// before x.Start() are zero. An Infinite input has no start; each window
// is preceded by warmup samples to let the filter state settle.
func processRecursive(x signal.Signal, warmup int, newRunner func() runner) (signal.Signal, error) {
	if f, ok := x.(signal.Finite); ok {
		from := f.Start()
		return signal.NewInfiniteRange(x.SampleRate(), func(start, length int) []float64 {
			out := make([]float64, length)
			end := start + length
			if end <= from {
				return out
			}
			buf := x.WindowedSamples(from, end-from)
			newRunner().ProcessBlock(buf)
			if start >= from {
				copy(out, buf[start-from:])
			} else {
				copy(out[from-start:], buf)
			}
			return out
		})
	}

	return signal.NewInfiniteRange(x.SampleRate(), func(start, length int) []float64 {
		buf := x.WindowedSamples(start-warmup, warmup+length)
		newRunner().ProcessBlock(buf)
		return buf[warmup:]
	})
}

// directForm is a Direct Form II Transposed filter of arbitrary order with
// normalized denominator (a[0] == 1).
type directForm struct {
	b, a  []float64
	state []float64
}

func newDirectForm(b, a []float64) *directForm {
	return &directForm{b: b, a: a, state: make([]float64, len(a))}
}

func (d *directForm) ProcessBlock(buf []float64) {
	n := len(d.a) - 1
	z := d.state
	for i, x := range buf {
		y := d.b[0]*x + z[0]
		for k := 1; k <= n; k++ {
			z[k-1] = d.b[k]*x - d.a[k]*y + z[k]
		}
		buf[i] = y
	}
}
