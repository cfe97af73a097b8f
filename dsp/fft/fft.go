package fft

import (
	"fmt"
	"math"
	"sync"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// NegligibleImag is the threshold below which the imaginary part of the
// last half-spectrum bin is treated as zero, scaled by max(1, |real part|).
const NegligibleImag = 1e-10

// Transformer is the FFT execution service.
type Transformer interface {
	// Forward transforms samples, zero-padded or truncated to n, and returns
	// the n/2+1 bins of the non-negative half spectrum.
	Forward(samples []float64, n int) ([]complex128, error)

	// Inverse reconstructs the real sequence from a half spectrum. The
	// output length is inferred with IsEvenLength.
	Inverse(half []complex128) ([]float64, error)
}

// Engine is a Transformer backed by gonum's real FFT. Plans are cached per
// length; an Engine is safe for concurrent use.
type Engine struct {
	mu    sync.Mutex
	plans map[int]*fourier.FFT
	log   logrus.FieldLogger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for plan-cache debug events.
func WithLogger(l logrus.FieldLogger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine creates an Engine with an empty plan cache.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		plans: make(map[int]*fourier.FFT),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

var defaultEngine = NewEngine()

// Default returns the process-wide shared engine.
func Default() *Engine {
	return defaultEngine
}

// Forward implements Transformer.
func (e *Engine) Forward(samples []float64, n int) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fft: transform length must be > 0: %d: %w", n, core.ErrInvalidParameter)
	}

	in := make([]float64, n)
	copy(in, samples)

	plan := e.plan(n)
	e.mu.Lock()
	out := plan.Coefficients(nil, in)
	e.mu.Unlock()

	return out, nil
}

// Inverse implements Transformer.
func (e *Engine) Inverse(half []complex128) ([]float64, error) {
	if len(half) == 0 {
		return nil, fmt.Errorf("fft: inverse of empty spectrum: %w", core.ErrEmptyInput)
	}

	n := InferLength(half)
	return e.InverseN(half, n)
}

// InverseN reconstructs a real sequence of explicit length n from its half
// spectrum, which must hold n/2+1 bins.
func (e *Engine) InverseN(half []complex128, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fft: transform length must be > 0: %d: %w", n, core.ErrInvalidParameter)
	}
	if len(half) != n/2+1 {
		return nil, fmt.Errorf("fft: %d bins for length %d: %w", len(half), n, core.ErrLengthMismatch)
	}

	coeff := append([]complex128(nil), half...)
	plan := e.plan(n)
	e.mu.Lock()
	out := plan.Sequence(nil, coeff)
	e.mu.Unlock()

	scale := 1 / float64(n)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

func (e *Engine) plan(n int) *fourier.FFT {
	e.mu.Lock()
	defer e.mu.Unlock()

	if p, ok := e.plans[n]; ok {
		return p
	}
	p := fourier.NewFFT(n)
	e.plans[n] = p
	e.log.WithFields(logrus.Fields{"length": n, "cached": len(e.plans)}).Debug("fft: created plan")
	return p
}

// IsEvenLength reports whether the half spectrum stems from an even-length
// transform, judged by the last bin's imaginary part.
func IsEvenLength(half []complex128) bool {
	if len(half) == 0 {
		return true
	}
	last := half[len(half)-1]
	return math.Abs(imag(last)) <= NegligibleImag*math.Max(1, math.Abs(real(last)))
}

// InferLength returns the transform length implied by a half spectrum:
// 2(m-1) when IsEvenLength, else 2m-1. A single bin maps to length 1.
func InferLength(half []complex128) int {
	m := len(half)
	if m <= 1 {
		return 1
	}
	if IsEvenLength(half) {
		return 2 * (m - 1)
	}
	return 2*m - 1
}
