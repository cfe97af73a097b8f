package interp

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/window"
)

// Method selects the in-domain interpolation strategy.
type Method int

const (
	Linear Method = iota
	Spline
	Smoothing
	Adaptive
)

var methodNames = map[Method]string{
	Linear:    "linear",
	Spline:    "spline",
	Smoothing: "smoothing",
	Adaptive:  "adaptive",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a method name such as "spline".
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range methodNames {
		if n == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("interp: unknown method %q: %w", name, core.ErrInvalidParameter)
}

// Extrapolation is the value policy for targets outside the x domain.
type Extrapolation int

const (
	// Hold repeats the nearest in-domain y value.
	Hold Extrapolation = iota
	// Zero emits 0.
	Zero
	// NaN emits math.NaN().
	NaN
)

// Option configures an Interpolator.
type Option func(*config)

type config struct {
	method        Method
	extrapolation Extrapolation
	logX          bool

	smoothingWidth  float64
	smoothingWindow window.Type

	adaptiveSpline bool
}

func defaultConfig() config {
	return config{
		method:          Linear,
		extrapolation:   Hold,
		smoothingWindow: window.TypeHann,
		adaptiveSpline:  true,
	}
}

// WithMethod selects the in-domain strategy. Default Linear.
func WithMethod(m Method) Option {
	return func(c *config) { c.method = m }
}

// WithExtrapolation sets the out-of-domain policy. Default Hold.
func WithExtrapolation(e Extrapolation) Option {
	return func(c *config) { c.extrapolation = e }
}

// WithLogX interpolates over ln(x). All x and target values must be
// positive.
func WithLogX() Option {
	return func(c *config) { c.logX = true }
}

// WithSmoothingWidth sets the full width of the smoothing window in
// (possibly log-warped) x units. Values <= 0 select twice the mean raw
// sample spacing.
func WithSmoothingWidth(width float64) Option {
	return func(c *config) { c.smoothingWidth = width }
}

// WithSmoothingWindow sets the weighting shape. Default Hann.
func WithSmoothingWindow(t window.Type) Option {
	return func(c *config) { c.smoothingWindow = t }
}

// WithAdaptiveSpline toggles the spline fallback of the Adaptive strategy
// for sparse regions. When disabled those points use linear
// interpolation. Default enabled.
func WithAdaptiveSpline(enabled bool) Option {
	return func(c *config) { c.adaptiveSpline = enabled }
}

// Interpolator holds a reusable configuration.
type Interpolator struct {
	cfg config
}

// New builds an Interpolator from options.
func New(opts ...Option) *Interpolator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Interpolator{cfg: cfg}
}

// Method reports the configured strategy.
func (in *Interpolator) Method() Method { return in.cfg.method }

// Interpolate is shorthand for New(opts...).Interpolate(x, y, targetX).
func Interpolate(x, y, targetX []float64, opts ...Option) ([]float64, error) {
	return New(opts...).Interpolate(x, y, targetX)
}

// Interpolate evaluates the series (x, y) at every targetX position.
// The result has len(targetX) values. Inputs are not modified.
func (in *Interpolator) Interpolate(x, y, targetX []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, core.ErrEmptyInput
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("interp: %d x values, %d y values: %w", len(x), len(y), core.ErrLengthMismatch)
	}

	out := make([]float64, len(targetX))
	if len(targetX) == 0 {
		return out, nil
	}

	xs, ts := x, targetX
	if in.cfg.logX {
		xs = logOf(x)
		ts = logOf(targetX)
	}

	lo, hi := domainRange(xs, ts)

	below, above := in.outside(y)
	for i := 0; i < lo; i++ {
		out[i] = below
	}
	for i := hi; i < len(ts); i++ {
		out[i] = above
	}

	if lo == hi {
		return out, nil
	}
	if len(xs) == 1 {
		for i := lo; i < hi; i++ {
			out[i] = y[0]
		}
		return out, nil
	}

	dst, targets := out[lo:hi], ts[lo:hi]
	switch in.cfg.method {
	case Spline:
		NewCubicSpline(xs, y).evalTo(dst, targets)
	case Smoothing:
		smooth(dst, xs, y, targets, in.cfg.smoothingWidth, in.cfg.smoothingWindow)
	case Adaptive:
		adaptive(dst, xs, y, ts[:hi], lo, in.cfg.adaptiveSpline)
	default:
		linearTo(dst, xs, y, targets)
	}

	return out, nil
}

func (in *Interpolator) outside(y []float64) (below, above float64) {
	switch in.cfg.extrapolation {
	case Zero:
		return 0, 0
	case NaN:
		return math.NaN(), math.NaN()
	default:
		return y[0], y[len(y)-1]
	}
}

// domainRange returns the half-open index range of targets inside
// [x[0], x[n-1]]. targets must be ascending.
func domainRange(x, targets []float64) (lo, hi int) {
	first, last := x[0], x[len(x)-1]
	for lo < len(targets) && targets[lo] < first {
		lo++
	}
	hi = lo
	for hi < len(targets) && targets[hi] <= last {
		hi++
	}
	return lo, hi
}

func logOf(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Log(v)
	}
	return out
}
