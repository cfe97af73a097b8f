package interp

import (
	"sort"

	"github.com/cwbudde/algo-signal/dsp/tridiag"
)

// CubicSpline is a natural cubic spline through (x, y): the second
// derivative vanishes at both ends. x must be strictly ascending.
type CubicSpline struct {
	x  []float64
	y  []float64
	m  []float64 // second derivatives at the knots
	ok bool
}

// NewCubicSpline solves the knot system once. Fewer than three knots
// degrade to linear (two knots) or constant (one knot) evaluation.
// Inputs are copied.
func NewCubicSpline(x, y []float64) *CubicSpline {
	n := min(len(x), len(y))
	s := &CubicSpline{
		x: append([]float64(nil), x[:n]...),
		y: append([]float64(nil), y[:n]...),
		m: make([]float64, n),
	}
	if n < 3 {
		return s
	}

	inner := n - 2
	a := make([]float64, inner)
	b := make([]float64, inner)
	c := make([]float64, inner)
	d := make([]float64, inner)
	for k := range inner {
		i := k + 1
		hl := s.x[i] - s.x[i-1]
		hr := s.x[i+1] - s.x[i]
		a[k] = hl
		b[k] = 2 * (hl + hr)
		c[k] = hr
		d[k] = 6 * ((s.y[i+1]-s.y[i])/hr - (s.y[i]-s.y[i-1])/hl)
	}

	sys, err := tridiag.New(a, b, c)
	if err != nil {
		return s
	}
	sol, err := sys.Solve(d)
	if err != nil {
		return s
	}
	copy(s.m[1:n-1], sol)
	s.ok = true
	return s
}

// Len returns the number of knots.
func (s *CubicSpline) Len() int { return len(s.x) }

// At evaluates the spline at v. Outside the knot range the end
// polynomials are extended.
func (s *CubicSpline) At(v float64) float64 {
	switch len(s.x) {
	case 0:
		return 0
	case 1:
		return s.y[0]
	}
	i := sort.SearchFloat64s(s.x, v) - 1
	i = max(0, min(i, len(s.x)-2))
	return s.segment(i, v)
}

// Eval evaluates the spline at every target.
func (s *CubicSpline) Eval(targets []float64) []float64 {
	out := make([]float64, len(targets))
	for i, t := range targets {
		out[i] = s.At(t)
	}
	return out
}

func (s *CubicSpline) evalTo(dst, targets []float64) {
	for i, t := range targets {
		dst[i] = s.At(t)
	}
}

func (s *CubicSpline) segment(i int, v float64) float64 {
	x0, x1 := s.x[i], s.x[i+1]
	y0, y1 := s.y[i], s.y[i+1]
	h := x1 - x0
	if h == 0 {
		return y0
	}
	if !s.ok {
		return y0 + (v-x0)/h*(y1-y0)
	}

	m0, m1 := s.m[i], s.m[i+1]
	l, r := x1-v, v-x0
	return m0*l*l*l/(6*h) + m1*r*r*r/(6*h) +
		(y0-m0*h*h/6)*l/h + (y1-m1*h*h/6)*r/h
}
