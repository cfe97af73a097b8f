package tridiag

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// ErrSingular is returned by SolveChecked when elimination hits a zero pivot.
var ErrSingular = errors.New("tridiag: zero pivot")

// Matrix is a tridiagonal matrix stored by diagonals.
type Matrix struct {
	A []float64 // sub-diagonal, A[0] unused
	B []float64 // main diagonal
	C []float64 // super-diagonal, C[N-1] unused
}

// New returns a Matrix over copies of the three diagonals.
func New(a, b, c []float64) (*Matrix, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("tridiag: %w", core.ErrEmptyInput)
	}
	if len(a) != len(b) || len(c) != len(b) {
		return nil, fmt.Errorf("tridiag: diagonal lengths %d/%d/%d: %w", len(a), len(b), len(c), core.ErrLengthMismatch)
	}
	return &Matrix{
		A: append([]float64(nil), a...),
		B: append([]float64(nil), b...),
		C: append([]float64(nil), c...),
	}, nil
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return len(m.B) }

// Solve returns x with M·x = d.
//
// Forward elimination computes the normalized super-diagonal c' and
// right-hand side d', back substitution then yields x. O(N) time and space;
// neither the matrix nor d is modified. A zero pivot yields ±Inf/NaN.
func (m *Matrix) Solve(d []float64) ([]float64, error) {
	x, _, err := m.solve(d)
	return x, err
}

// SolveChecked is Solve with an explicit zero-pivot check.
func (m *Matrix) SolveChecked(d []float64) ([]float64, error) {
	x, singular, err := m.solve(d)
	if err != nil {
		return nil, err
	}
	if singular >= 0 {
		return nil, fmt.Errorf("%w at row %d", ErrSingular, singular)
	}
	return x, nil
}

func (m *Matrix) solve(d []float64) ([]float64, int, error) {
	n := len(m.B)
	if len(d) != n {
		return nil, -1, fmt.Errorf("tridiag: rhs length %d for %d×%d matrix: %w", len(d), n, n, core.ErrLengthMismatch)
	}

	singular := -1
	cp := make([]float64, n)
	dp := make([]float64, n)

	pivot := m.B[0]
	if pivot == 0 {
		singular = 0
	}
	cp[0] = m.C[0] / pivot
	dp[0] = d[0] / pivot

	for i := 1; i < n; i++ {
		pivot = m.B[i] - cp[i-1]*m.A[i]
		if pivot == 0 && singular < 0 {
			singular = i
		}
		if i < n-1 {
			cp[i] = m.C[i] / pivot
		}
		dp[i] = (d[i] - dp[i-1]*m.A[i]) / pivot
	}

	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x, singular, nil
}

// Mul returns M·x.
func (m *Matrix) Mul(x []float64) ([]float64, error) {
	n := len(m.B)
	if len(x) != n {
		return nil, fmt.Errorf("tridiag: vector length %d for %d×%d matrix: %w", len(x), n, n, core.ErrLengthMismatch)
	}
	out := make([]float64, n)
	for i := range out {
		v := m.B[i] * x[i]
		if i > 0 {
			v += m.A[i] * x[i-1]
		}
		if i < n-1 {
			v += m.C[i] * x[i+1]
		}
		out[i] = v
	}
	return out, nil
}
