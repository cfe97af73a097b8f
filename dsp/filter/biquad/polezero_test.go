package biquad

import (
	"math/cmplx"
	"testing"
)

func TestCoefficientsPolesZeros_SecondOrder(t *testing.T) {
	p1 := complex(0.72, 0.19)
	p2 := cmplx.Conj(p1)
	z1 := complex(0.31, 0.44)
	z2 := cmplx.Conj(z1)

	b0 := 2.3
	c := Coefficients{
		B0: b0,
		B1: -b0 * real(z1+z2),
		B2: b0 * real(z1*z2),
		A1: -real(p1 + p2),
		A2: real(p1 * p2),
	}

	poles, zeros := c.Poles(), c.Zeros()
	if !unorderedRootsClose(poles, p1, p2, 1e-12) {
		t.Fatalf("unexpected poles: got=%v want={%v,%v}", poles, p1, p2)
	}
	if !unorderedRootsClose(zeros, z1, z2, 1e-12) {
		t.Fatalf("unexpected zeros: got=%v want={%v,%v}", zeros, z1, z2)
	}
}

func TestCoefficientsPolesZeros_FirstOrder(t *testing.T) {
	c := Coefficients{
		B0: 1.0,
		B1: -0.3,
		B2: 0.0,
		A1: -0.8,
		A2: 0.0,
	}

	poles, zeros := c.Poles(), c.Zeros()
	if !unorderedRootsClose(poles, complex(0.8, 0), complex(0, 0), 1e-12) {
		t.Fatalf("unexpected first-order poles: %v", poles)
	}
	if !unorderedRootsClose(zeros, complex(0.3, 0), complex(0, 0), 1e-12) {
		t.Fatalf("unexpected first-order zeros: %v", zeros)
	}
}

func unorderedRootsClose(got [2]complex128, want1, want2 complex128, tol float64) bool {
	return (rootsClose(got[0], want1, tol) && rootsClose(got[1], want2, tol)) ||
		(rootsClose(got[0], want2, tol) && rootsClose(got[1], want1, tol))
}

func rootsClose(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}

func TestIsStable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{"passthrough", Identity(), true},
		{"damped resonator", Coefficients{B0: 1, A1: -1.4, A2: 0.53}, true},
		{"pole on unit circle", Coefficients{B0: 1, A1: -1}, false},
		{"growing", Coefficients{B0: 1, A1: -2.2, A2: 1.21}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsStable(); got != tt.want {
				t.Fatalf("IsStable()=%v, want %v (radius %.4f)", got, tt.want, tt.c.PoleRadius())
			}
		})
	}
}
