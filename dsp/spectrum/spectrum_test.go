package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/interp"
	"github.com/cwbudde/algo-signal/dsp/series"
)

func delaySpectrum(t *testing.T, freqs series.Series, delay float64) *Spectrum {
	t.Helper()
	values := make([]complex128, freqs.Len())
	for i := range values {
		values[i] = cmplx.Exp(complex(0, -2*math.Pi*freqs.At(i)*delay))
	}
	s, err := New(freqs, values)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewLengthMismatch(t *testing.T) {
	_, err := New(series.New([]float64{1, 2}, false), []complex128{1})
	if !errors.Is(err, core.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestValueClampsAndInterpolates(t *testing.T) {
	s, err := New(series.New([]float64{100, 200, 400}, false), []complex128{1, 3 + 2i, 5})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		f    float64
		want complex128
	}{
		{50, 1},
		{100, 1},
		{150, 2 + 1i},
		{200, 3 + 2i},
		{300, 4 + 1i},
		{400, 5},
		{1e6, 5},
	}
	for _, tt := range tests {
		if got := s.Value(tt.f); cmplx.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Value(%v) = %v, want %v", tt.f, got, tt.want)
		}
	}

	empty, _ := New(series.Series{}, nil)
	if empty.Value(10) != 0 {
		t.Errorf("empty spectrum Value should be 0")
	}
}

func TestDerivedViewsAreCached(t *testing.T) {
	s, _ := New(series.New([]float64{1, 2}, false), []complex128{10, 0.1i})

	m1, m2 := s.Magnitude(), s.Magnitude()
	if &m1[0] != &m2[0] {
		t.Fatal("magnitude recomputed on second access")
	}

	db := s.MagnitudeDB()
	if math.Abs(db[0]-20) > 1e-12 || math.Abs(db[1]+20) > 1e-12 {
		t.Fatalf("MagnitudeDB = %v, want [20 -20]", db)
	}
}

func TestGroupDelayOfPureDelay(t *testing.T) {
	freqs, _ := series.Linear(0, 4000, 401)
	s := delaySpectrum(t, freqs, 0.001)

	for i, v := range s.GroupDelay() {
		if math.Abs(v-0.001) > 1e-12 {
			t.Fatalf("GroupDelay[%d] = %g, want 0.001", i, v)
		}
	}
	phase := s.Phase()
	if math.Abs(phase[400]+2*math.Pi*4) > 1e-9 {
		t.Fatalf("unwrapped phase at 4 kHz = %v, want -8pi", phase[400])
	}
}

func TestMultiplyDivide(t *testing.T) {
	freqs := series.New([]float64{1, 2, 3}, false)
	a, _ := New(freqs, []complex128{1, 2i, 3})
	b, _ := New(freqs, []complex128{2, 1i, -1})

	prod, err := a.Multiply(b)
	if err != nil {
		t.Fatal(err)
	}
	quot, err := prod.Divide(b)
	if err != nil {
		t.Fatal(err)
	}

	wantProd := []complex128{2, -2, -3}
	for i := range wantProd {
		if cmplx.Abs(prod.At(i)-wantProd[i]) > 1e-12 {
			t.Errorf("prod[%d] = %v, want %v", i, prod.At(i), wantProd[i])
		}
		if cmplx.Abs(quot.At(i)-a.At(i)) > 1e-12 {
			t.Errorf("quot[%d] = %v, want %v", i, quot.At(i), a.At(i))
		}
	}

	other, _ := New(series.New([]float64{1, 2, 4}, false), []complex128{1, 1, 1})
	if _, err := a.Multiply(other); !errors.Is(err, core.ErrDomainMismatch) {
		t.Fatalf("expected ErrDomainMismatch, got %v", err)
	}
}

func TestResamplePreservesDelay(t *testing.T) {
	freqs, _ := series.Linear(0, 1000, 101)
	s := delaySpectrum(t, freqs, 0.0005)

	target, _ := series.Logarithmic(20, 900, 17)
	r, err := s.Resample(target, interp.New(interp.WithMethod(interp.Linear)))
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 17 || !r.Frequencies().Equal(target) {
		t.Fatalf("resampled axis mismatch")
	}
	for i := range r.Len() {
		want := cmplx.Exp(complex(0, -2*math.Pi*target.At(i)*0.0005))
		if cmplx.Abs(r.At(i)-want) > 1e-9 {
			t.Errorf("bin %d: got %v, want %v", i, r.At(i), want)
		}
	}
}

func TestSmoothKeepsFlatMagnitude(t *testing.T) {
	freqs, _ := series.Logarithmic(20, 20000, 64)
	s := delaySpectrum(t, freqs, 0)

	sm, err := s.Smooth(3)
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range sm.Magnitude() {
		if math.Abs(m-1) > 1e-12 {
			t.Fatalf("magnitude[%d] = %v, want 1", i, m)
		}
	}
}
