package signal

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/window"
	"github.com/cwbudde/algo-signal/internal/testutil"
)

const fs = 1000.0

func mustFinite(t *testing.T, start int, samples ...float64) *FiniteSignal {
	t.Helper()
	f, err := NewFinite(fs, start, samples)
	if err != nil {
		t.Fatalf("NewFinite: %v", err)
	}
	return f
}

func requireFinite(t *testing.T, s Signal, start int, want []float64) {
	t.Helper()
	f, ok := s.(Finite)
	if !ok {
		t.Fatalf("expected a Finite signal, got %T", s)
	}
	if f.Start() != start {
		t.Fatalf("start = %d, want %d", f.Start(), start)
	}
	testutil.RequireSliceNearlyEqual(t, f.Samples(), want, 1e-12)
}

func TestFiniteWindowedSamples(t *testing.T) {
	f := mustFinite(t, 2, 1, 2, 3)
	if f.Length() != 3 || f.Stop() != 5 {
		t.Fatalf("length=%d stop=%d", f.Length(), f.Stop())
	}

	tests := []struct {
		start, length int
		want          []float64
	}{
		{0, 6, []float64{0, 0, 1, 2, 3, 0}},
		{3, 1, []float64{2}},
		{-10, 3, []float64{0, 0, 0}},
		{4, 0, []float64{}},
		{4, -2, []float64{}},
	}
	for _, tt := range tests {
		got := f.WindowedSamples(tt.start, tt.length)
		testutil.RequireSliceNearlyEqual(t, got, tt.want, 0)
	}
}

func TestWindowedSignalRoundTrip(t *testing.T) {
	f := mustFinite(t, -3, testutil.DeterministicNoise(1, 1, 17)...)
	w := WindowedSignal(f, f.Start(), f.Length())
	requireFinite(t, w, -3, f.Samples())
}

func TestNewFiniteCopiesInput(t *testing.T) {
	in := []float64{1, 2}
	f := mustFinite(t, 0, in...)
	in[0] = 99
	if f.Samples()[0] != 1 {
		t.Fatal("NewFinite must copy its input")
	}
}

func TestInvalidSampleRate(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewFinite(rate, 0, nil)
		if !errors.Is(err, ErrInvalidSampleRate) || !errors.Is(err, core.ErrInvalidParameter) {
			t.Errorf("rate %v: unexpected error %v", rate, err)
		}
	}
}

func TestSetNameEmitsOnce(t *testing.T) {
	f := mustFinite(t, 0, 1)
	calls := 0
	cancel := f.Subscribe(func() { calls++ })

	f.SetName("tone")
	if calls != 1 || f.Name() != "tone" {
		t.Fatalf("calls=%d name=%q", calls, f.Name())
	}

	cancel()
	f.SetName("again")
	if calls != 1 {
		t.Fatalf("cancelled subscriber still notified")
	}
}

func TestInfiniteSine(t *testing.T) {
	s, err := Sine(fs, 250, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := s.WindowedSamples(0, 5)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1, 0, -1, 0}, 1e-12)

	// Negative indices are valid.
	got = s.WindowedSamples(-1, 1)
	testutil.RequireSliceNearlyEqual(t, got, []float64{-1}, 1e-12)
}

func TestInfiniteRangeFixesLength(t *testing.T) {
	s, err := NewInfiniteRange(fs, func(_, _ int) []float64 { return []float64{1, 2, 3} })
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, s.WindowedSamples(0, 5), []float64{1, 2, 3, 0, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, s.WindowedSamples(0, 2), []float64{1, 2}, 0)
}

func TestAddFiniteUnion(t *testing.T) {
	sum, err := Add(mustFinite(t, 0, 1, 1), mustFinite(t, 3, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	requireFinite(t, sum, 0, []float64{1, 1, 0, 2, 2})
}

func TestAddWithInfinite(t *testing.T) {
	c, _ := Constant(fs, 1)
	sum, err := Add(mustFinite(t, 1, 5, 6), c)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sum.(Infinite); !ok {
		t.Fatalf("expected Infinite result, got %T", sum)
	}
	testutil.RequireSliceNearlyEqual(t, sum.WindowedSamples(0, 4), []float64{1, 6, 7, 1}, 0)
}

func TestMultiplyFiniteOverlap(t *testing.T) {
	prod, err := Multiply(mustFinite(t, 0, 1, 2, 3), mustFinite(t, 1, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	requireFinite(t, prod, 1, []float64{4, 6})

	prod, err = Multiply(mustFinite(t, 0, 1), mustFinite(t, 5, 1))
	if err != nil {
		t.Fatal(err)
	}
	requireFinite(t, prod, 5, []float64{})
}

func TestMultiplyWithInfinite(t *testing.T) {
	c, _ := Constant(fs, 2)
	prod, err := Multiply(c, mustFinite(t, 0, 1, 2))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, prod.WindowedSamples(-1, 4), []float64{0, 2, 4, 0}, 0)
}

func TestSampleRateMismatch(t *testing.T) {
	a := mustFinite(t, 0, 1)
	b, _ := NewFinite(2*fs, 0, []float64{1})

	for name, op := range map[string]func(a, b Signal) (Signal, error){
		"add": Add, "multiply": Multiply, "convolve": Convolve,
	} {
		_, err := op(a, b)
		if !errors.Is(err, ErrSampleRateMismatch) || !errors.Is(err, core.ErrDomainMismatch) {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
}

func TestNegate(t *testing.T) {
	requireFinite(t, Negate(mustFinite(t, 2, 1, -2)), 2, []float64{-1, 2})

	c, _ := Constant(fs, 3)
	testutil.RequireSliceNearlyEqual(t, Negate(c).WindowedSamples(0, 2), []float64{-3, -3}, 0)

	lp, _ := IdealLowpass(fs, 100)
	neg, ok := Negate(lp).(Synthetic)
	if !ok {
		t.Fatal("negated synthetic signal must stay Synthetic")
	}
	sp := neg.Spectrum(series.New([]float64{50}, false))
	if sp.At(0) != -1 {
		t.Fatalf("negated passband = %v, want -1", sp.At(0))
	}
}

func TestScale(t *testing.T) {
	requireFinite(t, Scale(mustFinite(t, -1, 1, 2), 0.5), -1, []float64{0.5, 1})

	c, _ := Constant(fs, 3)
	out := Scale(c, 2)
	if _, ok := out.(Infinite); !ok {
		t.Fatalf("Scale of infinite signal returned %T", out)
	}
	testutil.RequireSliceNearlyEqual(t, out.WindowedSamples(-3, 2), []float64{6, 6}, 0)
}

func TestConvolveFinite(t *testing.T) {
	out, err := Convolve(mustFinite(t, 1, 1, 2), mustFinite(t, -2, 1, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	requireFinite(t, out, -1, []float64{1, 3, 3, 2})
}

func TestConvolveStreamingMatchesFinite(t *testing.T) {
	kernel := mustFinite(t, 2, testutil.DeterministicNoise(3, 1, 5)...)
	x := mustFinite(t, 0, testutil.DeterministicNoise(4, 1, 40)...)
	xInf, _ := NewInfiniteRange(fs, x.WindowedSamples)

	finite, err := Convolve(kernel, x)
	if err != nil {
		t.Fatal(err)
	}
	for _, operands := range [][2]Signal{{kernel, xInf}, {xInf, kernel}} {
		stream, err := Convolve(operands[0], operands[1])
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := stream.(Infinite); !ok {
			t.Fatalf("expected Infinite result, got %T", stream)
		}
		for _, w := range [][2]int{{-5, 10}, {0, 1}, {10, 20}, {40, 10}, {-20, 80}} {
			got := stream.WindowedSamples(w[0], w[1])
			want := finite.WindowedSamples(w[0], w[1])
			testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
		}
	}
}

func TestConvolveInfiniteUnsupported(t *testing.T) {
	a, _ := Constant(fs, 1)
	b, _ := Sine(fs, 10, 1, 0)
	_, err := Convolve(a, b)
	if !errors.Is(err, ErrUnsupported) || !errors.Is(err, errors.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestDirac(t *testing.T) {
	d, err := Dirac(fs)
	if err != nil {
		t.Fatal(err)
	}
	requireFinite(t, d, 0, []float64{1})

	x := mustFinite(t, 3, 1, 2, 3)
	out, _ := Convolve(d, x)
	requireFinite(t, out, 3, []float64{1, 2, 3})
}

func TestWhiteNoiseSeeded(t *testing.T) {
	a, err := WhiteNoise(fs, 32, 0.5, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := WhiteNoise(fs, 32, 0.5, 7)
	testutil.RequireSliceNearlyEqual(t, a.Samples(), b.Samples(), 0)
	if Peak(a) > 0.5 {
		t.Fatalf("peak %v exceeds amplitude", Peak(a))
	}
}

func TestLogSweep(t *testing.T) {
	s, err := LogSweep(48000, 20, 20000, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if s.Length() != 24000 {
		t.Fatalf("length = %d, want 24000", s.Length())
	}
	if s.Samples()[0] != 0 {
		t.Fatalf("sweep must start at zero phase")
	}
	if p := Peak(s); p > 1 || p < 0.99 {
		t.Fatalf("peak = %v", p)
	}

	for _, bad := range [][2]float64{{0, 100}, {200, 100}, {20, 30000}} {
		if _, err := LogSweep(48000, bad[0], bad[1], 1); !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("%v: expected ErrInvalidFrequency, got %v", bad, err)
		}
	}
	if _, err := LogSweep(48000, 20, 200, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for zero duration, got %v", err)
	}
}

func TestIdealLowpass(t *testing.T) {
	lp, err := IdealLowpass(fs, fs/4)
	if err != nil {
		t.Fatal(err)
	}

	taps := lp.WindowedSamples(-3, 7)
	want := []float64{-1 / (3 * math.Pi), 0, 1 / math.Pi, 0.5, 1 / math.Pi, 0, -1 / (3 * math.Pi)}
	testutil.RequireSliceNearlyEqual(t, taps, want, 1e-12)

	const n = 2000
	sum := 0.0
	for _, v := range lp.WindowedSamples(-n, 2*n+1) {
		sum += v
	}
	if math.Abs(sum-1) > 1e-3 {
		t.Fatalf("DC gain of truncated taps = %v, want ~1", sum)
	}

	sp := lp.Spectrum(series.New([]float64{100, 250, 400}, false))
	for i, w := range []complex128{1, 0.5, 0} {
		if sp.At(i) != w {
			t.Errorf("spectrum[%d] = %v, want %v", i, sp.At(i), w)
		}
	}
}

func TestIdealHighpass(t *testing.T) {
	hp, err := IdealHighpass(fs, fs/4)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, hp.WindowedSamples(-1, 3), []float64{-1 / math.Pi, 0.5, -1 / math.Pi}, 1e-12)

	sp := hp.Spectrum(series.New([]float64{100, 400}, false))
	if sp.At(0) != 0 || sp.At(1) != 1 {
		t.Fatalf("spectrum = %v", sp.Values())
	}
}

func TestIdealFilterRejectsCorner(t *testing.T) {
	for _, fc := range []float64{0, -5, fs / 2, fs} {
		if _, err := IdealLowpass(fs, fc); !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("lowpass %v: expected ErrInvalidFrequency, got %v", fc, err)
		}
		if _, err := IdealHighpass(fs, fc); !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("highpass %v: expected ErrInvalidFrequency, got %v", fc, err)
		}
	}
}

func TestShift(t *testing.T) {
	requireFinite(t, Shift(mustFinite(t, 1, 4, 5), 3), 4, []float64{4, 5})

	ramp, _ := NewInfinite(fs, func(i int) float64 { return float64(i) })
	testutil.RequireSliceNearlyEqual(t, Shift(ramp, 2).WindowedSamples(0, 3), []float64{-2, -1, 0}, 0)

	lp, _ := IdealLowpass(fs, 100)
	shifted, ok := Shift(lp, 1).(Synthetic)
	if !ok {
		t.Fatal("shifted synthetic signal must stay Synthetic")
	}
	got := shifted.Spectrum(series.New([]float64{fs / 4 / 10}, false)).At(0)
	want := cmplx.Exp(complex(0, -2*math.Pi*25/fs))
	if cmplx.Abs(got-want) > 1e-12 {
		t.Fatalf("shifted response = %v, want %v", got, want)
	}
}

func TestReverseCropWindow(t *testing.T) {
	f := mustFinite(t, 2, 1, 2, 3)
	requireFinite(t, Reverse(f), -4, []float64{3, 2, 1})
	requireFinite(t, Crop(f, 3, 4), 3, []float64{2, 3, 0, 0})

	w := ApplyWindow(mustFinite(t, 0, 1, 1, 1, 1, 1), window.TypeHann)
	testutil.RequireSliceNearlyEqual(t, w.Samples(), []float64{0, 0.5, 1, 0.5, 0}, 1e-12)
}

func TestNormalizeSignal(t *testing.T) {
	n, err := NormalizeSignal(mustFinite(t, 5, -4, 2), 1)
	if err != nil {
		t.Fatal(err)
	}
	requireFinite(t, n, 5, []float64{-1, 0.5})

	if _, err := NormalizeSignal(mustFinite(t, 0, 1), -1); err == nil {
		t.Fatal("expected error for negative peak")
	}
}

func TestSpectrumDuality(t *testing.T) {
	x := testutil.DeterministicNoise(9, 1, 31)
	f := mustFinite(t, 3, x...)

	spec, err := SpectrumOf(f, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if spec != f.FFTSpectrum() {
		t.Fatal("SpectrumOf must reuse the cached spectrum")
	}
	bins, _ := spec.Bins()
	if len(bins) != 16 {
		t.Fatalf("len(bins) = %d, want 16", len(bins))
	}

	back := NewFiniteFromSpectrum(spec, 3)
	if back.Length() != 31 || back.SampleRate() != fs {
		t.Fatalf("length=%d fs=%v", back.Length(), back.SampleRate())
	}
	testutil.RequireSliceNearlyEqual(t, back.Samples(), x, 1e-12)

	padded, err := SpectrumOf(f, 64, nil)
	if err != nil {
		t.Fatal(err)
	}
	if padded.N() != 64 {
		t.Fatalf("N = %d, want 64", padded.N())
	}
}
