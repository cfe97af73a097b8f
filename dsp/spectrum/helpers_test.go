package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
}

func TestUnwrapPhase(t *testing.T) {
	in := []float64{2.8, -2.7, -2.6}

	out := UnwrapPhase(in)
	if len(out) != len(in) {
		t.Fatalf("unwrap length mismatch")
	}

	if out[1] <= out[0] {
		t.Fatalf("expected increasing unwrapped phase: %v", out)
	}

	if math.Abs((out[1]-out[0])-(2*math.Pi-5.5)) > 1e-12 {
		t.Fatalf("unexpected unwrap delta: %f", out[1]-out[0])
	}
}

func TestGroupDelayErrors(t *testing.T) {
	_, err := GroupDelay([]float64{1, 2}, []float64{1})
	if err == nil {
		t.Fatalf("expected error for length mismatch")
	}
}

func TestSmoothFractionalOctave(t *testing.T) {
	freq := []float64{100, 125, 160, 200, 250, 315}
	vals := []float64{1, 1, 9, 1, 1, 1}

	out, err := SmoothFractionalOctave(freq, vals, 1)
	if err != nil {
		t.Fatalf("SmoothFractionalOctave error: %v", err)
	}

	if len(out) != len(vals) {
		t.Fatalf("length mismatch")
	}

	if !(out[2] < vals[2]) {
		t.Fatalf("expected peak smoothing at center: out=%v", out)
	}

	if !(out[1] > vals[1]) {
		t.Fatalf("expected neighboring lift from smoothing: out=%v", out)
	}
}

func TestSmoothFractionalOctaveErrors(t *testing.T) {
	if _, err := SmoothFractionalOctave(nil, nil, 3); err == nil {
		t.Fatalf("expected error for empty")
	}

	if _, err := SmoothFractionalOctave([]float64{1}, []float64{1, 2}, 3); err == nil {
		t.Fatalf("expected error for mismatch")
	}

	if _, err := SmoothFractionalOctave([]float64{1}, []float64{1}, 0); err == nil {
		t.Fatalf("expected error for invalid fraction")
	}

	if _, err := SmoothFractionalOctave([]float64{0, 2}, []float64{1, 2}, 3); err == nil {
		t.Fatalf("expected error for non-positive frequency")
	}

	if _, err := SmoothFractionalOctave([]float64{2, 2}, []float64{1, 2}, 3); err == nil {
		t.Fatalf("expected error for non-increasing frequency")
	}
}

func TestGroupDelayNonUniform(t *testing.T) {
	const delay = 0.002
	freqs := []float64{10, 20, 50, 55, 300, 1000}
	phase := make([]float64, len(freqs))
	for i, f := range freqs {
		phase[i] = -2 * math.Pi * f * delay
	}

	gd, err := GroupDelay(freqs, phase)
	if err != nil {
		t.Fatalf("GroupDelay error: %v", err)
	}
	for i, v := range gd {
		if math.Abs(v-delay) > 1e-12 {
			t.Fatalf("gd[%d]=%g want=%g", i, v, delay)
		}
	}

	single, _ := GroupDelay([]float64{5}, []float64{1})
	if len(single) != 1 || single[0] != 0 {
		t.Fatalf("single point delay = %v, want [0]", single)
	}
}
