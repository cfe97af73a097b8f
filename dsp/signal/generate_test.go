package signal

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-signal/dsp/core"
)

func TestUniformNoiseSeeds(t *testing.T) {
	a, err := uniformNoise(1, 16, 99)
	if err != nil {
		t.Fatalf("uniformNoise() error = %v", err)
	}
	b, _ := uniformNoise(1, 16, 100)

	same := true
	for i := range a {
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v outside [-1, 1]", i, a[i])
		}
		if a[i] != b[i] {
			same = false
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestUniformNoiseInvalid(t *testing.T) {
	if _, err := uniformNoise(1, 0, 1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("zero length: err = %v", err)
	}
	if _, err := uniformNoise(-1, 4, 1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("negative amplitude: err = %v", err)
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
	if _, err := Normalize(nil, 1); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("empty input: err = %v", err)
	}
}
