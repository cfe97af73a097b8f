package fir

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/window"
)

func TestSincLowpass_Shape(t *testing.T) {
	const sr = 48000.0
	h, err := SincLowpass(4000, sr, 63)
	if err != nil {
		t.Fatalf("SincLowpass: %v", err)
	}
	if len(h) != 63 {
		t.Fatalf("len=%d, want 63", len(h))
	}

	for i := range h {
		if !almostEqual(h[i], h[len(h)-1-i], 1e-15) {
			t.Fatalf("taps not symmetric at %d: %v vs %v", i, h[i], h[len(h)-1-i])
		}
	}

	f := New(h)
	if dc := cmplx.Abs(f.Response(0, sr)); !almostEqual(dc, 1, 1e-12) {
		t.Fatalf("DC gain=%v, want 1", dc)
	}
	if stop := f.MagnitudeDB(12000, sr); stop > -40 {
		t.Fatalf("stopband at 12 kHz=%.1f dB, want < -40 dB", stop)
	}
}

func TestSincHighpass_Shape(t *testing.T) {
	const sr = 48000.0
	h, err := SincHighpass(4000, sr, 63, WithWindow(window.TypeHamming))
	if err != nil {
		t.Fatalf("SincHighpass: %v", err)
	}

	f := New(h)
	if dc := cmplx.Abs(f.Response(0, sr)); dc > 1e-12 {
		t.Fatalf("DC gain=%v, want 0", dc)
	}
	if nyq := cmplx.Abs(f.Response(sr/2, sr)); !almostEqual(nyq, 1, 1e-2) {
		t.Fatalf("Nyquist gain=%v, want ~1", nyq)
	}
}

func TestSincDesign_Errors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() ([]float64, error)
		want error
	}{
		{"zero taps", func() ([]float64, error) { return SincLowpass(1000, 48000, 0) }, ErrInvalidTaps},
		{"cutoff at nyquist", func() ([]float64, error) { return SincLowpass(24000, 48000, 31) }, ErrInvalidCutoff},
		{"negative cutoff", func() ([]float64, error) { return SincLowpass(-1, 48000, 31) }, ErrInvalidCutoff},
		{"zero rate", func() ([]float64, error) { return SincLowpass(1000, 0, 31) }, ErrInvalidCutoff},
		{"even highpass", func() ([]float64, error) { return SincHighpass(1000, 48000, 32) }, ErrInvalidTaps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
			if !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("err=%v does not wrap core.ErrInvalidParameter", err)
			}
		})
	}
}

func TestSincLowpass_SingleTap(t *testing.T) {
	h, err := SincLowpass(1000, 48000, 1)
	if err != nil {
		t.Fatalf("SincLowpass: %v", err)
	}
	if len(h) != 1 || h[0] != 1 {
		t.Fatalf("h=%v, want [1]", h)
	}
}
