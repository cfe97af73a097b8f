package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Goertzel evaluates a single DTFT term of a sample stream.
//
// The analyzer is stateful and accumulates every processed sample. Value,
// Power and Magnitude describe all samples processed since the last Reset,
// with sample 0 at time index 0.
//
// Spectral leakage occurs if the target frequency does not align with an
// integer number of cycles within the processed block.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	omega      float64
	coeff      float64
	s0, s1     float64
	count      int
}

// NewGoertzel creates a new Goertzel analyzer for the target frequency.
//
// frequency must be between 0 and sampleRate/2.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}
	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}
	return newGoertzel(frequency, sampleRate), nil
}

func newGoertzel(frequency, sampleRate float64) *Goertzel {
	omega := 2 * math.Pi * frequency / sampleRate
	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		omega:      omega,
		coeff:      2 * math.Cos(omega),
	}
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
	g.count = 0
}

// ProcessSample updates the internal state with a single input sample.
func (g *Goertzel) ProcessSample(input float64) {
	s := input + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
	g.count++
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
	g.count += len(input)
}

// Value returns the complex DTFT term sum x[n]*exp(-j*omega*n).
func (g *Goertzel) Value() complex128 {
	if g.count == 0 {
		return 0
	}
	y := complex(g.s0, 0) - cmplx.Exp(complex(0, -g.omega))*complex(g.s1, 0)
	return cmplx.Exp(complex(0, -g.omega*float64(g.count-1))) * y
}

// Power returns the squared magnitude of the frequency component.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the frequency component.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// PowerDB returns the power in decibels (dB) with a safe floor at -300 dB.
func (g *Goertzel) PowerDB() float64 {
	p := g.Power()
	if p <= 1e-30 {
		return -300
	}
	return 10 * math.Log10(p)
}

// Frequency returns the target frequency in Hz.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate in Hz.
func (g *Goertzel) SampleRate() float64 { return g.sampleRate }

// DTFT evaluates sum x[n]*exp(-j*2*pi*f*(start+n)/fs) at every frequency in
// freqHz. Frequencies are not restricted to the Nyquist range.
func DTFT(samples []float64, start int, freqHz []float64, sampleRate float64) []complex128 {
	out := make([]complex128, len(freqHz))
	for i, f := range freqHz {
		g := newGoertzel(f, sampleRate)
		g.ProcessBlock(samples)
		v := g.Value()
		if start != 0 {
			v *= cmplx.Exp(complex(0, -g.omega*float64(start)))
		}
		out[i] = v
	}
	return out
}
