package filter

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-signal/dsp/filter/fir"
	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
	"github.com/cwbudde/algo-signal/dsp/window"
)

// Convolver convolves its input with a finite impulse response.
type Convolver struct {
	Base
	kernel signal.Finite
}

// NewConvolver returns a Convolver for kernel. A nil kernel leaves the
// filter without effect.
func NewConvolver(sampleRate float64, kernel signal.Finite) (*Convolver, error) {
	b, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	c := &Convolver{Base: b}
	if err := c.checkKernel(kernel); err != nil {
		return nil, err
	}
	c.kernel = kernel
	return c, nil
}

// Kernel returns the impulse response, or nil.
func (c *Convolver) Kernel() signal.Finite { return c.kernel }

// SetKernel replaces the impulse response.
func (c *Convolver) SetKernel(kernel signal.Finite) error {
	if err := c.checkKernel(kernel); err != nil {
		return err
	}
	c.kernel = kernel
	c.changed()
	return nil
}

func (c *Convolver) checkKernel(kernel signal.Finite) error {
	if kernel != nil && kernel.SampleRate() != c.sampleRate {
		return fmt.Errorf("%w: filter %v Hz, kernel %v Hz", ErrSampleRateMismatch, c.sampleRate, kernel.SampleRate())
	}
	return nil
}

// HasEffect reports whether the filter is enabled and the kernel has a
// non-zero sample.
func (c *Convolver) HasEffect() bool { return c.enabled && nonTrivial(c.kernel) }

// HasInfiniteImpulseResponse returns false.
func (*Convolver) HasInfiniteImpulseResponse() bool { return false }

// Process returns s convolved with the kernel.
func (c *Convolver) Process(s signal.Signal) (signal.Signal, error) {
	if !c.HasEffect() {
		return s, nil
	}
	if err := c.checkRate(s); err != nil {
		return nil, err
	}
	return signal.Convolve(s, c.kernel)
}

// ImpulseResponse returns the kernel cropped to [0, length).
func (c *Convolver) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return c.impulseResponse(c, length)
}

// FrequencyResponse returns the DTFT of the kernel at freqs.
func (c *Convolver) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	if !c.HasEffect() {
		return flatResponse(freqs)
	}
	return kernelResponse(c.kernel, freqs)
}

func nonTrivial(k signal.Finite) bool {
	if k == nil {
		return false
	}
	return slices.ContainsFunc(k.Samples(), func(x float64) bool { return x != 0 })
}

func kernelResponse(k signal.Finite, freqs series.Series) (*spectrum.Spectrum, error) {
	values := spectrum.DTFT(k.Samples(), k.Start(), freqs.Values(), k.SampleRate())
	return spectrum.New(freqs, values)
}

// SincKind selects the passband of a [Sinc] filter.
type SincKind int

const (
	SincLowpass SincKind = iota
	SincHighpass
)

func (k SincKind) String() string {
	switch k {
	case SincLowpass:
		return "lowpass"
	case SincHighpass:
		return "highpass"
	default:
		return fmt.Sprintf("SincKind(%d)", int(k))
	}
}

// Sinc is a linear-phase FIR filter built from a windowed sinc. Its taps
// start at index 0 and are recomputed whenever a parameter changes.
type Sinc struct {
	Base
	kind   SincKind
	cutoff float64
	taps   int
	window window.Type
	kernel *signal.FiniteSignal
}

// NewSincLowpass returns a windowed-sinc lowpass with the given tap count.
func NewSincLowpass(sampleRate, cutoffHz float64, taps int) (*Sinc, error) {
	return newSinc(sampleRate, SincLowpass, cutoffHz, taps)
}

// NewSincHighpass returns a windowed-sinc highpass. Even tap counts leave
// the filter without effect.
func NewSincHighpass(sampleRate, cutoffHz float64, taps int) (*Sinc, error) {
	return newSinc(sampleRate, SincHighpass, cutoffHz, taps)
}

func newSinc(sampleRate float64, kind SincKind, cutoffHz float64, taps int) (*Sinc, error) {
	b, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	f := &Sinc{Base: b, kind: kind, cutoff: cutoffHz, taps: taps, window: fir.DefaultWindow}
	f.redesign()
	return f, nil
}

// Kind returns the passband type.
func (f *Sinc) Kind() SincKind { return f.kind }

// Cutoff returns the cutoff frequency in Hz.
func (f *Sinc) Cutoff() float64 { return f.cutoff }

// Taps returns the kernel length.
func (f *Sinc) Taps() int { return f.taps }

// Window returns the taper applied to the sinc.
func (f *Sinc) Window() window.Type { return f.window }

// Kernel returns the designed taps, or nil if the parameters are out of
// range.
func (f *Sinc) Kernel() *signal.FiniteSignal { return f.kernel }

// SetCutoff changes the cutoff frequency.
func (f *Sinc) SetCutoff(hz float64) {
	if f.cutoff == hz {
		return
	}
	f.cutoff = hz
	f.redesign()
	f.changed()
}

// SetTaps changes the kernel length.
func (f *Sinc) SetTaps(n int) {
	if f.taps == n {
		return
	}
	f.taps = n
	f.redesign()
	f.changed()
}

// SetWindow changes the taper.
func (f *Sinc) SetWindow(t window.Type) {
	if f.window == t {
		return
	}
	f.window = t
	f.redesign()
	f.changed()
}

func (f *Sinc) redesign() {
	build := fir.SincLowpass
	if f.kind == SincHighpass {
		build = fir.SincHighpass
	}
	h, err := build(f.cutoff, f.sampleRate, f.taps, fir.WithWindow(f.window))
	if err != nil {
		f.kernel = nil
		return
	}
	f.kernel, _ = signal.NewFinite(f.sampleRate, 0, h)
}

// HasEffect reports whether the filter is enabled and the design succeeded.
func (f *Sinc) HasEffect() bool { return f.enabled && f.kernel != nil && nonTrivial(f.kernel) }

// HasInfiniteImpulseResponse returns false.
func (*Sinc) HasInfiniteImpulseResponse() bool { return false }

// Process returns s convolved with the designed kernel.
func (f *Sinc) Process(s signal.Signal) (signal.Signal, error) {
	if !f.HasEffect() {
		return s, nil
	}
	if err := f.checkRate(s); err != nil {
		return nil, err
	}
	return signal.Convolve(s, f.kernel)
}

// ImpulseResponse returns the first length samples of the impulse response.
func (f *Sinc) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return f.impulseResponse(f, length)
}

// FrequencyResponse returns the DTFT of the kernel at freqs.
func (f *Sinc) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	if !f.HasEffect() {
		return flatResponse(freqs)
	}
	return kernelResponse(f.kernel, freqs)
}
