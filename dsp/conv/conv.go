package conv

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

const (
	directThreshold = 64
	maxSingleFFT    = 1 << 16
)

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	core.Zero(dst)
	for i, av := range a {
		if av == 0 {
			continue
		}
		row := dst[i : i+len(b)]
		for j, bv := range b {
			row[j] += av * bv
		}
	}
}

// FFT convolves a and b by multiplying their spectra. Both operands are
// zero-padded to the next power of two at or above len(a)+len(b)-1 and the
// result is truncated back to that length.
func FFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	outLen := len(a) + len(b) - 1
	size := core.NextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	fa := make([]complex128, size)
	fb := make([]complex128, size)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}
	for i, v := range b {
		fb[i] = complex(v, 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	for i := range fa {
		fa[i] *= fb[i]
	}
	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, outLen)
	for i := range result {
		result[i] = real(fa[i])
	}
	return result, nil
}

// Convolve performs linear convolution with automatic algorithm selection.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Keep the longer operand first.
	if len(b) > len(a) {
		a, b = b, a
	}

	switch {
	case len(b) <= directThreshold:
		return Direct(a, b)
	case core.NextPowerOf2(len(a)+len(b)-1) <= maxSingleFFT:
		return FFT(a, b)
	default:
		k, err := NewKernel(b, 0)
		if err != nil {
			return nil, err
		}
		return k.Apply(a)
	}
}

// ConvolveMode performs convolution with specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// Shifted convolves two blocks that begin at startA and startB. The result
// begins at startA+startB.
func Shifted(a []float64, startA int, b []float64, startB int) ([]float64, int, error) {
	out, err := Convolve(a, b)
	if err != nil {
		return nil, 0, err
	}
	return out, startA + startB, nil
}

// AddShifted sums two blocks that begin at startA and startB. The result
// covers the union of both spans and is zero where neither block has
// samples. An empty block contributes nothing.
func AddShifted(a []float64, startA int, b []float64, startB int) ([]float64, int) {
	switch {
	case len(a) == 0 && len(b) == 0:
		return nil, startA
	case len(a) == 0:
		return append([]float64(nil), b...), startB
	case len(b) == 0:
		return append([]float64(nil), a...), startA
	}

	start := min(startA, startB)
	end := max(startA+len(a), startB+len(b))

	out := make([]float64, end-start)
	for i, v := range a {
		out[startA-start+i] += v
	}
	for i, v := range b {
		out[startB-start+i] += v
	}
	return out, start
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeFull:
		return full
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}
