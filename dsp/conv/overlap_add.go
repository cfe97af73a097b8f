package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Kernel is a fixed convolution kernel held in the frequency domain.
// Apply convolves arbitrary-length input block by block with overlap-add.
//
// A Kernel owns scratch buffers and is not safe for concurrent use.
type Kernel struct {
	spectrum  []complex128
	taps      int
	blockSize int
	fftSize   int

	plan    *algofft.Plan[complex128]
	scratch []complex128
}

// NewKernel transforms taps once for reuse. blockSize sets the input
// segment length; 0 picks max(256, next power of two >= len(taps)).
func NewKernel(taps []float64, blockSize int) (*Kernel, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}
	if blockSize == 0 {
		blockSize = max(core.NextPowerOf2(len(taps)), 256)
	}

	fftSize := core.NextPowerOf2(blockSize + len(taps) - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	k := &Kernel{
		spectrum:  make([]complex128, fftSize),
		taps:      len(taps),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		scratch:   make([]complex128, fftSize),
	}
	for i, v := range taps {
		k.spectrum[i] = complex(v, 0)
	}
	if err := plan.Forward(k.spectrum, k.spectrum); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return k, nil
}

// Len returns the number of kernel taps.
func (k *Kernel) Len() int { return k.taps }

// BlockSize returns the input segment length.
func (k *Kernel) BlockSize() int { return k.blockSize }

// FFTSize returns the transform length used per block.
func (k *Kernel) FFTSize() int { return k.fftSize }

// Apply returns the full linear convolution of input with the kernel,
// of length len(input)+Len()-1.
func (k *Kernel) Apply(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+k.taps-1)
	if err := k.ApplyTo(output, input); err != nil {
		return nil, err
	}
	return output, nil
}

// ApplyTo writes the full convolution of input into output, which must
// have length len(input)+Len()-1.
func (k *Kernel) ApplyTo(output, input []float64) error {
	want := len(input) + k.taps - 1
	if len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}
	core.Zero(output)

	for start := 0; start < len(input); start += k.blockSize {
		end := min(start+k.blockSize, len(input))

		clear(k.scratch)
		for i, v := range input[start:end] {
			k.scratch[i] = complex(v, 0)
		}

		if err := k.plan.Forward(k.scratch, k.scratch); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}
		for i := range k.scratch {
			k.scratch[i] *= k.spectrum[i]
		}
		if err := k.plan.Inverse(k.scratch, k.scratch); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		n := min(end-start+k.taps-1, len(output)-start)
		for i := 0; i < n; i++ {
			output[start+i] += real(k.scratch[i])
		}
	}

	return nil
}
