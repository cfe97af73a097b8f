// Package conv provides linear convolution routines over real sample blocks.
//
// Three strategies are offered:
//
//   - Direct: O(N*M) time-domain convolution, best for very short kernels
//   - FFT: a single zero-padded power-of-two transform of both operands
//   - Kernel: a reusable overlap-add convolver for long inputs and a fixed kernel
//
// # Usage
//
//	result, err := conv.Convolve(signal, kernel)  // Auto-selects algorithm
//	result, err := conv.Direct(signal, kernel)    // Force direct convolution
//	result, err := conv.FFT(signal, kernel)       // Force transform multiply
//
// For repeated convolution with the same kernel:
//
//	k, err := conv.NewKernel(taps, 0)
//	result, err := k.Apply(signal)
//
// Sample blocks that carry a time offset (start index) are combined with
// [Shifted], which returns the convolution together with its start index,
// and with [AddShifted], which sums two offset blocks over the union of
// their spans.
//
// # Algorithm Selection
//
// [Convolve] uses direct convolution when the shorter operand has at most
// 64 samples, a single transform when the padded length stays below
// 1<<16, and overlap-add otherwise.
package conv
