// Package fir designs linear-phase FIR coefficients.
//
// [SincLowpass] and [SincHighpass] window the ideal sinc response with any
// dsp/window type. The taps are plain slices; dsp/filter wraps them in a
// convolving filter and dsp/conv applies long kernels block-wise.
package fir
