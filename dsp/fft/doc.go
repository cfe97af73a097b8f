// Package fft is the real-signal FFT service used by spectra and signals.
//
// The [Transformer] interface is the minimal contract the rest of the
// library depends on: a forward transform of a real sequence to its
// non-negative half spectrum, and the inverse. [Engine] implements it on top
// of gonum's dsp/fourier package and accepts any transform length.
//
// A half spectrum of m bins may come from a transform of length 2(m-1) or
// 2m-1. [Engine.Inverse] infers the length from the last bin: a real last
// bin (imaginary part below [NegligibleImag]) is the Nyquist bin of an even
// transform, otherwise the transform length was odd. This is a heuristic
// and can misjudge odd-length signals whose last bin happens to be real.
package fft
