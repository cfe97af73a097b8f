// Package spectrum models frequency-domain data.
//
// [Spectrum] pairs an ascending frequency [series.Series] with complex
// values and derives magnitude, unwrapped phase and group delay on first
// use. [FFTSpectrum] is the frequency view of a sampled signal: it holds a
// time-domain and a frequency-domain cell, fills whichever one it was built
// from and computes the other through an [fft.Transformer] on demand.
//
// Cached values are memoized without locking. Warm them before sharing a
// Spectrum across goroutines.
//
// The package also carries slice-level helpers (Magnitude, Phase,
// UnwrapPhase, group delay, fractional-octave smoothing) and a Goertzel
// evaluator used for DTFT sampling at arbitrary frequencies.
package spectrum
