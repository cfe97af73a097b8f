// Package signal models discrete-time signals and the operations between
// them.
//
// Every signal has an immutable sample rate and can be sampled over any
// integer index window with WindowedSamples. Three kinds exist:
//
//   - [Finite]: samples on [Start, Stop), zero elsewhere
//   - [Infinite]: a sampling function defined for every index
//   - [Synthetic]: an Infinite signal that also knows its exact spectrum
//
// [Add], [Multiply], [Scale] and [Convolve] dispatch on the operand kinds.
// Finite operands produce Finite results; any Infinite operand makes the
// result Infinite and evaluated per requested window. Convolving two
// Infinite signals is not supported.
//
// Derived data (samples of a spectrum-backed signal, the spectrum of a
// finite signal) is computed on first access and cached without locking.
//
// Factories cover the common test signals: [Dirac], [Constant], [Sine],
// [WhiteNoise] and [LogSweep].
package signal
