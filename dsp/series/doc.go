// Package series provides Series, an immutable ordered sequence of real
// values (frequencies or x positions) carrying a logarithmic-scale flag.
//
// Series values are copied on construction and never mutated afterwards, so
// a Series can be shared freely between spectra and interpolators.
package series
