// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Coefficients also expose
// their frequency response, pole/zero locations and a stability check.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design.
package biquad
