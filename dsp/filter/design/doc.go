// Package design provides closed-form digital biquad coefficient designers.
//
// The functions in this package apply the RBJ bilinear-transform formulas
// (Lowpass, Highpass, Bandpass, Notch, Allpass, Peak, LowShelf, HighShelf)
// and produce coefficients consumable by dsp/filter/biquad. Invalid corner
// frequencies or sample rates yield zero coefficients rather than errors.
package design
