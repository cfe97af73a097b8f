// Package interp resamples (x, y) series onto new x positions.
//
// Available strategies:
//
//   - [Linear]:    forward-scanning two-point interpolation
//   - [Spline]:    natural cubic spline, solved once per call
//   - [Smoothing]: window-weighted moving average over a fixed x width
//   - [Adaptive]:  per-point choice between mean, linear and spline
//     depending on how many raw samples fall between adjacent targets
//
// Targets outside [x[0], x[n-1]] receive the configured [Extrapolation]
// value. With [WithLogX] both x and the targets are mapped through the
// natural log before any strategy sees them.
//
// x and targets must be ascending. Duplicate x values are tolerated by
// Linear but make the spline system singular.
package interp
