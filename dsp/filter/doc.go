// Package filter composes signal transforms into change-aware pipelines.
//
// Every [Filter] has a fixed sample rate, an enabled flag and a
// type-specific effect predicate. A filter without effect passes its input
// through unchanged. Parameter setters recompute derived state eagerly,
// drop the cached impulse response and emit one change event; a [Set]
// re-emits the events of its children.
//
// Concrete filters cover closed-form primitives ([Gain], [Invert],
// [Delay], [Dirac], [Zero]), recursive sections ([Biquad], [IIR]),
// convolution ([Convolver], [Sinc]) and the configuration surface of a
// [Correcting] filter.
//
// Filters are not safe for concurrent use.
package filter
