package core

// Lazy is a compute-or-fetch cell with single-assignment semantics.
//
// The first call to Get runs the compute function and stores its result;
// every later call returns the stored value. Lazy performs no locking: the
// first Get must not race with any other Get on the same cell. Warm the cell
// before sharing the owner across goroutines.
type Lazy[T any] struct {
	compute func() T
	value   T
	done    bool
}

// NewLazy returns a cell that computes its value with fn on first access.
func NewLazy[T any](fn func() T) *Lazy[T] {
	return &Lazy[T]{compute: fn}
}

// Ready returns a cell that already holds v.
func Ready[T any](v T) *Lazy[T] {
	return &Lazy[T]{value: v, done: true}
}

// Get returns the cached value, computing it on first use.
func (l *Lazy[T]) Get() T {
	if !l.done {
		l.value = l.compute()
		l.done = true
		l.compute = nil
	}
	return l.value
}

// Done reports whether the value has been computed.
func (l *Lazy[T]) Done() bool {
	return l.done
}
