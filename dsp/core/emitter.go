package core

// Emitter is an explicit change-notification registry.
//
// Subscribers are invoked synchronously, in subscription order, each time
// Emit is called. Like the rest of the library it is not synchronized.
type Emitter struct {
	next      int
	listeners []listener
}

type listener struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (e *Emitter) Subscribe(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	id := e.next
	e.next++
	e.listeners = append(e.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit notifies all current subscribers once.
func (e *Emitter) Emit() {
	// Snapshot so that listeners may unsubscribe while being notified.
	ls := append([]listener(nil), e.listeners...)
	for _, l := range ls {
		l.fn()
	}
}

// Len returns the number of subscribers.
func (e *Emitter) Len() int {
	return len(e.listeners)
}
