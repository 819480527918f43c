// Package event provides the listener registration used for host
// notifications and input signals.
package event

// Emitter fans a payload out to registered listeners in registration order.
// The zero value is ready to use. Emitter is not safe for concurrent use; all
// callers live on the UI event loop.
type Emitter[T any] struct {
	next      int
	listeners []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

// On registers fn and returns a function that removes it again. Calling the
// returned function more than once is harmless.
func (e *Emitter[T]) On(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	e.next++
	id := e.next
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})
	return func() { e.off(id) }
}

func (e *Emitter[T]) off(id int) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Emit delivers payload to every listener registered at the time of the call.
func (e *Emitter[T]) Emit(payload T) {
	if len(e.listeners) == 0 {
		return
	}
	snapshot := make([]listener[T], len(e.listeners))
	copy(snapshot, e.listeners)
	for _, l := range snapshot {
		l.fn(payload)
	}
}

// Len reports the number of registered listeners.
func (e *Emitter[T]) Len() int {
	return len(e.listeners)
}

// Clear drops every listener.
func (e *Emitter[T]) Clear() {
	e.listeners = nil
}
