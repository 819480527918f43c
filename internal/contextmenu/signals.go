package contextmenu

import "github.com/atomicstack/gridmenu/internal/event"

// PointerEvent is a pointer-down or touch-start at screen coordinates.
type PointerEvent struct {
	X int
	Y int
}

// KeyEvent is a key-down. Key uses Bubble Tea's key names ("esc", "enter").
type KeyEvent struct {
	Key string
}

// Signals is the source of window and document level input the Watcher
// listens to. Each On method returns a func that removes the listener.
type Signals interface {
	OnBlur(fn func()) func()
	OnPointerDown(fn func(PointerEvent)) func()
	OnKeyDown(fn func(KeyEvent)) func()
}

// Bus is the default Signals implementation. The host feeds it from its
// input loop.
type Bus struct {
	blur    event.Emitter[struct{}]
	pointer event.Emitter[PointerEvent]
	key     event.Emitter[KeyEvent]
}

// NewBus returns an empty signal bus.
func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) OnBlur(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return b.blur.On(func(struct{}) { fn() })
}

func (b *Bus) OnPointerDown(fn func(PointerEvent)) func() {
	return b.pointer.On(fn)
}

func (b *Bus) OnKeyDown(fn func(KeyEvent)) func() {
	return b.key.On(fn)
}

// Blur raises a window-level focus loss.
func (b *Bus) Blur() {
	b.blur.Emit(struct{}{})
}

// PointerDown raises a pointer-down at (x, y).
func (b *Bus) PointerDown(x, y int) {
	b.pointer.Emit(PointerEvent{X: x, Y: y})
}

// KeyDown raises a key-down.
func (b *Bus) KeyDown(key string) {
	b.key.Emit(KeyEvent{Key: key})
}

// Listeners reports the total number of registered listeners.
func (b *Bus) Listeners() int {
	return b.blur.Len() + b.pointer.Len() + b.key.Len()
}
