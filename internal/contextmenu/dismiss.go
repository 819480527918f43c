package contextmenu

import "github.com/atomicstack/gridmenu/internal/logging/events"

const escapeKey = "esc"

// Region is the screen area occupied by the rendered menu.
type Region interface {
	Contains(x, y int) bool
}

// RegionFunc adapts a function to Region.
type RegionFunc func(x, y int) bool

func (f RegionFunc) Contains(x, y int) bool { return f(x, y) }

// Watcher closes the menu on blur, on pointer-down outside the menu region
// and on the escape key.
type Watcher struct {
	ctrl   *Controller
	region Region
	offs   []func()
}

// NewWatcher subscribes to signals until Stop is called. A nil region means
// every pointer-down is outside the menu.
func NewWatcher(ctrl *Controller, signals Signals, region Region) *Watcher {
	w := &Watcher{ctrl: ctrl, region: region}
	if signals == nil {
		return w
	}
	w.offs = append(w.offs,
		signals.OnBlur(w.onBlur),
		signals.OnPointerDown(w.onPointerDown),
		signals.OnKeyDown(w.onKeyDown),
	)
	return w
}

// Stop releases every subscription. It is safe to call more than once.
func (w *Watcher) Stop() {
	for _, off := range w.offs {
		off()
	}
	w.offs = nil
}

// Active reports whether the watcher still holds subscriptions.
func (w *Watcher) Active() bool {
	return len(w.offs) > 0
}

func (w *Watcher) onBlur() {
	if !w.ctrl.IsOpen() {
		return
	}
	events.Dismiss.Blur()
	w.ctrl.RequestClose(false)
}

func (w *Watcher) onPointerDown(evt PointerEvent) {
	if !w.ctrl.IsOpen() {
		return
	}
	if w.region != nil && w.region.Contains(evt.X, evt.Y) {
		return
	}
	events.Dismiss.Pointer(evt.X, evt.Y)
	w.ctrl.RequestClose(false)
}

func (w *Watcher) onKeyDown(evt KeyEvent) {
	if evt.Key != escapeKey || !w.ctrl.IsOpen() {
		return
	}
	events.Dismiss.Key(evt.Key)
	w.ctrl.RequestClose(false)
}
