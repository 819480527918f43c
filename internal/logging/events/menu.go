package events

import "github.com/atomicstack/gridmenu/internal/logging"

type MenuTracer struct{}

type DismissTracer struct{}

var (
	Menu    = MenuTracer{}
	Dismiss = DismissTracer{}
)

func (MenuTracer) Open(column, row string, top, left int) {
	logging.Trace("menu.open", map[string]interface{}{
		"column": column,
		"row":    row,
		"top":    top,
		"left":   left,
	})
}

func (MenuTracer) Skip(column, row, reason string) {
	logging.Trace("menu.skip", map[string]interface{}{"column": column, "row": row, "reason": reason})
}

func (MenuTracer) Show(column, row string) {
	logging.Trace("menu.show", map[string]interface{}{"column": column, "row": row})
}

func (MenuTracer) Hide(column, row string, quiet bool) {
	logging.Trace("menu.hide", map[string]interface{}{"column": column, "row": row, "quiet": quiet})
}

func (MenuTracer) ShowCancelled(column, row string) {
	logging.Trace("menu.show-cancelled", map[string]interface{}{"column": column, "row": row})
}

func (MenuTracer) Items(count int) {
	logging.Trace("menu.items", map[string]interface{}{"count": count})
}

func (DismissTracer) Blur() {
	logging.Trace("dismiss.blur", nil)
}

func (DismissTracer) Pointer(x, y int) {
	logging.Trace("dismiss.pointer", map[string]interface{}{"x": x, "y": y})
}

func (DismissTracer) Scroll(delta int) {
	logging.Trace("dismiss.scroll", map[string]interface{}{"delta": delta})
}

func (DismissTracer) Key(key string) {
	logging.Trace("dismiss.key", map[string]interface{}{"key": key})
}
