package events

import "github.com/atomicstack/gridmenu/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type SourceTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
	Source = SourceTracer{}
)

func (UITracer) GridCursor(row, col int) {
	logging.Trace("grid.cursor", map[string]interface{}{"row": row, "col": col})
}

func (UITracer) MenuCursor(cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Trigger(kind string, x, y int, passThrough bool) {
	logging.Trace("ui.trigger", map[string]interface{}{
		"kind":        kind,
		"x":           x,
		"y":           y,
		"passThrough": passThrough,
	})
}

func (ActionTracer) Invoke(title string) {
	logging.Trace("action.invoke", map[string]interface{}{"title": title})
}

func (ActionTracer) Skip(title, reason string) {
	logging.Trace("action.skip", map[string]interface{}{"title": title, "reason": reason})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (SourceTracer) Load(kind, path string, rows int) {
	logging.Trace("source.load", map[string]interface{}{"kind": kind, "path": path, "rows": rows})
}

func (SourceTracer) Reload(path, fingerprint string) {
	logging.Trace("source.reload", map[string]interface{}{"path": path, "fingerprint": fingerprint})
}

func (SourceTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("source.error", map[string]interface{}{"path": path, "error": err.Error()})
}
