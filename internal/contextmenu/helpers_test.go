package contextmenu

import "fmt"

type testGrid struct {
	focused []any
}

func (g *testGrid) GridID() string { return "test" }

func (g *testGrid) FocusRow(entity any) { g.focused = append(g.focused, entity) }

type testColumn struct {
	name     string
	disabled bool
}

func (c *testColumn) ContextMenuDisabled() bool { return c.disabled }
func (c *testColumn) String() string            { return c.name }

type testRow struct {
	id       int
	disabled bool
}

func (r *testRow) ContextMenuDisabled() bool { return r.disabled }
func (r *testRow) Entity() any               { return r.id }
func (r *testRow) String() string            { return fmt.Sprintf("row %d", r.id) }

type testGeometry struct {
	grid  Rect
	cells map[Column]Rect
}

func (g testGeometry) GridBounds() Rect { return g.grid }

func (g testGeometry) CellBounds(col Column, row Row) (Rect, bool) {
	r, ok := g.cells[col]
	return r, ok
}

// recorder captures notifications in order as "show:<col>/<row>" and
// "hide:<col>/<row>".
type recorder struct {
	log []string
}

func (r *recorder) attach(ctrl *Controller) {
	ctrl.OnShow(func(evt ShowEvent) {
		r.log = append(r.log, fmt.Sprintf("show:%s/%s", describe(evt.Column), describe(evt.Row)))
	})
	ctrl.OnHide(func(evt HideEvent) {
		r.log = append(r.log, fmt.Sprintf("hide:%s/%s", describe(evt.Column), describe(evt.Row)))
	})
}

type fixture struct {
	grid   *testGrid
	queue  *Queue
	bus    *Bus
	region Rect
	ctx    *Context
	rec    *recorder
	colA   *testColumn
	colB   *testColumn
	row1   *testRow
	row2   *testRow
}

func newFixture(opts Options, items ...*Item) *fixture {
	f := &fixture{
		grid:  &testGrid{},
		queue: &Queue{},
		bus:   NewBus(),
		rec:   &recorder{},
		colA:  &testColumn{name: "a"},
		colB:  &testColumn{name: "b"},
		row1:  &testRow{id: 1},
		row2:  &testRow{id: 2},
	}
	f.region = Rect{Top: 20, Left: 20, Width: 10, Height: 5}
	if len(items) > 0 {
		opts.CustomItems = items
	}
	f.ctx = Attach(f.grid, opts, Deps{
		Geometry: testGeometry{
			grid: Rect{Top: 100, Left: 50, Width: 200, Height: 100},
			cells: map[Column]Rect{
				f.colA: {Top: 130, Left: 80, Width: 10, Height: 1},
				f.colB: {Top: 130, Left: 95, Width: 10, Height: 1},
			},
		},
		Signals:   f.bus,
		Region:    RegionFunc(func(x, y int) bool { return f.region.Contains(x, y) }),
		Scheduler: f.queue,
	})
	f.rec.attach(f.ctx.Controller())
	return f
}

func (f *fixture) open(col *testColumn, row *testRow) bool {
	return f.ctx.Controller().RequestOpen(Trigger{Column: col, Row: row})
}

func visibleItem(title string) *Item {
	return &Item{Title: title, Action: func(Grid, Column, Row) {}}
}
