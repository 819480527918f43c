package contextmenu

import (
	"github.com/atomicstack/gridmenu/internal/event"
	"github.com/atomicstack/gridmenu/internal/logging/events"
)

// ShowEvent is delivered once the menu has been opened for a cell and the
// position write has settled.
type ShowEvent struct {
	Grid     Grid
	Row      Row
	Column   Column
	Position Position
}

// HideEvent is delivered when an announced menu closes. Column and Row name
// the cell the menu was open for.
type HideEvent struct {
	Grid   Grid
	Row    Row
	Column Column
}

// State is the menu state of one grid. Open iff both refs are non-nil.
type State struct {
	Column   Column
	Row      Row
	Position Position
}

// IsOpen reports whether the menu is open.
func (s State) IsOpen() bool {
	return s.Column != nil && s.Row != nil
}

// Controller is the single-flight visibility state machine for one grid.
type Controller struct {
	grid     Grid
	opts     Options
	registry *Registry
	geometry GeometryProvider
	sched    Scheduler

	state State
	// generation invalidates a deferred show once the state moves on.
	generation uint64
	announced  bool

	shows event.Emitter[ShowEvent]
	hides event.Emitter[HideEvent]
}

// NewController wires a controller over registry. A nil scheduler runs the
// show notification inline.
func NewController(g Grid, opts Options, registry *Registry, geometry GeometryProvider, sched Scheduler) *Controller {
	if sched == nil {
		sched = SchedulerFunc(func(fn func()) { fn() })
	}
	return &Controller{
		grid:     g,
		opts:     opts,
		registry: registry,
		geometry: geometry,
		sched:    sched,
	}
}

// State returns a copy of the current menu state.
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports whether the menu is open.
func (c *Controller) IsOpen() bool {
	return c.state.IsOpen()
}

// Announced reports whether the show notification for the current open
// state has been delivered.
func (c *Controller) Announced() bool {
	return c.state.IsOpen() && c.announced
}

// OnShow registers a show listener and returns its removal func.
func (c *Controller) OnShow(fn func(ShowEvent)) func() {
	return c.shows.On(fn)
}

// OnHide registers a hide listener and returns its removal func.
func (c *Controller) OnHide(fn func(HideEvent)) func() {
	return c.hides.On(fn)
}

// IsMenuEnabledForCell applies the enablement gate: grid flag, column
// override, row override and at least one shown item.
func (c *Controller) IsMenuEnabledForCell(col Column, row Row) bool {
	if col == nil || row == nil {
		return false
	}
	return c.opts.Enabled() &&
		!col.ContextMenuDisabled() &&
		!row.ContextMenuDisabled() &&
		c.registry.HasVisibleItemsFor(col, row)
}

// RequestOpen opens the menu for the trigger cell. It returns false when the
// request was ignored: same cell already open, or the gate refused it.
func (c *Controller) RequestOpen(t Trigger) bool {
	col, row := t.Column, t.Row
	colName, rowName := describe(col), describe(row)
	if col == nil || row == nil {
		events.Menu.Skip(colName, rowName, "missing cell")
		return false
	}
	if c.state.IsOpen() && c.state.Column == col && c.state.Row == row {
		events.Menu.Skip(colName, rowName, "already open")
		return false
	}
	if !c.IsMenuEnabledForCell(col, row) {
		events.Menu.Skip(colName, rowName, "disabled")
		return false
	}

	if c.state.IsOpen() {
		c.close(false)
	}

	if f, ok := c.grid.(RowFocuser); ok {
		f.FocusRow(row.Entity())
	}

	cell := t.Cell
	var grid Rect
	if c.geometry != nil {
		grid = c.geometry.GridBounds()
		if cell.Empty() {
			if r, ok := c.geometry.CellBounds(col, row); ok {
				cell = r
			}
		}
	}
	pos := Place(grid, cell)

	// the position lands before the refs so readers never see an open state
	// with a stale position
	c.state.Position = pos
	c.state.Column = col
	c.state.Row = row
	c.announced = false
	c.generation++
	gen := c.generation
	events.Menu.Open(colName, rowName, pos.Top, pos.Left)

	c.sched.Defer(func() { c.announce(gen) })
	return true
}

// RequestClose closes the menu. Quiet closes suppress the hide notification.
// It returns false when the menu was already closed.
func (c *Controller) RequestClose(quiet bool) bool {
	if !c.state.IsOpen() {
		return false
	}
	c.close(quiet)
	return true
}

func (c *Controller) close(quiet bool) {
	prev := c.state
	announced := c.announced
	c.state = State{}
	c.announced = false
	c.generation++

	colName, rowName := describe(prev.Column), describe(prev.Row)
	events.Menu.Hide(colName, rowName, quiet)
	if !announced {
		events.Menu.ShowCancelled(colName, rowName)
		return
	}
	if quiet {
		return
	}
	c.hides.Emit(HideEvent{Grid: c.grid, Row: prev.Row, Column: prev.Column})
}

func (c *Controller) announce(gen uint64) {
	if gen != c.generation || !c.state.IsOpen() {
		return
	}
	c.announced = true
	events.Menu.Show(describe(c.state.Column), describe(c.state.Row))
	c.shows.Emit(ShowEvent{
		Grid:     c.grid,
		Row:      c.state.Row,
		Column:   c.state.Column,
		Position: c.state.Position,
	})
}

func (c *Controller) clearListeners() {
	c.shows.Clear()
	c.hides.Clear()
}
