package contextmenu

import "github.com/atomicstack/gridmenu/internal/logging/events"

// Dispatcher evaluates item predicates against the open cell and runs item
// actions.
type Dispatcher struct {
	grid     Grid
	ctrl     *Controller
	registry *Registry
}

// NewDispatcher returns a dispatcher over ctrl and registry.
func NewDispatcher(g Grid, ctrl *Controller, registry *Registry) *Dispatcher {
	return &Dispatcher{grid: g, ctrl: ctrl, registry: registry}
}

// Invoke runs item's action for the cell and closes the menu afterwards
// unless the item is LeaveOpen. It returns whether the action ran.
func (d *Dispatcher) Invoke(item *Item, col Column, row Row) bool {
	if item == nil {
		return false
	}
	if col == nil || row == nil {
		events.Action.Skip(item.Title, "menu not open")
		return false
	}
	if item.Action == nil {
		events.Action.Skip(item.Title, "no action")
		return false
	}
	events.Action.Invoke(item.Title)
	item.Action(d.grid, col, row)
	if !item.LeaveOpen {
		d.ctrl.RequestClose(false)
	}
	return true
}

// InvokeOpen runs item against the currently open cell.
func (d *Dispatcher) InvokeOpen(item *Item) bool {
	state := d.ctrl.State()
	return d.Invoke(item, state.Column, state.Row)
}

// IsItemShown evaluates item.Shown for the open cell. Nothing open means
// not shown.
func (d *Dispatcher) IsItemShown(item *Item) bool {
	state := d.ctrl.State()
	if item == nil || !state.IsOpen() {
		return false
	}
	if item.Shown == nil {
		return true
	}
	return item.Shown(d.grid, state.Column, state.Row)
}

// IsItemActive evaluates item.Active for the open cell. Nothing open, or no
// Active predicate, means inactive.
func (d *Dispatcher) IsItemActive(item *Item) bool {
	state := d.ctrl.State()
	if item == nil || !state.IsOpen() || item.Active == nil {
		return false
	}
	return item.Active(d.grid, state.Column, state.Row)
}

// VisibleItems returns the registered items shown for the open cell, in
// display order.
func (d *Dispatcher) VisibleItems() []*Item {
	if !d.ctrl.IsOpen() {
		return nil
	}
	items := d.registry.List()
	visible := make([]*Item, 0, len(items))
	for _, item := range items {
		if d.IsItemShown(item) {
			visible = append(visible, item)
		}
	}
	return visible
}
