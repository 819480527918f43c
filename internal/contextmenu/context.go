package contextmenu

import "github.com/atomicstack/gridmenu/internal/logging/events"

// Deps are the host capabilities a Context needs.
type Deps struct {
	Geometry  GeometryProvider
	Signals   Signals
	Region    Region
	Scheduler Scheduler
}

// Context is the context menu attached to one grid. It is created by Attach
// and lives until Destroy.
type Context struct {
	grid       Grid
	opts       Options
	registry   *Registry
	controller *Controller
	watcher    *Watcher
	dispatcher *Dispatcher
	destroyed  bool
}

// Attach creates the context menu for g. opts.CustomItems seed the registry.
func Attach(g Grid, opts Options, deps Deps) *Context {
	registry := NewRegistry(g)
	registry.AddAll(opts.CustomItems)
	ctrl := NewController(g, opts, registry, deps.Geometry, deps.Scheduler)
	ctx := &Context{
		grid:       g,
		opts:       opts,
		registry:   registry,
		controller: ctrl,
		watcher:    NewWatcher(ctrl, deps.Signals, deps.Region),
		dispatcher: NewDispatcher(g, ctrl, registry),
	}
	events.Menu.Items(registry.Len())
	return ctx
}

// Destroy releases input subscriptions and listeners and closes the menu
// quietly. Later triggers pass through to the host.
func (c *Context) Destroy() {
	if c == nil || c.destroyed {
		return
	}
	c.watcher.Stop()
	c.controller.RequestClose(true)
	c.controller.clearListeners()
	c.destroyed = true
}

// Destroyed reports whether Destroy ran.
func (c *Context) Destroyed() bool {
	return c == nil || c.destroyed
}

func (c *Context) Grid() Grid              { return c.grid }
func (c *Context) Options() Options        { return c.opts }
func (c *Context) Registry() *Registry     { return c.registry }
func (c *Context) Controller() *Controller { return c.controller }
func (c *Context) Dispatcher() *Dispatcher { return c.dispatcher }
func (c *Context) Watcher() *Watcher       { return c.watcher }
func (c *Context) State() State            { return c.controller.State() }

// AddMenuItem registers item for this grid.
func (c *Context) AddMenuItem(item *Item) {
	c.registry.Add(item)
}

// AddMenuItems registers items in order.
func (c *Context) AddMenuItems(items []*Item) {
	c.registry.AddAll(items)
}

// RemoveMenuItem unregisters item.
func (c *Context) RemoveMenuItem(item *Item) {
	c.registry.Remove(item)
}

// OnShow registers a show listener.
func (c *Context) OnShow(fn func(ShowEvent)) func() {
	return c.controller.OnShow(fn)
}

// OnHide registers a hide listener.
func (c *Context) OnHide(fn func(HideEvent)) func() {
	return c.controller.OnHide(fn)
}

// HandleContextMenu handles a secondary-click trigger on a cell. It returns
// true when the event should fall through to the host's default handling:
// a modifier is held, the cell is incomplete or the menu is not enabled for
// it.
func (c *Context) HandleContextMenu(t Trigger) bool {
	if c.Destroyed() {
		return true
	}
	if t.Modifiers != 0 || t.Column == nil || t.Row == nil {
		return true
	}
	if !c.controller.IsMenuEnabledForCell(t.Column, t.Row) {
		return true
	}
	c.controller.RequestOpen(t)
	return false
}

// Toggle handles the dedicated menu control inside a cell. Modifiers are
// ignored; the enablement gate still applies. It reports whether the menu
// opened.
func (c *Context) Toggle(t Trigger) bool {
	if c.Destroyed() {
		return false
	}
	t.Modifiers = 0
	return c.controller.RequestOpen(t)
}
