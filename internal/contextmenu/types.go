package contextmenu

import "fmt"

// Grid is the host data grid a context menu is attached to.
type Grid interface {
	GridID() string
}

// RowFocuser is implemented by grids that can move input focus to the
// entity behind a row.
type RowFocuser interface {
	FocusRow(entity any)
}

// Column identifies a grid column. Implementations must be comparable;
// pointer receivers are the norm.
type Column interface {
	// ContextMenuDisabled reports an explicit per-column opt-out.
	ContextMenuDisabled() bool
}

// Row identifies a grid row. Implementations must be comparable.
type Row interface {
	// ContextMenuDisabled reports an explicit per-row opt-out.
	ContextMenuDisabled() bool
	// Entity returns the data object rendered by the row.
	Entity() any
}

// Predicate decides per cell whether an item is shown or active.
type Predicate func(g Grid, col Column, row Row) bool

// Action runs an item against the cell the menu is open for.
type Action func(g Grid, col Column, row Row)

// Always is the default Shown and Active predicate.
func Always(Grid, Column, Row) bool { return true }

// Item describes one menu entry. Items are compared by pointer identity.
type Item struct {
	Title     string
	GroupName string
	Action    Action
	Shown     Predicate
	Active    Predicate
	LeaveOpen bool
}

// Options are the grid-level settings of the context menu.
type Options struct {
	// EnableContextMenu defaults to true when nil.
	EnableContextMenu *bool
	// AlignContextMenuToGrid defaults to true when nil.
	AlignContextMenuToGrid *bool
	// CustomItems seed the registry once at attach time.
	CustomItems []*Item
}

// Enabled reports the effective grid-level enable flag.
func (o Options) Enabled() bool {
	return o.EnableContextMenu == nil || *o.EnableContextMenu
}

// AlignToGrid reports whether the menu is kept inside the grid bounds.
func (o Options) AlignToGrid() bool {
	return o.AlignContextMenuToGrid == nil || *o.AlignContextMenuToGrid
}

// Bool returns a pointer to v, for option literals.
func Bool(v bool) *bool {
	return &v
}

// Modifiers is the set of modifier keys held during a trigger.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Trigger carries a request to open the menu for a cell.
type Trigger struct {
	Column    Column
	Row       Row
	Cell      Rect
	Modifiers Modifiers
}

func describe(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
