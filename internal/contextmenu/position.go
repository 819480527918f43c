package contextmenu

const (
	menuOffsetTop  = 2
	menuOffsetLeft = -10
)

// Rect is a bounding box in terminal cells. Top and Left are zero-based.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside r. x is the column,
// y the line.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// Position is the menu's top-left corner relative to the grid.
type Position struct {
	Top  int
	Left int
}

// Size is a width and height in terminal cells.
type Size struct {
	Width  int
	Height int
}

// GeometryProvider reads layout for the grid and its cells. Both rectangles
// must be in the same coordinate space.
type GeometryProvider interface {
	GridBounds() Rect
	CellBounds(col Column, row Row) (Rect, bool)
}

// Place maps a cell rectangle to the menu position relative to the grid:
// two lines below the cell top and ten columns left of the cell's left edge.
func Place(grid, cell Rect) Position {
	return Position{
		Top:  cell.Top - grid.Top + menuOffsetTop,
		Left: cell.Left - grid.Left + menuOffsetLeft,
	}
}

// Flip moves a menu placed by Place above its cell when it would run past
// the bottom of bounds and the rows above the cell can hold it.
func Flip(pos Position, menu, bounds Size) Position {
	if bounds.Height <= 0 || pos.Top+menu.Height <= bounds.Height {
		return pos
	}
	above := pos.Top - menuOffsetTop - menu.Height
	if above < 0 {
		return pos
	}
	pos.Top = above
	return pos
}

// Clamp keeps a menu of the given size inside bounds, preferring to keep the
// top-left corner visible when the menu is larger than the bounds.
func Clamp(pos Position, menu, bounds Size) Position {
	if maxLeft := bounds.Width - menu.Width; pos.Left > maxLeft {
		pos.Left = maxLeft
	}
	if maxTop := bounds.Height - menu.Height; pos.Top > maxTop {
		pos.Top = maxTop
	}
	if pos.Left < 0 {
		pos.Left = 0
	}
	if pos.Top < 0 {
		pos.Top = 0
	}
	return pos
}
