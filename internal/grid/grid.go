package grid

import (
	"strings"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
)

const headerRows = 1

// Grid is the host data grid: a table plus cursor, viewport and screen
// origin. It implements contextmenu.Grid, contextmenu.RowFocuser and
// contextmenu.GeometryProvider.
type Grid struct {
	id     string
	table  *Table
	origin Point
	height int
	offset int

	cursorRow int
	cursorCol int
}

// Point is a screen coordinate.
type Point struct {
	X int
	Y int
}

// New returns a grid over t drawn at origin.
func New(id string, t *Table, origin Point) *Grid {
	if t == nil {
		t = &Table{}
	}
	return &Grid{id: id, table: t, origin: origin}
}

// GridID implements contextmenu.Grid.
func (g *Grid) GridID() string { return g.id }

func (g *Grid) Table() *Table   { return g.table }
func (g *Grid) Origin() Point   { return g.origin }
func (g *Grid) Offset() int     { return g.offset }
func (g *Grid) BodyHeight() int { return g.height }

// SetTable swaps the data, keeping the cursor in range.
func (g *Grid) SetTable(t *Table) {
	if t == nil {
		t = &Table{}
	}
	g.table = t
	g.clampCursor()
}

// SetOrigin moves the grid on screen.
func (g *Grid) SetOrigin(p Point) {
	g.origin = p
}

// SetBodyHeight sets how many data rows fit on screen. Zero or less shows
// every row.
func (g *Grid) SetBodyHeight(rows int) {
	g.height = rows
	g.ensureCursorVisible()
}

// Cursor returns the focused row and column positions. The column position
// indexes VisibleColumns.
func (g *Grid) Cursor() (int, int) {
	return g.cursorRow, g.cursorCol
}

// CursorCell returns the focused cell.
func (g *Grid) CursorCell() (*Column, *Row, bool) {
	cols := g.table.VisibleColumns()
	if len(g.table.Rows) == 0 || len(cols) == 0 {
		return nil, nil, false
	}
	return cols[g.cursorCol], g.table.Rows[g.cursorRow], true
}

// MoveCursor moves the cursor by the given deltas and reports whether it
// moved.
func (g *Grid) MoveCursor(dRow, dCol int) bool {
	beforeRow, beforeCol := g.cursorRow, g.cursorCol
	g.cursorRow += dRow
	g.cursorCol += dCol
	g.clampCursor()
	return beforeRow != g.cursorRow || beforeCol != g.cursorCol
}

// SetCursor places the cursor on the given cell.
func (g *Grid) SetCursor(col *Column, row *Row) {
	if idx := g.table.IndexOf(row); idx >= 0 {
		g.cursorRow = idx
	}
	for i, c := range g.table.VisibleColumns() {
		if c == col {
			g.cursorCol = i
			break
		}
	}
	g.clampCursor()
}

// FocusRow implements contextmenu.RowFocuser.
func (g *Grid) FocusRow(entity any) {
	row, ok := entity.(*Row)
	if !ok {
		return
	}
	if idx := g.table.IndexOf(row); idx >= 0 {
		g.cursorRow = idx
		g.ensureCursorVisible()
	}
}

// DeleteRow removes row from the table.
func (g *Grid) DeleteRow(row *Row) bool {
	idx := g.table.IndexOf(row)
	if idx < 0 {
		return false
	}
	g.table.Rows = append(g.table.Rows[:idx], g.table.Rows[idx+1:]...)
	g.clampCursor()
	return true
}

// ToggleMark flips the marked flag of row and returns the new value.
func (g *Grid) ToggleMark(row *Row) bool {
	if row == nil {
		return false
	}
	row.Marked = !row.Marked
	return row.Marked
}

// HideColumn hides col unless it is the last visible data column.
func (g *Grid) HideColumn(col *Column) bool {
	if col == nil || col.Hidden || col.Toggle {
		return false
	}
	visible := 0
	for _, c := range g.table.VisibleColumns() {
		if !c.Toggle {
			visible++
		}
	}
	if visible <= 1 {
		return false
	}
	col.Hidden = true
	g.clampCursor()
	return true
}

// ShowAllColumns unhides every column and returns how many changed.
func (g *Grid) ShowAllColumns() int {
	n := 0
	for _, col := range g.table.Columns {
		if col.Hidden {
			col.Hidden = false
			n++
		}
	}
	return n
}

// CellText returns the value of the cell.
func (g *Grid) CellText(col *Column, row *Row) string {
	if row == nil {
		return ""
	}
	return row.Value(col)
}

// RowText returns the visible data values of row joined by tabs.
func (g *Grid) RowText(row *Row) string {
	if row == nil {
		return ""
	}
	values := make([]string, 0, len(g.table.Columns))
	for _, col := range g.table.VisibleColumns() {
		if col.Toggle {
			continue
		}
		values = append(values, row.Value(col))
	}
	return strings.Join(values, "\t")
}

func (g *Grid) clampCursor() {
	rows := len(g.table.Rows)
	cols := len(g.table.VisibleColumns())
	if g.cursorRow >= rows {
		g.cursorRow = rows - 1
	}
	if g.cursorRow < 0 {
		g.cursorRow = 0
	}
	if g.cursorCol >= cols {
		g.cursorCol = cols - 1
	}
	if g.cursorCol < 0 {
		g.cursorCol = 0
	}
	g.ensureCursorVisible()
}

func (g *Grid) ensureCursorVisible() {
	rows := len(g.table.Rows)
	if g.height <= 0 || rows == 0 {
		g.offset = 0
		return
	}
	maxOffset := rows - g.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if g.offset > maxOffset {
		g.offset = maxOffset
	}
	if g.cursorRow < g.offset {
		g.offset = g.cursorRow
	}
	if g.cursorRow > g.offset+g.height-1 {
		g.offset = g.cursorRow - g.height + 1
	}
	if g.offset < 0 {
		g.offset = 0
	}
}

var _ contextmenu.Grid = (*Grid)(nil)
var _ contextmenu.RowFocuser = (*Grid)(nil)
var _ contextmenu.GeometryProvider = (*Grid)(nil)
