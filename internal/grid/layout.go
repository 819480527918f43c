package grid

import (
	"github.com/atomicstack/gridmenu/internal/contextmenu"
	"github.com/atomicstack/gridmenu/internal/format/table"
)

// ToggleGlyph is drawn in every cell of the menu-control column.
const ToggleGlyph = "⋯"

// Layout holds the on-screen placement of the visible columns. Lefts are
// relative to the grid origin.
type Layout struct {
	Columns []*Column
	Widths  []int
	Lefts   []int
	Width   int
}

// Layout measures the visible columns over the header and every row so
// column widths stay put while scrolling.
func (g *Grid) Layout() Layout {
	cols := g.table.VisibleColumns()
	rows := make([][]string, 0, len(g.table.Rows)+1)
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Name
	}
	rows = append(rows, header)
	for _, row := range g.table.Rows {
		cells := make([]string, len(cols))
		for i, col := range cols {
			if col.Toggle {
				cells[i] = ToggleGlyph
				continue
			}
			cells[i] = row.Value(col)
		}
		rows = append(rows, cells)
	}
	widths := table.Widths(rows)
	if len(widths) < len(cols) {
		widths = append(widths, make([]int, len(cols)-len(widths))...)
	}
	sep := table.CellWidth(table.Separator)
	lefts := make([]int, len(cols))
	x := 0
	for i := range cols {
		if i > 0 {
			x += sep
		}
		lefts[i] = x
		x += widths[i]
	}
	return Layout{Columns: cols, Widths: widths[:len(cols)], Lefts: lefts, Width: x}
}

// VisibleRows returns the rows inside the viewport.
func (g *Grid) VisibleRows() []*Row {
	rows := g.table.Rows
	if g.height <= 0 {
		return rows
	}
	end := g.offset + g.height
	if end > len(rows) {
		end = len(rows)
	}
	if g.offset >= end {
		return nil
	}
	return rows[g.offset:end]
}

// GridBounds implements contextmenu.GeometryProvider. The bounds cover the
// header line and the visible body rows.
func (g *Grid) GridBounds() contextmenu.Rect {
	return contextmenu.Rect{
		Top:    g.origin.Y,
		Left:   g.origin.X,
		Width:  g.Layout().Width,
		Height: headerRows + len(g.VisibleRows()),
	}
}

// CellBounds implements contextmenu.GeometryProvider. Cells scrolled out of
// the viewport have no bounds.
func (g *Grid) CellBounds(col contextmenu.Column, row contextmenu.Row) (contextmenu.Rect, bool) {
	c, ok := col.(*Column)
	if !ok {
		return contextmenu.Rect{}, false
	}
	r, ok := row.(*Row)
	if !ok {
		return contextmenu.Rect{}, false
	}
	idx := g.table.IndexOf(r)
	if idx < 0 || idx < g.offset || (g.height > 0 && idx >= g.offset+g.height) {
		return contextmenu.Rect{}, false
	}
	layout := g.Layout()
	for i, lc := range layout.Columns {
		if lc != c {
			continue
		}
		return contextmenu.Rect{
			Top:    g.origin.Y + headerRows + idx - g.offset,
			Left:   g.origin.X + layout.Lefts[i],
			Width:  layout.Widths[i],
			Height: 1,
		}, true
	}
	return contextmenu.Rect{}, false
}

// HitTest maps a screen point to the body cell under it. Points on the
// header, on separators or outside the grid miss.
func (g *Grid) HitTest(x, y int) (*Column, *Row, bool) {
	line := y - g.origin.Y - headerRows
	if line < 0 {
		return nil, nil, false
	}
	rows := g.VisibleRows()
	if line >= len(rows) {
		return nil, nil, false
	}
	layout := g.Layout()
	rel := x - g.origin.X
	for i, col := range layout.Columns {
		if rel >= layout.Lefts[i] && rel < layout.Lefts[i]+layout.Widths[i] {
			return col, rows[line], true
		}
	}
	return nil, nil, false
}
