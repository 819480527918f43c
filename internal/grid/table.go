package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/gridmenu/internal/format/table"
)

// Column is one grid column.
type Column struct {
	Name  string
	Align table.Alignment
	// EnableContextMenu is the per-column override; nil leaves it enabled.
	EnableContextMenu *bool
	// Toggle marks the dedicated menu-control column.
	Toggle bool
	Hidden bool
	index  int
}

// ContextMenuDisabled implements contextmenu.Column.
func (c *Column) ContextMenuDisabled() bool {
	return c.EnableContextMenu != nil && !*c.EnableContextMenu
}

func (c *Column) String() string { return c.Name }

// Index is the column's position in its table's value slices.
func (c *Column) Index() int { return c.index }

// Row is one grid row.
type Row struct {
	ID     int
	Values []string
	// EnableContextMenu is the per-row override; nil leaves it enabled.
	EnableContextMenu *bool
	Marked            bool
}

// ContextMenuDisabled implements contextmenu.Row.
func (r *Row) ContextMenuDisabled() bool {
	return r.EnableContextMenu != nil && !*r.EnableContextMenu
}

// Entity implements contextmenu.Row. The row itself is the entity.
func (r *Row) Entity() any { return r }

func (r *Row) String() string { return "row " + strconv.Itoa(r.ID) }

// Value returns the cell value for col or "".
func (r *Row) Value(col *Column) string {
	if col == nil || col.index < 0 || col.index >= len(r.Values) {
		return ""
	}
	return r.Values[col.index]
}

// Table is the data shown by a Grid.
type Table struct {
	Name    string
	Columns []*Column
	Rows    []*Row
}

// NewTable builds a table from a header and records. Numeric columns are
// right aligned. Missing header names become "column N".
func NewTable(name string, header []string, records [][]string) *Table {
	width := len(header)
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}
	t := &Table{Name: name}
	for i := 0; i < width; i++ {
		colName := ""
		if i < len(header) {
			colName = strings.TrimSpace(header[i])
		}
		if colName == "" {
			colName = fmt.Sprintf("column %d", i+1)
		}
		t.Columns = append(t.Columns, &Column{Name: colName, index: i})
	}
	for i, rec := range records {
		values := make([]string, width)
		copy(values, rec)
		t.Rows = append(t.Rows, &Row{ID: i + 1, Values: values})
	}
	for _, col := range t.Columns {
		if numericColumn(t.Rows, col.index) {
			col.Align = table.AlignRight
		}
	}
	return t
}

// AddToggleColumn appends the dedicated menu-control column.
func (t *Table) AddToggleColumn() *Column {
	col := &Column{Name: "", Toggle: true, index: -1}
	t.Columns = append(t.Columns, col)
	return col
}

// Column returns the first column named name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, col := range t.Columns {
		if col.Name == name && !col.Toggle {
			return col, true
		}
	}
	return nil, false
}

// IndexOf returns the row position or -1.
func (t *Table) IndexOf(row *Row) int {
	for i, r := range t.Rows {
		if r == row {
			return i
		}
	}
	return -1
}

// VisibleColumns returns the columns that are not hidden, in order.
func (t *Table) VisibleColumns() []*Column {
	cols := make([]*Column, 0, len(t.Columns))
	for _, col := range t.Columns {
		if !col.Hidden {
			cols = append(cols, col)
		}
	}
	return cols
}

// HiddenCount reports how many data columns are hidden.
func (t *Table) HiddenCount() int {
	n := 0
	for _, col := range t.Columns {
		if col.Hidden && !col.Toggle {
			n++
		}
	}
	return n
}

func numericColumn(rows []*Row, idx int) bool {
	seen := false
	for _, row := range rows {
		v := strings.TrimSpace(row.Values[idx])
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}
