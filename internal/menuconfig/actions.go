package menuconfig

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
	"github.com/atomicstack/gridmenu/internal/grid"
)

// Builtin action names.
const (
	ActionCopyCell    = "copy-cell"
	ActionCopyRow     = "copy-row"
	ActionDeleteRow   = "delete-row"
	ActionToggleMark  = "toggle-mark"
	ActionHideColumn  = "hide-column"
	ActionShowColumns = "show-columns"
)

var errLastColumn = errors.New("cannot hide the last visible column")

// Reporter receives the outcome of an action.
type Reporter interface {
	Report(info string, err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(info string, err error)

func (f ReporterFunc) Report(info string, err error) { f(info, err) }

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type cellFunc func(g *grid.Grid, col *grid.Column, row *grid.Row) (string, error)

type builtin struct {
	run cellFunc
	// available gates the item regardless of configured expressions.
	available func(g *grid.Grid, col *grid.Column, row *grid.Row) bool
}

var builtins = map[string]builtin{
	ActionCopyCell: {
		run: func(g *grid.Grid, col *grid.Column, row *grid.Row) (string, error) {
			text := g.CellText(col, row)
			if err := writeClipboard(text); err != nil {
				return "", fmt.Errorf("copy cell: %w", err)
			}
			return fmt.Sprintf("copied %q", ansi.Truncate(text, 32, "…")), nil
		},
		available: dataColumn,
	},
	ActionCopyRow: {
		run: func(g *grid.Grid, col *grid.Column, row *grid.Row) (string, error) {
			if err := writeClipboard(g.RowText(row)); err != nil {
				return "", fmt.Errorf("copy row: %w", err)
			}
			return fmt.Sprintf("copied %s", row), nil
		},
	},
	ActionDeleteRow: {
		run: func(g *grid.Grid, col *grid.Column, row *grid.Row) (string, error) {
			if !g.DeleteRow(row) {
				return "", fmt.Errorf("%s is no longer in the table", row)
			}
			return fmt.Sprintf("deleted %s", row), nil
		},
	},
	ActionToggleMark: {
		run: func(g *grid.Grid, col *grid.Column, row *grid.Row) (string, error) {
			if g.ToggleMark(row) {
				return fmt.Sprintf("marked %s", row), nil
			}
			return fmt.Sprintf("unmarked %s", row), nil
		},
	},
	ActionHideColumn: {
		run: func(g *grid.Grid, col *grid.Column, row *grid.Row) (string, error) {
			if !g.HideColumn(col) {
				return "", errLastColumn
			}
			return fmt.Sprintf("hid column %s", col.Name), nil
		},
		available: dataColumn,
	},
	ActionShowColumns: {
		run: func(g *grid.Grid, col *grid.Column, row *grid.Row) (string, error) {
			n := g.ShowAllColumns()
			return fmt.Sprintf("showed %d hidden columns", n), nil
		},
		available: func(g *grid.Grid, _ *grid.Column, _ *grid.Row) bool {
			return g.Table().HiddenCount() > 0
		},
	},
}

func dataColumn(_ *grid.Grid, col *grid.Column, _ *grid.Row) bool {
	return col != nil && !col.Toggle
}

// Actions lists the builtin action names.
func Actions() []string {
	return []string{ActionCopyCell, ActionCopyRow, ActionDeleteRow, ActionToggleMark, ActionHideColumn, ActionShowColumns}
}

func (b builtin) action(rep Reporter) contextmenu.Action {
	return func(g contextmenu.Grid, col contextmenu.Column, row contextmenu.Row) {
		gr, ok := g.(*grid.Grid)
		c, _ := col.(*grid.Column)
		r, _ := row.(*grid.Row)
		if !ok || c == nil || r == nil {
			return
		}
		info, err := b.run(gr, c, r)
		if rep != nil {
			rep.Report(info, err)
		}
	}
}

func (b builtin) gate(p contextmenu.Predicate) contextmenu.Predicate {
	if b.available == nil {
		return p
	}
	return func(g contextmenu.Grid, col contextmenu.Column, row contextmenu.Row) bool {
		gr, ok := g.(*grid.Grid)
		c, _ := col.(*grid.Column)
		r, _ := row.(*grid.Row)
		if !ok || !b.available(gr, c, r) {
			return false
		}
		return p == nil || p(g, col, row)
	}
}
