package grid

import (
	"testing"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
	"github.com/atomicstack/gridmenu/internal/format/table"
)

func newTestGrid() *Grid {
	t := NewTable("people", []string{"name", "age"}, [][]string{
		{"ada", "36"},
		{"grace", "85"},
		{"linus", "54"},
		{"ken", "81"},
	})
	return New("people", t, Point{X: 2, Y: 1})
}

func TestNewTableAlignsNumericColumns(t *testing.T) {
	g := newTestGrid()
	name, _ := g.Table().Column("name")
	age, ok := g.Table().Column("age")
	if !ok {
		t.Fatalf("expected age column")
	}
	if name.Align != table.AlignLeft {
		t.Fatalf("expected name left aligned")
	}
	if age.Align != table.AlignRight {
		t.Fatalf("expected age right aligned")
	}
}

func TestNewTableNamesMissingHeaders(t *testing.T) {
	tbl := NewTable("t", []string{"a"}, [][]string{{"1", "2"}})
	if len(tbl.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(tbl.Columns))
	}
	if tbl.Columns[1].Name != "column 2" {
		t.Fatalf("unexpected name %q", tbl.Columns[1].Name)
	}
	if got := tbl.Rows[0].Value(tbl.Columns[1]); got != "2" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestLayoutWidthsAndLefts(t *testing.T) {
	g := newTestGrid()
	layout := g.Layout()
	if len(layout.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(layout.Columns))
	}
	if layout.Widths[0] != 5 || layout.Widths[1] != 3 {
		t.Fatalf("unexpected widths %v", layout.Widths)
	}
	if layout.Lefts[0] != 0 || layout.Lefts[1] != 7 {
		t.Fatalf("unexpected lefts %v", layout.Lefts)
	}
	if layout.Width != 10 {
		t.Fatalf("expected total width 10, got %d", layout.Width)
	}
}

func TestCellBoundsAndHitTest(t *testing.T) {
	g := newTestGrid()
	age, _ := g.Table().Column("age")
	row := g.Table().Rows[1]
	rect, ok := g.CellBounds(age, row)
	if !ok {
		t.Fatalf("expected bounds for visible cell")
	}
	want := contextmenu.Rect{Top: 3, Left: 9, Width: 3, Height: 1}
	if rect != want {
		t.Fatalf("expected %+v, got %+v", want, rect)
	}
	col, hit, ok := g.HitTest(10, 3)
	if !ok || col != age || hit != row {
		t.Fatalf("expected hit on age/row 2, got %v %v %v", col, hit, ok)
	}
	if _, _, ok := g.HitTest(10, 1); ok {
		t.Fatalf("expected header line to miss")
	}
	if _, _, ok := g.HitTest(8, 3); ok {
		t.Fatalf("expected separator to miss")
	}
	bounds := g.GridBounds()
	if bounds.Top != 1 || bounds.Left != 2 || bounds.Height != 5 || bounds.Width != 10 {
		t.Fatalf("unexpected grid bounds %+v", bounds)
	}
}

func TestCellBoundsOutsideViewport(t *testing.T) {
	g := newTestGrid()
	g.SetBodyHeight(2)
	name, _ := g.Table().Column("name")
	if _, ok := g.CellBounds(name, g.Table().Rows[3]); ok {
		t.Fatalf("expected no bounds for scrolled-out row")
	}
	g.FocusRow(g.Table().Rows[3])
	if g.Offset() != 2 {
		t.Fatalf("expected offset 2 after focusing last row, got %d", g.Offset())
	}
	rect, ok := g.CellBounds(name, g.Table().Rows[3])
	if !ok || rect.Top != 3 {
		t.Fatalf("expected row on second body line, got %+v %v", rect, ok)
	}
}

func TestMoveCursorClamps(t *testing.T) {
	g := newTestGrid()
	if g.MoveCursor(-1, -1) {
		t.Fatalf("expected no movement past origin")
	}
	if !g.MoveCursor(10, 10) {
		t.Fatalf("expected movement")
	}
	row, col := g.Cursor()
	if row != 3 || col != 1 {
		t.Fatalf("expected cursor 3,1 got %d,%d", row, col)
	}
}

func TestDeleteRowKeepsCursorInRange(t *testing.T) {
	g := newTestGrid()
	g.MoveCursor(3, 0)
	last := g.Table().Rows[3]
	if !g.DeleteRow(last) {
		t.Fatalf("expected delete to succeed")
	}
	if g.DeleteRow(last) {
		t.Fatalf("expected second delete to fail")
	}
	row, _ := g.Cursor()
	if row != 2 {
		t.Fatalf("expected cursor 2, got %d", row)
	}
}

func TestHideColumnKeepsOneVisible(t *testing.T) {
	g := newTestGrid()
	g.Table().AddToggleColumn()
	name, _ := g.Table().Column("name")
	age, _ := g.Table().Column("age")
	if !g.HideColumn(name) {
		t.Fatalf("expected name to hide")
	}
	if g.HideColumn(age) {
		t.Fatalf("expected last data column to stay visible")
	}
	if g.Table().HiddenCount() != 1 {
		t.Fatalf("expected 1 hidden column")
	}
	if n := g.ShowAllColumns(); n != 1 {
		t.Fatalf("expected 1 restored column, got %d", n)
	}
}

func TestRowTextSkipsHiddenAndToggleColumns(t *testing.T) {
	g := newTestGrid()
	g.Table().AddToggleColumn()
	row := g.Table().Rows[0]
	if got := g.RowText(row); got != "ada\t36" {
		t.Fatalf("unexpected row text %q", got)
	}
	age, _ := g.Table().Column("age")
	g.HideColumn(age)
	if got := g.RowText(row); got != "ada" {
		t.Fatalf("unexpected row text %q", got)
	}
	name, _ := g.Table().Column("name")
	if got := g.CellText(name, row); got != "ada" {
		t.Fatalf("unexpected cell text %q", got)
	}
}

func TestToggleMark(t *testing.T) {
	g := newTestGrid()
	row := g.Table().Rows[0]
	if !g.ToggleMark(row) || !row.Marked {
		t.Fatalf("expected row marked")
	}
	if g.ToggleMark(row) || row.Marked {
		t.Fatalf("expected row unmarked")
	}
}

func TestContextMenuOverrides(t *testing.T) {
	g := newTestGrid()
	name, _ := g.Table().Column("name")
	if name.ContextMenuDisabled() {
		t.Fatalf("expected unset override to leave menu enabled")
	}
	name.EnableContextMenu = contextmenu.Bool(false)
	if !name.ContextMenuDisabled() {
		t.Fatalf("expected column override to disable menu")
	}
	row := g.Table().Rows[0]
	row.EnableContextMenu = contextmenu.Bool(true)
	if row.ContextMenuDisabled() {
		t.Fatalf("expected explicit true to leave menu enabled")
	}
	if row.Entity() != row {
		t.Fatalf("expected row to be its own entity")
	}
}
