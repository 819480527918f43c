package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
	"github.com/atomicstack/gridmenu/internal/format/table"
	"github.com/atomicstack/gridmenu/internal/grid"
)

const (
	titleRows  = 1
	headerRows = 1
	statusRows = 1
	footerRows = 1
)

// View implements tea.Model. The frame is scanned for zone marks before it
// is returned.
func (m *Model) View() string {
	lines := make([]string, 0, m.height+1)
	lines = append(lines, m.titleLine())
	lines = append(lines, m.gridLines()...)
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, m.footerLine())
	}
	lines = applyWidth(lines, m.width)
	if m.popup.Open() {
		bounds := m.popup.Bounds()
		lines = overlay(lines, m.popup.View(m.renderFilter), bounds.Left, bounds.Top)
	}
	return m.zones.Scan(strings.Join(lines, "\n"))
}

func (m *Model) titleLine() string {
	t := m.grid.Table()
	name := t.Name
	if name == "" {
		name = "table"
	}
	title := render(styles.Header, fmt.Sprintf("%s · %d rows", name, len(t.Rows)))
	if hidden := t.HiddenCount(); hidden > 0 {
		title += render(styles.Footer, fmt.Sprintf(" · %d hidden", hidden))
	}
	if m.backendErr != "" {
		title += "  " + render(styles.Error, "reload failed: "+m.backendErr)
	}
	return title
}

// gridLines renders the header and the visible body rows. With a fixed
// height the body is padded so the status line stays at the bottom.
func (m *Model) gridLines() []string {
	layout := m.grid.Layout()
	lines := make([]string, 0, headerRows+m.grid.BodyHeight())

	header := make([]string, len(layout.Columns))
	for i, col := range layout.Columns {
		name := col.Name
		if col.Toggle {
			name = ""
		}
		header[i] = render(styles.Header, table.Pad(name, layout.Widths[i], col.Align))
	}
	lines = append(lines, strings.Join(header, table.Separator))

	curCol, curRow, _ := m.grid.CursorCell()
	state := m.menu.State()
	rows := m.grid.VisibleRows()
	if len(rows) == 0 {
		lines = append(lines, render(styles.Info, "(no rows)"))
	}
	for _, row := range rows {
		cells := make([]string, len(layout.Columns))
		for i, col := range layout.Columns {
			text := row.Value(col)
			style := styles.Cell
			switch {
			case col.Toggle:
				text = grid.ToggleGlyph
				style = styles.ToggleCell
			case row.Marked:
				style = styles.MarkedRow
			}
			if (col == curCol && row == curRow) || isMenuCell(state, col, row) {
				style = styles.CursorCell
			}
			cells[i] = render(style, table.Pad(text, layout.Widths[i], col.Align))
		}
		lines = append(lines, strings.Join(cells, table.Separator))
	}
	if body := m.grid.BodyHeight(); body > 0 {
		for len(lines) < headerRows+body {
			lines = append(lines, "")
		}
	}
	return lines
}

func isMenuCell(state contextmenu.State, col *grid.Column, row *grid.Row) bool {
	if !state.IsOpen() {
		return false
	}
	c, _ := state.Column.(*grid.Column)
	r, _ := state.Row.(*grid.Row)
	return c == col && r == row
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return render(styles.Error, fmt.Sprintf("Error: %s", m.errMsg))
	}
	if info := m.currentInfo(); info != "" {
		return render(styles.Info, info)
	}
	col, row, ok := m.grid.CursorCell()
	if !ok {
		return ""
	}
	name := col.Name
	if col.Toggle {
		name = "menu"
	}
	return render(styles.Footer, fmt.Sprintf("%s/%d · %s", row, len(m.grid.Table().Rows), name))
}

func (m *Model) footerLine() string {
	var view string
	if m.popup.Open() {
		view = m.help.ShortHelpView(popupHelp(m.keys).ShortHelp())
	} else {
		view = m.help.ShortHelpView(gridHelp(m.keys).ShortHelp())
	}
	return render(styles.Footer, view)
}

// renderFilter draws the popup filter with the blinking caret at pos.
func (m *Model) renderFilter(text string, pos int) string {
	runes := []rune(text)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	char := " "
	after := ""
	if pos < len(runes) {
		char = string(runes[pos])
		after = string(runes[pos+1:])
	}
	m.filterCursor.SetChar(char)
	return render(styles.Filter, string(runes[:pos])) + m.filterCursor.View() + render(styles.Filter, after)
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncate.StringWithTail(line, uint(width-1), "…")
		}
	}
	return lines
}

// syncLayout sizes the grid body to the room left between the title and
// the status lines.
func (m *Model) syncLayout() {
	if m.height <= 0 {
		m.grid.SetBodyHeight(0)
		return
	}
	body := m.height - titleRows - headerRows - statusRows
	if m.showFooter {
		body -= footerRows
	}
	if body < 1 {
		body = 1
	}
	m.grid.SetBodyHeight(body)
}

// syncPopup brings the popup in line with the menu state and places it over
// the grid.
func (m *Model) syncPopup() {
	m.popup.Sync()
	if !m.popup.Open() {
		return
	}
	origin := m.grid.Origin()
	area := contextmenu.Size{Width: m.width - origin.X}
	if m.height > 0 {
		area.Height = headerRows + m.grid.BodyHeight()
	}
	m.popup.Layout(origin, area, m.menu.Options().AlignToGrid())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.syncLayout()
	return nil
}
