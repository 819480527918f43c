package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const Separator = "  "

// Widths returns the display width of the widest entry in each column.
// Rows shorter than the widest row count as empty cells.
func Widths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := CellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := range widths {
			if c > 0 {
				b.WriteString(Separator)
			}
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			align := AlignLeft
			if c < len(alignments) {
				align = alignments[c]
			}
			b.WriteString(Pad(cell, widths[c], align))
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// Pad fits cell into width display cells, truncating with an ellipsis when
// it is too wide.
func Pad(cell string, width int, align Alignment) string {
	if width <= 0 {
		return ""
	}
	w := CellWidth(cell)
	if w > width {
		cell = ansi.Truncate(cell, width, "…")
		w = CellWidth(cell)
	}
	gap := width - w
	if gap <= 0 {
		return cell
	}
	if align == AlignRight {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}

// CellWidth is the display width of text, ignoring escape sequences.
func CellWidth(text string) int {
	return ansi.StringWidth(text)
}
