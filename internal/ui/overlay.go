package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ansiReset = "\x1b[0m"

// overlay draws block over base with its top-left corner at (x, y). Base
// lines are padded when the block reaches past them; parts of the block
// above row zero or left of column zero are clipped.
func overlay(base []string, block string, x, y int) []string {
	if block == "" {
		return base
	}
	blockLines := strings.Split(block, "\n")
	out := append([]string(nil), base...)
	for len(out) < y+len(blockLines) {
		out = append(out, "")
	}
	for i, line := range blockLines {
		row := y + i
		if row < 0 {
			continue
		}
		segment := line
		left := x
		if left < 0 {
			segment = ansi.TruncateLeft(segment, -left, "")
			left = 0
		}
		segWidth := ansi.StringWidth(segment)
		if segWidth == 0 {
			continue
		}
		under := out[row]
		if w := ansi.StringWidth(under); w < left+segWidth {
			under += strings.Repeat(" ", left+segWidth-w)
		}
		head := ansi.Truncate(under, left, "")
		tail := ansi.TruncateLeft(under, left+segWidth, "")
		out[row] = head + ansiReset + segment + ansiReset + tail
	}
	return out
}
