package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
	"github.com/atomicstack/gridmenu/internal/grid"
	uistate "github.com/atomicstack/gridmenu/internal/ui/state"
)

const (
	popupMaxItems   = 10
	popupMinWidth   = 12
	popupMaxWidth   = 40
	popupBorderSize = 2
	noMatchesText   = "(no matches)"
	filterPrompt    = "› "
	itemIndicator   = "▌ "
	itemIndent      = "  "
)

type popupRowKind int

const (
	popupRowItem popupRowKind = iota
	popupRowGroup
	popupRowFilter
	popupRowEmpty
)

type popupRow struct {
	kind popupRowKind
	text string
	item int
}

// Popup renders the context menu of a grid context. It follows the menu
// state: Sync picks up the open cell and its shown items, Layout places the
// box on screen. View marks the box and every item row as zones, so pointer
// lookups resolve against the last scanned frame.
type Popup struct {
	ctx   *contextmenu.Context
	list  *uistate.List
	zones *zone.Manager
	boxID string

	col contextmenu.Column
	row contextmenu.Row

	rows       []popupRow
	bounds     contextmenu.Rect
	inner      int
	maxVisible int
}

// NewPopup attaches a renderer to ctx that marks its zones with zones. It
// panics when ctx is nil or has been destroyed.
func NewPopup(ctx *contextmenu.Context, zones *zone.Manager) *Popup {
	if ctx == nil {
		panic("ui: popup needs a grid context")
	}
	if ctx.Destroyed() {
		panic("ui: popup attached to a destroyed grid context")
	}
	if zones == nil {
		panic("ui: popup needs a zone manager")
	}
	return &Popup{
		ctx:        ctx,
		list:       uistate.NewList(nil),
		zones:      zones,
		boxID:      zones.NewPrefix() + "popup",
		maxVisible: popupMaxItems,
	}
}

// Open reports whether the popup has a cell to render.
func (p *Popup) Open() bool { return p.col != nil && p.row != nil }

func (p *Popup) List() *uistate.List      { return p.list }
func (p *Popup) Bounds() contextmenu.Rect { return p.bounds }
func (p *Popup) MaxVisible() int          { return p.maxVisible }

// Contains implements contextmenu.Region.
func (p *Popup) Contains(x, y int) bool {
	return p.Open() && p.zones.Get(p.boxID).InBounds(tea.MouseMsg{X: x, Y: y})
}

func (p *Popup) itemID(index int) string {
	return p.boxID + ":" + strconv.Itoa(index)
}

// Sync refreshes the item list from the menu state. Opening a different
// cell starts with a fresh filter and cursor.
func (p *Popup) Sync() {
	state := p.ctx.State()
	if !state.IsOpen() {
		p.col, p.row = nil, nil
		p.rows = nil
		p.bounds = contextmenu.Rect{}
		return
	}
	items := p.ctx.Dispatcher().VisibleItems()
	if state.Column != p.col || state.Row != p.row {
		p.col, p.row = state.Column, state.Row
		p.list.Reset(items)
		return
	}
	p.list.SetItems(items)
}

// Layout builds the popup rows and places the box. origin is the screen
// position of the grid, area the room the grid occupies from there. With
// align set the box is kept inside area.
func (p *Popup) Layout(origin grid.Point, area contextmenu.Size, align bool) {
	if !p.Open() {
		return
	}
	list := p.list
	filtering := list.Filter != ""

	p.maxVisible = popupMaxItems
	if area.Height > 0 {
		avail := area.Height - popupBorderSize
		if filtering {
			avail--
		}
		if avail < p.maxVisible {
			p.maxVisible = avail
		}
	}
	if p.maxVisible < 1 {
		p.maxVisible = 1
	}
	list.EnsureCursorVisible(p.maxVisible)

	rows := make([]popupRow, 0, p.maxVisible+4)
	if filtering {
		rows = append(rows, popupRow{kind: popupRowFilter, text: filterPrompt + list.Filter, item: -1})
	}
	if len(list.Items) == 0 {
		rows = append(rows, popupRow{kind: popupRowEmpty, text: itemIndent + noMatchesText, item: -1})
	}
	end := list.ViewportOffset + p.maxVisible
	if end > len(list.Items) {
		end = len(list.Items)
	}
	group := ""
	for i := list.ViewportOffset; i < end; i++ {
		item := list.Items[i]
		if item.GroupName != "" && (item.GroupName != group || i == list.ViewportOffset) {
			rows = append(rows, popupRow{kind: popupRowGroup, text: item.GroupName, item: -1})
		}
		group = item.GroupName
		rows = append(rows, popupRow{kind: popupRowItem, text: itemIndent + item.Title, item: i})
	}
	p.rows = rows

	inner := popupMinWidth
	for _, row := range rows {
		if w := lipgloss.Width(row.text) + 1; w > inner {
			inner = w
		}
	}
	if inner > popupMaxWidth {
		inner = popupMaxWidth
	}
	if area.Width > 0 && inner > area.Width-popupBorderSize {
		inner = area.Width - popupBorderSize
	}
	if inner < 1 {
		inner = 1
	}
	p.inner = inner

	size := contextmenu.Size{Width: inner + popupBorderSize, Height: len(rows) + popupBorderSize}
	pos := p.ctx.State().Position
	if align {
		// an unknown dimension only keeps the box off negative coordinates
		room := area
		if room.Width <= 0 {
			room.Width = pos.Left + size.Width
		}
		if room.Height <= 0 {
			room.Height = pos.Top + size.Height
		}
		pos = contextmenu.Clamp(contextmenu.Flip(pos, size, room), size, room)
	}
	p.bounds = contextmenu.Rect{
		Top:    origin.Y + pos.Top,
		Left:   origin.X + pos.Left,
		Width:  size.Width,
		Height: size.Height,
	}
}

// ItemAt returns the item drawn at the screen point, if any.
func (p *Popup) ItemAt(x, y int) *contextmenu.Item {
	if !p.Contains(x, y) {
		return nil
	}
	msg := tea.MouseMsg{X: x, Y: y}
	for _, row := range p.rows {
		if row.kind != popupRowItem || row.item >= len(p.list.Items) {
			continue
		}
		if p.zones.Get(p.itemID(row.item)).InBounds(msg) {
			return p.list.Items[row.item]
		}
	}
	return nil
}

// View renders the bordered popup. caret draws the filter text with its
// cursor; nil renders the text plainly.
func (p *Popup) View(caret func(text string, pos int) string) string {
	if !p.Open() || len(p.rows) == 0 {
		return ""
	}
	dispatcher := p.ctx.Dispatcher()
	lines := make([]string, 0, len(p.rows))
	for _, row := range p.rows {
		switch row.kind {
		case popupRowFilter:
			filter := p.list.Filter
			if caret != nil {
				filter = caret(filter, p.list.FilterCursorPos())
			} else if styles.Filter != nil {
				filter = styles.Filter.Render(filter)
			}
			lines = append(lines, fitWidth(render(styles.FilterPrompt, filterPrompt)+filter, p.inner))
		case popupRowGroup:
			lines = append(lines, render(styles.MenuGroup, fitWidth(row.text, p.inner)))
		case popupRowEmpty:
			lines = append(lines, render(styles.Info, fitWidth(row.text, p.inner)))
		default:
			item := p.list.Items[row.item]
			text := row.text
			style := styles.MenuItem
			if !dispatcher.IsItemActive(item) {
				style = styles.MenuInactiveItem
			}
			if row.item == p.list.Cursor {
				text = itemIndicator + item.Title
				style = styles.MenuSelectedItem
			}
			lines = append(lines, p.zones.Mark(p.itemID(row.item), render(style, fitWidth(text, p.inner))))
		}
	}
	return p.zones.Mark(p.boxID, render(styles.Menu, strings.Join(lines, "\n")))
}

// fitWidth pads or truncates s to exactly width cells.
func fitWidth(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		s = truncate.StringWithTail(s, uint(width-1), "…")
		w = lipgloss.Width(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func render(style *lipgloss.Style, s string) string {
	if style == nil {
		return s
	}
	return style.Render(s)
}
