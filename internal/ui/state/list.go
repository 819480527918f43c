package state

import "github.com/atomicstack/gridmenu/internal/contextmenu"

// List holds the popup's item state: cursor, type-to-filter query and
// viewport.
type List struct {
	Items          []*contextmenu.Item
	Full           []*contextmenu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList builds a list over items with the cursor on the first entry.
func NewList(items []*contextmenu.Item) *List {
	l := &List{LastCursor: -1}
	l.SetItems(items)
	return l
}

// SetItems replaces the unfiltered items, keeping the filter and the cursor
// item when it is still present.
func (l *List) SetItems(items []*contextmenu.Item) {
	selected := l.Selected()
	l.Full = append([]*contextmenu.Item(nil), items...)
	l.applyFilter()
	if idx := l.IndexOf(selected); idx >= 0 {
		l.Cursor = idx
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// Reset clears the filter and moves the cursor to the top.
func (l *List) Reset(items []*contextmenu.Item) {
	l.Filter = ""
	l.FilterCursor = 0
	l.Cursor = 0
	l.LastCursor = -1
	l.ViewportOffset = 0
	l.Full = append([]*contextmenu.Item(nil), items...)
	l.applyFilter()
}

// IndexOf returns the position of item among the filtered items or -1.
func (l *List) IndexOf(item *contextmenu.Item) int {
	if item == nil {
		return -1
	}
	for i, it := range l.Items {
		if it == item {
			return i
		}
	}
	return -1
}

// Selected returns the item under the cursor.
func (l *List) Selected() *contextmenu.Item {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return nil
	}
	return l.Items[l.Cursor]
}
