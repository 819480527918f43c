package state

import (
	"testing"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
)

func newTestList(titles ...string) *List {
	items := make([]*contextmenu.Item, len(titles))
	for i, title := range titles {
		items[i] = &contextmenu.Item{Title: title}
	}
	return NewList(items)
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestList()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestList("a", "b", "c")
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorDown() {
		t.Fatalf("expected no movement past end")
	}
	if !l.MoveCursorUp() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1 after moving up, got %d", l.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}
}

func TestSetItemsKeepsSelectedItem(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 2
	c := l.Selected()
	l.SetItems([]*contextmenu.Item{c, l.Full[0]})
	if l.Selected() != c {
		t.Fatalf("expected cursor to follow selected item")
	}
	if l.SetCursor(5) {
		t.Fatalf("expected out of range cursor to be refused")
	}
}
