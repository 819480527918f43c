package state

import (
	"testing"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	l := newTestList("Copy cell", "Copy row", "Delete row")
	l.Cursor = 2
	l.SetFilter("row", len("row"))

	if l.FilterCursor != len("row") {
		t.Fatalf("expected cursor at end, got %d", l.FilterCursor)
	}
	if len(l.Items) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(l.Items))
	}
	if l.Selected().Title != "Copy row" {
		t.Fatalf("expected substring match selected, got %q", l.Selected().Title)
	}

	l.SetFilter("", 0)
	if l.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", l.Cursor)
	}
	if l.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", l.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	l := newTestList("alpha")

	if !l.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	l.FilterCursor = 1
	if !l.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if l.Filter != "azb" || l.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", l.Filter, l.FilterCursor)
	}
	if !l.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if l.Filter != "ab" || l.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", l.Filter, l.FilterCursor)
	}

	l.SetFilter("abc def", len("abc def"))
	if !l.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if l.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", l.Filter)
	}

	l.SetFilter("abc", 0)
	if l.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if !l.MoveFilterCursor(2) || l.FilterCursor != 2 {
		t.Fatalf("expected filter cursor at 2, got %d", l.FilterCursor)
	}
	if l.MoveFilterCursor(5) && l.FilterCursor != 3 {
		t.Fatalf("expected filter cursor clamped to 3, got %d", l.FilterCursor)
	}
	if !l.ClearFilter() || l.ClearFilter() {
		t.Fatal("expected clear to succeed once")
	}
}

func TestFilterItemsMatchesTitlesAndGroups(t *testing.T) {
	items := []*contextmenu.Item{
		{Title: "Copy cell", GroupName: "Clipboard"},
		{Title: "Delete row", GroupName: "Row"},
	}
	filtered := FilterItems(items, "cpc")
	if len(filtered) != 1 || filtered[0] != items[0] {
		t.Fatalf("expected fuzzy match on Copy cell, got %d items", len(filtered))
	}
	filtered = FilterItems(items, "clip")
	if len(filtered) != 1 || filtered[0] != items[0] {
		t.Fatalf("expected group match on Copy cell, got %d items", len(filtered))
	}
	if len(FilterItems(items, "zzz")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
	if len(FilterItems(items, " ")) != 2 {
		t.Fatal("expected blank query to keep every item")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []*contextmenu.Item{
		{Title: "First"},
		{Title: "Second"},
		{Title: "Third"},
	}
	if idx := BestMatchIndex(items, "second"); idx != 1 {
		t.Fatalf("expected exact title match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}
