package contextmenu

import "testing"

func TestRegistryAddIsIdempotentAndFillsPredicates(t *testing.T) {
	r := NewRegistry(&testGrid{})
	item := &Item{Title: "copy"}
	r.Add(item)
	r.Add(item)
	if r.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", r.Len())
	}
	if item.Shown == nil || item.Active == nil {
		t.Fatalf("expected default predicates to be filled")
	}
	if !item.Shown(nil, nil, nil) || !item.Active(nil, nil, nil) {
		t.Fatalf("default predicates should report true")
	}
}

func TestRegistryKeepsExplicitPredicates(t *testing.T) {
	r := NewRegistry(&testGrid{})
	item := &Item{Shown: func(Grid, Column, Row) bool { return false }}
	r.Add(item)
	if item.Shown(nil, nil, nil) {
		t.Fatalf("explicit shown predicate was replaced")
	}
}

func TestRegistryAddAllPreservesOrder(t *testing.T) {
	r := NewRegistry(&testGrid{})
	a, b, c := &Item{Title: "a"}, &Item{Title: "b"}, &Item{Title: "c"}
	r.AddAll([]*Item{a, b, a, c})
	got := r.List()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("unexpected order: %#v", got)
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry(&testGrid{})
	a, b := &Item{Title: "a"}, &Item{Title: "b"}
	r.AddAll([]*Item{a, b})
	r.Remove(&Item{Title: "a"})
	if r.Len() != 2 {
		t.Fatalf("remove must compare by identity, got %d items", r.Len())
	}
	r.Remove(a)
	if r.Len() != 1 || r.List()[0] != b {
		t.Fatalf("expected only b to remain, got %#v", r.List())
	}
	r.Remove(a)
	r.RemoveAll()
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
}

func TestRegistryHasVisibleItemsFor(t *testing.T) {
	hidden := func(Grid, Column, Row) bool { return false }
	shown := func(Grid, Column, Row) bool { return true }
	col, row := &testColumn{name: "a"}, &testRow{id: 1}

	r := NewRegistry(&testGrid{})
	r.AddAll([]*Item{{Shown: hidden}, {Shown: shown}})
	if !r.HasVisibleItemsFor(col, row) {
		t.Fatalf("expected a visible item")
	}

	r = NewRegistry(&testGrid{})
	r.AddAll([]*Item{{Shown: hidden}, {Shown: hidden}})
	if r.HasVisibleItemsFor(col, row) {
		t.Fatalf("expected no visible items")
	}

	if NewRegistry(&testGrid{}).HasVisibleItemsFor(col, row) {
		t.Fatalf("empty registry has no visible items")
	}
}

func TestRegistryPredicatesSeeCell(t *testing.T) {
	g := &testGrid{}
	col, row := &testColumn{name: "a"}, &testRow{id: 7}
	var gotGrid Grid
	var gotCol Column
	var gotRow Row
	r := NewRegistry(g)
	r.Add(&Item{Shown: func(gg Grid, c Column, rr Row) bool {
		gotGrid, gotCol, gotRow = gg, c, rr
		return true
	}})
	r.HasVisibleItemsFor(col, row)
	if gotGrid != g || gotCol != col || gotRow != row {
		t.Fatalf("predicate received wrong context: %v %v %v", gotGrid, gotCol, gotRow)
	}
}
