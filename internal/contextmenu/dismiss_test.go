package contextmenu

import "testing"

func openAndFlush(t *testing.T, f *fixture) {
	t.Helper()
	if !f.open(f.colA, f.row1) {
		t.Fatalf("expected menu to open")
	}
	f.queue.Flush()
}

func TestWatcherClosesOnEscape(t *testing.T) {
	f := newFixture(Options{}, visibleItem("copy"))
	openAndFlush(t, f)
	f.bus.KeyDown("enter")
	if !f.ctx.State().IsOpen() {
		t.Fatalf("non-escape keys must not close the menu")
	}
	f.bus.KeyDown("esc")
	if f.ctx.State().IsOpen() {
		t.Fatalf("escape should close the menu")
	}
	if len(f.rec.log) != 2 || f.rec.log[1] != "hide:a/row 1" {
		t.Fatalf("expected hide notification, got %v", f.rec.log)
	}
}

func TestWatcherClosesOnBlur(t *testing.T) {
	f := newFixture(Options{}, visibleItem("copy"))
	openAndFlush(t, f)
	f.bus.Blur()
	if f.ctx.State().IsOpen() {
		t.Fatalf("blur should close the menu")
	}
}

func TestWatcherPointerDownInsideRegionKeepsMenu(t *testing.T) {
	f := newFixture(Options{}, visibleItem("copy"))
	openAndFlush(t, f)
	f.bus.PointerDown(22, 21)
	if !f.ctx.State().IsOpen() {
		t.Fatalf("pointer-down inside the menu must not close it")
	}
	f.bus.PointerDown(5, 5)
	if f.ctx.State().IsOpen() {
		t.Fatalf("pointer-down outside the menu should close it")
	}
}

func TestWatcherIgnoresSignalsWhileClosed(t *testing.T) {
	f := newFixture(Options{}, visibleItem("copy"))
	f.bus.KeyDown("esc")
	f.bus.Blur()
	f.bus.PointerDown(0, 0)
	if len(f.rec.log) != 0 {
		t.Fatalf("closed menu should not notify, got %v", f.rec.log)
	}
}

func TestWatcherStopReleasesSubscriptions(t *testing.T) {
	f := newFixture(Options{}, visibleItem("copy"))
	if f.bus.Listeners() != 3 {
		t.Fatalf("expected 3 listeners, got %d", f.bus.Listeners())
	}
	f.ctx.Watcher().Stop()
	f.ctx.Watcher().Stop()
	if f.bus.Listeners() != 0 {
		t.Fatalf("expected no listeners after stop, got %d", f.bus.Listeners())
	}
	openAndFlush(t, f)
	f.bus.KeyDown("esc")
	if !f.ctx.State().IsOpen() {
		t.Fatalf("stopped watcher must not close the menu")
	}
}
