package backend

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/source"
)

type fakeSource struct {
	mu    sync.Mutex
	fp    string
	err   error
	loads int
}

func (s *fakeSource) Kind() source.Kind { return source.KindCSV }
func (s *fakeSource) Path() string      { return "fake.csv" }

func (s *fakeSource) Fingerprint() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fp, s.err
}

func (s *fakeSource) Load(context.Context) (*grid.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	return grid.NewTable("fake", []string{"a"}, [][]string{{s.fp}}), nil
}

func (s *fakeSource) set(fp string, err error) {
	s.mu.Lock()
	s.fp, s.err = fp, err
	s.mu.Unlock()
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt := <-w.Events():
		return evt
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
	return Event{}
}

func TestWatcherEmitsOnFingerprintChange(t *testing.T) {
	src := &fakeSource{fp: "v1"}
	w := NewWatcher(src, 10*time.Millisecond, "v1")
	defer func() {
		w.Stop()
		w.Wait()
	}()

	src.set("v2", nil)
	evt := nextEvent(t, w)
	if evt.Kind != KindTable || evt.Err != nil {
		t.Fatalf("unexpected event %+v", evt)
	}
	snap, ok := evt.Data.(TableSnapshot)
	if !ok {
		t.Fatalf("expected TableSnapshot, got %T", evt.Data)
	}
	if snap.Fingerprint != "v2" || snap.Table.Rows[0].Values[0] != "v2" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestWatcherReportsErrors(t *testing.T) {
	src := &fakeSource{fp: "v1"}
	src.set("", errors.New("gone"))
	w := NewWatcher(src, 10*time.Millisecond, "v1")
	defer func() {
		w.Stop()
		w.Wait()
	}()
	evt := nextEvent(t, w)
	if evt.Err == nil {
		t.Fatalf("expected error event")
	}
}

func TestWatcherSkipsUnchangedData(t *testing.T) {
	src := &fakeSource{fp: "v1"}
	w := NewWatcher(src, 5*time.Millisecond, "v1")
	time.Sleep(50 * time.Millisecond)
	w.Stop()
	w.Wait()
	for evt := range w.Events() {
		t.Fatalf("expected no events, got %+v", evt)
	}
	src.mu.Lock()
	defer src.mu.Unlock()
	if src.loads != 0 {
		t.Fatalf("expected no loads, got %d", src.loads)
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	th.wait()
	th.wait()
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected second wait to block, elapsed %s", elapsed)
	}
	var nilThrottle *throttle
	nilThrottle.wait()
}
