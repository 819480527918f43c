package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/source"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindTable Kind = iota
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// TableSnapshot is the Data of a KindTable event.
type TableSnapshot struct {
	Source      source.Source
	Fingerprint string
	Table       *grid.Table
}

// Watcher polls a data source at a fixed interval and publishes an event
// whenever its fingerprint changes.
type Watcher struct {
	src      source.Source
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls src every interval. seen is
// the fingerprint of data the caller already holds; it is not re-emitted.
// interval must be positive.
func NewWatcher(src source.Source, interval time.Duration, seen string) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		src:      src,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startTablePoller(seen)

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startTablePoller(seen string) {
	throttle := newThrottle(250 * time.Millisecond)
	last := seen
	w.wg.Add(1)
	go w.poll(KindTable, func(ctx context.Context) (interface{}, bool, error) {
		throttle.wait()
		fp, err := w.src.Fingerprint()
		if err != nil {
			return nil, true, err
		}
		if fp == last {
			return nil, false, nil
		}
		tbl, err := w.src.Load(ctx)
		if err != nil {
			return nil, true, err
		}
		last = fp
		return TableSnapshot{Source: w.src, Fingerprint: fp, Table: tbl}, true, nil
	})
}

// poll runs fetch immediately and then on every tick. Fetches that report
// nothing new publish no event.
func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, bool, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, changed, err := fetch(w.ctx)
		if !changed {
			return w.ctx.Err() == nil
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
