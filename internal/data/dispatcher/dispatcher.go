package dispatcher

import (
	"fmt"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/logging"
	"github.com/atomicstack/gridmenu/internal/logging/events"
)

// TableSink receives reloaded tables.
type TableSink interface {
	SetTable(*grid.Table)
}

type Result struct {
	TableUpdated bool
	Err          error
}

type Dispatcher struct {
	table       TableSink
	fingerprint string
}

func New(table TableSink, fingerprint string) *Dispatcher {
	return &Dispatcher{table: table, fingerprint: fingerprint}
}

// Fingerprint identifies the data last applied to the sink.
func (d *Dispatcher) Fingerprint() string {
	return d.fingerprint
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		logging.Error(fmt.Errorf("reload: %w", evt.Err))
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindTable:
		snapshot, ok := evt.Data.(backend.TableSnapshot)
		if !ok || snapshot.Table == nil || snapshot.Fingerprint == d.fingerprint {
			return res
		}
		d.table.SetTable(snapshot.Table)
		d.fingerprint = snapshot.Fingerprint
		if snapshot.Source != nil {
			events.Source.Reload(snapshot.Source.Path(), snapshot.Fingerprint)
		}
		res.TableUpdated = true
	}
	return res
}
