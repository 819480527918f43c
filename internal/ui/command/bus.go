package command

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/logging"
	"github.com/atomicstack/gridmenu/internal/logging/events"
)

// Result is the outcome of one menu action.
type Result struct {
	Info string
	Err  error
}

// ResultMsg delivers drained results to the model.
type ResultMsg struct {
	Results []Result
}

// Bus collects what menu actions report and hands it to the model.
type Bus struct {
	mu      sync.Mutex
	pending []Result
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Report implements menuconfig.Reporter.
func (b *Bus) Report(info string, err error) {
	if err != nil {
		events.Action.Error(err)
		logging.Error(err)
	} else {
		events.Action.Success(info)
	}
	b.mu.Lock()
	b.pending = append(b.pending, Result{Info: info, Err: err})
	b.mu.Unlock()
}

// Pending reports how many results wait to be drained.
func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Drain wraps the collected results into a Bubble Tea command. It returns
// nil when nothing was reported.
func (b *Bus) Drain() tea.Cmd {
	b.mu.Lock()
	results := b.pending
	b.pending = nil
	b.mu.Unlock()
	if len(results) == 0 {
		return nil
	}
	return func() tea.Msg {
		return ResultMsg{Results: results}
	}
}
