package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/contextmenu"
	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menuconfig"
	"github.com/atomicstack/gridmenu/internal/source"
	"github.com/atomicstack/gridmenu/internal/ui"
	"github.com/atomicstack/gridmenu/internal/ui/command"
)

const loadTimeout = 30 * time.Second

// Config describes user-provided application options.
type Config struct {
	Source      string
	Sheet       string
	Query       string
	Table       string
	Menu        string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	ContextMenu bool
	AlignToGrid bool
	Reload      time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewModel(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	_, err = program.Run()
	events.App.Stop()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel loads the source and the menu items and assembles the UI model.
// The caller owns the returned model and must Close it.
func NewModel(ctx context.Context, cfg Config) (*ui.Model, error) {
	src, err := source.Open(cfg.Source, source.Options{Sheet: cfg.Sheet, Query: cfg.Query, Table: cfg.Table})
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	fingerprint, table, err := load(ctx, src)
	if err != nil {
		return nil, err
	}

	bus := command.New()
	items, err := menuconfig.LoadItems(cfg.Menu, bus)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}

	var watcher *backend.Watcher
	if cfg.Reload > 0 {
		watcher = backend.NewWatcher(src, cfg.Reload, fingerprint)
	}

	return ui.NewModel(table, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Menu: contextmenu.Options{
			EnableContextMenu:      contextmenu.Bool(cfg.ContextMenu),
			AlignContextMenuToGrid: contextmenu.Bool(cfg.AlignToGrid),
			CustomItems:            items,
		},
		Bus:         bus,
		Watcher:     watcher,
		Fingerprint: fingerprint,
	}), nil
}

func load(ctx context.Context, src source.Source) (string, *grid.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	fingerprint, err := src.Fingerprint()
	if err != nil {
		events.Source.Error(src.Path(), err)
		return "", nil, fmt.Errorf("read source: %w", err)
	}
	table, err := src.Load(ctx)
	if err != nil {
		events.Source.Error(src.Path(), err)
		return "", nil, fmt.Errorf("load source: %w", err)
	}
	events.Source.Load(string(src.Kind()), src.Path(), len(table.Rows))
	return fingerprint, table, nil
}
