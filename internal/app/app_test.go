package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/gridmenu/internal/logging"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	code := m.Run()
	logging.SetOutput(nil)
	os.Exit(code)
}

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.csv")
	if err := os.WriteFile(path, []byte("name,age\nada,36\ngrace,85\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestNewModelLoadsSourceAndDefaultMenu(t *testing.T) {
	m, err := NewModel(context.Background(), Config{Source: writeCSV(t), ContextMenu: true, AlignToGrid: true})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	defer m.Close()
	table := m.Grid().Table()
	if table.Name != "people" || len(table.Rows) != 2 {
		t.Fatalf("unexpected table %q with %d rows", table.Name, len(table.Rows))
	}
	if got := m.Menu().Registry().Len(); got != 6 {
		t.Fatalf("expected the six default items, got %d", got)
	}
	if !m.Menu().Options().Enabled() || !m.Menu().Options().AlignToGrid() {
		t.Fatalf("expected menu enabled and aligned")
	}
}

func TestNewModelHonoursMenuFlags(t *testing.T) {
	m, err := NewModel(context.Background(), Config{Source: writeCSV(t)})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	defer m.Close()
	if m.Menu().Options().Enabled() {
		t.Fatalf("expected context menu disabled")
	}
	if m.Menu().Options().AlignToGrid() {
		t.Fatalf("expected free placement")
	}
}

func TestNewModelUsesMenuFile(t *testing.T) {
	menu := filepath.Join(t.TempDir(), "menu.yaml")
	body := "items:\n  - label: Copy value\n    action: copy-cell\n"
	if err := os.WriteFile(menu, []byte(body), 0o644); err != nil {
		t.Fatalf("write menu: %v", err)
	}
	m, err := NewModel(context.Background(), Config{Source: writeCSV(t), Menu: menu, ContextMenu: true})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	defer m.Close()
	items := m.Menu().Registry().List()
	if len(items) != 1 || items[0].Title != "Copy value" {
		t.Fatalf("expected the configured item, got %d items", len(items))
	}
}

func TestNewModelSampleTable(t *testing.T) {
	m, err := NewModel(context.Background(), Config{ContextMenu: true})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	defer m.Close()
	if len(m.Grid().Table().Rows) == 0 {
		t.Fatalf("expected sample rows")
	}
}

func TestNewModelReportsErrors(t *testing.T) {
	if _, err := NewModel(context.Background(), Config{Source: "missing.csv"}); err == nil {
		t.Fatalf("expected error for a missing file")
	}
	if _, err := NewModel(context.Background(), Config{Source: "data.parquet"}); err == nil {
		t.Fatalf("expected error for an unsupported format")
	}
	menu := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(menu, []byte("items:\n  - label: x\n    action: explode\n"), 0o644); err != nil {
		t.Fatalf("write menu: %v", err)
	}
	if _, err := NewModel(context.Background(), Config{Source: writeCSV(t), Menu: menu}); err == nil {
		t.Fatalf("expected error for an unknown action")
	}
}
