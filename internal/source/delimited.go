package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/atomicstack/gridmenu/internal/grid"
)

type delimitedSource struct {
	path  string
	comma rune
	kind  Kind
}

func (s *delimitedSource) Kind() Kind   { return s.kind }
func (s *delimitedSource) Path() string { return s.path }

func (s *delimitedSource) Fingerprint() (string, error) {
	return fileFingerprint(s.path)
}

func (s *delimitedSource) Load(ctx context.Context) (*grid.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = s.comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(records) == 0 {
		return grid.NewTable(tableName(s.path), nil, nil), nil
	}
	return grid.NewTable(tableName(s.path), records[0], records[1:]), nil
}
