// Package source loads grid tables from files: delimited text, Excel
// workbooks and SQLite databases.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/gridmenu/internal/grid"
)

// Kind names a source format.
type Kind string

const (
	KindSample Kind = "sample"
	KindCSV    Kind = "csv"
	KindTSV    Kind = "tsv"
	KindXLSX   Kind = "xlsx"
	KindSQLite Kind = "sqlite"
)

// ErrNoQuery is returned when a SQLite source has neither a query nor a
// table name.
var ErrNoQuery = errors.New("sqlite source needs a query or a table")

// Options selects data inside a source file.
type Options struct {
	Sheet string
	Query string
	Table string
}

// Source produces tables. Fingerprint changes whenever Load would return
// different data.
type Source interface {
	Kind() Kind
	Path() string
	Fingerprint() (string, error)
	Load(ctx context.Context) (*grid.Table, error)
}

// KindOf infers the format from the file extension.
func KindOf(path string) (Kind, error) {
	if path == "" {
		return KindSample, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return KindCSV, nil
	case ".tsv", ".tab":
		return KindTSV, nil
	case ".xlsx", ".xlsm":
		return KindXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("unsupported source %q", path)
	}
}

// Open returns the source for path. An empty path yields the built-in
// sample table.
func Open(path string, opts Options) (Source, error) {
	kind, err := KindOf(path)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindSample:
		return sampleSource{}, nil
	case KindCSV:
		return &delimitedSource{path: path, comma: ',', kind: kind}, nil
	case KindTSV:
		return &delimitedSource{path: path, comma: '\t', kind: kind}, nil
	case KindXLSX:
		return &workbookSource{path: path, sheet: opts.Sheet}, nil
	case KindSQLite:
		query, err := sqliteQuery(opts)
		if err != nil {
			return nil, err
		}
		return &sqliteSource{path: path, query: query}, nil
	}
	return nil, fmt.Errorf("unsupported source %q", path)
}

// fileFingerprint identifies a file revision by size and modification time.
func fileFingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	return fmt.Sprintf("%d:%d", info.Size(), info.ModTime().UnixNano()), nil
}

func tableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
