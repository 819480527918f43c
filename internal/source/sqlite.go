package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/atomicstack/gridmenu/internal/grid"
)

type sqliteSource struct {
	path  string
	query string
}

func sqliteQuery(opts Options) (string, error) {
	if q := strings.TrimSpace(opts.Query); q != "" {
		return q, nil
	}
	if t := strings.TrimSpace(opts.Table); t != "" {
		return "SELECT * FROM " + quoteIdent(t), nil
	}
	return "", ErrNoQuery
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (s *sqliteSource) Kind() Kind   { return KindSQLite }
func (s *sqliteSource) Path() string { return s.path }

// Fingerprint covers the main database file only. Writes still sitting in a
// WAL file are picked up on the next checkpoint.
func (s *sqliteSource) Fingerprint() (string, error) {
	fp, err := fileFingerprint(s.path)
	if err != nil {
		return "", err
	}
	return fp + ":" + s.query, nil
}

func (s *sqliteSource) Load(ctx context.Context) (*grid.Table, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", s.path, err)
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=500"); err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	rows, err := db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.path, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	var records [][]string
	for rows.Next() {
		values := make([]any, len(header))
		ptrs := make([]any, len(header))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		record := make([]string, len(header))
		for i, v := range values {
			record[i] = formatValue(v)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return grid.NewTable(tableName(s.path), header, records), nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
