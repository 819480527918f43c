package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/atomicstack/gridmenu/internal/grid"
)

type workbookSource struct {
	path  string
	sheet string
}

func (s *workbookSource) Kind() Kind   { return KindXLSX }
func (s *workbookSource) Path() string { return s.path }

func (s *workbookSource) Fingerprint() (string, error) {
	fp, err := fileFingerprint(s.path)
	if err != nil {
		return "", err
	}
	return fp + ":" + s.sheet, nil
}

// Load reads the configured sheet, or the first sheet when none is set. The
// first row is the header.
func (s *workbookSource) Load(ctx context.Context) (*grid.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", s.path)
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("workbook %s has no sheet %q", s.path, sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return grid.NewTable(sheet, nil, nil), nil
	}
	return grid.NewTable(sheet, rows[0], rows[1:]), nil
}
