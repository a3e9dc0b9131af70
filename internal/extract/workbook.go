// Package extract parses the regulator's per-institution workbooks into
// long-format records. Each sheet follows a fixed position-addressed
// layout declared in internal/model; anything outside that contract is
// an extraction error scoped to the institution, never a fatal error
// for the run.
package extract

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bankscope-dev/bankscope/internal/config"
)

// Extraction error taxonomy. All are scoped to a single institution.
var (
	ErrSheetMissing  = errors.New("expected sheet not found")
	ErrSheetTooSmall = errors.New("sheet has fewer rows than the layout requires")
	ErrNoPeriods     = errors.New("no valid period header cells")
)

// Options selects the extraction policies. Zero values fall back to the
// historical behavior (truncate on bad period headers, null on bad
// balance cells, skip on bad indicator cells).
type Options struct {
	PeriodPolicy    config.PeriodPolicy
	BalanceCoerce   config.CoercePolicy
	IndicatorCoerce config.CoercePolicy
}

func (o Options) withDefaults() Options {
	if o.PeriodPolicy == "" {
		o.PeriodPolicy = config.PeriodTruncate
	}
	if o.BalanceCoerce == "" {
		o.BalanceCoerce = config.CoerceNull
	}
	if o.IndicatorCoerce == "" {
		o.IndicatorCoerce = config.CoerceSkip
	}
	return o
}

// Workbook wraps one institution's spreadsheet file.
type Workbook struct {
	f    *excelize.File
	path string
}

// OpenWorkbook opens an .xlsx workbook from disk.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	return &Workbook{f: f, path: path}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// sheetRows returns all cell values of a sheet as strings. Rows are
// jagged: trailing empty cells are absent, so access goes through cellAt.
func (w *Workbook) sheetRows(sheet string) ([][]string, error) {
	idx, err := w.f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%s: %w", sheet, ErrSheetMissing)
	}
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// cellAt returns the trimmed cell value at (row, col), or "" when the
// position falls outside the jagged row data.
func cellAt(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	r := rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return trim(r[col])
}
