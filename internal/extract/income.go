package extract

import (
	"fmt"

	"github.com/bankscope-dev/bankscope/internal/model"
)

// Income parses the income-statement ("PYG") sheet. Values are
// accumulated within the calendar year as filed; de-accumulation happens
// later over the consolidated table (internal/deaccum).
//
// Rows carrying the "--" sentinel in the code column are summary lines
// identified by name and mapped to one of the seven mnemonic codes;
// summary rows matching no known name are discarded. Empty value cells
// mean the month was not filed and produce no record.
func (w *Workbook) Income(institution string, opts Options) ([]model.IncomeRecord, error) {
	opts = opts.withDefaults()
	layout := model.IncomeLayout

	rows, err := w.sheetRows(layout.Sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) <= layout.DataRow {
		return nil, fmt.Errorf("%s has %d rows: %w", layout.Sheet, len(rows), ErrSheetTooSmall)
	}

	periods, err := periodColumns(rows, layout, opts.PeriodPolicy)
	if err != nil {
		return nil, err
	}

	lastRow := len(rows)
	if layout.MaxRow > 0 && layout.MaxRow+1 < lastRow {
		lastRow = layout.MaxRow + 1
	}

	var records []model.IncomeRecord
	for r := layout.DataRow; r < lastRow; r++ {
		rawCode := cellAt(rows, r, layout.CodeCol)
		name := cellAt(rows, r, layout.NameCol)
		if rawCode == "" || name == "" {
			continue
		}

		code := rawCode
		if rawCode == model.SummaryMarker {
			summary, ok := model.MatchSummaryName(name)
			if !ok {
				continue
			}
			code = string(summary)
		}

		for _, pc := range periods {
			cell := cellAt(rows, r, pc.col)
			if cell == "" {
				continue // month not filed
			}
			accumulated, emit := coerceAmount(cell, opts.BalanceCoerce)
			if !emit {
				continue
			}
			records = append(records, model.IncomeRecord{
				Institution: institution,
				Period:      pc.period,
				Code:        code,
				Name:        name,
				Accumulated: accumulated,
			})
		}
	}

	return records, nil
}
