package extract

import (
	"fmt"

	"github.com/bankscope-dev/bankscope/internal/model"
)

// Balance parses the balance-sheet ("BAL") sheet into long-format
// records: one record per non-empty account row per period column.
// Amount cells that fail numeric coercion become null under the default
// policy; rows where both code and name are empty are skipped.
func (w *Workbook) Balance(institution string, opts Options) ([]model.BalanceRecord, error) {
	opts = opts.withDefaults()
	layout := model.BalanceLayout

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

	var records []model.BalanceRecord
	for r := layout.DataRow; r < len(rows); r++ {
		code := cellAt(rows, r, layout.CodeCol)
		name := cellAt(rows, r, layout.NameCol)
		if code == "" && name == "" {
			continue
		}

		depth := model.DepthOf(code)
		for _, pc := range periods {
			amount, emit := coerceAmount(cellAt(rows, r, pc.col), opts.BalanceCoerce)
			if !emit {
				continue
			}
			records = append(records, model.BalanceRecord{
				Institution: institution,
				Period:      pc.period,
				Code:        code,
				Name:        name,
				Amount:      amount,
				Depth:       depth,
			})
		}
	}

	return records, nil
}
