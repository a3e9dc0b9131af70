package extract

import (
	"github.com/bankscope-dev/bankscope/internal/config"
	"github.com/bankscope-dev/bankscope/internal/model"
)

// Indicators parses the risk-indicator ("CAMEL") sheet. Identity is
// positional: only the rows listed in model.IndicatorRows are read, and
// the indicator code and display name come from that table, never from
// cell content. Cells that fail numeric coercion are skipped rather
// than nulled: an indicator either has a value or has no record.
func (w *Workbook) Indicators(institution string, opts Options) ([]model.IndicatorRecord, error) {
	opts = opts.withDefaults()
	layout := model.IndicatorLayout

	rows, err := w.sheetRows(layout.Sheet)
	if err != nil {
		return nil, err
	}

	// Invalid header cells are skipped here regardless of the balance
	// policy: the indicator sheet interleaves annotation columns with
	// period columns, so truncation would drop real data.
	periods, err := periodColumns(rows, layout, config.PeriodSkip)
	if err != nil {
		return nil, err
	}

	var records []model.IndicatorRecord
	for _, ir := range model.IndicatorRows {
		rowIdx := ir.Row - 1
		if rowIdx >= len(rows) {
			continue
		}
		// A blank name cell means the sheet is shorter or shifted
		// relative to the positional contract; reading values there
		// would attribute stray numbers to the wrong indicator.
		if cellAt(rows, rowIdx, ir.NameCol) == "" {
			continue
		}

		for _, pc := range periods {
			cell := cellAt(rows, rowIdx, pc.col)
			if cell == "" {
				continue
			}
			value, ok := coerceRatio(cell)
			if !ok && opts.IndicatorCoerce == config.CoerceSkip {
				continue
			}
			records = append(records, model.IndicatorRecord{
				Institution: institution,
				Period:      pc.period,
				Code:        ir.Code,
				Name:        ir.Name,
				Value:       value,
				Category:    ir.Category,
			})
		}
	}

	return records, nil
}
