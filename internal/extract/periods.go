package extract

import (
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/bankscope-dev/bankscope/internal/config"
	"github.com/bankscope-dev/bankscope/internal/model"
)

// periodColumn binds one parsed period to its sheet column.
type periodColumn struct {
	col    int
	period civil.Date
}

// periodColumns reads the period header row of a sheet.
//
// Under PeriodTruncate the scan stops at the first empty or unparsable
// header cell, dropping every later column; that replicates the source
// pipeline, where one malformed header silently truncates the file's
// period list. Under PeriodSkip bad cells are skipped and the scan
// continues to the end of the row.
func periodColumns(rows [][]string, layout model.SheetLayout, policy config.PeriodPolicy) ([]periodColumn, error) {
	if layout.PeriodRow >= len(rows) {
		return nil, fmt.Errorf("period row %d: %w", layout.PeriodRow+1, ErrSheetTooSmall)
	}

	header := rows[layout.PeriodRow]

	var cols []periodColumn
	for col := layout.PeriodCol; col < len(header); col++ {
		cell := trim(header[col])
		if cell == "" {
			if policy == config.PeriodTruncate {
				break
			}
			continue
		}

		period, err := model.ParsePeriod(cell)
		if err != nil {
			if policy == config.PeriodTruncate {
				break
			}
			continue
		}
		cols = append(cols, periodColumn{col: col, period: period})
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("row %d: %w", layout.PeriodRow+1, ErrNoPeriods)
	}
	return cols, nil
}
