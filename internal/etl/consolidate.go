package etl

import (
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"

	"github.com/bankscope-dev/bankscope/internal/deaccum"
	"github.com/bankscope-dev/bankscope/internal/model"
)

// consolidate merges per-institution results into the three master
// tables and replaces them. Nothing is written unless at least one
// institution extracted cleanly.
func (r *Runner) consolidate(results []Result) (*Report, error) {
	report := &Report{}

	var (
		balance    []model.BalanceRecord
		income     []model.IncomeRecord
		indicators []model.IndicatorRecord
	)
	for _, res := range results {
		if res.failed() {
			reason := "no records extracted"
			if res.Err != nil {
				reason = res.Err.Error()
			}
			report.Failed = append(report.Failed, Failure{res.Institution, reason})
			continue
		}
		report.Processed = append(report.Processed, res.Institution)
		balance = append(balance, res.Balance...)
		income = append(income, res.Income...)
		indicators = append(indicators, res.Indicators...)
	}
	if len(report.Processed) == 0 {
		return nil, ErrAllFailed
	}

	// Accumulated values come straight off the sheets; the monthly and
	// trailing columns are derived here, across the full consolidated
	// frame, so series that span workbooks stay contiguous.
	income = deaccum.Deaccumulate(income)
	income = deaccum.Rolling12M(income)

	indicators = dedupeIndicators(indicators)
	sortIndicators(indicators)

	report.TotalRecords = len(balance) + len(income) + len(indicators)
	report.MinPeriod, report.MaxPeriod = periodBounds(balance, income, indicators)

	// An empty table (every workbook missing that one sheet) skips its
	// replacement so the previous version survives; the other tables are
	// still written.
	if len(balance) == 0 {
		r.logger.Warn("no balance records extracted, keeping previous table")
	} else if err := r.store.ReplaceBalance(balance); err != nil {
		return nil, fmt.Errorf("replacing balance table: %w", err)
	}
	if len(income) == 0 {
		r.logger.Warn("no income records extracted, keeping previous table")
	} else if err := r.store.ReplaceIncome(income); err != nil {
		return nil, fmt.Errorf("replacing income table: %w", err)
	}
	if len(indicators) == 0 {
		r.logger.Warn("no indicator records extracted, keeping previous table")
	} else if err := r.store.ReplaceIndicators(indicators); err != nil {
		return nil, fmt.Errorf("replacing indicator table: %w", err)
	}

	var failedNames []string
	for _, f := range report.Failed {
		failedNames = append(failedNames, f.Institution)
	}

	meta := model.RunMetadata{
		LastRunTimestamp:      time.Now().UTC(),
		InstitutionsProcessed: report.Processed,
		InstitutionsFailed:    failedNames,
		TotalRecords:          report.TotalRecords,
		MinPeriod:             report.MinPeriod.String(),
		MaxPeriod:             report.MaxPeriod.String(),
	}
	if err := r.store.WriteMetadata(meta); err != nil {
		return nil, fmt.Errorf("writing run metadata: %w", err)
	}
	return report, nil
}

// dedupeIndicators keeps the first occurrence of each
// (institution, period, indicator) triple. Duplicate triples can only
// come from a malformed sheet repeating an indicator row.
func dedupeIndicators(records []model.IndicatorRecord) []model.IndicatorRecord {
	type key struct {
		institution string
		period      civil.Date
		code        model.IndicatorCode
	}
	seen := make(map[key]struct{}, len(records))
	out := records[:0]
	for _, rec := range records {
		k := key{rec.Institution, rec.Period, rec.Code}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, rec)
	}
	return out
}

func sortIndicators(records []model.IndicatorRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Institution != b.Institution {
			return a.Institution < b.Institution
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.Period.Before(b.Period)
	})
}

func periodBounds(balance []model.BalanceRecord, income []model.IncomeRecord, indicators []model.IndicatorRecord) (civil.Date, civil.Date) {
	var min, max civil.Date
	observe := func(p civil.Date) {
		if !p.IsValid() {
			return
		}
		if !min.IsValid() || p.Before(min) {
			min = p
		}
		if !max.IsValid() || p.After(max) {
			max = p
		}
	}
	for _, r := range balance {
		observe(r.Period)
	}
	for _, r := range income {
		observe(r.Period)
	}
	for _, r := range indicators {
		observe(r.Period)
	}
	return min, max
}
