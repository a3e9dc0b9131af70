// Package deaccum turns year-to-date income-statement filings into
// discrete monthly flows and trailing-12-month sums.
//
// Filings report cumulative totals within each calendar year, so a raw
// March value is January+February+March. Cross-period comparison needs
// the discrete month flow, and cross-season comparison needs a
// 12-month window; both are derived here over the consolidated
// multi-institution table.
package deaccum

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankscope-dev/bankscope/internal/model"
)

type seriesKey struct {
	institution string
	code        string
}

type monthKey struct {
	institution string
	code        string
	year        int
	month       time.Month
}

// Deaccumulate fills Monthly on every record: for the first calendar
// month of a year, or whenever the immediately preceding calendar month
// has no value in the same year, Monthly equals Accumulated; otherwise
// it is the difference against the previous month's accumulated value.
// The input is not modified; the result is sorted by (institution,
// code, period).
func Deaccumulate(records []model.IncomeRecord) []model.IncomeRecord {
	out := sortedCopy(records)

	prior := make(map[monthKey]decimal.NullDecimal, len(out))
	for _, r := range out {
		prior[monthKey{r.Institution, r.Code, r.Period.Year, r.Period.Month}] = r.Accumulated
	}

	for i := range out {
		r := &out[i]
		if !r.Accumulated.Valid {
			r.Monthly = decimal.NullDecimal{}
			continue
		}

		r.Monthly = r.Accumulated
		if r.Period.Month == time.January {
			continue
		}

		prev, ok := prior[monthKey{r.Institution, r.Code, r.Period.Year, r.Period.Month - 1}]
		if ok && prev.Valid {
			r.Monthly = decimal.NullDecimal{
				Decimal: r.Accumulated.Decimal.Sub(prev.Decimal),
				Valid:   true,
			}
		}
	}

	return out
}

// Rolling12M fills Trailing12M: the sum of Monthly over the 12
// consecutive calendar months ending at each record's period, defined
// only when all 12 monthly values exist. A gap in the series produces
// nulls until 12 consecutive months accrue again; there is no partial
// window and no interpolation.
func Rolling12M(records []model.IncomeRecord) []model.IncomeRecord {
	out := sortedCopy(records)

	start := 0
	for i := 1; i <= len(out); i++ {
		if i == len(out) || key(out[i]) != key(out[start]) {
			fillWindow(out[start:i])
			start = i
		}
	}
	return out
}

// fillWindow computes Trailing12M over one (institution, code) series
// already sorted by period.
func fillWindow(series []model.IncomeRecord) {
	for i := range series {
		series[i].Trailing12M = windowSum(series, i)
	}
}

func windowSum(series []model.IncomeRecord, end int) decimal.NullDecimal {
	if end < 11 {
		return decimal.NullDecimal{}
	}

	sum := decimal.Zero
	for j := end - 11; j <= end; j++ {
		if !series[j].Monthly.Valid {
			return decimal.NullDecimal{}
		}
		if j > end-11 && model.MonthsBetween(series[j-1].Period, series[j].Period) != 1 {
			return decimal.NullDecimal{}
		}
		sum = sum.Add(series[j].Monthly.Decimal)
	}
	return decimal.NullDecimal{Decimal: sum, Valid: true}
}

func key(r model.IncomeRecord) seriesKey {
	return seriesKey{r.Institution, r.Code}
}

func sortedCopy(records []model.IncomeRecord) []model.IncomeRecord {
	out := make([]model.IncomeRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Institution != out[j].Institution {
			return out[i].Institution < out[j].Institution
		}
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Period.Before(out[j].Period)
	})
	return out
}
