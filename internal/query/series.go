package query

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// SeriesPoint is one observation of a time series.
type SeriesPoint struct {
	Period civil.Date
	Value  decimal.Decimal
}

// BalanceSeries returns one institution's history for an account code,
// ordered by period. Null amounts produce no point.
func (e *Engine) BalanceSeries(institution, code string) ([]SeriesPoint, error) {
	records, _, err := e.balance()
	if err != nil {
		return nil, err
	}

	var series []SeriesPoint
	for _, r := range records {
		if r.Institution != institution || r.Code != code || !r.Amount.Valid {
			continue
		}
		series = append(series, SeriesPoint{r.Period, r.Amount.Decimal})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("account %s for %s: %w", code, institution, ErrNoData)
	}
	sortSeries(series)
	return series, nil
}

// SystemSeries returns the sector-wide total for an account code: the
// sum over all institutions per period.
func (e *Engine) SystemSeries(code string) ([]SeriesPoint, error) {
	records, _, err := e.balance()
	if err != nil {
		return nil, err
	}

	totals := map[civil.Date]decimal.Decimal{}
	for _, r := range records {
		if r.Code != code {
			continue
		}
		totals[r.Period] = sumValid(totals[r.Period], r.Amount)
	}
	if len(totals) == 0 {
		return nil, fmt.Errorf("account %s: %w", code, ErrNoData)
	}

	series := make([]SeriesPoint, 0, len(totals))
	for period, total := range totals {
		series = append(series, SeriesPoint{period, total})
	}
	sortSeries(series)
	return series, nil
}

// IncomeSeries returns one institution's monthly history for an income
// code. The monthly column is the de-accumulated value; null months
// produce no point.
func (e *Engine) IncomeSeries(institution, code string) ([]SeriesPoint, error) {
	records, _, err := e.income()
	if err != nil {
		return nil, err
	}

	var series []SeriesPoint
	for _, r := range records {
		if r.Institution != institution || r.Code != code || !r.Monthly.Valid {
			continue
		}
		series = append(series, SeriesPoint{r.Period, r.Monthly.Decimal})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("income %s for %s: %w", code, institution, ErrNoData)
	}
	sortSeries(series)
	return series, nil
}

// IndicatorSeries returns one institution's history for an indicator.
func (e *Engine) IndicatorSeries(institution string, code string) ([]SeriesPoint, error) {
	records, _, err := e.indicators()
	if err != nil {
		return nil, err
	}

	var series []SeriesPoint
	for _, r := range records {
		if r.Institution != institution || string(r.Code) != code || !r.Value.Valid {
			continue
		}
		series = append(series, SeriesPoint{r.Period, r.Value.Decimal})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("indicator %s for %s: %w", code, institution, ErrNoData)
	}
	sortSeries(series)
	return series, nil
}

func sortSeries(series []SeriesPoint) {
	sort.Slice(series, func(i, j int) bool { return series[i].Period.Before(series[j].Period) })
}
