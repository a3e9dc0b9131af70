package query

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/bankscope-dev/bankscope/internal/model"
)

// RankingEntry is one institution's value at the ranking period.
type RankingEntry struct {
	Institution string
	Value       decimal.Decimal
}

// Ranking is a per-institution ordering for one account or indicator at
// one period. Resolved may precede Requested when the exact period has
// no data yet.
type Ranking struct {
	Requested civil.Date
	Resolved  civil.Date
	Entries   []RankingEntry
}

// BalanceRanking ranks institutions by the amount of one account code at
// the requested period, descending. Null amounts are excluded.
func (e *Engine) BalanceRanking(code string, period civil.Date) (Ranking, error) {
	records, _, err := e.balance()
	if err != nil {
		return Ranking{}, err
	}

	var periods []civil.Date
	seen := map[civil.Date]struct{}{}
	for _, r := range records {
		if r.Code != code {
			continue
		}
		if _, dup := seen[r.Period]; dup {
			continue
		}
		seen[r.Period] = struct{}{}
		periods = append(periods, r.Period)
	}

	resolved, ok := AvailablePeriod(periods, period)
	if !ok {
		return Ranking{}, fmt.Errorf("account %s: %w", code, ErrNoData)
	}

	ranking := Ranking{Requested: period, Resolved: resolved}
	for _, r := range records {
		if r.Code != code || r.Period != resolved || !r.Amount.Valid {
			continue
		}
		ranking.Entries = append(ranking.Entries, RankingEntry{r.Institution, r.Amount.Decimal})
	}
	sortRanking(ranking.Entries)
	return ranking, nil
}

// IndicatorRanking ranks institutions by one indicator at the requested
// period, descending, with the same lag-tolerant period resolution.
func (e *Engine) IndicatorRanking(code model.IndicatorCode, period civil.Date) (Ranking, error) {
	records, _, err := e.indicators()
	if err != nil {
		return Ranking{}, err
	}

	var periods []civil.Date
	seen := map[civil.Date]struct{}{}
	for _, r := range records {
		if r.Code != code || !r.Value.Valid {
			continue
		}
		if _, dup := seen[r.Period]; dup {
			continue
		}
		seen[r.Period] = struct{}{}
		periods = append(periods, r.Period)
	}

	resolved, ok := AvailablePeriod(periods, period)
	if !ok {
		return Ranking{}, fmt.Errorf("indicator %s: %w", code, ErrNoData)
	}

	ranking := Ranking{Requested: period, Resolved: resolved}
	for _, r := range records {
		if r.Code != code || r.Period != resolved || !r.Value.Valid {
			continue
		}
		ranking.Entries = append(ranking.Entries, RankingEntry{r.Institution, r.Value.Decimal})
	}
	sortRanking(ranking.Entries)
	return ranking, nil
}

// sortRanking orders entries by value descending, then by institution
// name so equal values rank deterministically.
func sortRanking(entries []RankingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Value.Equal(entries[j].Value) {
			return entries[i].Value.GreaterThan(entries[j].Value)
		}
		return entries[i].Institution < entries[j].Institution
	})
}
