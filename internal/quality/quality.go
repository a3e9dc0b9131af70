// Package quality derives data-quality findings from the master tables:
// coverage gaps, missing periods, null rates and accounting-equation
// violations. Findings are reported for human review, never enforced —
// a violated invariant does not reject data.
package quality

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/bankscope-dev/bankscope/internal/model"
)

// Status classifies an accounting-equation check.
type Status string

const (
	StatusOK      Status = "OK"
	StatusWarning Status = "Warning"
	StatusError   Status = "Error"
)

// warningThresholdPct is the relative difference above which an
// equation mismatch escalates from Warning to Error.
var warningThresholdPct = decimal.NewFromInt(1)

// EquationCheck is the accounting-equation result for one institution
// at one period: assets (code "1") against liabilities (code "2") plus
// equity (code "3").
type EquationCheck struct {
	Institution   string
	Period        civil.Date
	Assets        decimal.Decimal
	Liabilities   decimal.Decimal
	Equity        decimal.Decimal
	Difference    decimal.Decimal
	PctDifference decimal.Decimal // percent of assets
	Status        Status
}

// LiabilitiesPlusEquity returns the right-hand side of the equation.
func (c EquationCheck) LiabilitiesPlusEquity() decimal.Decimal {
	return c.Liabilities.Add(c.Equity)
}

// CheckEquation validates assets == liabilities + equity for every
// institution present at the given period. tolerance is the fraction of
// assets (e.g. 0.01) below which the difference is OK; above it the
// check reports Warning up to 1% and Error beyond. Results are sorted
// by percent difference, worst first.
func CheckEquation(records []model.BalanceRecord, period civil.Date, tolerance decimal.Decimal) []EquationCheck {
	type sums struct{ assets, liabilities, equity decimal.Decimal }
	perInst := map[string]*sums{}

	for _, r := range records {
		if r.Period != period || !r.Amount.Valid {
			continue
		}
		s, ok := perInst[r.Institution]
		if !ok {
			s = &sums{}
			perInst[r.Institution] = s
		}
		switch r.Code {
		case model.CodeAssets:
			s.assets = s.assets.Add(r.Amount.Decimal)
		case model.CodeLiabilities:
			s.liabilities = s.liabilities.Add(r.Amount.Decimal)
		case model.CodeEquity:
			s.equity = s.equity.Add(r.Amount.Decimal)
		}
	}

	tolerancePct := tolerance.Mul(decimal.NewFromInt(100))

	var checks []EquationCheck
	for inst, s := range perInst {
		diff := s.assets.Sub(s.liabilities.Add(s.equity))

		var pct decimal.Decimal
		switch {
		case s.assets.IsPositive():
			pct = diff.Abs().Div(s.assets).Mul(decimal.NewFromInt(100))
		case !diff.IsZero():
			// No positive asset base to scale by; any imbalance is as
			// bad as it gets.
			pct = decimal.NewFromInt(100)
		}

		status := StatusError
		switch {
		case pct.LessThanOrEqual(tolerancePct):
			status = StatusOK
		case pct.LessThanOrEqual(warningThresholdPct):
			status = StatusWarning
		}

		checks = append(checks, EquationCheck{
			Institution:   inst,
			Period:        period,
			Assets:        s.assets,
			Liabilities:   s.liabilities,
			Equity:        s.equity,
			Difference:    diff,
			PctDifference: pct,
			Status:        status,
		})
	}

	sort.Slice(checks, func(i, j int) bool {
		if !checks[i].PctDifference.Equal(checks[j].PctDifference) {
			return checks[i].PctDifference.GreaterThan(checks[j].PctDifference)
		}
		return checks[i].Institution < checks[j].Institution
	})
	return checks
}

// LatestPeriod returns the maximum period in a balance table, useful as
// the default period for equation checks.
func LatestPeriod(records []model.BalanceRecord) (civil.Date, bool) {
	var max civil.Date
	found := false
	for _, r := range records {
		if !found || r.Period.After(max) {
			max = r.Period
			found = true
		}
	}
	return max, found
}
