package quality

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankscope-dev/bankscope/internal/model"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func balRec(inst, code string, year int, month time.Month, amount string) model.BalanceRecord {
	return model.BalanceRecord{
		Institution: inst,
		Period:      model.MonthEnd(year, month),
		Code:        code,
		Name:        "ACCOUNT " + code,
		Amount:      dec(amount),
		Depth:       model.DepthOf(code),
	}
}

func tolerance() decimal.Decimal { return decimal.RequireFromString("0.01") }

func TestCheckEquationOK(t *testing.T) {
	period := model.MonthEnd(2024, time.December)
	records := []model.BalanceRecord{
		balRec("BANCO UNO", "1", 2024, time.December, "100"),
		balRec("BANCO UNO", "2", 2024, time.December, "60"),
		balRec("BANCO UNO", "3", 2024, time.December, "40"),
	}

	checks := CheckEquation(records, period, tolerance())
	require.Len(t, checks, 1)
	assert.Equal(t, StatusOK, checks[0].Status)
	assert.True(t, checks[0].Difference.IsZero())
	assert.True(t, checks[0].LiabilitiesPlusEquity().Equal(decimal.RequireFromString("100")))
}

func TestCheckEquationError(t *testing.T) {
	period := model.MonthEnd(2024, time.December)
	records := []model.BalanceRecord{
		balRec("BANCO UNO", "1", 2024, time.December, "100"),
		balRec("BANCO UNO", "2", 2024, time.December, "60"),
		balRec("BANCO UNO", "3", 2024, time.December, "30"),
	}

	checks := CheckEquation(records, period, tolerance())
	require.Len(t, checks, 1)
	assert.Equal(t, StatusError, checks[0].Status, "10%% deficit vs 1%% tolerance")
	assert.True(t, checks[0].Difference.Equal(decimal.RequireFromString("10")))
	assert.True(t, checks[0].PctDifference.Equal(decimal.RequireFromString("10")))
}

func TestCheckEquationNonPositiveAssets(t *testing.T) {
	period := model.MonthEnd(2024, time.December)
	records := []model.BalanceRecord{
		balRec("BANCO CERO", "1", 2024, time.December, "0"),
		balRec("BANCO CERO", "2", 2024, time.December, "50"),
		balRec("BANCO NEGATIVO", "1", 2024, time.December, "-10"),
		balRec("BANCO NEGATIVO", "2", 2024, time.December, "-10"),
	}

	checks := CheckEquation(records, period, tolerance())
	require.Len(t, checks, 2)

	// Zero assets against a nonzero right-hand side cannot pass.
	assert.Equal(t, "BANCO CERO", checks[0].Institution)
	assert.Equal(t, StatusError, checks[0].Status)
	assert.True(t, checks[0].PctDifference.Equal(decimal.NewFromInt(100)))

	// A balanced statement stays OK whatever the sign of the totals.
	assert.Equal(t, "BANCO NEGATIVO", checks[1].Institution)
	assert.Equal(t, StatusOK, checks[1].Status)
}

func TestCheckEquationWarningBand(t *testing.T) {
	period := model.MonthEnd(2024, time.December)
	records := []model.BalanceRecord{
		balRec("BANCO UNO", "1", 2024, time.December, "1000"),
		balRec("BANCO UNO", "2", 2024, time.December, "600"),
		balRec("BANCO UNO", "3", 2024, time.December, "392"), // 0.8% off
	}

	checks := CheckEquation(records, period, decimal.RequireFromString("0.005"))
	require.Len(t, checks, 1)
	assert.Equal(t, StatusWarning, checks[0].Status)
}

func TestCheckEquationSortsWorstFirst(t *testing.T) {
	period := model.MonthEnd(2024, time.December)
	records := []model.BalanceRecord{
		balRec("BANCO BIEN", "1", 2024, time.December, "100"),
		balRec("BANCO BIEN", "2", 2024, time.December, "60"),
		balRec("BANCO BIEN", "3", 2024, time.December, "40"),
		balRec("BANCO MAL", "1", 2024, time.December, "100"),
		balRec("BANCO MAL", "2", 2024, time.December, "50"),
		balRec("BANCO MAL", "3", 2024, time.December, "30"),
	}

	checks := CheckEquation(records, period, tolerance())
	require.Len(t, checks, 2)
	assert.Equal(t, "BANCO MAL", checks[0].Institution)
	assert.Equal(t, "BANCO BIEN", checks[1].Institution)
}

func TestCheckEquationIgnoresOtherPeriodsAndNulls(t *testing.T) {
	period := model.MonthEnd(2024, time.December)
	records := []model.BalanceRecord{
		balRec("BANCO UNO", "1", 2024, time.December, "100"),
		balRec("BANCO UNO", "2", 2024, time.December, "60"),
		balRec("BANCO UNO", "3", 2024, time.December, "40"),
		balRec("BANCO UNO", "1", 2024, time.November, "999"),
		{Institution: "BANCO UNO", Period: period, Code: "2", Name: "PASIVO"}, // null amount
	}

	checks := CheckEquation(records, period, tolerance())
	require.Len(t, checks, 1)
	assert.Equal(t, StatusOK, checks[0].Status)
}

func TestCoverageMatrix(t *testing.T) {
	records := []model.BalanceRecord{
		balRec("BANCO UNO", "1", 2023, time.June, "1"),
		balRec("BANCO UNO", "1", 2024, time.June, "1"),
		balRec("BANCO DOS", "1", 2024, time.June, "1"),
	}

	cov := CoverageMatrix(records)
	assert.Equal(t, []string{"BANCO DOS", "BANCO UNO"}, cov.Institutions)
	assert.Equal(t, []int{2023, 2024}, cov.Years)
	assert.True(t, cov.Has("BANCO UNO", 2023))
	assert.False(t, cov.Has("BANCO DOS", 2023))
	assert.True(t, cov.Has("BANCO DOS", 2024))
}

func TestMissingInstitutions(t *testing.T) {
	records := []model.BalanceRecord{
		balRec("BANCO UNO", "1", 2024, time.June, "1"),
	}

	missing := MissingInstitutions(records, []string{"BANCO UNO", "BANCO DOS", "BANCO TRES"})
	assert.Equal(t, []string{"BANCO DOS", "BANCO TRES"}, missing)

	assert.Empty(t, MissingInstitutions(records, nil))
}

func TestMissingPeriods(t *testing.T) {
	observed := []civil.Date{
		model.MonthEnd(2024, time.January),
		model.MonthEnd(2024, time.February),
		model.MonthEnd(2024, time.April), // March missing
	}

	missing := MissingPeriods(observed)
	require.Len(t, missing, 1)
	assert.Equal(t, model.MonthEnd(2024, time.March), missing[0])

	assert.Empty(t, MissingPeriods(nil))
	assert.Empty(t, MissingPeriods(observed[:2]))
}

func TestLatestPeriod(t *testing.T) {
	records := []model.BalanceRecord{
		balRec("BANCO UNO", "1", 2023, time.June, "1"),
		balRec("BANCO UNO", "1", 2024, time.March, "1"),
	}

	max, ok := LatestPeriod(records)
	require.True(t, ok)
	assert.Equal(t, model.MonthEnd(2024, time.March), max)

	_, ok = LatestPeriod(nil)
	assert.False(t, ok)
}

func TestCheckIndicatorRanges(t *testing.T) {
	records := []model.IndicatorRecord{
		{Institution: "BANCO UNO", Code: model.IndNPLTotal, Value: dec("0.04")},
		{Institution: "BANCO UNO", Code: model.IndNPLTotal, Value: dec("1.7")},
		{Institution: "BANCO UNO", Code: model.IndROE, Value: dec("-2.5")},
		{Institution: "BANCO UNO", Code: model.IndLiquidity, Value: dec("9.9")}, // no range defined
	}

	alerts := CheckIndicatorRanges(records)
	require.Len(t, alerts, 2)
	assert.Equal(t, model.IndNPLTotal, alerts[0].Code)
	assert.Equal(t, 1, alerts[0].Affected)
	assert.Equal(t, model.IndROE, alerts[1].Code)
}
