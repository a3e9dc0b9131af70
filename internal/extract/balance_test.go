package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankscope-dev/bankscope/internal/config"
	"github.com/bankscope-dev/bankscope/internal/model"
)

func balanceFixture(t *testing.T, extra ...cell) string {
	cells := []cell{
		{"C5", "ene-2024"},
		{"D5", "feb-2024"},
		{"A7", "1"}, {"B7", "ACTIVO"}, {"C7", 100.5}, {"D7", 110.0},
		{"A8", "14"}, {"B8", "CARTERA DE CREDITOS"}, {"C8", 60.0}, {"D8", 65.0},
		{"A9", "1401"}, {"B9", "CARTERA COMERCIAL"}, {"C9", "n/d"}, {"D9", 30.0},
	}
	return writeWorkbook(t, "BAL", append(cells, extra...))
}

func TestBalanceLongFormat(t *testing.T) {
	w := openFixture(t, balanceFixture(t))

	records, err := w.Balance("BANCO UNO", Options{})
	require.NoError(t, err)
	require.Len(t, records, 6, "3 rows x 2 periods")

	first := records[0]
	assert.Equal(t, "BANCO UNO", first.Institution)
	assert.Equal(t, "1", first.Code)
	assert.Equal(t, "ACTIVO", first.Name)
	assert.Equal(t, 1, first.Depth)
	assert.Equal(t, model.MonthEnd(2024, 1), first.Period)
	require.True(t, first.Amount.Valid)
	assert.True(t, first.Amount.Decimal.Equal(dec("100.5")))

	assert.Equal(t, 2, records[2].Depth, "code 14 -> depth 2")
	assert.Equal(t, 3, records[4].Depth, "code 1401 -> depth 3")
}

func TestBalanceCoercionFailureBecomesNull(t *testing.T) {
	w := openFixture(t, balanceFixture(t))

	records, err := w.Balance("BANCO UNO", Options{})
	require.NoError(t, err)

	// Row "1401", period ene-2024 holds "n/d".
	var found bool
	for _, r := range records {
		if r.Code == "1401" && r.Period == model.MonthEnd(2024, 1) {
			found = true
			assert.False(t, r.Amount.Valid, "uncoercible cell must be null, not dropped")
		}
	}
	assert.True(t, found)
}

func TestBalanceSkipCoercePolicy(t *testing.T) {
	w := openFixture(t, balanceFixture(t))

	records, err := w.Balance("BANCO UNO", Options{BalanceCoerce: config.CoerceSkip})
	require.NoError(t, err)
	require.Len(t, records, 5, "the n/d cell emits no record under skip")
}

func TestBalanceTruncatesAtBadPeriodHeader(t *testing.T) {
	// A malformed header in E5 must drop E and every later column.
	path := balanceFixture(t, cell{"E5", "garbage"}, cell{"F5", "abr-2024"}, cell{"E7", 999.0})
	w := openFixture(t, path)

	records, err := w.Balance("BANCO UNO", Options{})
	require.NoError(t, err)
	for _, r := range records {
		assert.NotEqual(t, model.MonthEnd(2024, 4), r.Period, "truncation drops trailing valid periods too")
	}
	require.Len(t, records, 6)
}

func TestBalanceSkipPeriodPolicyKeepsTrailingPeriods(t *testing.T) {
	path := balanceFixture(t, cell{"E5", "garbage"}, cell{"F5", "abr-2024"}, cell{"F7", 999.0})
	w := openFixture(t, path)

	records, err := w.Balance("BANCO UNO", Options{PeriodPolicy: config.PeriodSkip})
	require.NoError(t, err)

	var aprils int
	for _, r := range records {
		if r.Period == model.MonthEnd(2024, 4) {
			aprils++
		}
	}
	assert.Equal(t, 3, aprils, "one april record per data row")
}

func TestBalanceMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "OTHER", []cell{{"A1", "x"}})
	w := openFixture(t, path)

	_, err := w.Balance("BANCO UNO", Options{})
	require.ErrorIs(t, err, ErrSheetMissing)
}

func TestBalanceTooFewRows(t *testing.T) {
	path := writeWorkbook(t, "BAL", []cell{{"A1", "header only"}})
	w := openFixture(t, path)

	_, err := w.Balance("BANCO UNO", Options{})
	require.ErrorIs(t, err, ErrSheetTooSmall)
}

func TestBalanceSkipsFullyEmptyRows(t *testing.T) {
	// Row 8 left empty: code and name both blank.
	path := writeWorkbook(t, "BAL", []cell{
		{"C5", "ene-2024"},
		{"A7", "1"}, {"B7", "ACTIVO"}, {"C7", 1.0},
		{"A9", "2"}, {"B9", "PASIVO"}, {"C9", 2.0},
	})
	w := openFixture(t, path)

	records, err := w.Balance("BANCO UNO", Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)
}
