package store

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bankscope-dev/bankscope/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return s
}

func dec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func sampleBalance() []model.BalanceRecord {
	return []model.BalanceRecord{
		{
			Institution: "BANCO UNO",
			Period:      model.MonthEnd(2024, time.January),
			Code:        "1",
			Name:        "ACTIVO",
			Amount:      dec("100.5"),
			Depth:       1,
		},
		{
			Institution: "BANCO UNO",
			Period:      model.MonthEnd(2024, time.January),
			Code:        "1401",
			Name:        "CARTERA COMERCIAL",
			Depth:       3, // null amount
		},
	}
}

func TestBalanceRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ReplaceBalance(sampleBalance()))

	got, summary, err := s.LoadBalance()
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "BANCO UNO", got[0].Institution)
	assert.Equal(t, model.MonthEnd(2024, time.January), got[0].Period)
	assert.True(t, got[0].Amount.Decimal.Equal(decimal.RequireFromString("100.5")))
	assert.False(t, got[1].Amount.Valid, "null survives the round trip")

	assert.Equal(t, 2, summary.OriginalRows)
	assert.Equal(t, 2, summary.RetainedRows)
	assert.Equal(t, 1, summary.NullValues)
	assert.Equal(t, 1, summary.Institutions)
}

func TestLoadCleansEmptyNames(t *testing.T) {
	s := newTestStore(t)
	records := append(sampleBalance(), model.BalanceRecord{
		Institution: "BANCO UNO",
		Period:      model.MonthEnd(2024, time.January),
		Code:        "9999",
		Name:        "", // dropped at load
		Amount:      dec("1"),
	})
	require.NoError(t, s.ReplaceBalance(records))

	got, summary, err := s.LoadBalance()
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 3, summary.OriginalRows)
	assert.Equal(t, 1, summary.DroppedRows())
}

func TestLoadMissingTable(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.LoadBalance()
	require.ErrorIs(t, err, ErrTableMissing)
}

func TestReplaceRejectsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ReplaceBalance(sampleBalance()))

	err := s.ReplaceBalance(nil)
	require.ErrorIs(t, err, ErrEmptyReplace)

	// The previous table must be intact.
	got, _, err := s.LoadBalance()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReplaceIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.ReplaceBalance(sampleBalance()))
	first := tableChecksum(t, s, BalanceFile)

	require.NoError(t, s.ReplaceBalance(sampleBalance()))
	second := tableChecksum(t, s, BalanceFile)

	assert.Equal(t, first, second, "identical input must produce byte-identical tables")
}

func tableChecksum(t *testing.T, s *Store, name string) [32]byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(s.Dir(), name))
	require.NoError(t, err)
	return sha256.Sum256(data)
}

func TestReplaceLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ReplaceBalance(sampleBalance()))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, BalanceFile, entries[0].Name())
}

func TestIncomeRoundTrip(t *testing.T) {
	s := newTestStore(t)
	records := []model.IncomeRecord{
		{
			Institution: "BANCO UNO",
			Period:      model.MonthEnd(2024, time.February),
			Code:        "MNI",
			Name:        "MARGEN NETO DE INTERESES",
			Accumulated: dec("25"),
			Monthly:     dec("15"),
			// Trailing12M null: short window
		},
	}
	require.NoError(t, s.ReplaceIncome(records))

	got, summary, err := s.LoadIncome()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Monthly.Decimal.Equal(decimal.RequireFromString("15")))
	assert.False(t, got[0].Trailing12M.Valid)
	assert.Equal(t, 0, summary.NullValues, "null accounting tracks the monthly column")
}

func TestIndicatorsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	records := []model.IndicatorRecord{
		{
			Institution: "BANCO UNO",
			Period:      model.MonthEnd(2024, time.January),
			Code:        model.IndSolvency,
			Name:        "Solvency Ratio PTC/APPR",
			Value:       dec("0.145"),
			Category:    model.CategoryCapital,
		},
	}
	require.NoError(t, s.ReplaceIndicators(records))

	got, _, err := s.LoadIndicators()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.IndSolvency, got[0].Code)
	assert.Equal(t, model.CategoryCapital, got[0].Category)
}

func TestMetadataRoundTrip(t *testing.T) {
	s := newTestStore(t)
	meta := model.RunMetadata{
		LastRunTimestamp:      time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		InstitutionsProcessed: []string{"BANCO UNO"},
		InstitutionsFailed:    []string{"BANCO DOS"},
		TotalRecords:          42,
		MinPeriod:             "2024-01-31",
		MaxPeriod:             "2024-12-31",
	}
	require.NoError(t, s.WriteMetadata(meta))

	got, err := s.LoadMetadata()
	require.NoError(t, err)
	assert.Equal(t, meta, got)
}

func TestCacheInvalidationOnReplace(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ReplaceBalance(sampleBalance()))

	s.PutCached("ranking/1", "cached-result")
	v, ok := s.GetCached("ranking/1")
	require.True(t, ok)
	assert.Equal(t, "cached-result", v)

	require.NoError(t, s.ReplaceBalance(sampleBalance()))
	_, ok = s.GetCached("ranking/1")
	assert.False(t, ok, "replacement must invalidate cached queries")
}
