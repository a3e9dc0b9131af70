package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankscope-dev/bankscope/internal/model"
)

func incomeFixture(t *testing.T) string {
	return writeWorkbook(t, "PYG", []cell{
		{"C5", "ene-2024"},
		{"D5", "feb-2024"},
		{"A6", "51"}, {"B6", "INTERESES Y DESCUENTOS GANADOS"}, {"C6", 10.0}, {"D6", 25.0},
		{"A7", "--"}, {"B7", "MARGEN NETO DE INTERESES"}, {"C7", 8.0}, {"D7", 20.0},
		{"A8", "--"}, {"B8", "ALGUNA LINEA DESCONOCIDA"}, {"C8", 1.0}, {"D8", 2.0},
		{"A9", "41"}, {"B9", "INTERESES CAUSADOS"}, {"D9", 5.0}, // ene not filed
	})
}

func TestIncomeExtraction(t *testing.T) {
	w := openFixture(t, incomeFixture(t))

	records, err := w.Income("BANCO UNO", Options{})
	require.NoError(t, err)

	// 2 periods for "51", 2 for the mapped summary, 1 for "41";
	// the unknown summary row is discarded.
	require.Len(t, records, 5)

	byCode := map[string]int{}
	for _, r := range records {
		byCode[r.Code]++
		require.True(t, r.Accumulated.Valid)
	}
	assert.Equal(t, 2, byCode["51"])
	assert.Equal(t, 2, byCode["MNI"], "summary row mapped by name")
	assert.Equal(t, 1, byCode["41"], "empty cell means month not filed")
}

func TestIncomeSummaryNameWithAccents(t *testing.T) {
	path := writeWorkbook(t, "PYG", []cell{
		{"C5", "ene-2024"},
		{"A6", "--"}, {"B6", "MARGEN DE INTERMEDIACIÓN"}, {"C6", 3.5},
	})
	w := openFixture(t, path)

	records, err := w.Income("BANCO UNO", Options{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, string(model.SummaryIntermediationMargin), records[0].Code)
	assert.True(t, records[0].Accumulated.Decimal.Equal(dec("3.5")))
}

func TestIncomeMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "BAL", []cell{{"A1", "x"}})
	w := openFixture(t, path)

	_, err := w.Income("BANCO UNO", Options{})
	require.ErrorIs(t, err, ErrSheetMissing)
}

func TestIncomeNoValidPeriods(t *testing.T) {
	path := writeWorkbook(t, "PYG", []cell{
		{"C5", "not a date"},
		{"A6", "51"}, {"B6", "INTERESES"}, {"C6", 10.0},
	})
	w := openFixture(t, path)

	_, err := w.Income("BANCO UNO", Options{})
	require.ErrorIs(t, err, ErrNoPeriods)
}
