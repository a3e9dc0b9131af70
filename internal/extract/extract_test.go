package extract

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// cell is one fixture cell: sheet axis ("C5") and value.
type cell struct {
	axis  string
	value any
}

// writeWorkbook builds an .xlsx fixture with one named sheet.
func writeWorkbook(t *testing.T, sheet string, cells []cell) string {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for _, c := range cells {
		require.NoError(t, f.SetCellValue(sheet, c.axis, c.value))
	}

	path := filepath.Join(t.TempDir(), "bank.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func openFixture(t *testing.T, path string) *Workbook {
	t.Helper()
	w, err := OpenWorkbook(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}
