package model

// SheetLayout describes the fixed position-addressed contract of one
// workbook sheet. All offsets are 0-based; the layout row/column numbers
// in the regulator's documentation are 1-based.
type SheetLayout struct {
	Sheet     string // sheet name inside the workbook
	PeriodRow int    // row holding the period header cells
	PeriodCol int    // first column of the period header
	DataRow   int    // first data row
	CodeCol   int    // column holding account codes
	NameCol   int    // column holding account names
	MaxRow    int    // last data row read, 0 = unbounded
}

// BalanceLayout: sheet "BAL". Periods on row 5 from column C; codes in
// column A and names in column B from row 7.
var BalanceLayout = SheetLayout{
	Sheet:     "BAL",
	PeriodRow: 4,
	PeriodCol: 2,
	DataRow:   6,
	CodeCol:   0,
	NameCol:   1,
}

// IncomeLayout: sheet "PYG". Same header shape as BAL, data from row 6,
// bounded at row 140 (the sheet carries footnotes below the statement).
var IncomeLayout = SheetLayout{
	Sheet:     "PYG",
	PeriodRow: 4,
	PeriodCol: 2,
	DataRow:   5,
	CodeCol:   0,
	NameCol:   1,
	MaxRow:    139,
}

// IndicatorLayout: sheet "CAMEL". Periods on row 5 from column D; data
// rows are addressed individually through IndicatorRows.
var IndicatorLayout = SheetLayout{
	Sheet:     "CAMEL",
	PeriodRow: 4,
	PeriodCol: 3,
}
