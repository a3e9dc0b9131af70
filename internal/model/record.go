package model

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// BalanceRecord is one row of the balance master table: a single account
// amount for one institution at one month-end period.
type BalanceRecord struct {
	Institution string
	Period      civil.Date
	Code        string
	Name        string
	Amount      decimal.NullDecimal // null when the cell failed numeric coercion
	Depth       int
}

// IncomeRecord is one row of the income-statement master table.
// Accumulated is the year-to-date value as filed; Monthly and Trailing12M
// are derived by the de-accumulation pipeline.
type IncomeRecord struct {
	Institution string
	Period      civil.Date
	Code        string
	Name        string
	Accumulated decimal.NullDecimal
	Monthly     decimal.NullDecimal
	Trailing12M decimal.NullDecimal
}

// IndicatorRecord is one row of the risk-indicator master table.
// Value is null only under the CoerceNull policy; the default indicator
// policy skips uncoercible cells instead of emitting null records.
type IndicatorRecord struct {
	Institution string
	Period      civil.Date
	Code        IndicatorCode
	Name        string
	Value       decimal.NullDecimal
	Category    Category
}

// Top-level chart-of-accounts classes.
const (
	CodeAssets      = "1"
	CodeLiabilities = "2"
	CodeEquity      = "3"
	CodeContingent  = "6"
	CodeMemo        = "7"
)

// RootCodes is the allow-list of single-digit codes admitted as hierarchy
// roots: assets, liabilities, equity, contingent and memorandum accounts.
var RootCodes = []string{CodeAssets, CodeLiabilities, CodeEquity, CodeContingent, CodeMemo}

// DepthOf maps an account code to its hierarchy depth by digit count:
// 1 digit -> 1, 2 -> 2, 3-4 -> 3, 5-6 -> 4, longer -> 5.
// Non-numeric codes (including the income summary mnemonics) return 0.
func DepthOf(code string) int {
	clean := strings.ReplaceAll(strings.TrimSpace(code), ".", "")
	clean = strings.ReplaceAll(clean, " ", "")
	if clean == "" || !isDigits(clean) {
		return 0
	}

	switch n := len(clean); {
	case n <= 1:
		return 1
	case n <= 2:
		return 2
	case n <= 4:
		return 3
	case n <= 6:
		return 4
	default:
		return 5
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
