package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankscope-dev/bankscope/internal/config"
)

func trim(s string) string {
	return strings.TrimSpace(s)
}

// coerceAmount converts a value cell to a nullable decimal.
//
// The second return value reports whether a record should be emitted at
// all: under CoerceNull a bad cell yields (null, true); under CoerceSkip
// it yields (_, false). Empty cells always coerce to null.
func coerceAmount(cell string, policy config.CoercePolicy) (decimal.NullDecimal, bool) {
	s := trim(cell)
	if s == "" {
		return decimal.NullDecimal{}, policy == config.CoerceNull
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, policy == config.CoerceNull
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, true
}

// coerceRatio converts an indicator cell to a nullable decimal,
// accepting both native numerics and string cells using a comma as
// decimal separator. The bool reports coercion success; on failure the
// returned value is null.
func coerceRatio(cell string) (decimal.NullDecimal, bool) {
	s := strings.ReplaceAll(trim(cell), ",", ".")
	if s == "" {
		return decimal.NullDecimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, false
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, true
}
