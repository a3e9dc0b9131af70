package quality

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankscope-dev/bankscope/internal/model"
)

// RangeAlert flags indicator values outside their plausible range.
// Indicator values are stored as fractions (0.03 = 3%).
type RangeAlert struct {
	Code     model.IndicatorCode
	Low      decimal.Decimal
	High     decimal.Decimal
	Affected int
	Examples []decimal.Decimal // up to three offending values
}

type valueRange struct {
	low, high decimal.Decimal
}

func ratioRange(low, high string) valueRange {
	return valueRange{decimal.RequireFromString(low), decimal.RequireFromString(high)}
}

// rangeFor returns the plausible range for an indicator, if one is
// defined. Delinquency and coverage shares live in [0,1]; returns may
// legitimately be negative in a loss year.
func rangeFor(code model.IndicatorCode) (valueRange, bool) {
	s := string(code)
	switch {
	case strings.HasPrefix(s, "MOR_"), strings.HasPrefix(s, "PART_"):
		return ratioRange("0", "1"), true
	case code == model.IndROA, code == model.IndROE:
		return ratioRange("-1", "1"), true
	default:
		return valueRange{}, false
	}
}

// CheckIndicatorRanges scans an indicator table for out-of-range
// values. Null values are ignored.
func CheckIndicatorRanges(records []model.IndicatorRecord) []RangeAlert {
	byCode := map[model.IndicatorCode]*RangeAlert{}
	var order []model.IndicatorCode

	for _, r := range records {
		if !r.Value.Valid {
			continue
		}
		vr, ok := rangeFor(r.Code)
		if !ok {
			continue
		}
		v := r.Value.Decimal
		if v.GreaterThanOrEqual(vr.low) && v.LessThanOrEqual(vr.high) {
			continue
		}

		alert, ok := byCode[r.Code]
		if !ok {
			alert = &RangeAlert{Code: r.Code, Low: vr.low, High: vr.high}
			byCode[r.Code] = alert
			order = append(order, r.Code)
		}
		alert.Affected++
		if len(alert.Examples) < 3 {
			alert.Examples = append(alert.Examples, v)
		}
	}

	alerts := make([]RangeAlert, 0, len(order))
	for _, code := range order {
		alerts = append(alerts, *byCode[code])
	}
	return alerts
}
