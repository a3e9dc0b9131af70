package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/xuri/excelize/v2"
)

// PeriodFormat is the canonical serialization of a reporting period.
const PeriodFormat = "2006-01-02"

// spanishMonths maps lowercase Spanish month names and abbreviations to
// time.Month. The regulator's workbooks label period columns like
// "ene-2003" or "DICIEMBRE 2025".
var spanishMonths = map[string]time.Month{
	"ene": time.January, "enero": time.January,
	"feb": time.February, "febrero": time.February,
	"mar": time.March, "marzo": time.March,
	"abr": time.April, "abril": time.April,
	"may": time.May, "mayo": time.May,
	"jun": time.June, "junio": time.June,
	"jul": time.July, "julio": time.July,
	"ago": time.August, "agosto": time.August,
	"sep": time.September, "septiembre": time.September,
	"oct": time.October, "octubre": time.October,
	"nov": time.November, "noviembre": time.November,
	"dic": time.December, "diciembre": time.December,
}

// MonthEnd returns the last day of the given month.
func MonthEnd(year int, month time.Month) civil.Date {
	t := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return civil.DateOf(t)
}

// ToMonthEnd snaps any date to the end of its month.
func ToMonthEnd(d civil.Date) civil.Date {
	return MonthEnd(d.Year, d.Month)
}

// NextMonth returns the month-end of the month after d.
func NextMonth(d civil.Date) civil.Date {
	return MonthEnd(d.Year, d.Month+1)
}

// PrevMonth returns the month-end of the month before d.
func PrevMonth(d civil.Date) civil.Date {
	return MonthEnd(d.Year, d.Month-1)
}

// ParsePeriod parses a period header cell into a month-end date.
//
// Accepted inputs, in order of attempt: Excel date serials (excelize
// returns unformatted cells as bare numbers), a handful of common date
// layouts, and Spanish "month-year" labels.
func ParsePeriod(cell string) (civil.Date, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return civil.Date{}, fmt.Errorf("empty period cell")
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return civil.Date{}, fmt.Errorf("period serial %q: %w", cell, err)
		}
		return ToMonthEnd(civil.DateOf(t)), nil
	}

	for _, layout := range []string{
		"2006-01-02", "02/01/2006", "01-02-06", "1/2/06",
		"Jan-06", "Jan-2006", "2006-01",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return ToMonthEnd(civil.DateOf(t)), nil
		}
	}

	if d, ok := parseSpanishPeriod(s); ok {
		return d, nil
	}

	return civil.Date{}, fmt.Errorf("unrecognized period cell %q", cell)
}

// parseSpanishPeriod handles "ene-2003", "dic-25" and "DICIEMBRE 2025".
func parseSpanishPeriod(s string) (civil.Date, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", " ", "/", " ", ".", " ").Replace(norm)
	parts := strings.Fields(norm)
	if len(parts) != 2 {
		return civil.Date{}, false
	}

	month, ok := spanishMonths[parts[0]]
	if !ok {
		return civil.Date{}, false
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return civil.Date{}, false
	}
	if year < 100 {
		year += 2000
	}

	return MonthEnd(year, month), true
}

// MonthsBetween returns the number of calendar months from a to b.
// Zero when both fall in the same month, negative when b precedes a.
func MonthsBetween(a, b civil.Date) int {
	return (b.Year-a.Year)*12 + int(b.Month) - int(a.Month)
}
