package store

import (
	"cloud.google.com/go/civil"

	"github.com/bankscope-dev/bankscope/internal/quality"
)

// summaryBuilder accumulates the load-time quality summary of a table.
type summaryBuilder struct {
	original     int
	retained     int
	nulls        int
	institutions map[string]bool
	periods      map[civil.Date]bool
	min, max     civil.Date
}

func (b *summaryBuilder) observe(institution string, period civil.Date, valueValid bool) {
	if b.institutions == nil {
		b.institutions = map[string]bool{}
		b.periods = map[civil.Date]bool{}
		b.min, b.max = period, period
	}

	b.retained++
	if !valueValid {
		b.nulls++
	}
	b.institutions[institution] = true
	b.periods[period] = true
	if period.Before(b.min) {
		b.min = period
	}
	if period.After(b.max) {
		b.max = period
	}
}

func (b *summaryBuilder) summary() quality.Summary {
	return quality.Summary{
		OriginalRows: b.original,
		RetainedRows: b.retained,
		NullValues:   b.nulls,
		Institutions: len(b.institutions),
		Periods:      len(b.periods),
		MinPeriod:    b.min,
		MaxPeriod:    b.max,
	}
}
