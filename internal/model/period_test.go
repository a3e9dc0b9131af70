package model

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthEnd(t *testing.T) {
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 31}, MonthEnd(2024, time.January))
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 29}, MonthEnd(2024, time.February), "leap year")
	assert.Equal(t, civil.Date{Year: 2023, Month: time.February, Day: 28}, MonthEnd(2023, time.February))
	assert.Equal(t, civil.Date{Year: 2025, Month: time.December, Day: 31}, MonthEnd(2025, time.December))
}

func TestNextPrevMonthAcrossYears(t *testing.T) {
	dec := MonthEnd(2023, time.December)
	jan := MonthEnd(2024, time.January)

	assert.Equal(t, jan, NextMonth(dec))
	assert.Equal(t, dec, PrevMonth(jan))
}

func TestParsePeriodSpanishLabels(t *testing.T) {
	cases := map[string]civil.Date{
		"ene-2003":       MonthEnd(2003, time.January),
		"dic-25":         MonthEnd(2025, time.December),
		"DICIEMBRE 2025": MonthEnd(2025, time.December),
		" Marzo 2010 ":   MonthEnd(2010, time.March),
		"sep/2019":       MonthEnd(2019, time.September),
	}
	for cell, want := range cases {
		got, err := ParsePeriod(cell)
		require.NoError(t, err, cell)
		assert.Equal(t, want, got, cell)
	}
}

func TestParsePeriodDateLayouts(t *testing.T) {
	cases := map[string]civil.Date{
		"2024-01-15": MonthEnd(2024, time.January), // snapped to month end
		"15/06/2024": MonthEnd(2024, time.June),
		"2024-03":    MonthEnd(2024, time.March),
	}
	for cell, want := range cases {
		got, err := ParsePeriod(cell)
		require.NoError(t, err, cell)
		assert.Equal(t, want, got, cell)
	}
}

func TestParsePeriodExcelSerial(t *testing.T) {
	// 45292 is 2024-01-01 in the 1900 date system.
	got, err := ParsePeriod("45292")
	require.NoError(t, err)
	assert.Equal(t, MonthEnd(2024, time.January), got)
}

func TestParsePeriodRejectsGarbage(t *testing.T) {
	for _, cell := range []string{"", "   ", "TOTAL", "periodo", "ene"} {
		_, err := ParsePeriod(cell)
		assert.Error(t, err, "%q must not parse", cell)
	}
}

func TestMonthsBetween(t *testing.T) {
	jan := MonthEnd(2024, time.January)
	feb := MonthEnd(2024, time.February)

	assert.Equal(t, 0, MonthsBetween(jan, jan))
	assert.Equal(t, 1, MonthsBetween(jan, feb))
	assert.Equal(t, -1, MonthsBetween(feb, jan))
	assert.Equal(t, 13, MonthsBetween(MonthEnd(2023, time.December), MonthEnd(2025, time.January)))
}
