package quality

import (
	"sort"

	"cloud.google.com/go/civil"

	"github.com/bankscope-dev/bankscope/internal/model"
)

// Coverage is the binary institution x year presence matrix for a
// balance table: true when any record exists for that institution in
// that year.
type Coverage struct {
	Institutions []string
	Years        []int
	present      map[string]map[int]bool
}

// Has reports whether an institution has any record in a year.
func (c *Coverage) Has(institution string, year int) bool {
	return c.present[institution][year]
}

// CoverageMatrix builds the presence matrix from a balance table.
func CoverageMatrix(records []model.BalanceRecord) *Coverage {
	present := map[string]map[int]bool{}
	years := map[int]bool{}

	for _, r := range records {
		if present[r.Institution] == nil {
			present[r.Institution] = map[int]bool{}
		}
		present[r.Institution][r.Period.Year] = true
		years[r.Period.Year] = true
	}

	cov := &Coverage{present: present}
	for inst := range present {
		cov.Institutions = append(cov.Institutions, inst)
	}
	sort.Strings(cov.Institutions)
	for y := range years {
		cov.Years = append(cov.Years, y)
	}
	sort.Ints(cov.Years)
	return cov
}

// MissingInstitutions returns roster entries absent from the records,
// sorted. An empty roster disables the check.
func MissingInstitutions(records []model.BalanceRecord, expected []string) []string {
	seen := map[string]bool{}
	for _, r := range records {
		seen[r.Institution] = true
	}

	var missing []string
	for _, inst := range expected {
		if !seen[inst] {
			missing = append(missing, inst)
		}
	}
	sort.Strings(missing)
	return missing
}

// MissingPeriods returns the month-end dates absent from the observed
// periods, over the complete expected monthly range between the
// earliest and latest observation.
func MissingPeriods(observed []civil.Date) []civil.Date {
	if len(observed) == 0 {
		return nil
	}

	seen := map[civil.Date]bool{}
	min, max := model.ToMonthEnd(observed[0]), model.ToMonthEnd(observed[0])
	for _, d := range observed {
		d = model.ToMonthEnd(d)
		seen[d] = true
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}

	var missing []civil.Date
	for d := min; d.Before(max); d = model.NextMonth(d) {
		if !seen[d] {
			missing = append(missing, d)
		}
	}
	return missing
}
