package extract

import "regexp"

// trailingPeriodRE matches the "MONTH YYYY" suffix the acquisition
// service appends to each institution folder, e.g.
// "BANCO GUAYAQUIL DICIEMBRE 2025".
var trailingPeriodRE = regexp.MustCompile(
	`(?i)\s+(ENERO|FEBRERO|MARZO|ABRIL|MAYO|JUNIO|JULIO|AGOSTO|SEPTIEMBRE|OCTUBRE|NOVIEMBRE|DICIEMBRE)\s+\d{4}$`,
)

// InstitutionName derives the institution identity from its source
// folder name by stripping the trailing period tokens.
func InstitutionName(folder string) string {
	return trim(trailingPeriodRE.ReplaceAllString(trim(folder), ""))
}
