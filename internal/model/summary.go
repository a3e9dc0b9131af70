package model

import "strings"

// SummaryCode identifies an income-statement summary line. The source
// sheet marks these rows with a "--" code; they are recognized by name.
type SummaryCode string

const (
	SummaryNetInterestMargin    SummaryCode = "MNI" // margen neto de intereses
	SummaryGrossFinancialMargin SummaryCode = "MBF" // margen bruto financiero
	SummaryNetFinancialMargin   SummaryCode = "MNF" // margen neto financiero
	SummaryIntermediationMargin SummaryCode = "MDI" // margen de intermediacion
	SummaryOperatingMargin      SummaryCode = "MOP" // margen operacional
	SummaryPreTaxResult         SummaryCode = "GAI" // ganancia antes de impuestos
	SummaryNetResult            SummaryCode = "GDE" // ganancia del ejercicio
)

// SummaryMarker is the code-cell sentinel for summary rows.
const SummaryMarker = "--"

// summaryNames maps accent-folded name substrings to summary codes.
// Order matters: more specific names first, since matching is by substring.
var summaryNames = []struct {
	substr string
	code   SummaryCode
}{
	{"MARGEN NETO DE INTERESES", SummaryNetInterestMargin},
	{"MARGEN BRUTO FINANCIERO", SummaryGrossFinancialMargin},
	{"MARGEN NETO FINANCIERO", SummaryNetFinancialMargin},
	{"MARGEN DE INTERMEDIACION", SummaryIntermediationMargin},
	{"MARGEN OPERACIONAL", SummaryOperatingMargin},
	{"GANANCIA O PERDIDA ANTES DE IMPUESTOS", SummaryPreTaxResult},
	{"GANANCIA O PERDIDA DEL EJERCICIO", SummaryNetResult},
}

// MatchSummaryName resolves a summary row name to its mnemonic code.
// Returns false for names matching no known summary line.
func MatchSummaryName(name string) (SummaryCode, bool) {
	folded := foldAccents(strings.ToUpper(strings.TrimSpace(name)))
	for _, s := range summaryNames {
		if strings.Contains(folded, s.substr) {
			return s.code, true
		}
	}
	return "", false
}

var accentFolder = strings.NewReplacer(
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ñ", "N",
)

func foldAccents(s string) string {
	return accentFolder.Replace(s)
}
