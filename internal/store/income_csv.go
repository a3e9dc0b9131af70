package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/bankscope-dev/bankscope/internal/model"
)

// IncomeHeader is the CSV header for income.csv.
const IncomeHeader = "institution,period,account_code,account_name,accumulated,monthly,trailing_12m"

const (
	incNumFields   = 7
	incColInst     = 0
	incColPeriod   = 1
	incColCode     = 2
	incColName     = 3
	incColAccum    = 4
	incColMonthly  = 5
	incColTrailing = 6
)

// ReadIncome reads all records from an income.csv reader.
func ReadIncome(r io.Reader) ([]model.IncomeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = incNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading income CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []model.IncomeRecord
	for i, row := range rows[1:] {
		rec, err := UnmarshalIncome(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteIncome writes income records (including header) to a writer.
func WriteIncome(w io.Writer, records []model.IncomeRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(IncomeHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(MarshalIncome(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalIncome converts an IncomeRecord to a CSV row.
func MarshalIncome(rec model.IncomeRecord) []string {
	row := make([]string, incNumFields)
	row[incColInst] = rec.Institution
	row[incColPeriod] = rec.Period.String()
	row[incColCode] = rec.Code
	row[incColName] = rec.Name
	row[incColAccum] = formatNullDecimal(rec.Accumulated)
	row[incColMonthly] = formatNullDecimal(rec.Monthly)
	row[incColTrailing] = formatNullDecimal(rec.Trailing12M)
	return row
}

// UnmarshalIncome converts a CSV row to an IncomeRecord.
func UnmarshalIncome(row []string) (model.IncomeRecord, error) {
	if len(row) != incNumFields {
		return model.IncomeRecord{}, fmt.Errorf("expected %d fields, got %d", incNumFields, len(row))
	}

	period, err := civil.ParseDate(row[incColPeriod])
	if err != nil {
		return model.IncomeRecord{}, fmt.Errorf("parsing period %q: %w", row[incColPeriod], err)
	}

	var vals [3]decimal.NullDecimal
	for i, col := range []int{incColAccum, incColMonthly, incColTrailing} {
		vals[i], err = parseNullDecimal(row[col])
		if err != nil {
			return model.IncomeRecord{}, fmt.Errorf("parsing value %q: %w", row[col], err)
		}
	}

	return model.IncomeRecord{
		Institution: row[incColInst],
		Period:      period,
		Code:        row[incColCode],
		Name:        row[incColName],
		Accumulated: vals[0],
		Monthly:     vals[1],
		Trailing12M: vals[2],
	}, nil
}
