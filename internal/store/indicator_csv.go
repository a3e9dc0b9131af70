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

// IndicatorHeader is the CSV header for indicators.csv.
const IndicatorHeader = "institution,period,indicator_code,indicator_name,value,category"

const (
	indNumFields   = 6
	indColInst     = 0
	indColPeriod   = 1
	indColCode     = 2
	indColName     = 3
	indColValue    = 4
	indColCategory = 5
)

// ReadIndicators reads all records from an indicators.csv reader.
func ReadIndicators(r io.Reader) ([]model.IndicatorRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = indNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading indicators CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []model.IndicatorRecord
	for i, row := range rows[1:] {
		rec, err := UnmarshalIndicator(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteIndicators writes indicator records (including header) to a writer.
func WriteIndicators(w io.Writer, records []model.IndicatorRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(IndicatorHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(MarshalIndicator(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalIndicator converts an IndicatorRecord to a CSV row.
func MarshalIndicator(rec model.IndicatorRecord) []string {
	row := make([]string, indNumFields)
	row[indColInst] = rec.Institution
	row[indColPeriod] = rec.Period.String()
	row[indColCode] = string(rec.Code)
	row[indColName] = rec.Name
	row[indColValue] = formatNullDecimal(rec.Value)
	row[indColCategory] = string(rec.Category)
	return row
}

// UnmarshalIndicator converts a CSV row to an IndicatorRecord.
func UnmarshalIndicator(row []string) (model.IndicatorRecord, error) {
	if len(row) != indNumFields {
		return model.IndicatorRecord{}, fmt.Errorf("expected %d fields, got %d", indNumFields, len(row))
	}

	period, err := civil.ParseDate(row[indColPeriod])
	if err != nil {
		return model.IndicatorRecord{}, fmt.Errorf("parsing period %q: %w", row[indColPeriod], err)
	}

	value, err := parseNullDecimal(row[indColValue])
	if err != nil {
		return model.IndicatorRecord{}, fmt.Errorf("parsing value %q: %w", row[indColValue], err)
	}

	return model.IndicatorRecord{
		Institution: row[indColInst],
		Period:      period,
		Code:        model.IndicatorCode(row[indColCode]),
		Name:        row[indColName],
		Value:       value,
		Category:    model.Category(row[indColCategory]),
	}, nil
}

// parseNullDecimal parses an optional decimal field; empty means null.
func parseNullDecimal(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

// formatNullDecimal formats an optional decimal field; null means empty.
func formatNullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
