package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/bankscope-dev/bankscope/internal/model"
)

// BalanceHeader is the CSV header for balance.csv.
const BalanceHeader = "institution,period,account_code,account_name,amount,depth"

const (
	balNumFields = 6
	balColInst   = 0
	balColPeriod = 1
	balColCode   = 2
	balColName   = 3
	balColAmount = 4
	balColDepth  = 5
)

// ReadBalance reads all records from a balance.csv reader.
func ReadBalance(r io.Reader) ([]model.BalanceRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = balNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading balance CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []model.BalanceRecord
	for i, row := range rows[1:] {
		rec, err := UnmarshalBalance(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteBalance writes balance records (including header) to a writer.
func WriteBalance(w io.Writer, records []model.BalanceRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(BalanceHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(MarshalBalance(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalBalance converts a BalanceRecord to a CSV row.
func MarshalBalance(rec model.BalanceRecord) []string {
	row := make([]string, balNumFields)
	row[balColInst] = rec.Institution
	row[balColPeriod] = rec.Period.String()
	row[balColCode] = rec.Code
	row[balColName] = rec.Name
	if rec.Amount.Valid {
		row[balColAmount] = rec.Amount.Decimal.String()
	}
	row[balColDepth] = strconv.Itoa(rec.Depth)
	return row
}

// UnmarshalBalance converts a CSV row to a BalanceRecord.
func UnmarshalBalance(row []string) (model.BalanceRecord, error) {
	if len(row) != balNumFields {
		return model.BalanceRecord{}, fmt.Errorf("expected %d fields, got %d", balNumFields, len(row))
	}

	period, err := civil.ParseDate(row[balColPeriod])
	if err != nil {
		return model.BalanceRecord{}, fmt.Errorf("parsing period %q: %w", row[balColPeriod], err)
	}

	amount, err := parseNullDecimal(row[balColAmount])
	if err != nil {
		return model.BalanceRecord{}, fmt.Errorf("parsing amount %q: %w", row[balColAmount], err)
	}

	depth, err := strconv.Atoi(row[balColDepth])
	if err != nil {
		return model.BalanceRecord{}, fmt.Errorf("parsing depth %q: %w", row[balColDepth], err)
	}

	return model.BalanceRecord{
		Institution: row[balColInst],
		Period:      period,
		Code:        row[balColCode],
		Name:        row[balColName],
		Amount:      amount,
		Depth:       depth,
	}, nil
}
