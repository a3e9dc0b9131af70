// Package store persists and serves the three master tables. A table
// replacement is atomic with respect to readers: the new table is
// written to a temporary file in the same directory and renamed over
// the old one, so a reader sees either the previous version or the new
// one, never a partial write.
package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/bankscope-dev/bankscope/internal/model"
	"github.com/bankscope-dev/bankscope/internal/quality"
)

// Master table file names inside the master directory.
const (
	BalanceFile   = "balance.csv"
	IncomeFile    = "income.csv"
	IndicatorFile = "indicators.csv"
	MetadataFile  = "metadata.json"
)

var (
	// ErrTableMissing means the table has never been produced; callers
	// should prompt for an ETL run rather than fail hard.
	ErrTableMissing = errors.New("master table not found, run the ETL first")
	// ErrEmptyReplace guards the previous table from being overwritten
	// by a run that extracted nothing.
	ErrEmptyReplace = errors.New("refusing to replace master table with zero records")
)

// Store owns the master directory. It is the only writer; concurrent
// readers are safe against writers through the atomic rename.
type Store struct {
	dir    string
	logger *zap.Logger

	mu      sync.Mutex
	version uint64
	cache   map[cacheKey]any
}

// New creates a Store over a master directory, creating it if needed.
func New(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating master dir: %w", err)
	}
	return &Store{
		dir:    dir,
		logger: logger,
		cache:  map[cacheKey]any{},
	}, nil
}

// Dir returns the master directory path.
func (s *Store) Dir() string { return s.dir }

// ReplaceBalance atomically replaces balance.csv.
func (s *Store) ReplaceBalance(records []model.BalanceRecord) error {
	return replaceTable(s, BalanceFile, records, WriteBalance)
}

// ReplaceIncome atomically replaces income.csv.
func (s *Store) ReplaceIncome(records []model.IncomeRecord) error {
	return replaceTable(s, IncomeFile, records, WriteIncome)
}

// ReplaceIndicators atomically replaces indicators.csv.
func (s *Store) ReplaceIndicators(records []model.IndicatorRecord) error {
	return replaceTable(s, IndicatorFile, records, WriteIndicators)
}

// LoadBalance returns the cleaned balance table and its quality summary.
// Cleaning drops rows with an empty account name or missing institution
// or period, mirroring what the dashboards expect.
func (s *Store) LoadBalance() ([]model.BalanceRecord, quality.Summary, error) {
	raw, err := loadTable(s, BalanceFile, ReadBalance)
	if err != nil {
		return nil, quality.Summary{}, err
	}

	var clean []model.BalanceRecord
	sb := summaryBuilder{original: len(raw)}
	for _, r := range raw {
		if r.Name == "" || r.Institution == "" || !r.Period.IsValid() {
			continue
		}
		clean = append(clean, r)
		sb.observe(r.Institution, r.Period, r.Amount.Valid)
	}
	return clean, sb.summary(), nil
}

// LoadIncome returns the cleaned income table and its quality summary.
func (s *Store) LoadIncome() ([]model.IncomeRecord, quality.Summary, error) {
	raw, err := loadTable(s, IncomeFile, ReadIncome)
	if err != nil {
		return nil, quality.Summary{}, err
	}

	var clean []model.IncomeRecord
	sb := summaryBuilder{original: len(raw)}
	for _, r := range raw {
		if r.Name == "" || r.Institution == "" || !r.Period.IsValid() {
			continue
		}
		clean = append(clean, r)
		sb.observe(r.Institution, r.Period, r.Monthly.Valid)
	}
	return clean, sb.summary(), nil
}

// LoadIndicators returns the cleaned indicator table and its summary.
func (s *Store) LoadIndicators() ([]model.IndicatorRecord, quality.Summary, error) {
	raw, err := loadTable(s, IndicatorFile, ReadIndicators)
	if err != nil {
		return nil, quality.Summary{}, err
	}

	var clean []model.IndicatorRecord
	sb := summaryBuilder{original: len(raw)}
	for _, r := range raw {
		if r.Name == "" || r.Institution == "" || !r.Period.IsValid() {
			continue
		}
		clean = append(clean, r)
		sb.observe(r.Institution, r.Period, r.Value.Valid)
	}
	return clean, sb.summary(), nil
}

// replaceTable writes records to <dir>/<name> through a temp file and
// rename. Empty tables are rejected so a failed run cannot clobber the
// previous master table.
func replaceTable[T any](s *Store, name string, records []T, write func(w io.Writer, recs []T) error) error {
	if len(records) == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptyReplace)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp table: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp table: %w", err)
	}

	final := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), final); err != nil {
		return fmt.Errorf("swapping %s into place: %w", name, err)
	}

	s.invalidate()
	s.logger.Info("master table replaced",
		zap.String("table", name),
		zap.Int("records", len(records)))
	return nil
}

func loadTable[T any](s *Store, name string, read func(r io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrTableMissing)
		}
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	return read(f)
}
