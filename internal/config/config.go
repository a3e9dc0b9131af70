package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PeriodPolicy controls how extractors react to an unparsable period
// header cell.
type PeriodPolicy string

const (
	// PeriodTruncate stops at the first invalid header cell, dropping all
	// later period columns. This matches the historical pipeline.
	PeriodTruncate PeriodPolicy = "truncate"
	// PeriodSkip skips invalid header cells and keeps reading.
	PeriodSkip PeriodPolicy = "skip"
)

// CoercePolicy controls what happens to a cell that fails numeric coercion.
type CoercePolicy string

const (
	// CoerceNull emits the record with a null value.
	CoerceNull CoercePolicy = "null"
	// CoerceSkip emits no record for the cell.
	CoerceSkip CoercePolicy = "skip"
)

// Config represents the top-level bankscope.yaml configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Extract ExtractConfig `yaml:"extract"`
	Quality QualityConfig `yaml:"quality"`
}

// DataConfig locates inputs and outputs.
type DataConfig struct {
	SourceDir string `yaml:"source_dir"` // one subdirectory per institution
	MasterDir string `yaml:"master_dir"` // persisted master tables
}

// ExtractConfig tunes the extraction pass.
type ExtractConfig struct {
	PeriodPolicy    PeriodPolicy `yaml:"period_policy"`
	BalanceCoerce   CoercePolicy `yaml:"balance_coerce"`
	IndicatorCoerce CoercePolicy `yaml:"indicator_coerce"`
	Workers         int          `yaml:"workers"`
}

// QualityConfig tunes the validation pass.
type QualityConfig struct {
	// EquationTolerance is the relative difference (as a fraction of
	// assets) under which the accounting equation is considered satisfied.
	EquationTolerance float64 `yaml:"equation_tolerance"`
	// ExpectedInstitutions is the roster used for missing-institution
	// detection. Empty disables the check.
	ExpectedInstitutions []string `yaml:"expected_institutions,omitempty"`
}

// Load reads a bankscope.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	cfg := &Config{
		Data: DataConfig{
			SourceDir: "source_data",
			MasterDir: "master_data",
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Extract.PeriodPolicy == "" {
		c.Extract.PeriodPolicy = PeriodTruncate
	}
	if c.Extract.BalanceCoerce == "" {
		c.Extract.BalanceCoerce = CoerceNull
	}
	if c.Extract.IndicatorCoerce == "" {
		c.Extract.IndicatorCoerce = CoerceSkip
	}
	if c.Extract.Workers == 0 {
		c.Extract.Workers = 1
	}
	if c.Quality.EquationTolerance == 0 {
		c.Quality.EquationTolerance = 0.01
	}
}

// Validate checks enum fields and numeric ranges.
func (c *Config) Validate() error {
	switch c.Extract.PeriodPolicy {
	case PeriodTruncate, PeriodSkip:
	default:
		return fmt.Errorf("invalid period_policy %q", c.Extract.PeriodPolicy)
	}
	for _, p := range []CoercePolicy{c.Extract.BalanceCoerce, c.Extract.IndicatorCoerce} {
		switch p {
		case CoerceNull, CoerceSkip:
		default:
			return fmt.Errorf("invalid coerce policy %q", p)
		}
	}
	if c.Extract.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Extract.Workers)
	}
	if c.Quality.EquationTolerance < 0 || c.Quality.EquationTolerance > 1 {
		return fmt.Errorf("equation_tolerance must be in [0,1], got %g", c.Quality.EquationTolerance)
	}
	return nil
}
