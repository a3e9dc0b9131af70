package model

import "time"

// RunMetadata summarizes the last successful ETL run. Persisted as
// metadata.json next to the master tables.
type RunMetadata struct {
	LastRunTimestamp      time.Time `json:"last_run_timestamp"`
	InstitutionsProcessed []string  `json:"institutions_processed"`
	InstitutionsFailed    []string  `json:"institutions_failed"`
	TotalRecords          int       `json:"total_records"`
	MinPeriod             string    `json:"min_period"`
	MaxPeriod             string    `json:"max_period"`
}
