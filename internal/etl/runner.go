// Package etl orchestrates a full extraction run: scan the source
// directory, extract every institution's workbook, consolidate the
// per-institution frames, derive the income pipeline and replace the
// master tables. Master tables are only touched after the whole run
// has succeeded, so an interrupted run leaves the previous tables
// intact.
package etl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"github.com/bankscope-dev/bankscope/internal/config"
	"github.com/bankscope-dev/bankscope/internal/extract"
	"github.com/bankscope-dev/bankscope/internal/model"
	"github.com/bankscope-dev/bankscope/internal/store"
)

var (
	// ErrNoSources means the source directory held no institution folders.
	ErrNoSources = errors.New("no institution folders found in source directory")
	// ErrAllFailed means extraction failed for every institution; the
	// previous master tables are left untouched.
	ErrAllFailed = errors.New("extraction failed for all institutions")
)

// Runner executes ETL runs against a store.
type Runner struct {
	cfg    *config.Config
	store  *store.Store
	logger *zap.Logger
}

// New creates a Runner.
func New(cfg *config.Config, st *store.Store, logger *zap.Logger) *Runner {
	return &Runner{cfg: cfg, store: st, logger: logger}
}

// source is one institution folder with its workbook path.
type source struct {
	folder      string
	institution string
	workbook    string
}

// Result is the structured outcome of one institution's extraction.
// Err joins every sheet-level failure; any failure excludes the whole
// institution from the run, partial sheets included.
type Result struct {
	Institution string
	Balance     []model.BalanceRecord
	Income      []model.IncomeRecord
	Indicators  []model.IndicatorRecord
	Err         error
}

// failed reports whether the institution is excluded from the run.
func (r Result) failed() bool {
	return r.Err != nil ||
		len(r.Balance)+len(r.Income)+len(r.Indicators) == 0
}

// Failure names an excluded institution and why it was excluded.
type Failure struct {
	Institution string
	Reason      string
}

// Report summarizes a completed run.
type Report struct {
	Processed    []string
	Failed       []Failure
	TotalRecords int
	MinPeriod    civil.Date
	MaxPeriod    civil.Date
	Elapsed      time.Duration
}

// Run executes a full ETL pass and replaces the master tables. Partial
// failures are tolerated: a run succeeds as long as at least one
// institution extracted cleanly.
func (r *Runner) Run() (*Report, error) {
	start := time.Now()

	sources, err := r.scan()
	if err != nil {
		return nil, err
	}
	r.logger.Info("starting extraction",
		zap.Int("institutions", len(sources)),
		zap.Int("workers", r.cfg.Extract.Workers))

	results := r.extractAll(sources)

	report, err := r.consolidate(results)
	if err != nil {
		return nil, err
	}
	report.Elapsed = time.Since(start)

	r.logger.Info("run complete",
		zap.Int("processed", len(report.Processed)),
		zap.Int("failed", len(report.Failed)),
		zap.Int("records", report.TotalRecords),
		zap.Duration("elapsed", report.Elapsed))
	return report, nil
}

// scan lists institution folders and locates one workbook per folder.
// A folder without a workbook is still returned, carrying an error, so
// it shows up in the run report as a failed institution.
func (r *Runner) scan() ([]source, error) {
	entries, err := os.ReadDir(r.cfg.Data.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("reading source dir: %w", err)
	}

	var sources []source
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		src := source{
			folder:      e.Name(),
			institution: extract.InstitutionName(e.Name()),
		}
		matches, err := filepath.Glob(filepath.Join(r.cfg.Data.SourceDir, e.Name(), "*.xlsx"))
		if err == nil && len(matches) > 0 {
			sort.Strings(matches)
			src.workbook = matches[0]
		}
		sources = append(sources, src)
	}

	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].folder < sources[j].folder })
	return sources, nil
}

// extractAll runs per-institution extraction, optionally across a
// bounded worker pool. Results keep source order so consolidation is
// deterministic regardless of worker count.
func (r *Runner) extractAll(sources []source) []Result {
	results := make([]Result, len(sources))

	workers := r.cfg.Extract.Workers
	if workers > len(sources) {
		workers = len(sources)
	}
	if workers <= 1 {
		for i, src := range sources {
			results[i] = r.extractOne(src)
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.extractOne(sources[i])
			}
		}()
	}
	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (r *Runner) extractOne(src source) Result {
	log := r.logger.With(zap.String("institution", src.institution))
	res := Result{Institution: src.institution}

	if src.workbook == "" {
		res.Err = fmt.Errorf("%s: no workbook found", src.folder)
		log.Warn("no workbook in folder", zap.String("folder", src.folder))
		return res
	}

	wb, err := extract.OpenWorkbook(src.workbook)
	if err != nil {
		res.Err = err
		log.Warn("unreadable workbook", zap.Error(err))
		return res
	}
	defer wb.Close()

	opts := extract.Options{
		PeriodPolicy:    r.cfg.Extract.PeriodPolicy,
		BalanceCoerce:   r.cfg.Extract.BalanceCoerce,
		IndicatorCoerce: r.cfg.Extract.IndicatorCoerce,
	}

	var sheetErrs []error
	if res.Balance, err = wb.Balance(src.institution, opts); err != nil {
		sheetErrs = append(sheetErrs, fmt.Errorf("balance: %w", err))
		log.Warn("balance sheet extraction failed", zap.Error(err))
	}
	if res.Income, err = wb.Income(src.institution, opts); err != nil {
		sheetErrs = append(sheetErrs, fmt.Errorf("income: %w", err))
		log.Warn("income sheet extraction failed", zap.Error(err))
	}
	if res.Indicators, err = wb.Indicators(src.institution, opts); err != nil {
		sheetErrs = append(sheetErrs, fmt.Errorf("indicators: %w", err))
		log.Warn("indicator sheet extraction failed", zap.Error(err))
	}
	if res.Err = errors.Join(sheetErrs...); res.Err != nil {
		return res
	}

	log.Info("extracted",
		zap.Int("balance", len(res.Balance)),
		zap.Int("income", len(res.Income)),
		zap.Int("indicators", len(res.Indicators)))
	return res
}
