package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bankscope-dev/bankscope/internal/config"
	"github.com/bankscope-dev/bankscope/internal/etl"
	"github.com/bankscope-dev/bankscope/internal/store"
)

func newRunCommand(configPath *string) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Extract all institution workbooks and rebuild the master tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.Extract.Workers = workers
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			st, err := store.New(cfg.Data.MasterDir, logger)
			if err != nil {
				return err
			}

			report, err := etl.New(cfg, st, logger).Run()
			if err != nil {
				return err
			}

			fmt.Printf("Processed %d institutions (%d failed) in %s\n",
				len(report.Processed), len(report.Failed), report.Elapsed.Round(time.Millisecond))
			fmt.Printf("Master tables: %d records, %s to %s, written to %s\n",
				report.TotalRecords, report.MinPeriod, report.MaxPeriod, cfg.Data.MasterDir)
			for _, f := range report.Failed {
				fmt.Printf("  failed: %s (%s)\n", f.Institution, f.Reason)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "extraction workers (overrides config)")

	return cmd
}

// loadConfig reads the YAML config, pointing at init when it is absent.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		abs, _ := filepath.Abs(path)
		return nil, fmt.Errorf("no usable config at %s (run 'bankscope init' first): %w", abs, err)
	}
	return cfg, nil
}
