package commands

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bankscope-dev/bankscope/internal/model"
	"github.com/bankscope-dev/bankscope/internal/quality"
	"github.com/bankscope-dev/bankscope/internal/store"
)

func newValidateCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run quality checks against the persisted master tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			st, err := store.New(cfg.Data.MasterDir, zap.NewNop())
			if err != nil {
				return err
			}

			balance, balSummary, err := st.LoadBalance()
			if err != nil {
				if errors.Is(err, store.ErrTableMissing) {
					fmt.Println("No master tables yet; run 'bankscope run' first.")
					return nil
				}
				return err
			}

			fmt.Printf("Balance table: %d rows (%d dropped at load, %.1f%% null)\n",
				balSummary.RetainedRows, balSummary.DroppedRows(), balSummary.PctNull())

			latest, ok := quality.LatestPeriod(balance)
			if ok {
				tolerance := decimal.NewFromFloat(cfg.Quality.EquationTolerance)
				printEquationChecks(quality.CheckEquation(balance, latest, tolerance), latest)
			}

			if missing := quality.MissingInstitutions(balance, cfg.Quality.ExpectedInstitutions); len(missing) > 0 {
				fmt.Printf("Missing institutions (%d):\n", len(missing))
				for _, inst := range missing {
					fmt.Printf("  %s\n", inst)
				}
			}

			if gaps := quality.MissingPeriods(balancePeriods(balance)); len(gaps) > 0 {
				fmt.Printf("Missing reporting periods (%d):", len(gaps))
				for _, p := range gaps {
					fmt.Printf(" %s", p)
				}
				fmt.Println()
			}

			indicators, _, err := st.LoadIndicators()
			if err != nil && !errors.Is(err, store.ErrTableMissing) {
				return err
			}
			if alerts := quality.CheckIndicatorRanges(indicators); len(alerts) > 0 {
				fmt.Printf("Indicator range alerts (%d):\n", len(alerts))
				for _, a := range alerts {
					fmt.Printf("  %s: %d values outside [%s, %s]\n",
						a.Code, a.Affected, a.Low, a.High)
				}
			}

			return nil
		},
	}

	return cmd
}

func printEquationChecks(checks []quality.EquationCheck, period civil.Date) {
	var warnings, errs int
	for _, c := range checks {
		switch c.Status {
		case quality.StatusWarning:
			warnings++
		case quality.StatusError:
			errs++
		}
	}

	fmt.Printf("Accounting equation at %s: %d institutions, %d warnings, %d errors\n",
		period, len(checks), warnings, errs)
	for _, c := range checks {
		if c.Status == quality.StatusOK {
			continue
		}
		fmt.Printf("  %-8s %s: assets %s vs liabilities+equity %s (%s%% off)\n",
			c.Status, c.Institution, c.Assets, c.LiabilitiesPlusEquity(),
			c.PctDifference.Round(3))
	}
}

func balancePeriods(records []model.BalanceRecord) []civil.Date {
	seen := map[civil.Date]struct{}{}
	var periods []civil.Date
	for _, r := range records {
		if _, dup := seen[r.Period]; dup {
			continue
		}
		seen[r.Period] = struct{}{}
		periods = append(periods, r.Period)
	}
	return periods
}
