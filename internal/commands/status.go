package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bankscope-dev/bankscope/internal/store"
)

func newStatusCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the last ETL run and the state of the master tables",
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

			meta, err := st.LoadMetadata()
			if err != nil {
				if errors.Is(err, store.ErrTableMissing) {
					fmt.Println("No ETL run recorded yet; run 'bankscope run' first.")
					return nil
				}
				return err
			}

			fmt.Printf("Last run: %s\n", meta.LastRunTimestamp.Format("2006-01-02 15:04:05 MST"))
			fmt.Printf("Institutions: %d processed, %d failed\n",
				len(meta.InstitutionsProcessed), len(meta.InstitutionsFailed))
			for _, inst := range meta.InstitutionsFailed {
				fmt.Printf("  failed: %s\n", inst)
			}
			fmt.Printf("Records: %d, periods %s to %s\n",
				meta.TotalRecords, meta.MinPeriod, meta.MaxPeriod)
			fmt.Printf("Master directory: %s\n", cfg.Data.MasterDir)
			return nil
		},
	}

	return cmd
}
