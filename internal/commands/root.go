package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankscope-dev/bankscope/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "bankscope",
		Short:   "Banking-sector regulatory filings ETL and query engine",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "bankscope.yaml", "path to the configuration file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRunCommand(&configPath))
	rootCmd.AddCommand(newValidateCommand(&configPath))
	rootCmd.AddCommand(newStatusCommand(&configPath))

	return rootCmd
}
