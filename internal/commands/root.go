package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Personal finance ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "project directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand(&dir))
	rootCmd.AddCommand(newRemoveCommand(&dir))
	rootCmd.AddCommand(newListCommand(&dir))
	rootCmd.AddCommand(newReportCommand(&dir))
	rootCmd.AddCommand(newExportCommand(&dir))
	rootCmd.AddCommand(newImportCommand(&dir))
	rootCmd.AddCommand(newImportBankCommand(&dir))
	rootCmd.AddCommand(newCategoriesCommand())

	return rootCmd
}
