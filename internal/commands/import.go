package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the ledger with the contents of a CSV file",
		Long: `Import reads a ledger CSV and replaces the entire working ledger with it.
Rows with fewer than six fields are skipped; an unparseable date or amount
aborts the import and leaves the working ledger untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			p, err := openProject(*dir)
			if err != nil {
				return err
			}

			if err := p.store.ImportFile(path); err != nil {
				return err
			}

			if err := p.save(); err != nil {
				return err
			}

			details := fmt.Sprintf("replaced ledger with %d transactions from %s", p.store.Len(), path)
			p.record("import", details, "")
			p.autoCommit("import: " + path)

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s\n", p.store.Len(), path)
			return nil
		},
	}
}
