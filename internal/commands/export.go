package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the ledger to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			p, err := openProject(*dir)
			if err != nil {
				return err
			}

			if err := p.store.ExportFile(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", p.store.Len(), path)
			return nil
		},
	}
}
