package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txnID := args[0]

			p, err := openProject(*dir)
			if err != nil {
				return err
			}

			if err := p.store.Delete(txnID); err != nil {
				return err
			}

			if err := p.save(); err != nil {
				return err
			}

			p.record("rm", "deleted transaction", txnID)
			p.autoCommit("rm: " + txnID)

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", txnID)
			return nil
		},
	}
}
