package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/ledger"
)

func newReportCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "report <daily|monthly|yearly>",
		Short: "Show income, expense, and net totals per period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := ledger.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			p, err := openProject(*dir)
			if err != nil {
				return err
			}

			rows := ledger.Report(p.store.List(false), period)
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s %-12s %-12s %-12s\n", "Period", "Income", "Expense", "Net")
			for _, row := range rows {
				fmt.Fprintf(out, "%-16s %-12s %-12s %-12s\n",
					row.Period,
					row.Income.StringFixed(2),
					row.Expense.StringFixed(2),
					row.Net.StringFixed(2),
				)
			}
			return nil
		},
	}
}
