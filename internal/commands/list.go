package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
)

func newListCommand(dir *string) *cobra.Command {
	var fromText string
	var toText string
	var byInsertion bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the transaction table, optionally filtered by date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*dir)
			if err != nil {
				return err
			}

			var txns []model.Transaction
			switch {
			case fromText != "" || toText != "":
				if fromText == "" || toText == "" {
					return fmt.Errorf("--from and --to must be given together")
				}
				from, err := time.Parse(dateFormat, fromText)
				if err != nil {
					return fmt.Errorf("parsing --from %q: expected %s", fromText, dateFormat)
				}
				to, err := time.Parse(dateFormat, toText)
				if err != nil {
					return fmt.Errorf("parsing --to %q: expected %s", toText, dateFormat)
				}
				txns, err = p.store.Filter(from, to)
				if err != nil {
					return err
				}
			default:
				txns = p.store.List(!byInsertion)
			}

			if len(txns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tTYPE\tCATEGORY\tAMOUNT\tNOTE")
			for _, txn := range txns {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					txn.ID,
					txn.Date.Format(dateFormat),
					txn.Kind,
					txn.Category,
					txn.Amount.StringFixed(2),
					displayNote(txn.Note),
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&fromText, "from", "", "filter start date (yyyy-mm-dd, inclusive)")
	cmd.Flags().StringVar(&toText, "to", "", "filter end date (yyyy-mm-dd, inclusive)")
	cmd.Flags().BoolVar(&byInsertion, "by-insertion", false, "list in insertion order instead of date order")

	return cmd
}

// displayNote flattens newlines so multi-line notes keep the table intact.
// Stored data is untouched; this is display only.
func displayNote(note string) string {
	return strings.ReplaceAll(note, "\n", " ")
}
