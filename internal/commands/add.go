package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/categories"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

const dateFormat = "2006-01-02"

func newAddCommand(dir *string) *cobra.Command {
	var kindText string
	var categoryText string
	var amount string
	var dateText string
	var note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindText)
			if err != nil {
				return err
			}

			category := model.Category(categoryText)
			if !categories.NewDefaultService().Exists(category) {
				return fmt.Errorf("unknown category %q (see 'tally categories')", categoryText)
			}

			when := time.Now().UTC().Truncate(24 * time.Hour)
			if dateText != "" {
				when, err = time.Parse(dateFormat, dateText)
				if err != nil {
					return fmt.Errorf("parsing date %q: expected %s", dateText, dateFormat)
				}
			}

			p, err := openProject(*dir)
			if err != nil {
				return err
			}

			txn, err := p.store.Add(ledger.AddParams{
				Date:     when,
				Kind:     kind,
				Category: category,
				Amount:   amount,
				Note:     note,
			})
			if err != nil {
				return err
			}

			if err := p.save(); err != nil {
				return err
			}

			details := fmt.Sprintf("%s %s %s on %s", txn.Kind, txn.Category, txn.Amount.StringFixed(2), txn.Date.Format(dateFormat))
			p.record("add", details, txn.ID)
			p.autoCommit("add: " + details)

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s\n", txn.ID, details)
			return nil
		},
	}

	cmd.Flags().StringVar(&kindText, "kind", string(model.KindExpense), "transaction kind (Income or Expense)")
	cmd.Flags().StringVar(&categoryText, "category", "", "transaction category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&amount, "amount", "", "amount, e.g. 12.50 (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&dateText, "date", "", "transaction date as yyyy-mm-dd (default today)")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")

	return cmd
}

// parseKind normalizes user input to the canonical Kind values.
func parseKind(s string) (model.Kind, error) {
	switch {
	case strings.EqualFold(s, string(model.KindIncome)):
		return model.KindIncome, nil
	case strings.EqualFold(s, string(model.KindExpense)):
		return model.KindExpense, nil
	default:
		return "", fmt.Errorf("unknown kind %q: must be Income or Expense", s)
	}
}
