package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Period selects the bucket size for a report.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ParsePeriod validates a period name from the CLI.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodMonthly, PeriodYearly:
		return Period(s), nil
	default:
		return "", ValidationError{Field: "period", Reason: fmt.Sprintf("%q is not daily, monthly, or yearly", s)}
	}
}

// ReportRow is one aggregate bucket: income and expense totals plus net
// for a single day, month, or year.
type ReportRow struct {
	Period  string // "2023-01-05", "2023-01", or "2023" depending on bucket size
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Report buckets transactions by period key and totals income and expense
// per bucket. Rows come back sorted by key ascending, which is also
// chronological for these key formats. Pure aggregation: the input is not
// mutated.
func Report(txns []model.Transaction, period Period) []ReportRow {
	income := make(map[string]decimal.Decimal)
	expense := make(map[string]decimal.Decimal)

	for _, txn := range txns {
		key := bucketKey(txn.Date, period)
		if txn.Kind.IsIncome() {
			income[key] = income[key].Add(txn.Amount)
		} else {
			expense[key] = expense[key].Add(txn.Amount)
		}
	}

	// Buckets are the union of keys seen on either side.
	keySet := make(map[string]bool, len(income)+len(expense))
	for k := range income {
		keySet[k] = true
	}
	for k := range expense {
		keySet[k] = true
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]ReportRow, 0, len(keys))
	for _, k := range keys {
		inc := income[k]
		exp := expense[k]
		rows = append(rows, ReportRow{
			Period:  k,
			Income:  inc,
			Expense: exp,
			Net:     inc.Sub(exp),
		})
	}
	return rows
}

func bucketKey(date time.Time, period Period) string {
	switch period {
	case PeriodDaily:
		return date.Format("2006-01-02")
	case PeriodMonthly:
		return date.Format("2006-01")
	default:
		return date.Format("2006")
	}
}
