package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a transaction as money in or money out.
type Kind string

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

// IsIncome reports whether the kind counts as income. The match is
// case-insensitive so hand-edited CSV files still aggregate correctly.
func (k Kind) IsIncome() bool {
	return strings.EqualFold(string(k), string(KindIncome))
}

// Category labels a transaction. The set is closed for data entry but not
// enforced on import.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryRent          Category = "Rent"
	CategoryEntertainment Category = "Entertainment"
	CategorySalary        Category = "Salary"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

// Transaction is one recorded ledger entry, a row in ledger.csv.
type Transaction struct {
	ID       string          // opaque unique identifier, stable across save/load
	Date     time.Time       // calendar date, midnight UTC
	Kind     Kind            //nolint:revive // plain field name is clearest
	Category Category        //nolint:revive
	Amount   decimal.Decimal // always >= 0; sign is carried by Kind
	Note     string          // free text, may contain commas/quotes/newlines
}
