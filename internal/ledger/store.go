// Package ledger holds the in-memory transaction set and everything that
// derives from it: date-range filtering, periodic reports, and the CSV
// interchange format.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// Store is the authoritative transaction set for a session, kept in
// insertion order. Views for display are derived copies; the store is
// only ever mutated through Add, Delete, and ReplaceAll.
type Store struct {
	txns []model.Transaction
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// AddParams holds the user-supplied fields for a new transaction. Amount
// arrives as text so the store owns its validation.
type AddParams struct {
	Date     time.Time
	Kind     model.Kind
	Category model.Category
	Amount   string
	Note     string
}

// Add validates params, assigns a fresh ID, and appends the transaction.
// The store is unchanged when an error is returned.
func (s *Store) Add(params AddParams) (model.Transaction, error) {
	amtText := strings.TrimSpace(params.Amount)
	if amtText == "" {
		return model.Transaction{}, ValidationError{Field: "amount", Reason: "must not be empty"}
	}

	amount, err := decimal.NewFromString(amtText)
	if err != nil {
		return model.Transaction{}, ValidationError{Field: "amount", Reason: "not a number: " + amtText}
	}
	if amount.IsNegative() {
		return model.Transaction{}, ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	txn := model.Transaction{
		ID:       id.New(),
		Date:     params.Date,
		Kind:     params.Kind,
		Category: params.Category,
		Amount:   amount,
		Note:     params.Note,
	}
	s.txns = append(s.txns, txn)
	return txn, nil
}

// Delete removes the transaction with the given ID.
func (s *Store) Delete(txnID string) error {
	for i, txn := range s.txns {
		if txn.ID == txnID {
			s.txns = append(s.txns[:i], s.txns[i+1:]...)
			return nil
		}
	}
	return NotFoundError{ID: txnID}
}

// List returns a copy of all transactions. With byDate set the copy is
// sorted by date ascending; the sort is stable, so equal dates keep
// insertion order.
func (s *Store) List(byDate bool) []model.Transaction {
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	if byDate {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date)
		})
	}
	return out
}

// Filter returns transactions with from <= date <= to, date ascending.
// It is a read-only view; the store is never mutated.
func (s *Store) Filter(from, to time.Time) ([]model.Transaction, error) {
	if from.After(to) {
		return nil, ValidationError{Field: "date range", Reason: "'from' must be on or before 'to'"}
	}

	var out []model.Transaction
	for _, txn := range s.txns {
		if !txn.Date.Before(from) && !txn.Date.After(to) {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// ReplaceAll swaps the entire in-memory set. Used by import, which either
// replaces everything or nothing.
func (s *Store) ReplaceAll(txns []model.Transaction) {
	s.txns = txns
}

// Len returns the number of transactions in the store.
func (s *Store) Len() int {
	return len(s.txns)
}
