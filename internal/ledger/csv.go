package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Header is the CSV header for ledger.csv. It is the interchange contract:
// any file with these six columns round-trips through export and import.
const Header = "id,date,type,category,amount,note"

const (
	numFields   = 6
	dateFormat  = "2006-01-02"
	colID       = 0
	colDate     = 1
	colType     = 2
	colCategory = 3
	colAmount   = 4
	colNote     = 5
)

// WriteLedger writes transactions as CSV (including header) in the order
// given, which for a Store is insertion order — deliberately not the
// date-sorted display order.
func WriteLedger(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadLedger reads transactions from a ledger CSV. The header row is
// discarded without validation. Rows with fewer than six fields are
// silently skipped; extra fields are ignored. An unparseable date or
// amount fails the whole read with a FormatError.
func ReadLedger(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, FormatError{Field: "csv", Err: err}
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		if len(rec) < numFields {
			continue
		}
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = txn.ID
	row[colDate] = txn.Date.Format(dateFormat)
	row[colType] = string(txn.Kind)
	row[colCategory] = string(txn.Category)
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colNote] = txn.Note
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. The ID, type,
// category, and note fields are taken verbatim: the ID is never
// regenerated and unknown type/category strings are accepted (lenient
// import by design).
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) < numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, FormatError{Field: "date", Value: record[colDate], Err: err}
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, FormatError{Field: "amount", Value: record[colAmount], Err: err}
	}

	return model.Transaction{
		ID:       record[colID],
		Date:     date,
		Kind:     model.Kind(record[colType]),
		Category: model.Category(record[colCategory]),
		Amount:   amount,
		Note:     record[colNote],
	}, nil
}
