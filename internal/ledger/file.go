package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tally-dev/tally/internal/model"
)

// SaveFile writes transactions to a ledger CSV file. The file handle is
// scoped to this call and closed on every path.
func SaveFile(path string, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger file: %w", err)
	}
	defer f.Close()

	if err := WriteLedger(f, txns); err != nil {
		return fmt.Errorf("writing ledger %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a ledger CSV file. A missing or unreadable file is an
// error; use LoadFileIfExists when an absent ledger means an empty one.
func LoadFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger file: %w", err)
	}
	defer f.Close()

	txns, err := ReadLedger(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return txns, nil
}

// LoadFileIfExists reads a ledger CSV file, treating a missing file as an
// empty ledger.
func LoadFileIfExists(path string) ([]model.Transaction, error) {
	txns, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return txns, err
}

// ExportFile writes the store to path in insertion order. A failed export
// never changes the store.
func (s *Store) ExportFile(path string) error {
	return SaveFile(path, s.txns)
}

// ImportFile reads path and replaces the entire in-memory set. On any
// error — unreadable file or a FormatError in a row — the previous set is
// kept; there is no partial replace.
func (s *Store) ImportFile(path string) error {
	txns, err := LoadFile(path)
	if err != nil {
		return err
	}
	s.ReplaceAll(txns)
	return nil
}
