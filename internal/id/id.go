// Package id generates opaque transaction identifiers.
//
// IDs are random UUIDs rendered as strings. They are assigned once at
// creation and reused verbatim on load, so a ledger file round-trips with
// its identifiers intact and deletion has a stable key to match on.
package id

import "github.com/google/uuid"

// New returns a fresh unique transaction ID.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s looks like an ID this package generated.
// Imported files may carry foreign IDs; those are accepted anywhere a
// ledger is loaded, so this is only used for diagnostics.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
