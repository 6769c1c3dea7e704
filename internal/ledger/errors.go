package ledger

import "fmt"

// ValidationError rejects a request before it touches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a delete of an unknown transaction ID.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("transaction %q not found", e.ID)
}

// FormatError reports unparseable field content during CSV import. It is
// fatal to the whole import: the previous in-memory set is kept.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e FormatError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Value, e.Err)
}

func (e FormatError) Unwrap() error {
	return e.Err
}
