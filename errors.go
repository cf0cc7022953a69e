package stockroom

import (
	"errors"
	"fmt"
)

// ErrItemNotFound is returned when an operation references an item id that is
// not in the ledger.
var ErrItemNotFound = errors.New("item not found")

// ValidationError reports a rejected input field. Nothing is persisted when
// a validation fails.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// invalidf builds a ValidationError for a field.
func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InsufficientStockError rejects a withdrawal that exceeds the quantity on
// hand. Available reports how much could still be withdrawn.
type InsufficientStockError struct {
	ItemName  string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("cannot withdraw %d of %q, only %d available", e.Requested, e.ItemName, e.Available)
}

// CategoryInUseError blocks the deletion of a category that at least one item
// still references.
type CategoryInUseError struct {
	Name  string
	Items int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category %q is used by %d item(s) and cannot be deleted", e.Name, e.Items)
}

// StorageError reports a persistence failure. Read failures are recovered
// locally by substituting an empty collection; write failures are surfaced
// through this type because a failed save means the in-memory and persisted
// views have diverged.
type StorageError struct {
	Op         string // "read" or "commit"
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s of %q failed: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
