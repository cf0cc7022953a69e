package stockroom

import (
	"testing"

	"github.com/rs/zerolog"
)

// newTestBook creates a book over an in-memory store, silencing the logger.
func newTestBook(t *testing.T) *Book {
	t.Helper()
	return NewBook(NewMemStore(), "USD", zerolog.Nop())
}

// mustCreate adds an item from textual fields, failing the test on any
// validation error.
func mustCreate(t *testing.T, book *Book, name, category, quantity, cost string) Item {
	t.Helper()
	item, err := book.Items.Create(ItemDraft{
		Name:     name,
		Category: category,
		Quantity: quantity,
		UnitCost: cost,
	})
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", name, err)
	}
	return item
}

// usd is a shorthand for a USD amount in tests.
func usd(value float64) Money { return M(value, "USD") }
