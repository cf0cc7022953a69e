package stockroom

import "github.com/rs/zerolog"

// DefaultCurrency is the reporting currency of a book unless configured
// otherwise.
const DefaultCurrency = "USD"

// Book bundles the item ledger, the category registry and the withdrawal
// ledger over a single store. It is the entry point for any presentation
// layer: construct one Book per data file and call the components directly.
type Book struct {
	Items       *ItemLedger
	Categories  *CategoryRegistry
	Withdrawals *WithdrawalLedger
}

// NewBook creates a book persisting through store. All amounts are carried
// in currency; log receives warnings when a stored document cannot be read
// and is replaced by a default.
func NewBook(store Store, currency string, log zerolog.Logger) *Book {
	if currency == "" {
		currency = DefaultCurrency
	}
	items := &ItemLedger{store: store, currency: currency, log: log}
	return &Book{
		Items:       items,
		Categories:  &CategoryRegistry{store: store, items: items, log: log},
		Withdrawals: &WithdrawalLedger{store: store, items: items, log: log},
	}
}
