package stockroom

// Names of the collections a Book persists.
const (
	colItems       = "items"
	colCategories  = "categories"
	colWithdrawals = "withdrawals"
)

// Store persists named collections as raw JSON documents.
//
// It is the single capability handed to every ledger component at
// construction, so tests can substitute an in-memory double and the backend
// can be swapped without touching the ledgers. Every ledger operation does a
// full read-mutate-commit cycle on the collections it touches.
type Store interface {
	// Read returns the stored document for the named collection, or nil
	// when the collection has never been written.
	Read(name string) ([]byte, error)

	// Commit writes every document in puts. Either all of them are
	// persisted or none: a withdrawal stages the updated items and the
	// extended withdrawal log in a single Commit so the ledger can never
	// be left half-applied.
	Commit(puts map[string][]byte) error

	// Close releases the underlying resources.
	Close() error
}
