package stockroom

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Withdrawal is an immutable record of stock removed from an item. ItemName,
// Category and UnitCost are copied from the item at withdrawal time so that
// later edits or deletions never rewrite history. There is no reversal
// operation: a withdrawal, once recorded, stays.
type Withdrawal struct {
	ID        string
	ItemID    string
	ItemName  string
	Category  string
	Quantity  int64
	UnitCost  Money // the item's cost basis when the withdrawal happened
	TotalCost Money // Quantity times UnitCost, frozen
	Date      time.Time
	Notes     string
}

// WithdrawalLedger owns the append-only withdrawal log. It reads the item
// ledger to validate stock and stages the item decrement together with the
// appended record in a single store commit.
type WithdrawalLedger struct {
	store Store
	items *ItemLedger
	log   zerolog.Logger
}

// load reads the withdrawals collection, recovering an empty log from a
// failed read or a corrupt document.
func (l *WithdrawalLedger) load() []Withdrawal {
	data, err := l.store.Read(colWithdrawals)
	if err != nil {
		l.log.Warn().Err(err).Str("collection", colWithdrawals).Msg("read failed, substituting empty collection")
		return nil
	}
	return decodeWithdrawals(data, l.items.currency, l.log)
}

// Withdraw removes quantity units from the identified item and appends the
// withdrawal record. The total cost uses the item's current unit cost —
// last-cost policy, not FIFO or a historical average.
//
// The decremented item collection and the extended log are committed
// together: either both land on disk or the operation fails with no effect.
func (l *WithdrawalLedger) Withdraw(itemID string, quantity int64, notes string) (Withdrawal, error) {
	items := l.items.load()
	idx := itemIndex(items, itemID)
	if idx < 0 {
		return Withdrawal{}, ErrItemNotFound
	}
	item := items[idx]

	if quantity <= 0 {
		return Withdrawal{}, invalidf("quantity", "must be positive, got %d", quantity)
	}
	if quantity > item.Quantity {
		return Withdrawal{}, &InsufficientStockError{
			ItemName:  item.Name,
			Requested: quantity,
			Available: item.Quantity,
		}
	}

	withdrawal := Withdrawal{
		ID:        uuid.NewString(),
		ItemID:    item.ID,
		ItemName:  item.Name,
		Category:  item.Category,
		Quantity:  quantity,
		UnitCost:  item.UnitCost,
		TotalCost: item.UnitCost.Mul(quantity),
		Date:      time.Now().UTC(),
		Notes:     notes,
	}

	items[idx].Quantity -= quantity
	withdrawals := append(l.load(), withdrawal)

	itemsData, err := encodeItems(items)
	if err != nil {
		return Withdrawal{}, err
	}
	logData, err := encodeWithdrawals(withdrawals)
	if err != nil {
		return Withdrawal{}, err
	}
	err = l.store.Commit(map[string][]byte{
		colItems:       itemsData,
		colWithdrawals: logData,
	})
	if err != nil {
		return Withdrawal{}, err
	}
	return withdrawal, nil
}

// Withdrawals returns the whole log in storage order. Display ordering is a
// report concern, see History.
func (l *WithdrawalLedger) Withdrawals() []Withdrawal {
	return l.load()
}

// Filter returns the withdrawals within the date range whose category equals
// category. An empty category matches everything; the range bounds are
// inclusive and the end bound covers its whole calendar day.
func (l *WithdrawalLedger) Filter(r Range, category string) []Withdrawal {
	var out []Withdrawal
	for _, w := range l.load() {
		if !r.Covers(w.Date) {
			continue
		}
		if category != "" && w.Category != category {
			continue
		}
		out = append(out, w)
	}
	return out
}
