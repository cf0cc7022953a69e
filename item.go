package stockroom

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Item represents one stock-keeping unit. ID and DateAdded are assigned at
// creation and never change; Quantity is the only field a withdrawal
// mutates.
type Item struct {
	ID          string
	Name        string
	Category    string
	Quantity    int64
	UnitCost    Money // current cost basis
	DateAdded   time.Time
	Description string
}

// ItemDraft carries the textual input for a new item. Numeric fields are
// kept as text so parsing failures can be rejected at this boundary instead
// of letting an invalid value flow into the book.
type ItemDraft struct {
	Name        string
	Category    string
	Quantity    string
	UnitCost    string
	Description string
}

// ItemPatch updates a subset of an item's fields. A nil field is left
// untouched.
type ItemPatch struct {
	Name        *string
	Category    *string
	Quantity    *string
	UnitCost    *string
	Description *string
}

// parseQuantity validates a textual quantity as a non-negative integer.
func parseQuantity(field, s string) (int64, error) {
	q, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, invalidf(field, "%q is not a whole number", s)
	}
	if q < 0 {
		return 0, invalidf(field, "must not be negative, got %d", q)
	}
	return q, nil
}

// parseCost validates a textual cost as a non-negative decimal amount.
func parseCost(field, s, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, invalidf(field, "%q is not a number", s)
	}
	if d.IsNegative() {
		return Money{}, invalidf(field, "must not be negative, got %s", d)
	}
	return M(d, currency), nil
}

// ItemLedger owns the item records. Every operation reads the whole
// collection from the store, mutates it in memory and commits it back.
type ItemLedger struct {
	store    Store
	currency string
	log      zerolog.Logger
}

// load reads the items collection. A read failure or a corrupt document is
// recovered locally by starting from an empty collection; the book prefers
// staying available over refusing to open.
func (l *ItemLedger) load() []Item {
	data, err := l.store.Read(colItems)
	if err != nil {
		l.log.Warn().Err(err).Str("collection", colItems).Msg("read failed, substituting empty collection")
		return nil
	}
	return decodeItems(data, l.currency, l.log)
}

// Create validates the draft, assigns an id and creation time, and persists
// the new item. The draft's category is trusted as-is: the registry is
// consulted only when deleting categories, not here.
func (l *ItemLedger) Create(draft ItemDraft) (Item, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return Item{}, invalidf("name", "must not be empty")
	}
	quantity, err := parseQuantity("quantity", draft.Quantity)
	if err != nil {
		return Item{}, err
	}
	cost, err := parseCost("unit cost", draft.UnitCost, l.currency)
	if err != nil {
		return Item{}, err
	}

	item := Item{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    strings.TrimSpace(draft.Category),
		Quantity:    quantity,
		UnitCost:    cost,
		DateAdded:   time.Now().UTC(),
		Description: strings.TrimSpace(draft.Description),
	}

	items := append(l.load(), item)
	if err := l.commit(items); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Update merges the patch over the stored record, re-validating numeric
// fields. It reports false without error when the id is unknown.
func (l *ItemLedger) Update(id string, patch ItemPatch) (bool, error) {
	items := l.load()
	idx := itemIndex(items, id)
	if idx < 0 {
		return false, nil
	}

	updated := items[idx]
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return false, invalidf("name", "must not be empty")
		}
		updated.Name = name
	}
	if patch.Category != nil {
		updated.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Quantity != nil {
		quantity, err := parseQuantity("quantity", *patch.Quantity)
		if err != nil {
			return false, err
		}
		updated.Quantity = quantity
	}
	if patch.UnitCost != nil {
		cost, err := parseCost("unit cost", *patch.UnitCost, l.currency)
		if err != nil {
			return false, err
		}
		updated.UnitCost = cost
	}
	if patch.Description != nil {
		updated.Description = strings.TrimSpace(*patch.Description)
	}

	items[idx] = updated
	if err := l.commit(items); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the record. It reports false when the id is unknown, so a
// second delete of the same id is a harmless no-op. Withdrawals recorded
// against the item are untouched: they carry their own snapshot of it.
func (l *ItemLedger) Delete(id string) (bool, error) {
	items := l.load()
	idx := itemIndex(items, id)
	if idx < 0 {
		return false, nil
	}
	items = append(items[:idx], items[idx+1:]...)
	if err := l.commit(items); err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the item with the given id.
func (l *ItemLedger) Get(id string) (Item, bool) {
	items := l.load()
	idx := itemIndex(items, id)
	if idx < 0 {
		return Item{}, false
	}
	return items[idx], true
}

// Items returns every item in insertion order.
func (l *ItemLedger) Items() []Item {
	return l.load()
}

// commit persists the whole items collection.
func (l *ItemLedger) commit(items []Item) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}
	return l.store.Commit(map[string][]byte{colItems: data})
}

func itemIndex(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
