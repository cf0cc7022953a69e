package stockroom

import (
	"strings"

	"github.com/rs/zerolog"
)

// defaultCategories seeds a fresh book so the first item has somewhere to
// go.
var defaultCategories = []string{"Electronics", "Office Supplies", "Tools", "Uncategorized"}

// CategoryRegistry owns the set of valid category names. Names are unique
// ignoring case. A category still referenced by an item cannot be deleted;
// that is the only point where the item-category association is enforced —
// items are free to reference names the registry never held.
type CategoryRegistry struct {
	store Store
	items *ItemLedger
	log   zerolog.Logger
}

// load reads the categories collection, seeding the defaults when the store
// holds nothing usable.
func (r *CategoryRegistry) load() []string {
	data, err := r.store.Read(colCategories)
	if err != nil {
		r.log.Warn().Err(err).Str("collection", colCategories).Msg("read failed, substituting default categories")
		data = nil
	}
	categories := decodeCategories(data, r.log)
	if categories == nil {
		categories = append([]string(nil), defaultCategories...)
	}
	return categories
}

// Add appends a new category name. It reports false when a name already
// exists that matches ignoring case.
func (r *CategoryRegistry) Add(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, invalidf("category", "must not be empty")
	}

	categories := r.load()
	for _, existing := range categories {
		if strings.EqualFold(existing, name) {
			return false, nil
		}
	}

	categories = append(categories, name)
	if err := r.commit(categories); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the exact-match entry. It fails with a CategoryInUseError
// while at least one item's category equals name, and reports false when no
// exact match exists.
func (r *CategoryRegistry) Delete(name string) (bool, error) {
	inUse := 0
	for _, item := range r.items.Items() {
		if item.Category == name {
			inUse++
		}
	}
	if inUse > 0 {
		return false, &CategoryInUseError{Name: name, Items: inUse}
	}

	categories := r.load()
	for i, existing := range categories {
		if existing == name {
			categories = append(categories[:i], categories[i+1:]...)
			if err := r.commit(categories); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Categories returns every category name.
func (r *CategoryRegistry) Categories() []string {
	return r.load()
}

func (r *CategoryRegistry) commit(categories []string) error {
	data, err := encodeCategories(categories)
	if err != nil {
		return err
	}
	return r.store.Commit(map[string][]byte{colCategories: data})
}
