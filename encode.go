package stockroom

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Each collection is stored as one JSON document carrying a schema version,
// so future field additions stay readable by older data files. Unknown
// fields are ignored on decode.

// MarshalJSON implements the json.Marshaler interface for Item.
func (i Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("name", i.Name)
	w.Append("category", i.Category)
	w.Append("quantity", i.Quantity)
	w.Append("unitCost", i.UnitCost)
	w.Append("dateAdded", i.DateAdded.Format(DatetimeFormat))
	w.Optional("description", i.Description)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Withdrawal.
func (d Withdrawal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Append("itemId", d.ItemID)
	w.Append("itemName", d.ItemName)
	w.Append("category", d.Category)
	w.Append("quantity", d.Quantity)
	w.Append("unitCost", d.UnitCost)
	w.Append("totalCost", d.TotalCost)
	w.Append("date", d.Date.Format(DatetimeFormat))
	w.Optional("notes", d.Notes)
	return w.MarshalJSON()
}

// itemRec is a specialized struct for decoding an item record; the amounts
// are read as bare decimals and bound to the book currency afterwards.
type itemRec struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int64           `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	DateAdded   time.Time       `json:"dateAdded"`
	Description string          `json:"description"`
}

// withdrawalRec is a specialized struct for decoding a withdrawal record.
type withdrawalRec struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"itemId"`
	ItemName  string          `json:"itemName"`
	Category  string          `json:"category"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	TotalCost decimal.Decimal `json:"totalCost"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"`
}

func encodeItems(items []Item) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("version", schemaVersion)
	w.Append("items", items)
	return w.MarshalJSON()
}

// decodeItems decodes the items document. A corrupt document is logged and
// replaced by an empty collection rather than propagated as fatal.
func decodeItems(data []byte, currency string, log zerolog.Logger) []Item {
	if len(data) == 0 {
		return nil
	}
	var doc struct {
		Version int       `json:"version"`
		Items   []itemRec `json:"items"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("collection", colItems).Msg("corrupt document, substituting empty collection")
		return nil
	}
	items := make([]Item, 0, len(doc.Items))
	for _, r := range doc.Items {
		items = append(items, Item{
			ID:          r.ID,
			Name:        r.Name,
			Category:    r.Category,
			Quantity:    r.Quantity,
			UnitCost:    M(r.UnitCost, currency),
			DateAdded:   r.DateAdded,
			Description: r.Description,
		})
	}
	return items
}

func encodeWithdrawals(withdrawals []Withdrawal) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("version", schemaVersion)
	w.Append("withdrawals", withdrawals)
	return w.MarshalJSON()
}

// decodeWithdrawals decodes the withdrawals document, recovering an empty
// log from a corrupt one.
func decodeWithdrawals(data []byte, currency string, log zerolog.Logger) []Withdrawal {
	if len(data) == 0 {
		return nil
	}
	var doc struct {
		Version     int             `json:"version"`
		Withdrawals []withdrawalRec `json:"withdrawals"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("collection", colWithdrawals).Msg("corrupt document, substituting empty collection")
		return nil
	}
	withdrawals := make([]Withdrawal, 0, len(doc.Withdrawals))
	for _, r := range doc.Withdrawals {
		withdrawals = append(withdrawals, Withdrawal{
			ID:        r.ID,
			ItemID:    r.ItemID,
			ItemName:  r.ItemName,
			Category:  r.Category,
			Quantity:  r.Quantity,
			UnitCost:  M(r.UnitCost, currency),
			TotalCost: M(r.TotalCost, currency),
			Date:      r.Date,
			Notes:     r.Notes,
		})
	}
	return withdrawals
}

func encodeCategories(categories []string) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("version", schemaVersion)
	w.Append("categories", categories)
	return w.MarshalJSON()
}

// decodeCategories decodes the categories document. It returns nil both for
// an absent and for a corrupt document; the registry seeds its defaults in
// that case.
func decodeCategories(data []byte, log zerolog.Logger) []string {
	if len(data) == 0 {
		return nil
	}
	var doc struct {
		Version    int      `json:"version"`
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("collection", colCategories).Msg("corrupt document, substituting default categories")
		return nil
	}
	return doc.Categories
}
