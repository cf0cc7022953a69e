package stockroom

import "sort"

// Summary aggregates a set of withdrawals, typically pre-filtered by date
// range and category. It is computed purely from the records passed in and
// never touches the store.
type Summary struct {
	Count                 int   // number of withdrawals
	TotalQuantity         int64 // units withdrawn
	TotalCost             Money
	AverageCost           Money  // TotalCost over Count, zero when empty
	MostWithdrawn         string // item name with the highest withdrawn quantity
	MostWithdrawnQuantity int64
}

// IsEmpty reports whether the summary was computed over no withdrawals at
// all. Callers should render an explicit "no data" notice instead of the
// zero figures.
func (s *Summary) IsEmpty() bool { return s.Count == 0 }

// NewSummary computes the summary of a withdrawal set.
//
// MostWithdrawn groups the withdrawals by item name and picks the name with
// the largest total quantity; ties go to the lexicographically smallest
// name, so the result is deterministic whatever the input order.
func NewSummary(withdrawals []Withdrawal) *Summary {
	s := &Summary{Count: len(withdrawals)}
	if s.Count == 0 {
		return s
	}

	perItem := make(map[string]int64)
	for _, w := range withdrawals {
		s.TotalQuantity += w.Quantity
		s.TotalCost = s.TotalCost.Add(w.TotalCost)
		perItem[w.ItemName] += w.Quantity
	}
	s.AverageCost = s.TotalCost.Div(int64(s.Count))

	for name, quantity := range perItem {
		if quantity > s.MostWithdrawnQuantity ||
			(quantity == s.MostWithdrawnQuantity && name < s.MostWithdrawn) {
			s.MostWithdrawn = name
			s.MostWithdrawnQuantity = quantity
		}
	}
	return s
}

// History returns a copy of the withdrawals sorted by date, newest first.
// The sort is stable so same-instant records keep their log order.
func History(withdrawals []Withdrawal) []Withdrawal {
	out := make([]Withdrawal, len(withdrawals))
	copy(out, withdrawals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
