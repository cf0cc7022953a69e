package stockroom

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	withdrawals := []Withdrawal{
		{ItemName: "A", Quantity: 5, TotalCost: usd(10)},
		{ItemName: "B", Quantity: 3, TotalCost: usd(9)},
		{ItemName: "A", Quantity: 5, TotalCost: usd(10)},
	}

	s := NewSummary(withdrawals)
	if s.IsEmpty() {
		t.Fatalf("IsEmpty() = true over %d withdrawals", len(withdrawals))
	}
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if s.TotalQuantity != 13 {
		t.Errorf("TotalQuantity = %d, want 13", s.TotalQuantity)
	}
	if !s.TotalCost.Equal(usd(29)) {
		t.Errorf("TotalCost = %s, want %s", s.TotalCost, usd(29))
	}
	// 29 over 3 withdrawals.
	if want := usd(29).Div(3); !s.AverageCost.Equal(want) {
		t.Errorf("AverageCost = %s, want %s", s.AverageCost, want)
	}
	if s.MostWithdrawn != "A" || s.MostWithdrawnQuantity != 10 {
		t.Errorf("MostWithdrawn = %q (%d), want %q (10)", s.MostWithdrawn, s.MostWithdrawnQuantity, "A")
	}
}

func TestNewSummary_Empty(t *testing.T) {
	s := NewSummary(nil)
	if !s.IsEmpty() {
		t.Fatalf("IsEmpty() = false over no withdrawals")
	}
	// The empty summary is all zero values; in particular no division by
	// zero happened computing the average.
	if s.TotalQuantity != 0 || !s.TotalCost.IsZero() || !s.AverageCost.IsZero() || s.MostWithdrawn != "" {
		t.Errorf("empty summary is not zero: %+v", s)
	}
}

func TestNewSummary_TieBreak(t *testing.T) {
	// B and A end up with the same total; the smaller name wins whatever
	// the input order.
	tests := []struct {
		name        string
		withdrawals []Withdrawal
	}{
		{"A first", []Withdrawal{{ItemName: "A", Quantity: 4}, {ItemName: "B", Quantity: 4}}},
		{"B first", []Withdrawal{{ItemName: "B", Quantity: 4}, {ItemName: "A", Quantity: 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSummary(tt.withdrawals)
			if s.MostWithdrawn != "A" {
				t.Errorf("MostWithdrawn = %q, want %q", s.MostWithdrawn, "A")
			}
		})
	}
}

func TestHistory(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 12, 0, 0, 0, time.UTC) }
	withdrawals := []Withdrawal{
		{ItemName: "old", Date: day(1)},
		{ItemName: "newest", Date: day(20)},
		{ItemName: "mid", Date: day(10)},
	}

	got := History(withdrawals)
	want := []string{"newest", "mid", "old"}
	for i, name := range want {
		if got[i].ItemName != name {
			t.Errorf("History()[%d] = %q, want %q", i, got[i].ItemName, name)
		}
	}

	// The input slice is left as it was.
	if withdrawals[0].ItemName != "old" {
		t.Errorf("History() reordered its input")
	}
}

func TestHistory_StableOnSameInstant(t *testing.T) {
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	withdrawals := []Withdrawal{
		{ItemName: "first", Date: at},
		{ItemName: "second", Date: at},
	}

	got := History(withdrawals)
	if got[0].ItemName != "first" || got[1].ItemName != "second" {
		t.Errorf("History() must keep the log order of same-instant records, got %+v", got)
	}
}
