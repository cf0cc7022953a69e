package stockroom

import (
	"testing"
	"time"
)

func TestRange_Covers(t *testing.T) {
	r := NewRange(NewDate(2026, 1, 1), NewDate(2026, 1, 31))

	tests := []struct {
		name     string
		instant  time.Time
		expected bool
	}{
		{"midnight on the first day", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"midnight on the last day", time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), true},
		{"late evening on the last day", time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC), true},
		{"midway through the range", time.Date(2026, 1, 15, 12, 30, 0, 0, time.UTC), true},
		{"just before the range", time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), false},
		{"first instant after the range", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Covers(tt.instant); got != tt.expected {
				t.Errorf("Covers(%v) = %v, want %v", tt.instant, got, tt.expected)
			}
		})
	}
}

func TestRange_Covers_OpenBounds(t *testing.T) {
	early := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)

	if !(Range{}).Covers(early) || !(Range{}).Covers(late) {
		t.Errorf("the zero range must cover everything")
	}

	since := NewRange(NewDate(2026, 1, 1), Date{})
	if since.Covers(early) {
		t.Errorf("open-ended range must still enforce its start bound")
	}
	if !since.Covers(late) {
		t.Errorf("open-ended range must cover any later instant")
	}

	until := NewRange(Date{}, NewDate(2026, 1, 1))
	if !until.Covers(early) {
		t.Errorf("open-started range must cover any earlier instant")
	}
	if until.Covers(late) {
		t.Errorf("open-started range must still enforce its end bound")
	}
}

func TestNewRange_SwapsBounds(t *testing.T) {
	got := NewRange(NewDate(2026, 3, 1), NewDate(2026, 1, 1))
	want := NewRange(NewDate(2026, 1, 1), NewDate(2026, 3, 1))
	if got != want {
		t.Errorf("NewRange() = %v, want %v", got, want)
	}
}

func TestRange_String(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		expected string
	}{
		{"all time", Range{}, "all time"},
		{"until", NewRange(Date{}, NewDate(2026, 1, 31)), "until 2026-01-31"},
		{"since", NewRange(NewDate(2026, 1, 1), Date{}), "since 2026-01-01"},
		{"single day", NewRange(NewDate(2026, 1, 1), NewDate(2026, 1, 1)), "2026-01-01"},
		{"bounded", NewRange(NewDate(2026, 1, 1), NewDate(2026, 1, 31)), "2026-01-01 to 2026-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
