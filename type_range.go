package stockroom

import (
	"fmt"
	"iter"
	"time"
)

// Range represents a range of calendar days, boundaries included.
//
// A zero From means the range is open at the start (everything since the
// epoch matches), and a zero To means it is open at the end. The To bound
// covers its whole calendar day, so a range ending "today" includes every
// withdrawal recorded today regardless of the time of day.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true if the date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool {
	return (r.From.IsZero() || !date.Before(r.From)) && (r.To.IsZero() || !date.After(r.To))
}

// Covers reports whether the instant t falls within the range. The start
// bound is the first instant of From's day and the end bound is the last
// instant of To's day.
func (r Range) Covers(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From.StartOfDay()) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To.EndOfDay()) {
		return false
	}
	return true
}

// Days returns an iterator that yields each date within the range, inclusive.
// Both bounds must be set.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// String names the range for display.
func (r Range) String() string {
	switch {
	case r.From.IsZero() && r.To.IsZero():
		return "all time"
	case r.From.IsZero():
		return fmt.Sprintf("until %s", r.To)
	case r.To.IsZero():
		return fmt.Sprintf("since %s", r.From)
	case r.From == r.To:
		return r.From.String()
	default:
		return fmt.Sprintf("%s to %s", r.From, r.To)
	}
}
