package calendar

import "time"

// Status is the derived state of a single calendar day. It is computed on
// demand and never stored.
type Status string

const (
	StatusNone      Status = ""          // padding slot, nothing to render
	StatusPast      Status = "past"      // before today, always inert
	StatusNotOpen   Status = "not_open"  // admin has not opened the date
	StatusFull      Status = "full"      // booking count reached the per-day cap
	StatusSelected  Status = "selected"  // part of the current selection
	StatusAvailable Status = "available" // open, under cap, not selected
)

// Selectable reports whether a day with this status accepts click input
// toward a selection. Inert days are a no-op, not an error.
func (s Status) Selectable() bool {
	return s == StatusAvailable || s == StatusSelected
}

// Snapshot is the month data fetched from the calendar service: the set of
// admin-opened dates, per-date booking counts and the per-day cap. A date
// missing from Open is closed.
type Snapshot struct {
	Open   map[string]bool
	Counts map[string]int
	Cap    int
}

// Classify resolves one day slot of (year, month0) against the snapshot.
// Precedence is fixed: PAST beats everything, then NOT_OPEN, FULL, SELECTED,
// AVAILABLE. A nil selection counts as empty.
func (s Snapshot) Classify(day, month0, year int, sel *Selection, today time.Time) Status {
	if day == PadDay {
		return StatusNone
	}
	iso := ToISO(day, month0, year)
	switch {
	case IsPast(iso, today):
		return StatusPast
	case !s.Open[iso]:
		return StatusNotOpen
	case s.Counts[iso] >= s.Cap:
		return StatusFull
	case sel != nil && sel.Contains(iso):
		return StatusSelected
	default:
		return StatusAvailable
	}
}

// Remaining returns how many bookings the date can still take, floored at 0.
func (s Snapshot) Remaining(iso string) int {
	left := s.Cap - s.Counts[iso]
	if left < 0 {
		return 0
	}
	return left
}
