package calendar

// MonthView keeps the state of one month-grid screen: which (year, month) is
// displayed and the last snapshot that actually belongs to it. Fetches are
// asynchronous and may resolve out of order; Apply discards any response for
// a month the user has already navigated away from.
type MonthView struct {
	year   int
	month0 int
	snap   Snapshot
	loaded bool
}

func NewMonthView(year, month0 int) *MonthView {
	return &MonthView{year: year, month0: month0}
}

func (v *MonthView) Year() int   { return v.year }
func (v *MonthView) Month0() int { return v.month0 }

// Show navigates to another month. The previous snapshot no longer applies.
func (v *MonthView) Show(year, month0 int) {
	if year == v.year && month0 == v.month0 {
		return
	}
	v.year, v.month0 = year, month0
	v.snap = Snapshot{}
	v.loaded = false
}

// Apply installs a fetched snapshot if it was requested for the month still
// on screen. Returns false for stale responses, which callers must drop.
func (v *MonthView) Apply(year, month0 int, snap Snapshot) bool {
	if year != v.year || month0 != v.month0 {
		return false
	}
	v.snap = snap
	v.loaded = true
	return true
}

// Loaded reports whether the displayed month has data yet.
func (v *MonthView) Loaded() bool { return v.loaded }

// Snapshot returns the current month's data (zero value until loaded).
func (v *MonthView) Snapshot() Snapshot { return v.snap }

// Grid returns the day slots of the displayed month.
func (v *MonthView) Grid() []int { return MonthGrid(v.year, v.month0) }

// FetchRange returns the first and last ISO dates of the displayed month,
// the range the calendar and counts endpoints are queried with.
func (v *MonthView) FetchRange() (startISO, endISO string) {
	return ToISO(1, v.month0, v.year), ToISO(DaysInMonth(v.year, v.month0), v.month0, v.year)
}
