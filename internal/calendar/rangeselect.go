package calendar

import (
	"errors"
	"time"
)

// RangeState tracks the two-click range gesture in the admin calendar.
type RangeState string

const (
	RangeIdle      RangeState = "idle"
	RangeAnchorSet RangeState = "anchor_set"
	RangeReady     RangeState = "range_ready"
)

// ErrNoRange is returned when commit is attempted without a completed range.
var ErrNoRange = errors.New("no range selected")

// CommitFunc writes one date's status ("open" or "closed") to the calendar
// service.
type CommitFunc func(iso, status string) error

// RangeSelector implements the admin bulk open/close gesture: first click
// anchors, hover previews, second click completes the inclusive range, then
// a commit applies one status to every date in it. Past dates never react.
type RangeSelector struct {
	anchor string
	start  string
	end    string

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewRangeSelector() *RangeSelector {
	return &RangeSelector{Now: time.Now}
}

func (r *RangeSelector) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// State derives the machine state from the three fields.
func (r *RangeSelector) State() RangeState {
	switch {
	case r.anchor != "":
		return RangeAnchorSet
	case r.start != "" && r.end != "":
		return RangeReady
	default:
		return RangeIdle
	}
}

// Range returns the normalized bounds; empty strings until the range is
// complete (or previewed during hover).
func (r *RangeSelector) Range() (start, end string) {
	return r.start, r.end
}

// Click anchors a new range or completes the pending one. Clicking a past
// date is a no-op in every state.
func (r *RangeSelector) Click(iso string) {
	if IsPast(iso, r.now()) {
		return
	}
	if r.anchor == "" {
		r.anchor = iso
		r.start, r.end = "", ""
		return
	}
	r.start, r.end = orderedPair(r.anchor, iso)
	r.anchor = ""
}

// Hover updates the preview bounds while an anchor is set. The anchor itself
// never moves; this is a non-committing visual update.
func (r *RangeSelector) Hover(iso string) {
	if r.anchor == "" || IsPast(iso, r.now()) {
		return
	}
	r.start, r.end = orderedPair(r.anchor, iso)
}

// Cancel drops the gesture entirely.
func (r *RangeSelector) Cancel() {
	r.anchor, r.start, r.end = "", "", ""
}

// Contains reports whether iso lies inside the current (previewed or
// completed) range.
func (r *RangeSelector) Contains(iso string) bool {
	if r.start == "" || r.end == "" {
		return false
	}
	d, err := ParseISO(iso)
	if err != nil {
		return false
	}
	s, err := ParseISO(r.start)
	if err != nil {
		return false
	}
	e, err := ParseISO(r.end)
	if err != nil {
		return false
	}
	return !d.Before(s) && !d.After(e)
}

// Commit applies status to every date in the completed range, one write per
// date. The first failure aborts and keeps the range so the admin can retry;
// already-applied writes are not rolled back. On success the selector resets
// to idle.
func (r *RangeSelector) Commit(status string, commit CommitFunc) error {
	if r.State() != RangeReady {
		return ErrNoRange
	}
	for _, d := range DatesInRange(r.start, r.end) {
		if err := commit(d, status); err != nil {
			return err
		}
	}
	r.Cancel()
	return nil
}

func orderedPair(a, b string) (string, string) {
	ta, errA := ParseISO(a)
	tb, errB := ParseISO(b)
	if errA == nil && errB == nil && tb.Before(ta) {
		return b, a
	}
	return a, b
}
