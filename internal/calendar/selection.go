package calendar

// DefaultMaxDates caps how many dates one booking flow may pick.
const DefaultMaxDates = 3

// Selection is the ordered, duplicate-free set of dates a visitor is choosing
// for one booking. Toggling past the cap is silently ignored.
type Selection struct {
	max   int
	dates []string

	// OnComplete fires when an append fills the selection; callers use it to
	// advance the flow.
	OnComplete func()
}

// NewSelection creates an empty selection; max <= 0 falls back to
// DefaultMaxDates.
func NewSelection(max int) *Selection {
	if max <= 0 {
		max = DefaultMaxDates
	}
	return &Selection{max: max}
}

// Restore seeds the selection from navigation-carried state, dropping
// duplicates and anything past the cap.
func (s *Selection) Restore(dates []string) {
	s.dates = s.dates[:0]
	for _, d := range dates {
		if len(s.dates) == s.max {
			break
		}
		if s.Contains(d) {
			continue
		}
		s.dates = append(s.dates, d)
	}
}

// Toggle removes iso when present, appends it when there is room, and is a
// no-op for inert days or a full selection. Returns whether anything changed.
func (s *Selection) Toggle(iso string, st Status) bool {
	if !st.Selectable() {
		return false
	}
	for i, d := range s.dates {
		if d == iso {
			s.dates = append(s.dates[:i], s.dates[i+1:]...)
			return true
		}
	}
	if len(s.dates) >= s.max {
		return false
	}
	s.dates = append(s.dates, iso)
	if len(s.dates) == s.max && s.OnComplete != nil {
		s.OnComplete()
	}
	return true
}

func (s *Selection) Contains(iso string) bool {
	for _, d := range s.dates {
		if d == iso {
			return true
		}
	}
	return false
}

// Dates returns the selected dates in insertion order.
func (s *Selection) Dates() []string {
	out := make([]string, len(s.dates))
	copy(out, s.dates)
	return out
}

func (s *Selection) Len() int { return len(s.dates) }

// Clear empties the selection after a successful submission.
func (s *Selection) Clear() { s.dates = s.dates[:0] }
