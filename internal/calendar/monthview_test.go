package calendar

import "testing"

func TestMonthViewStaleResponseDiscarded(t *testing.T) {
	v := NewMonthView(2025, 5) // June 2025
	v.Show(2025, 6)            // user navigates to July before June data lands

	stale := Snapshot{Open: map[string]bool{"2025-06-15": true}, Cap: 3}
	if v.Apply(2025, 5, stale) {
		t.Fatalf("stale June response must be discarded")
	}
	if v.Loaded() {
		t.Fatalf("view marked loaded by stale response")
	}

	fresh := Snapshot{Open: map[string]bool{"2025-07-01": true}, Cap: 3}
	if !v.Apply(2025, 6, fresh) {
		t.Fatalf("matching response rejected")
	}
	if !v.Loaded() || !v.Snapshot().Open["2025-07-01"] {
		t.Fatalf("fresh snapshot not installed")
	}
}

func TestMonthViewLastMatchingResponseWins(t *testing.T) {
	v := NewMonthView(2025, 6)

	first := Snapshot{Counts: map[string]int{"2025-07-01": 1}, Cap: 3}
	second := Snapshot{Counts: map[string]int{"2025-07-01": 2}, Cap: 3}
	v.Apply(2025, 6, first)
	v.Apply(2025, 6, second)

	if got := v.Snapshot().Counts["2025-07-01"]; got != 2 {
		t.Fatalf("count = %d, want last received value 2", got)
	}
}

func TestMonthViewShowResetsSnapshot(t *testing.T) {
	v := NewMonthView(2025, 6)
	v.Apply(2025, 6, Snapshot{Cap: 3})

	v.Show(2025, 7)
	if v.Loaded() {
		t.Fatalf("navigation should clear loaded flag")
	}

	// re-showing the same month keeps the snapshot
	v.Show(2025, 7)
	v.Apply(2025, 7, Snapshot{Cap: 5})
	v.Show(2025, 7)
	if !v.Loaded() || v.Snapshot().Cap != 5 {
		t.Fatalf("no-op navigation dropped the snapshot")
	}
}

func TestMonthViewFetchRange(t *testing.T) {
	v := NewMonthView(2024, 1) // February 2024, leap year
	start, end := v.FetchRange()
	if start != "2024-02-01" || end != "2024-02-29" {
		t.Fatalf("fetch range = %q..%q", start, end)
	}
}
