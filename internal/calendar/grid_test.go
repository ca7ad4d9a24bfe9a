package calendar

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month0, want int
	}{
		{2024, 1, 29}, // leap
		{2023, 1, 28},
		{2000, 1, 29}, // divisible by 400
		{1900, 1, 28}, // century, not leap
		{2025, 0, 31},
		{2025, 3, 30},
		{2025, 11, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month0); got != c.want {
			t.Fatalf("DaysInMonth(%d,%d) = %d, want %d", c.year, c.month0, got, c.want)
		}
	}
}

func TestMonthGridShape(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month0 := 0; month0 < 12; month0++ {
			grid := MonthGrid(year, month0)

			first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.Local)
			offset := int(first.Weekday())
			days := DaysInMonth(year, month0)

			if len(grid) != offset+days {
				t.Fatalf("%d-%02d: grid length %d, want %d", year, month0+1, len(grid), offset+days)
			}
			for i := 0; i < offset; i++ {
				if grid[i] != PadDay {
					t.Fatalf("%d-%02d: slot %d should be padding, got %d", year, month0+1, i, grid[i])
				}
			}
			for i := 0; i < days; i++ {
				if grid[offset+i] != i+1 {
					t.Fatalf("%d-%02d: slot %d = %d, want %d", year, month0+1, offset+i, grid[offset+i], i+1)
				}
			}
		}
	}
}

func TestToISOAndDisplay(t *testing.T) {
	if got := ToISO(5, 5, 2025); got != "2025-06-05" {
		t.Fatalf("ToISO = %q", got)
	}
	if got := ToDisplay(5, 5, 2025); got != "05/06/2025" {
		t.Fatalf("ToDisplay = %q", got)
	}
	if got := DisplayToISO("28/06/2025"); got != "2025-06-28" {
		t.Fatalf("DisplayToISO = %q", got)
	}
	if got := DisplayToISO("garbage"); got != "garbage" {
		t.Fatalf("DisplayToISO should pass through malformed input, got %q", got)
	}
}

func TestIsPast(t *testing.T) {
	today := time.Date(2025, 6, 15, 13, 45, 0, 0, time.Local)

	if !IsPast("2025-06-14", today) {
		t.Fatalf("yesterday should be past")
	}
	if IsPast("2025-06-15", today) {
		t.Fatalf("today must never be past")
	}
	if IsPast("2025-06-16", today) {
		t.Fatalf("tomorrow should not be past")
	}
	if IsPast("not-a-date", today) {
		t.Fatalf("malformed date should not be past")
	}
}

func TestDatesInRange(t *testing.T) {
	got := DatesInRange("2025-06-28", "2025-07-02")
	want := []string{"2025-06-28", "2025-06-29", "2025-06-30", "2025-07-01", "2025-07-02"}
	if len(got) != len(want) {
		t.Fatalf("got %d dates, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}

	// reversed bounds normalize
	rev := DatesInRange("2025-07-02", "2025-06-28")
	if len(rev) != 5 || rev[0] != "2025-06-28" || rev[4] != "2025-07-02" {
		t.Fatalf("reversed range not normalized: %v", rev)
	}

	// year boundary
	ny := DatesInRange("2024-12-30", "2025-01-02")
	if len(ny) != 4 || ny[2] != "2025-01-01" {
		t.Fatalf("year-crossing range wrong: %v", ny)
	}

	if DatesInRange("bad", "2025-01-01") != nil {
		t.Fatalf("malformed bound should yield nil")
	}
}
