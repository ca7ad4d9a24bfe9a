package calendar

import "testing"

func TestToggleSequence(t *testing.T) {
	sel := NewSelection(3)
	completed := 0
	sel.OnComplete = func() { completed++ }

	dates := []string{"2025-06-11", "2025-06-12", "2025-06-13", "2025-06-14"}
	for _, d := range dates {
		sel.Toggle(d, StatusAvailable)
	}

	if sel.Len() != 3 {
		t.Fatalf("selection length = %d, want 3", sel.Len())
	}
	got := sel.Dates()
	for i, want := range dates[:3] {
		if got[i] != want {
			t.Fatalf("index %d: got %q, want %q", i, got[i], want)
		}
	}
	if sel.Contains("2025-06-14") {
		t.Fatalf("4th toggle should have been ignored")
	}
	if completed != 1 {
		t.Fatalf("completion signal fired %d times, want 1", completed)
	}

	// removing the 2nd keeps relative order of the rest
	sel.Toggle("2025-06-12", StatusSelected)
	got = sel.Dates()
	if len(got) != 2 || got[0] != "2025-06-11" || got[1] != "2025-06-13" {
		t.Fatalf("after removal got %v", got)
	}
}

func TestToggleInertStatuses(t *testing.T) {
	sel := NewSelection(3)
	for _, st := range []Status{StatusPast, StatusNotOpen, StatusFull, StatusNone} {
		if sel.Toggle("2025-06-11", st) {
			t.Fatalf("toggle with status %q should be a no-op", st)
		}
	}
	if sel.Len() != 0 {
		t.Fatalf("selection not empty: %v", sel.Dates())
	}
}

func TestToggleNoDuplicates(t *testing.T) {
	sel := NewSelection(3)
	sel.Toggle("2025-06-11", StatusAvailable)
	sel.Toggle("2025-06-11", StatusSelected) // toggles off
	sel.Toggle("2025-06-11", StatusAvailable)

	if sel.Len() != 1 {
		t.Fatalf("length = %d, want 1", sel.Len())
	}
}

func TestRestoreDropsDuplicatesAndOverflow(t *testing.T) {
	sel := NewSelection(3)
	sel.Restore([]string{"2025-06-11", "2025-06-11", "2025-06-12", "2025-06-13", "2025-06-14"})

	got := sel.Dates()
	if len(got) != 3 || got[0] != "2025-06-11" || got[1] != "2025-06-12" || got[2] != "2025-06-13" {
		t.Fatalf("restored selection = %v", got)
	}
}

func TestClearAfterSubmit(t *testing.T) {
	sel := NewSelection(0) // default max
	sel.Toggle("2025-06-11", StatusAvailable)
	sel.Clear()
	if sel.Len() != 0 {
		t.Fatalf("clear left %d dates", sel.Len())
	}
}
