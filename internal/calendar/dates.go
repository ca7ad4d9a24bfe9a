package calendar

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO     = "2006-01-02"
	layoutDisplay = "02/01/2006"
)

// ToISO formats a (day, month0, year) triple as YYYY-MM-DD. month0 is zero-based.
func ToISO(day, month0, year int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month0+1, day)
}

// ToDisplay formats a (day, month0, year) triple as DD/MM/YYYY.
func ToDisplay(day, month0, year int) string {
	return fmt.Sprintf("%02d/%02d/%04d", day, month0+1, year)
}

// ParseISO parses YYYY-MM-DD in the local timezone.
func ParseISO(s string) (time.Time, error) {
	return time.ParseInLocation(layoutISO, strings.TrimSpace(s), time.Local)
}

// ParseDisplay parses DD/MM/YYYY in the local timezone.
func ParseDisplay(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDisplay, strings.TrimSpace(s), time.Local)
}

// DisplayToISO converts DD/MM/YYYY to YYYY-MM-DD. The input is returned
// unchanged when it does not parse.
func DisplayToISO(s string) string {
	t, err := ParseDisplay(s)
	if err != nil {
		return s
	}
	return t.Format(layoutISO)
}

// Midnight truncates t to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPast reports whether iso falls strictly before today's local midnight.
// Today itself is never past. Malformed input is treated as not past so
// callers can keep rendering the raw string.
func IsPast(iso string, today time.Time) bool {
	d, err := ParseISO(iso)
	if err != nil {
		return false
	}
	return Midnight(d).Before(Midnight(today))
}

// DaysInMonth returns the day count of month0 (zero-based) in year,
// leap years included.
func DaysInMonth(year, month0 int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// DatesInRange enumerates every date from min(a,b) to max(a,b) inclusive,
// stepping one calendar day and crossing month/year boundaries. Returns nil
// when either bound is malformed.
func DatesInRange(a, b string) []string {
	start, err := ParseISO(a)
	if err != nil {
		return nil
	}
	end, err := ParseISO(b)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		start, end = end, start
	}

	var out []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(layoutISO))
	}
	return out
}
