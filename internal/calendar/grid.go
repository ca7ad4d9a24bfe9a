package calendar

import "time"

// PadDay marks a leading slot before day 1 in a month grid.
const PadDay = 0

// MonthGrid returns the ordered day slots for a month: one PadDay slot per
// weekday before the 1st (Sunday = offset 0), then 1..DaysInMonth. The tail
// is not padded; a short last row is up to the renderer.
func MonthGrid(year, month0 int) []int {
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.Local)
	offset := int(first.Weekday())

	days := DaysInMonth(year, month0)
	grid := make([]int, 0, offset+days)
	for i := 0; i < offset; i++ {
		grid = append(grid, PadDay)
	}
	for d := 1; d <= days; d++ {
		grid = append(grid, d)
	}
	return grid
}
