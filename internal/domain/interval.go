package domain

import "time"

// Interval is a half-open time window [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval is non-empty
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Overlaps returns true if the two intervals share at least one instant.
// Touching endpoints (one ends exactly when the other starts) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Contains returns true if t lies within [Start, End)
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// ShiftDays returns the interval moved by n calendar days
func (i Interval) ShiftDays(n int) Interval {
	return Interval{Start: i.Start.AddDate(0, 0, n), End: i.End.AddDate(0, 0, n)}
}

// DayRange converts inclusive calendar dates into the window
// [startDate 00:00, endDate+1 00:00) in the dates' location
func DayRange(startDate, endDate time.Time) Interval {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location()).AddDate(0, 0, 1)
	return Interval{Start: start, End: end}
}
