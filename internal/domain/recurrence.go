package domain

import (
	"errors"
	"fmt"
)

// RecurrenceInterval represents how often a recurring booking repeats
type RecurrenceInterval string

const (
	IntervalDaily  RecurrenceInterval = "daily"
	IntervalWeekly RecurrenceInterval = "weekly"
)

var (
	// ErrUnknownInterval возвращается для неизвестного интервала повторения
	ErrUnknownInterval = errors.New("domain: unknown recurrence interval")

	// ErrInvalidCount возвращается, если количество повторений меньше 1
	ErrInvalidCount = errors.New("domain: recurrence count must be at least 1")

	// ErrCountTooLarge возвращается, если серия длиннее MaxRecurrenceCount
	ErrCountTooLarge = errors.New("domain: recurrence count is too large")
)

// MaxRecurrenceCount upper bound of occurrences in one series
const MaxRecurrenceCount = 366

// Days returns the calendar-day shift between two consecutive occurrences
func (r RecurrenceInterval) Days() (int, error) {
	switch r {
	case IntervalDaily:
		return 1, nil
	case IntervalWeekly:
		return 7, nil
	default:
		return 0, ErrUnknownInterval
	}
}

// Recurrence describes a series: Count occurrences, each shifted by Interval from the previous
type Recurrence struct {
	Interval RecurrenceInterval
	Count    int
}

// Validate checks the recurrence descriptor
func (r Recurrence) Validate() error {
	if _, err := r.Interval.Days(); err != nil {
		return err
	}
	if r.Count < 1 {
		return ErrInvalidCount
	}
	if r.Count > MaxRecurrenceCount {
		return fmt.Errorf("%w: %d, at most %d", ErrCountTooLarge, r.Count, MaxRecurrenceCount)
	}
	return nil
}

// Expand returns the occurrence intervals of the series in chronological order.
// Occurrence i is the template shifted by i*Days calendar days.
func (r Recurrence) Expand(template Interval) ([]Interval, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	days, _ := r.Interval.Days()
	occurrences := make([]Interval, r.Count)
	for i := 0; i < r.Count; i++ {
		occurrences[i] = template.ShiftDays(i * days)
	}
	return occurrences, nil
}

// ExpandOccurrences expands an optional recurrence; nil means a single occurrence
func ExpandOccurrences(template Interval, recurrence *Recurrence) ([]Interval, error) {
	if recurrence == nil {
		return []Interval{template}, nil
	}
	return recurrence.Expand(template)
}
