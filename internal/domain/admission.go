package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidInterval возвращается, если конец бронирования не позже начала
	ErrInvalidInterval = errors.New("domain: end time must be after start time")

	// ErrInvalidQuantity возвращается, если количество единиц меньше минимального
	ErrInvalidQuantity = errors.New("domain: quantity must be at least 1")

	// ErrCapacityExceeded возвращается, если бронирование превышает вместимость оборудования
	ErrCapacityExceeded = errors.New("domain: equipment capacity exceeded")
)

// ValidateReservation checks the structural rules shared by every occurrence
func ValidateReservation(interval Interval, quantity int) error {
	if interval.Start.IsZero() || interval.End.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidInterval)
	}
	if !interval.IsValid() {
		return ErrInvalidInterval
	}
	if quantity < MinBookingQuantity {
		return ErrInvalidQuantity
	}
	return nil
}

// CapacityConflictError reports the first occurrence (in chronological order)
// that would push committed units above the equipment total
type CapacityConflictError struct {
	EquipmentID     int64
	EquipmentName   string
	OccurrenceStart time.Time
	OccurrenceIndex int
	Committed       int
	Requested       int
	Total           int
}

func (e *CapacityConflictError) Error() string {
	return fmt.Sprintf("not enough units of %q at %s: %d of %d committed, %d requested",
		e.EquipmentName, e.OccurrenceStart.Format(DateTimeFormat), e.Committed, e.Total, e.Requested)
}

func (e *CapacityConflictError) Unwrap() error {
	return ErrCapacityExceeded
}
