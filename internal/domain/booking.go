package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive   BookingStatus = "active"
	StatusCanceled BookingStatus = "canceled"
)

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	return s == StatusActive || s == StatusCanceled
}

// Booking is one occurrence: a fixed reservation of Quantity units of equipment for [StartTime, EndTime)
type Booking struct {
	ID          int64
	EquipmentID int64
	UserID      int64  // for whom the units are reserved
	CreatedBy   *int64 // who created the booking, nil if the creator was removed
	StartTime   time.Time
	EndTime     time.Time
	Quantity    int
	Status      BookingStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking counts toward committed capacity
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// Interval returns the booking time window
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	UserID      *int64         // nil - бронирования всех пользователей
	EquipmentID *int64         // фильтр по оборудованию (опционально)
	Status      *BookingStatus // фильтр по статусу (опционально)
	From        *time.Time     // бронирования, заканчивающиеся после From (опционально)
	To          *time.Time     // бронирования, начинающиеся до To (опционально)
}
