package domain

import "time"

// Equipment represents a bookable equipment type with a finite number of units
type Equipment struct {
	ID            int64
	Name          string
	Type          string
	Location      *string
	TotalQuantity int
	IsAvailable   bool // false while under maintenance: no new bookings admitted
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanBeBooked returns true if the equipment accepts new bookings
func (e *Equipment) CanBeBooked() bool {
	return e.IsAvailable
}

// FreeUnits returns how many units are left when committed units are already taken
func (e *Equipment) FreeUnits(committed int) int {
	free := e.TotalQuantity - committed
	if free < 0 {
		return 0
	}
	return free
}
