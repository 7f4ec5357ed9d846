package domain

// Time format constants
const (
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04"
)

// MinBookingQuantity minimal number of units in one booking
const MinBookingQuantity = 1
