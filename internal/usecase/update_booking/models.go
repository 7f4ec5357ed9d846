package update_booking

import (
	"time"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// Request модель запроса на изменение бронирования
// nil поля не изменяются
type Request struct {
	Actor       domain.Actor
	BookingID   int64
	EquipmentID *int64
	UserID      *int64
	StartTime   *time.Time
	EndTime     *time.Time
	Quantity    *int
}

// Response модель ответа с изменённым бронированием
type Response struct {
	Booking *domain.Booking
}

// isEmpty возвращает true, если запрос ничего не меняет
func (r *Request) isEmpty() bool {
	return r.EquipmentID == nil && r.UserID == nil && r.StartTime == nil && r.EndTime == nil && r.Quantity == nil
}

// apply возвращает копию бронирования с изменёнными полями
func (r *Request) apply(current *domain.Booking) *domain.Booking {
	updated := *current
	if r.EquipmentID != nil {
		updated.EquipmentID = *r.EquipmentID
	}
	if r.UserID != nil {
		updated.UserID = *r.UserID
	}
	if r.StartTime != nil {
		updated.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		updated.EndTime = *r.EndTime
	}
	if r.Quantity != nil {
		updated.Quantity = *r.Quantity
	}
	return &updated
}
