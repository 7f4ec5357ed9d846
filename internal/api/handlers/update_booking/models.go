package update_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	updateBooking "github.com/m04kA/SMC-EquipmentBooking/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
// Отсутствующие поля не изменяются
type UpdateBookingRequest struct {
	EquipmentID *int64  `json:"equipmentId,omitempty" validate:"omitempty,min=1"`
	UserID      *int64  `json:"userId,omitempty" validate:"omitempty,min=1"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Quantity    *int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		Actor:       actor,
		BookingID:   bookingID,
		EquipmentID: r.EquipmentID,
		UserID:      r.UserID,
		Quantity:    r.Quantity,
	}

	if r.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("startTime: %w", err)
		}
		req.StartTime = &start
	}

	if r.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("endTime: %w", err)
		}
		req.EndTime = &end
	}

	return req, nil
}
