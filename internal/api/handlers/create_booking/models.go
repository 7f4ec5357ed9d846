package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-EquipmentBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EquipmentID int64              `json:"equipmentId" validate:"required,min=1"`
	UserID      *int64             `json:"userId,omitempty" validate:"omitempty,min=1"` // по умолчанию - текущий пользователь
	StartTime   string             `json:"startTime" validate:"required"`               // RFC 3339, "2025-03-10T09:00:00Z"
	EndTime     string             `json:"endTime" validate:"required"`
	Quantity    int                `json:"quantity" validate:"required,min=1"`
	Recurrence  *RecurrenceRequest `json:"recurrence,omitempty" validate:"omitempty"`
}

// RecurrenceRequest повторение бронирования
type RecurrenceRequest struct {
	Interval string `json:"interval" validate:"required,oneof=daily weekly"`
	Count    *int   `json:"count,omitempty" validate:"omitempty,min=1,max=366"` // по умолчанию 1, не больше domain.MaxRecurrenceCount
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID          int64                    `json:"id"`
	Occurrences []models.BookingResponse `json:"occurrences"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	req := &createBooking.Request{
		Actor:       actor,
		EquipmentID: r.EquipmentID,
		UserID:      r.UserID,
		StartTime:   start,
		EndTime:     end,
		Quantity:    r.Quantity,
	}

	if r.Recurrence != nil {
		count := 1
		if r.Recurrence.Count != nil {
			count = *r.Recurrence.Count
		}
		req.Recurrence = &domain.Recurrence{
			Interval: domain.RecurrenceInterval(r.Recurrence.Interval),
			Count:    count,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:          resp.ID,
		Occurrences: models.FromDomainBookingList(resp.Occurrences).Bookings,
	}
}
