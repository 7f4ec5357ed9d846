package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPeriod возвращается, если конец периода не позже начала
	ErrInvalidPeriod = errors.New("period end must be after period start")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	EquipmentID *int64  `json:"equipmentId,omitempty"` // Фильтр по оборудованию (опционально)
	Status      *string    `json:"status,omitempty"`      // Фильтр по статусу (опционально)
	From        *time.Time `json:"from,omitempty"`        // Бронирования, заканчивающиеся после From (опционально)
	To          *time.Time `json:"to,omitempty"`          // Бронирования, начинающиеся до To (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		EquipmentID: r.EquipmentID,
		From:        r.From,
		To:          r.To,
	}

	if r.From != nil && r.To != nil && !r.To.After(*r.From) {
		return filter, ErrInvalidPeriod
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования (одного повторения)
type BookingResponse struct {
	ID          int64     `json:"id"`
	EquipmentID int64     `json:"equipmentId"`
	UserID      int64     `json:"userId"`
	CreatedBy   *int64    `json:"createdBy,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		EquipmentID: b.EquipmentID,
		UserID:      b.UserID,
		CreatedBy:   b.CreatedBy,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Quantity:    b.Quantity,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
