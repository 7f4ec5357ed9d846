package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor.ID <= 0 {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.isEmpty() {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.EquipmentID != nil && *req.EquipmentID <= 0 {
		return fmt.Errorf("%w: equipmentID must be positive", ErrInvalidInput)
	}

	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateMerged проверяет бронирование после применения изменений
func validateMerged(b *domain.Booking) error {
	if err := domain.ValidateReservation(b.Interval(), b.Quantity); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
