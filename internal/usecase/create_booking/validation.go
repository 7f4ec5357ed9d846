package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// Результаты решения по заявке (лейбл метрики)
const (
	resultAdmitted    = "admitted"
	resultValidation  = "validation"
	resultUnavailable = "unavailable"
	resultConflict    = "conflict"
	resultForbidden   = "forbidden"
	resultNotFound    = "not_found"
	resultError       = "error"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor.ID <= 0 {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	if req.EquipmentID <= 0 {
		return fmt.Errorf("%w: equipmentID must be positive", ErrInvalidInput)
	}

	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if err := domain.ValidateReservation(domain.Interval{Start: req.StartTime, End: req.EndTime}, req.Quantity); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Recurrence != nil {
		if err := req.Recurrence.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// admissionResult классифицирует исход заявки для метрик
func admissionResult(err error) string {
	switch {
	case err == nil:
		return resultAdmitted
	case errors.Is(err, ErrInvalidInput):
		return resultValidation
	case errors.Is(err, ErrForbidden):
		return resultForbidden
	case errors.Is(err, ErrEquipmentNotFound):
		return resultNotFound
	case errors.Is(err, ErrEquipmentUnavailable):
		return resultUnavailable
	case errors.Is(err, ErrCapacityConflict):
		return resultConflict
	default:
		return resultError
	}
}
