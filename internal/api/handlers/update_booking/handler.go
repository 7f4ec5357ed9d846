package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-EquipmentBooking/internal/api/middleware"
	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-EquipmentBooking/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "некорректные параметры бронирования"
	msgInvalidTime          = "некорректный формат времени, ожидается RFC 3339 (2025-03-10T09:00:00Z)"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgEquipmentNotFound    = "оборудование не найдено"
	msgForbidden            = "доступ запрещен"
	msgBookingCanceled      = "отменённое бронирование нельзя изменить"
	msgEquipmentUnavailable = "оборудование недоступно для бронирования"
	msgCapacityConflict     = "недостаточно свободных единиц оборудования"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Validation failed: %v", err)
		var fields handlers.ValidationErrors
		if errors.As(err, &fields) {
			handlers.RespondValidationError(w, msgValidationFailed, fields)
			return
		}
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *domain.CapacityConflictError

		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateBooking.ErrBookingCanceled):
			h.logger.Warn("PATCH /bookings/{id} - Booking canceled: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgBookingCanceled)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrEquipmentNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Equipment not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, updateBooking.ErrForbidden):
			h.logger.Warn("PATCH /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrEquipmentUnavailable):
			h.logger.Warn("PATCH /bookings/{id} - Equipment unavailable: booking_id=%d", bookingID)
			handlers.RespondUnprocessable(w, msgEquipmentUnavailable)

		case errors.As(err, &conflict):
			h.logger.Warn("PATCH /bookings/{id} - Capacity conflict: booking_id=%d, start=%s",
				bookingID, conflict.OccurrenceStart.Format(domain.DateTimeFormat))
			handlers.RespondConflict(w, msgCapacityConflict, conflict.EquipmentName, conflict.OccurrenceStart)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d, user_id=%d", bookingID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking))
}
