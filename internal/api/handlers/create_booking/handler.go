package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-EquipmentBooking/internal/api/middleware"
	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-EquipmentBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "некорректные параметры бронирования"
	msgInvalidTime          = "некорректный формат времени, ожидается RFC 3339 (2025-03-10T09:00:00Z)"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "нельзя бронировать оборудование для другого пользователя"
	msgEquipmentNotFound    = "оборудование не найдено"
	msgEquipmentUnavailable = "оборудование недоступно для бронирования"
	msgCapacityConflict     = "недостаточно свободных единиц оборудования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		var fields handlers.ValidationErrors
		if errors.As(err, &fields) {
			handlers.RespondValidationError(w, msgValidationFailed, fields)
			return
		}
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *domain.CapacityConflictError

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrForbidden):
			h.logger.Warn("POST /bookings - Forbidden: user_id=%d, role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrEquipmentNotFound):
			h.logger.Warn("POST /bookings - Equipment not found: equipment_id=%d", req.EquipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, createBooking.ErrEquipmentUnavailable):
			h.logger.Warn("POST /bookings - Equipment unavailable: equipment_id=%d", req.EquipmentID)
			handlers.RespondUnprocessable(w, msgEquipmentUnavailable)

		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Capacity conflict: equipment_id=%d, occurrence=%d, start=%s",
				req.EquipmentID, conflict.OccurrenceIndex, conflict.OccurrenceStart.Format(domain.DateTimeFormat))
			handlers.RespondConflict(w, msgCapacityConflict, conflict.EquipmentName, conflict.OccurrenceStart)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, equipment_id=%d, error=%v",
				actor.ID, req.EquipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, occurrences=%d, user_id=%d",
		result.ID, len(result.Occurrences), actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
