package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-EquipmentBooking/internal/api/middleware"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/bookings"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/bookings/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidEquipmentID = "некорректный ID оборудования"
	msgInvalidStatus      = "некорректный статус, допустимые значения: active, canceled"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidPeriod      = "конец периода должен быть позже начала"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?equipmentId=1&status=active&from=2025-03-10T00:00:00Z&to=2025-03-17T00:00:00Z
// Обычный пользователь видит только свои бронирования, admin/manager - все
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if raw := query.Get("equipmentId"); raw != "" {
		equipmentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || equipmentID <= 0 {
			h.logger.Warn("GET /bookings - Invalid equipment ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidEquipmentID)
			return
		}
		req.EquipmentID = &equipmentID
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	for param, dst := range map[string]**time.Time{"from": &req.From, "to": &req.To} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid %s: %s", param, raw)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		*dst = &t
	}

	result, err := h.service.List(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPeriod):
			h.logger.Warn("GET /bookings - Invalid period: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: user_id=%d, count=%d", actor.ID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
