package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-EquipmentBooking/internal/usecase/get_availability"
)

const (
	msgMissingDates = "параметры start и end обязательны (формат YYYY-MM-DD)"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "дата окончания не может быть раньше даты начала"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?start=2025-03-10&end=2025-03-14
// Публичный эндпоинт, авторизация не требуется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /availability - Missing dates: start=%q, end=%q", startStr, endStr)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid start date %q: %v", startStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid end date %q: %v", endStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid range: start=%s, end=%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /availability - Failed to get availability: start=%s, end=%s, error=%v",
				startStr, endStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: start=%s, end=%s, items=%d",
		startStr, endStr, len(resp.Items))
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(startStr, endStr, resp))
}
