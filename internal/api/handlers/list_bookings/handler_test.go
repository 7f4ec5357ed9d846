package list_bookings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EquipmentBooking/internal/api/middleware"
	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/bookings/models"
)

func list(h *Handler, actor domain.Actor, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings"+query, nil)
	r = r.WithContext(middleware.WithActor(r.Context(), actor))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) models.BookingListResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.BookingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandle_EmployeeSeesOwnBookings(t *testing.T) {
	resp := decode(t, list(setup(t), owner, ""))

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, owner.ID, resp.Bookings[0].UserID)
}

func TestHandle_ManagerSeesAll(t *testing.T) {
	h := setup(t)

	assert.Len(t, decode(t, list(h, manager, "")).Bookings, 2)
	assert.Len(t, decode(t, list(h, manager, "?equipmentId=1&status=active")).Bookings, 2)
	assert.Empty(t, decode(t, list(h, manager, "?status=canceled")).Bookings)
	assert.Empty(t, decode(t, list(h, manager, "?equipmentId=5")).Bookings)
}

func TestHandle_Period(t *testing.T) {
	h := setup(t)

	// оба бронирования 09:00-10:00
	assert.Len(t, decode(t, list(h, manager, "?from=2025-03-10T09:30:00Z&to=2025-03-10T12:00:00Z")).Bookings, 2)
	assert.Empty(t, decode(t, list(h, manager, "?from=2025-03-10T10:00:00Z")).Bookings)
	assert.Empty(t, decode(t, list(h, manager, "?to=2025-03-10T09:00:00Z")).Bookings)
	assert.Len(t, decode(t, list(h, owner, "?to=2025-03-10T09:30:00Z")).Bookings, 1)
}

func TestHandle_InvalidFilters(t *testing.T) {
	h := setup(t)

	assert.Equal(t, http.StatusBadRequest, list(h, owner, "?from=yesterday").Code)
	assert.Equal(t, http.StatusBadRequest, list(h, owner, "?from=2025-03-10T12:00:00Z&to=2025-03-10T09:00:00Z").Code)

	assert.Equal(t, http.StatusBadRequest, list(h, owner, "?status=pending").Code)
	assert.Equal(t, http.StatusBadRequest, list(h, owner, "?equipmentId=abc").Code)
	assert.Equal(t, http.StatusBadRequest, list(h, owner, "?equipmentId=0").Code)
}
