package cancel_booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EquipmentBooking/internal/api/middleware"
	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/bookings/models"
)

func cancel(h *Handler, actor domain.Actor, bookingID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": bookingID})
	r = r.WithContext(middleware.WithActor(r.Context(), actor))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_CancelsOwnBooking(t *testing.T) {
	h := setup(t)

	w := cancel(h, owner, "1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.StatusCanceled), resp.Status)

	// повторная отмена
	w = cancel(h, owner, "1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_Statuses(t *testing.T) {
	tests := []struct {
		name      string
		actor     domain.Actor
		bookingID string
		status    int
	}{
		{name: "bad id", actor: owner, bookingID: "x", status: http.StatusBadRequest},
		{name: "missing", actor: owner, bookingID: "42", status: http.StatusNotFound},
		{name: "someone else's booking", actor: owner, bookingID: "2", status: http.StatusForbidden},
		{name: "manager cancels any booking", actor: manager, bookingID: "2", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := cancel(setup(t), tt.actor, tt.bookingID)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestHandle_RequiresActor(t *testing.T) {
	h := setup(t)
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/1/cancel", nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": "1"})
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
