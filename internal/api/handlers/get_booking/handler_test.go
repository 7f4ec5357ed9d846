package get_booking

import (
	"bytes"
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
	"github.com/m04kA/SMC-EquipmentBooking/pkg/logger"
)

func get(h *Handler, actor domain.Actor, bookingID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": bookingID})
	r = r.WithContext(middleware.WithActor(r.Context(), actor))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_ReturnsBooking(t *testing.T) {
	w := get(setup(t), owner, "1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, owner.ID, resp.UserID)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
}

func TestHandle_Statuses(t *testing.T) {
	tests := []struct {
		name      string
		actor     domain.Actor
		bookingID string
		status    int
	}{
		{name: "bad id", actor: owner, bookingID: "one", status: http.StatusBadRequest},
		{name: "zero id", actor: owner, bookingID: "0", status: http.StatusBadRequest},
		{name: "missing", actor: owner, bookingID: "7", status: http.StatusNotFound},
		{name: "someone else's booking", actor: stranger, bookingID: "1", status: http.StatusForbidden},
		{name: "manager reads any booking", actor: manager, bookingID: "1", status: http.StatusOK},
	}

	h := setup(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(h, tt.actor, tt.bookingID)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestHandle_LogsActorRole(t *testing.T) {
	var buf bytes.Buffer
	h := setup(t)
	h.logger = logger.NewWithWriter(&buf, logger.LevelInfo, nil)

	require.Equal(t, http.StatusOK, get(h, manager, "1").Code)
	assert.Contains(t, buf.String(), "owner_id=1, user_id=3, role=manager")

	buf.Reset()
	require.Equal(t, http.StatusForbidden, get(h, stranger, "1").Code)
	assert.Contains(t, buf.String(), "user_id=2, role=employee")
}
