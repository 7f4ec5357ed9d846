package list_equipment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/equipment"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/equipment/models"
	"github.com/m04kA/SMC-EquipmentBooking/pkg/logger"
)

func TestHandle_ListsWholeCatalog(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	_, err := store.Equipment().Add(ctx, domain.Equipment{Name: "Projector A", TotalQuantity: 2, IsAvailable: true})
	require.NoError(t, err)
	_, err = store.Equipment().Add(ctx, domain.Equipment{Name: "Camera", TotalQuantity: 1, IsAvailable: false})
	require.NoError(t, err)

	h := NewHandler(equipment.NewService(store.Equipment(), logger.Nop()), logger.Nop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/equipment", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.EquipmentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Equipment, 2)
	assert.Equal(t, "Camera", resp.Equipment[0].Name)
	assert.False(t, resp.Equipment[0].IsAvailable)
	assert.Equal(t, "Projector A", resp.Equipment[1].Name)
}
