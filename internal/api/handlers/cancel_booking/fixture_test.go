package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/bookings"
	"github.com/m04kA/SMC-EquipmentBooking/pkg/logger"
)

var (
	owner    = domain.Actor{ID: 1, Role: domain.RoleEmployee}
	stranger = domain.Actor{ID: 2, Role: domain.RoleEmployee}
	manager  = domain.Actor{ID: 3, Role: domain.RoleManager}
)

// setup создает хранилище с бронированием #1 пользователя owner и #2 пользователя stranger
func setup(t *testing.T) *Handler {
	t.Helper()
	store := memstore.New()
	ctx := context.Background()

	eq, err := store.Equipment().Add(ctx, domain.Equipment{Name: "Projector A", TotalQuantity: 2, IsAvailable: true})
	require.NoError(t, err)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for _, userID := range []int64{owner.ID, stranger.ID} {
		_, err = store.Bookings().Create(ctx, &domain.Booking{
			EquipmentID: eq.ID, UserID: userID, StartTime: start, EndTime: start.Add(time.Hour), Quantity: 1, Status: domain.StatusActive,
		})
		require.NoError(t, err)
	}

	return NewHandler(bookings.NewService(store.Bookings(), store, logger.Nop()), logger.Nop())
}
