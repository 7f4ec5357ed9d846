package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/memstore"
)

func TestLedger_Committed(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	eq, err := store.Equipment().Add(ctx, domain.Equipment{Name: "Projector A", TotalQuantity: 2, IsAvailable: true})
	require.NoError(t, err)

	nine := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err = store.Bookings().Create(ctx, &domain.Booking{
		EquipmentID: eq.ID, UserID: 1, StartTime: nine, EndTime: nine.Add(time.Hour), Quantity: 2, Status: domain.StatusActive,
	})
	require.NoError(t, err)

	l := New(store.Equipment(), store.Bookings())

	committed, err := l.Committed(ctx, eq.ID, domain.Interval{Start: nine.Add(30 * time.Minute), End: nine.Add(90 * time.Minute)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, committed)

	committed, err = l.Committed(ctx, eq.ID, domain.Interval{Start: nine.Add(time.Hour), End: nine.Add(2 * time.Hour)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, committed)
}

func TestLedger_Equipment(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	eq, _ := store.Equipment().Add(ctx, domain.Equipment{Name: "Laptop", TotalQuantity: 4, IsAvailable: false})

	l := New(store.Equipment(), store.Bookings())

	got, err := l.Equipment(ctx, eq.ID)
	require.NoError(t, err)
	assert.False(t, l.IsAvailable(got))
	assert.Equal(t, 4, l.Capacity(got))

	_, err = l.Equipment(ctx, 404)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}
