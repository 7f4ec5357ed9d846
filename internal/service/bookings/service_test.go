package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-EquipmentBooking/pkg/logger"
)

var (
	owner    = domain.Actor{ID: 1, Role: domain.RoleEmployee}
	stranger = domain.Actor{ID: 2, Role: domain.RoleEmployee}
	manager  = domain.Actor{ID: 10, Role: domain.RoleManager}
)

func setup(t *testing.T) (*memstore.Store, *Service, *domain.Booking) {
	t.Helper()
	store := memstore.New()
	ctx := context.Background()

	eq, err := store.Equipment().Add(ctx, domain.Equipment{Name: "Projector A", TotalQuantity: 1, IsAvailable: true})
	require.NoError(t, err)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	b, err := store.Bookings().Create(ctx, &domain.Booking{
		EquipmentID: eq.ID, UserID: owner.ID, StartTime: start, EndTime: start.Add(time.Hour), Quantity: 1, Status: domain.StatusActive,
	})
	require.NoError(t, err)

	_, err = store.Bookings().Create(ctx, &domain.Booking{
		EquipmentID: eq.ID, UserID: stranger.ID, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), Quantity: 1, Status: domain.StatusActive,
	})
	require.NoError(t, err)

	return store, NewService(store.Bookings(), store, logger.Nop()), b
}

func TestGetByID(t *testing.T) {
	_, svc, b := setup(t)
	ctx := context.Background()

	resp, err := svc.GetByID(ctx, owner, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, "active", resp.Status)

	_, err = svc.GetByID(ctx, stranger, b.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, manager, b.ID)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, owner, 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_ScopedByRole(t *testing.T) {
	_, svc, _ := setup(t)
	ctx := context.Background()

	own, err := svc.List(ctx, owner, &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, own.Bookings, 1)
	assert.Equal(t, owner.ID, own.Bookings[0].UserID)

	all, err := svc.List(ctx, manager, &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	bad := "deleted"
	_, err = svc.List(ctx, manager, &models.ListBookingsRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_Period(t *testing.T) {
	_, svc, _ := setup(t)
	ctx := context.Background()
	from := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 11, 30, 0, 0, time.UTC)

	// бронирование 09:00-10:00 только касается начала периода
	list, err := svc.List(ctx, manager, &models.ListBookingsRequest{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list.Bookings, 1)
	assert.Equal(t, stranger.ID, list.Bookings[0].UserID)

	_, err = svc.List(ctx, manager, &models.ListBookingsRequest{From: &to, To: &from})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, models.ErrInvalidPeriod)
}

func TestCancel(t *testing.T) {
	store, svc, b := setup(t)
	ctx := context.Background()

	_, err := svc.Cancel(ctx, stranger, b.ID)
	require.ErrorIs(t, err, ErrAccessDenied)

	stored, err := store.Bookings().GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive())

	resp, err := svc.Cancel(ctx, owner, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), resp.Status)

	_, err = svc.Cancel(ctx, owner, b.ID)
	assert.ErrorIs(t, err, ErrAlreadyCanceled)

	// Отменённое бронирование не занимает единиц оборудования
	committed, err := store.Bookings().SumActiveQuantity(ctx, b.EquipmentID, b.Interval(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, committed)

	canceled := string(domain.StatusCanceled)
	list, err := svc.List(ctx, manager, &models.ListBookingsRequest{Status: &canceled})
	require.NoError(t, err)
	assert.Len(t, list.Bookings, 1)
}

func TestDelete(t *testing.T) {
	store, svc, b := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, stranger, b.ID), ErrAccessDenied)
	require.NoError(t, svc.Delete(ctx, manager, b.ID))

	_, err := store.Bookings().GetByID(ctx, b.ID)
	assert.Error(t, err)
	assert.ErrorIs(t, svc.Delete(ctx, manager, b.ID), ErrBookingNotFound)
}
