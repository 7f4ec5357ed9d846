package update_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/ledger"
	"github.com/m04kA/SMC-EquipmentBooking/pkg/logger"
)

var (
	owner    = domain.Actor{ID: 1, Role: domain.RoleEmployee}
	stranger = domain.Actor{ID: 2, Role: domain.RoleEmployee}
	admin    = domain.Actor{ID: 10, Role: domain.RoleAdmin}
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func ptrTo[T any](v T) *T {
	return &v
}

type fixture struct {
	store *memstore.Store
	uc    *UseCase
	eq    *domain.Equipment
}

func newFixture(t *testing.T, total int) *fixture {
	t.Helper()
	store := memstore.New()
	eq, err := store.Equipment().Add(context.Background(), domain.Equipment{Name: "Projector A", TotalQuantity: total, IsAvailable: true})
	require.NoError(t, err)

	return &fixture{
		store: store,
		uc:    NewUseCase(store.Bookings(), ledger.New(store.Equipment(), store.Bookings()), store, logger.Nop()),
		eq:    eq,
	}
}

func (f *fixture) book(t *testing.T, userID int64, start, end time.Time, qty int) *domain.Booking {
	t.Helper()
	b, err := f.store.Bookings().Create(context.Background(), &domain.Booking{
		EquipmentID: f.eq.ID,
		UserID:      userID,
		StartTime:   start,
		EndTime:     end,
		Quantity:    qty,
		Status:      domain.StatusActive,
	})
	require.NoError(t, err)
	return b
}

func TestExecute_ExcludesOwnRow(t *testing.T) {
	f := newFixture(t, 2)
	b := f.book(t, owner.ID, at(9, 0), at(10, 0), 2)

	// Сдвиг на 30 минут пересекается только с самим собой
	resp, err := f.uc.Execute(context.Background(), &Request{
		Actor:     owner,
		BookingID: b.ID,
		StartTime: ptrTo(at(9, 30)),
		EndTime:   ptrTo(at(10, 30)),
	})
	require.NoError(t, err)
	assert.Equal(t, at(9, 30), resp.Booking.StartTime)
	assert.Equal(t, 2, resp.Booking.Quantity)

	stored, err := f.store.Bookings().GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, at(10, 30), stored.EndTime)
}

func TestExecute_RejectsOverCapacity(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	f.book(t, stranger.ID, at(9, 0), at(10, 0), 1)
	b := f.book(t, owner.ID, at(9, 0), at(10, 0), 1)

	_, err := f.uc.Execute(ctx, &Request{Actor: owner, BookingID: b.ID, Quantity: ptrTo(2)})
	require.ErrorIs(t, err, ErrCapacityConflict)

	var conflict *domain.CapacityConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, 1, conflict.Committed)
	assert.Equal(t, "Projector A", conflict.EquipmentName)

	stored, err := f.store.Bookings().GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)
}

func TestExecute_Permissions(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	b := f.book(t, owner.ID, at(9, 0), at(10, 0), 1)

	_, err := f.uc.Execute(ctx, &Request{Actor: stranger, BookingID: b.ID, Quantity: ptrTo(2)})
	assert.ErrorIs(t, err, ErrForbidden)

	// Владелец не может передать бронирование другому пользователю
	_, err = f.uc.Execute(ctx, &Request{Actor: owner, BookingID: b.ID, UserID: ptrTo(stranger.ID)})
	assert.ErrorIs(t, err, ErrForbidden)

	resp, err := f.uc.Execute(ctx, &Request{Actor: admin, BookingID: b.ID, UserID: ptrTo(stranger.ID)})
	require.NoError(t, err)
	assert.Equal(t, stranger.ID, resp.Booking.UserID)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	b := f.book(t, owner.ID, at(9, 0), at(10, 0), 1)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nothing to update", req: &Request{Actor: owner, BookingID: b.ID}},
		{name: "end before merged start", req: &Request{Actor: owner, BookingID: b.ID, EndTime: ptrTo(at(8, 0))}},
		{name: "zero quantity", req: &Request{Actor: owner, BookingID: b.ID, Quantity: ptrTo(0)}},
		{name: "bad booking id", req: &Request{Actor: owner, Quantity: ptrTo(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StateChecks(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	b := f.book(t, owner.ID, at(9, 0), at(10, 0), 1)

	_, err := f.uc.Execute(ctx, &Request{Actor: owner, BookingID: 404, Quantity: ptrTo(1)})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.uc.Execute(ctx, &Request{Actor: owner, BookingID: b.ID, EquipmentID: ptrTo(int64(404))})
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	require.NoError(t, f.store.Equipment().SetAvailability(ctx, f.eq.ID, false))
	_, err = f.uc.Execute(ctx, &Request{Actor: owner, BookingID: b.ID, Quantity: ptrTo(2)})
	assert.ErrorIs(t, err, ErrEquipmentUnavailable)

	require.NoError(t, f.store.Bookings().Cancel(ctx, b.ID))
	_, err = f.uc.Execute(ctx, &Request{Actor: owner, BookingID: b.ID, Quantity: ptrTo(1)})
	assert.ErrorIs(t, err, ErrBookingCanceled)
}
