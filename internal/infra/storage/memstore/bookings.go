package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/booking"
)

// BookingRepository in-memory репозиторий бронирований
type BookingRepository struct {
	store *Store
}

// Create создает новое бронирование
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s := r.store
	err := s.write(ctx, func() error {
		s.nextBookingID++
		booking.ID = s.nextBookingID
		booking.CreatedAt = s.now()
		booking.UpdatedAt = booking.CreatedAt
		s.bookings[booking.ID] = *booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// GetByID получает бронирование по ID
func (r *BookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	var (
		b  domain.Booking
		ok bool
	)
	r.store.read(func() {
		b, ok = r.store.bookings[id]
	})
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

// List получает бронирования по фильтру, отсортированные по времени начала
func (r *BookingRepository) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	r.store.read(func() {
		for _, b := range r.store.bookings {
			if !matches(b, filter) {
				continue
			}
			b := b
			result = append(result, &b)
		}
	})

	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].ID < result[j].ID
		}
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

func matches(b domain.Booking, filter domain.BookingsFilter) bool {
	if filter.UserID != nil && b.UserID != *filter.UserID {
		return false
	}
	if filter.EquipmentID != nil && b.EquipmentID != *filter.EquipmentID {
		return false
	}
	if filter.Status != nil && b.Status != *filter.Status {
		return false
	}
	if filter.From != nil && !b.EndTime.After(*filter.From) {
		return false
	}
	if filter.To != nil && !b.StartTime.Before(*filter.To) {
		return false
	}
	return true
}

// SumActiveQuantity возвращает суммарное количество единиц в активных бронированиях,
// пересекающихся с интервалом
func (r *BookingRepository) SumActiveQuantity(_ context.Context, equipmentID int64, interval domain.Interval, excludeID *int64) (int, error) {
	committed := 0
	r.store.read(func() {
		for _, b := range r.store.bookings {
			if b.EquipmentID != equipmentID || !b.IsActive() {
				continue
			}
			if excludeID != nil && b.ID == *excludeID {
				continue
			}
			if b.Interval().Overlaps(interval) {
				committed += b.Quantity
			}
		}
	})
	return committed, nil
}

// Update обновляет редактируемые поля бронирования
func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s := r.store
	err := s.write(ctx, func() error {
		current, ok := s.bookings[booking.ID]
		if !ok {
			return bookingRepo.ErrBookingNotFound
		}
		current.EquipmentID = booking.EquipmentID
		current.UserID = booking.UserID
		current.StartTime = booking.StartTime
		current.EndTime = booking.EndTime
		current.Quantity = booking.Quantity
		current.UpdatedAt = s.now()
		s.bookings[booking.ID] = current
		booking.UpdatedAt = current.UpdatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel переводит бронирование в статус canceled
func (r *BookingRepository) Cancel(ctx context.Context, id int64) error {
	s := r.store
	return s.write(ctx, func() error {
		b, ok := s.bookings[id]
		if !ok {
			return bookingRepo.ErrBookingNotFound
		}
		b.Status = domain.StatusCanceled
		b.UpdatedAt = s.now()
		s.bookings[id] = b
		return nil
	})
}

// Delete удаляет бронирование
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	return s.write(ctx, func() error {
		if _, ok := s.bookings[id]; !ok {
			return bookingRepo.ErrBookingNotFound
		}
		delete(s.bookings, id)
		return nil
	})
}
