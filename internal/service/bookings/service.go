package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, admin/manager - любые
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for actor=%d", id, actor.ID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(booking) {
		s.logger.Warn("GetByID: access denied for actor=%d to booking id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования
// admin/manager видят бронирования всех пользователей, остальные - только свои
func (s *Service) List(ctx context.Context, actor domain.Actor, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for actor=%d, role=%s", actor.ID, actor.Role)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for actor=%d: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if !actor.IsElevated() {
		filter.UserID = &actor.ID
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for actor=%d: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for actor=%d", len(bookings), actor.ID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование, освобождая забронированные единицы
// Отменить может владелец или admin/manager
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by actor=%d", bookingID, actor.ID)

	var result *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		if !actor.CanManage(booking) {
			s.logger.Warn("Cancel: access denied for actor=%d to cancel booking id=%d", actor.ID, bookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d is already canceled", bookingID)
			return ErrAlreadyCanceled
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %w", ErrInternal, err)
		}

		result, err = s.getBooking(txCtx, "Cancel", bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(result), nil
}

// Delete удаляет бронирование (физическое удаление записи)
// Удалить может владелец или admin/manager
func (s *Service) Delete(ctx context.Context, actor domain.Actor, bookingID int64) error {
	s.logger.Info("Delete: deleting booking id=%d by actor=%d", bookingID, actor.ID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Delete", bookingID)
		if err != nil {
			return err
		}

		if !actor.CanManage(booking) {
			s.logger.Warn("Delete: access denied for actor=%d to delete booking id=%d", actor.ID, bookingID)
			return ErrAccessDenied
		}

		if err := s.bookingRepo.Delete(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// getBooking получает бронирование и приводит ошибки репозитория к ошибкам сервиса
func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return booking, nil
}
