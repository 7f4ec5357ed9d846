package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/ledger"
)

// UseCase use case для изменения бронирования
// Изменённое бронирование проходит ту же проверку вместимости, что и новое,
// без учёта собственной прежней записи
type UseCase struct {
	bookingRepo BookingRepository
	ledger      Ledger
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, ledger Ledger, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		ledger:      ledger,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case изменения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: actor=%d, booking=%d", req.Actor.ID, req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Чтение, проверка и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2.2. Изменять может владелец или admin/manager
		if !req.Actor.CanManage(current) {
			uc.logger.Warn("UpdateBooking: actor=%d is not allowed to edit booking id=%d", req.Actor.ID, current.ID)
			return ErrForbidden
		}

		if !current.IsActive() {
			uc.logger.Warn("UpdateBooking: booking id=%d is canceled", current.ID)
			return ErrBookingCanceled
		}

		updated := req.apply(current)

		// 2.3. Переназначить бронирование другому пользователю может только admin/manager
		if updated.UserID != current.UserID && !req.Actor.CanActOnBehalfOf(updated.UserID) {
			uc.logger.Warn("UpdateBooking: actor=%d is not allowed to reassign booking id=%d to user=%d",
				req.Actor.ID, current.ID, updated.UserID)
			return ErrForbidden
		}

		if err := validateMerged(updated); err != nil {
			uc.logger.Warn("UpdateBooking: validation failed: %v", err)
			return err
		}

		// 2.4. Повторная проверка вместимости без учёта самого бронирования
		eq, err := uc.ledger.Equipment(txCtx, updated.EquipmentID)
		if err != nil {
			if errors.Is(err, ledger.ErrEquipmentNotFound) {
				uc.logger.Warn("UpdateBooking: equipment id=%d not found", updated.EquipmentID)
				return ErrEquipmentNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get equipment id=%d: %v", updated.EquipmentID, err)
			return fmt.Errorf("%w: failed to get equipment: %w", ErrInternal, err)
		}

		if !uc.ledger.IsAvailable(eq) {
			uc.logger.Warn("UpdateBooking: equipment id=%d is not available", eq.ID)
			return ErrEquipmentUnavailable
		}

		committed, err := uc.ledger.Committed(txCtx, eq.ID, updated.Interval(), &current.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get committed units: %v", err)
			return fmt.Errorf("%w: failed to get committed units: %w", ErrInternal, err)
		}

		capacity := uc.ledger.Capacity(eq)
		if committed+updated.Quantity > capacity {
			uc.logger.Warn("UpdateBooking: booking id=%d rejected, %d/%d units taken, %d requested",
				current.ID, committed, capacity, updated.Quantity)
			return fmt.Errorf("%w: %w", ErrCapacityConflict, &domain.CapacityConflictError{
				EquipmentID:     eq.ID,
				EquipmentName:   eq.Name,
				OccurrenceStart: updated.StartTime,
				Committed:       committed,
				Requested:       updated.Quantity,
				Total:           capacity,
			})
		}

		// 2.5. Сохраняем изменения
		saved, err := uc.bookingRepo.Update(txCtx, updated)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	return &Response{Booking: result}, nil
}
