package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/ledger"
)

// UseCase use case для создания бронирования (одиночного или серии)
type UseCase struct {
	bookingRepo BookingRepository
	ledger      Ledger
	txManager   TransactionManager
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	ledger Ledger,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		ledger:      ledger,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Серия принимается целиком или не принимается совсем: все повторения
// проверяются и сохраняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)

	occurrences := 0
	if resp != nil {
		occurrences = len(resp.Occurrences)
	}
	if uc.metrics != nil {
		uc.metrics.ObserveAdmission(admissionResult(err), occurrences)
	}

	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: actor=%d, equipment=%d, start=%s, end=%s, quantity=%d",
		req.Actor.ID, req.EquipmentID, req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat), req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка прав: бронировать за другого может только admin/manager
	userID := req.targetUserID()
	if !req.Actor.CanActOnBehalfOf(userID) {
		uc.logger.Warn("CreateBooking: actor=%d (role=%s) is not allowed to book for user=%d",
			req.Actor.ID, req.Actor.Role, userID)
		return nil, ErrForbidden
	}

	// 3. Разворачиваем серию в список повторений
	template := domain.Interval{Start: req.StartTime, End: req.EndTime}
	intervals, err := domain.ExpandOccurrences(template, req.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created []*domain.Booking

	// 4. Проверяем и сохраняем все повторения в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]

		// 4.1. Получаем оборудование с блокировкой строки (FOR UPDATE)
		eq, err := uc.ledger.Equipment(txCtx, req.EquipmentID)
		if err != nil {
			if errors.Is(err, ledger.ErrEquipmentNotFound) {
				uc.logger.Warn("CreateBooking: equipment id=%d not found", req.EquipmentID)
				return ErrEquipmentNotFound
			}
			uc.logger.Error("CreateBooking: failed to get equipment id=%d: %v", req.EquipmentID, err)
			return fmt.Errorf("%w: failed to get equipment: %w", ErrInternal, err)
		}

		// 4.2. Оборудование на обслуживании не принимает новых бронирований
		if !uc.ledger.IsAvailable(eq) {
			uc.logger.Warn("CreateBooking: equipment id=%d is not available", eq.ID)
			return ErrEquipmentUnavailable
		}

		capacity := uc.ledger.Capacity(eq)

		// 4.3. Повторения проверяются по порядку; каждое сохраняется до проверки
		// следующего, поэтому пересекающиеся повторения одной серии учитываются друг против друга
		for i, interval := range intervals {
			committed, err := uc.ledger.Committed(txCtx, eq.ID, interval, nil)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get committed units: %v", err)
				return fmt.Errorf("%w: failed to get committed units: %w", ErrInternal, err)
			}

			if committed+req.Quantity > capacity {
				uc.logger.Warn("CreateBooking: occurrence #%d at %s rejected, %d/%d units taken, %d requested",
					i, interval.Start.Format(domain.DateTimeFormat), committed, capacity, req.Quantity)
				return fmt.Errorf("%w: %w", ErrCapacityConflict, &domain.CapacityConflictError{
					EquipmentID:     eq.ID,
					EquipmentName:   eq.Name,
					OccurrenceStart: interval.Start,
					OccurrenceIndex: i,
					Committed:       committed,
					Requested:       req.Quantity,
					Total:           capacity,
				})
			}

			booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
				EquipmentID: eq.ID,
				UserID:      userID,
				CreatedBy:   &req.Actor.ID,
				StartTime:   interval.Start,
				EndTime:     interval.End,
				Quantity:    req.Quantity,
				Status:      domain.StatusActive,
			})
			if err != nil {
				uc.logger.Error("CreateBooking: failed to create occurrence #%d: %v", i, err)
				return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
			}

			created = append(created, booking)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created %d occurrence(s), first id=%d", len(created), created[0].ID)

	return &Response{
		ID:          created[0].ID,
		Occurrences: created,
	}, nil
}
