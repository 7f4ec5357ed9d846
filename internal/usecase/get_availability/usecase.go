package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// UseCase use case для получения свободных единиц оборудования за период
// Выполняется вне транзакции: результат может устареть к моменту бронирования
type UseCase struct {
	equipmentRepo EquipmentRepository
	ledger        Ledger
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(equipmentRepo EquipmentRepository, ledger Ledger, logger Logger) *UseCase {
	return &UseCase{
		equipmentRepo: equipmentRepo,
		ledger:        ledger,
		logger:        logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация диапазона
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	window := domain.DayRange(req.StartDate, req.EndDate)
	if !window.IsValid() {
		uc.logger.Warn("GetAvailability: end date %s is before start date %s",
			req.EndDate.Format(domain.DateFormat), req.StartDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}

	// 2. Получаем доступное оборудование
	equipment, err := uc.equipmentRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list equipment: %v", err)
		return nil, fmt.Errorf("%w: failed to list equipment: %v", ErrInternal, err)
	}

	// 3. Считаем свободные единицы за весь период
	items := make([]domain.EquipmentAvailability, 0, len(equipment))
	for _, eq := range equipment {
		committed, err := uc.ledger.Committed(ctx, eq.ID, window, nil)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to get committed units for equipment id=%d: %v", eq.ID, err)
			return nil, fmt.Errorf("%w: failed to get committed units: %v", ErrInternal, err)
		}

		items = append(items, domain.EquipmentAvailability{
			EquipmentID: eq.ID,
			Name:        eq.Name,
			Type:        eq.Type,
			FreeUnits:   eq.FreeUnits(committed),
		})
	}

	uc.logger.Info("GetAvailability: %s..%s, %d equipment item(s)",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), len(items))

	return &Response{Window: window, Items: items}, nil
}
