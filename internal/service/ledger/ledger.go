package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	equipmentRepo "github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/equipment"
)

// Ledger учёт занятых единиц оборудования
// Занятость не хранится отдельно: она вычисляется по активным бронированиям.
// Вызовы с транзакционным контекстом видят согласованный снимок этой транзакции.
type Ledger struct {
	equipmentRepo EquipmentRepository
	bookingRepo   BookingRepository
}

// New создает учёт вместимости
func New(equipmentRepo EquipmentRepository, bookingRepo BookingRepository) *Ledger {
	return &Ledger{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
	}
}

// Equipment возвращает факты о вместимости оборудования
// Внутри транзакции строка оборудования блокируется до её завершения.
func (l *Ledger) Equipment(ctx context.Context, equipmentID int64) (*domain.Equipment, error) {
	eq, err := l.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("%w: Equipment - repository error: %w", ErrInternal, err)
	}
	return eq, nil
}

// Committed возвращает количество единиц оборудования, занятых активными
// бронированиями, пересекающимися с интервалом (касание границ не считается)
func (l *Ledger) Committed(ctx context.Context, equipmentID int64, interval domain.Interval, excludeBookingID *int64) (int, error) {
	committed, err := l.bookingRepo.SumActiveQuantity(ctx, equipmentID, interval, excludeBookingID)
	if err != nil {
		return 0, fmt.Errorf("%w: Committed - repository error: %w", ErrInternal, err)
	}
	return committed, nil
}

// IsAvailable сообщает, принимает ли оборудование новые бронирования
func (l *Ledger) IsAvailable(eq *domain.Equipment) bool {
	return eq.CanBeBooked()
}

// Capacity возвращает общее количество единиц оборудования
func (l *Ledger) Capacity(eq *domain.Equipment) int {
	return eq.TotalQuantity
}
