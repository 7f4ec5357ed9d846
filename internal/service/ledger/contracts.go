package ledger

import (
	"context"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	SumActiveQuantity(ctx context.Context, equipmentID int64, interval domain.Interval, excludeID *int64) (int, error)
}
