package get_availability

import (
	"context"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// EquipmentRepository интерфейс репозитория оборудования
type EquipmentRepository interface {
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Equipment, error)
}

// Ledger интерфейс учёта вместимости оборудования
type Ledger interface {
	Committed(ctx context.Context, equipmentID int64, interval domain.Interval, excludeBookingID *int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
