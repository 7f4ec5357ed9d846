package create_booking

import (
	"context"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Ledger интерфейс учёта вместимости оборудования
type Ledger interface {
	Equipment(ctx context.Context, equipmentID int64) (*domain.Equipment, error)
	Committed(ctx context.Context, equipmentID int64, interval domain.Interval, excludeBookingID *int64) (int, error)
	IsAvailable(eq *domain.Equipment) bool
	Capacity(eq *domain.Equipment) int
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для метрик решений по заявкам
type MetricsRecorder interface {
	ObserveAdmission(result string, occurrences int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
