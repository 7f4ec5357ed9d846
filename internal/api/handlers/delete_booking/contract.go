package delete_booking

import (
	"context"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

type BookingService interface {
	Delete(ctx context.Context, actor domain.Actor, bookingID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
