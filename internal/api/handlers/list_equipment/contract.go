package list_equipment

import (
	"context"

	"github.com/m04kA/SMC-EquipmentBooking/internal/service/equipment/models"
)

type EquipmentService interface {
	List(ctx context.Context) (*models.EquipmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
