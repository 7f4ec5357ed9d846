package get_availability

import (
	"time"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// Request модель запроса свободных единиц оборудования
// Даты включительные, время суток игнорируется
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// Response свободные единицы по каждому доступному оборудованию, по названию
type Response struct {
	Window domain.Interval
	Items  []domain.EquipmentAvailability
}
