package create_booking

import (
	"time"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor       domain.Actor       // Кто выполняет запрос
	EquipmentID int64              // ID оборудования
	UserID      *int64             // Для кого бронирование (nil - для себя)
	StartTime   time.Time          // Начало первого повторения
	EndTime     time.Time          // Конец первого повторения
	Quantity    int                // Количество единиц
	Recurrence  *domain.Recurrence // Повторение (nil - одно бронирование)
}

// Response модель ответа с созданными бронированиями
type Response struct {
	ID          int64             // ID первого повторения
	Occurrences []*domain.Booking // Все созданные повторения в хронологическом порядке
}

// targetUserID возвращает пользователя, для которого создаётся бронирование
func (r *Request) targetUserID() int64 {
	if r.UserID == nil {
		return r.Actor.ID
	}
	return *r.UserID
}
