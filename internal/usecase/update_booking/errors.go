package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingCanceled возвращается при попытке изменить отменённое бронирование
	ErrBookingCanceled = errors.New("update_booking: canceled booking cannot be edited")

	// ErrForbidden возвращается, когда пользователь не может изменить бронирование
	ErrForbidden = errors.New("update_booking: access denied")

	// ErrEquipmentNotFound возвращается, когда целевое оборудование не найдено
	ErrEquipmentNotFound = errors.New("update_booking: equipment not found")

	// ErrEquipmentUnavailable возвращается, когда целевое оборудование снято с бронирования
	ErrEquipmentUnavailable = errors.New("update_booking: equipment not available for booking")

	// ErrCapacityConflict возвращается, когда изменённое бронирование превышает вместимость
	ErrCapacityConflict = errors.New("update_booking: capacity conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
