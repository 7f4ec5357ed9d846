package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrForbidden возвращается, когда пользователь бронирует за другого без прав
	ErrForbidden = errors.New("create_booking: not allowed to book for another user")

	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("create_booking: equipment not found")

	// ErrEquipmentUnavailable возвращается, когда оборудование снято с бронирования
	ErrEquipmentUnavailable = errors.New("create_booking: equipment not available for booking")

	// ErrCapacityConflict возвращается, когда одно из повторений превышает вместимость
	// Цепочка ошибки содержит *domain.CapacityConflictError с деталями
	ErrCapacityConflict = errors.New("create_booking: capacity conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
