package ledger

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("ledger: equipment not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("ledger: internal error")
)
