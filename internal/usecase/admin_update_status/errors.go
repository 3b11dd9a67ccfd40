package admin_update_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admin_update_status: invalid input data")

	// ErrForbidden возвращается, когда роль актора не допущена к операции
	// или мастер меняет чужую запись
	ErrForbidden = errors.New("admin_update_status: operation is not allowed for this actor")

	// ErrBookingNotFound возвращается, когда запись не найдена у тенанта
	ErrBookingNotFound = errors.New("admin_update_status: booking not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("admin_update_status: status transition is not allowed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admin_update_status: internal error")
)
