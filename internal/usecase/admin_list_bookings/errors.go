package admin_list_bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admin_list_bookings: invalid input data")

	// ErrForbidden возвращается, когда роль актора не допущена к операции
	ErrForbidden = errors.New("admin_list_bookings: operation is not allowed for this role")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admin_list_bookings: internal error")
)
