package admin_create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admin_create_booking: invalid input data")

	// ErrForbidden возвращается, когда роль актора не допущена к операции
	ErrForbidden = errors.New("admin_create_booking: operation is not allowed for this role")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("admin_create_booking: service not found")

	// ErrStaffNotFound возвращается, когда профиль мастера не найден или неактивен
	ErrStaffNotFound = errors.New("admin_create_booking: staff profile not found")

	// ErrSlotTaken возвращается, когда интервал пересекается с активной
	// записью или живым hold
	ErrSlotTaken = errors.New("admin_create_booking: time interval is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admin_create_booking: internal error")
)
