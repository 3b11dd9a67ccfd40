package confirm_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (в том числе телефон, не приводимый к каноническому виду)
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrHoldNotFound возвращается, когда hold не найден у тенанта
	ErrHoldNotFound = errors.New("confirm_booking: hold not found")

	// ErrHoldExpired возвращается, когда hold истёк к моменту подтверждения
	ErrHoldExpired = errors.New("confirm_booking: hold has expired")

	// ErrSlotTaken возвращается, когда время hold уже занято неотменённой записью
	ErrSlotTaken = errors.New("confirm_booking: slot is already booked")

	// ErrServiceNotFound возвращается, когда услуга hold исчезла между
	// созданием hold и подтверждением
	ErrServiceNotFound = errors.New("confirm_booking: service not found")

	// ErrStaffNotFound возвращается, когда профиль мастера hold недоступен
	ErrStaffNotFound = errors.New("confirm_booking: staff profile not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
