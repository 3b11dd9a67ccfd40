package create_hold

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (в том числе неразбираемый startAt)
	ErrInvalidInput = errors.New("create_hold: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_hold: service not found")

	// ErrSlotTaken возвращается, когда запрошенное время отсутствует в
	// актуальной выдаче слотов или конкурент успел создать hold первым
	ErrSlotTaken = errors.New("create_hold: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_hold: internal error")
)
