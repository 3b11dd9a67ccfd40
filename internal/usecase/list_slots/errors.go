package list_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустые идентификаторы, неразбираемая дата, неизвестная таймзона)
	ErrInvalidInput = errors.New("list_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_slots: internal error")
)
