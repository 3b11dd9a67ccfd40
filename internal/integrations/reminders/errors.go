package reminders

import "errors"

var (
	// ErrEnqueue возвращается при ошибке постановки задания в очередь
	ErrEnqueue = errors.New("reminders.scheduler: failed to enqueue job")
)
