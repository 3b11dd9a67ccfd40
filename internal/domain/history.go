package domain

import "time"

// History action tags
const (
	HistoryActionCreated       = "created"
	HistoryActionCreatedAdmin  = "created_admin"
	HistoryActionStatusChanged = "status_changed"
)

// BookingHistory append-only запись аудита по бронированию.
// Строки никогда не обновляются и не удаляются.
type BookingHistory struct {
	ID        string
	TenantID  string
	BookingID string

	// Кто выполнил действие (nil для системных/публичных событий без аккаунта)
	ChangedByUserID *string
	ActorRole       *Role

	Action string

	StatusFrom *BookingStatus
	StatusTo   *BookingStatus

	Note *string

	CreatedAt time.Time
}
