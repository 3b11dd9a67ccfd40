package create_hold

import "time"

// Request модель запроса на создание hold
type Request struct {
	TenantID    string  // ID тенанта
	TenantTZ    string  // IANA-таймзона тенанта
	ServiceID   string  // ID услуги
	StaffID     string  // ID мастера
	StartAtISO  string  // Начало слота, ISO-8601 (например, "2026-02-10T10:00:00Z")
	ClientPhone *string // Телефон клиента (опционально)
	IP          *string // IP запроса (опционально)
}

// Response модель ответа с созданным hold
type Response struct {
	HoldID    string    // ID удержания
	ExpiresAt time.Time // Момент истечения hold (UTC)
}
