package admin_create_booking

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Request модель запроса на создание записи из админки
type Request struct {
	TenantID string // ID тенанта

	ActorUserID string      // ID пользователя, выполняющего операцию
	ActorRole   domain.Role // Роль актора в тенанте

	ServiceID string // ID услуги

	// ID мастера. Для owner/admin обязателен; для staff игнорируется -
	// мастер всегда записывает только к себе
	StaffID *string

	StartAtISO string // Начало записи, ISO-8601

	ClientName       string // Имя клиента
	ClientPhone      string // Телефон клиента (нормализуется)
	ConsentMarketing bool   // Согласие на сообщения/маркетинг

	Notes        *string // Заметка клиента (опционально)
	InternalNote *string // Внутренняя заметка (опционально, клиенту не видна)
}

// Response модель ответа с созданной записью
type Response struct {
	BookingID string
	Status    domain.BookingStatus

	StaffID string

	StartAt time.Time
	EndAt   time.Time

	PriceCents int64
	Currency   string
}
