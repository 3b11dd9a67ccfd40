package admin_update_status

import "github.com/m04kA/Salon-BookingService/internal/domain"

// Request модель запроса на смену статуса записи
type Request struct {
	TenantID string // ID тенанта

	ActorUserID string      // ID пользователя, выполняющего операцию
	ActorRole   domain.Role // Роль актора в тенанте

	BookingID string               // ID записи
	NewStatus domain.BookingStatus // Целевой статус

	// Причина отмены; используется только при переходе в cancelled,
	// при отсутствии подставляется причина по умолчанию
	CancelReason *string

	InternalNote *string // Внутренняя заметка (опционально)
}

// Response модель ответа со сменённым статусом
type Response struct {
	BookingID string
	Status    domain.BookingStatus

	CancelledReason *string
}
