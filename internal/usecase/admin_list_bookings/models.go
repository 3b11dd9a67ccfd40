package admin_list_bookings

import "github.com/m04kA/Salon-BookingService/internal/domain"

// Request модель запроса на выборку записей за период
type Request struct {
	TenantID string // ID тенанта
	TenantTZ string // IANA-таймзона тенанта

	ActorUserID string      // ID пользователя, выполняющего операцию
	ActorRole   domain.Role // Роль актора в тенанте

	FromDateISO string // Первый день периода, YYYY-MM-DD (включительно)
	ToDateISO   string // Последний день периода, YYYY-MM-DD (включительно)

	// Фильтр по мастеру. Для staff игнорируется - мастер видит только себя
	StaffID *string
}

// Response модель ответа со списком записей календаря
type Response struct {
	Bookings []*domain.BookingWithNames
}
