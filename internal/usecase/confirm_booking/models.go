package confirm_booking

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Request модель запроса на подтверждение hold
type Request struct {
	TenantID         string  // ID тенанта
	HoldID           string  // ID удержания, полученный при выборе слота
	ClientName       string  // Имя клиента
	ClientPhone      string  // Телефон клиента (любой разумный ввод, нормализуется)
	ConsentMarketing bool    // Согласие на сообщения/маркетинг
	Notes            *string // Заметка клиента (опционально)
}

// Response денормализованная сводка созданной записи для немедленного
// отображения подтверждения
type Response struct {
	BookingID string
	Status    domain.BookingStatus

	StartAt time.Time
	EndAt   time.Time

	ServiceName string
	StaffName   string
	ClientName  string

	PriceCents int64
	Currency   string
}
