package list_slots

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	TenantID  string // ID тенанта
	TenantTZ  string // IANA-таймзона тенанта (например, "Europe/Moscow")
	ServiceID string // ID услуги
	StaffID   string // ID мастера
	DateISO   string // Календарная дата в зоне тенанта (YYYY-MM-DD)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	TenantID  string        // ID тенанта
	ServiceID string        // ID услуги
	StaffID   string        // ID мастера
	DateISO   string        // Дата, на которую запрашивались слоты
	Slots     []domain.Slot // Доступные слоты в порядке возрастания начала
}

// busyInterval занятый интервал [Start, End) - запись или живой hold
type busyInterval struct {
	Start time.Time
	End   time.Time
}
