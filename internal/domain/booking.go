package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPlanned   BookingStatus = "planned"
	StatusArrived   BookingStatus = "arrived"
	StatusNoShow    BookingStatus = "no_show"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid возвращает true, если статус является одним из известных
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPlanned, StatusArrived, StatusNoShow, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal возвращает true, если из статуса нет исходящих переходов
func (s BookingStatus) IsTerminal() bool {
	return s == StatusArrived || s == StatusNoShow || s == StatusCancelled
}

// Booking represents a confirmed appointment in the system
type Booking struct {
	ID       string
	TenantID string

	ServiceID string
	StaffID   string
	ClientID  string

	// Интервал записи [StartAt, EndAt), всегда в UTC
	StartAt time.Time
	EndAt   time.Time

	Status BookingStatus

	// Снапшот цены на момент создания записи.
	// Никогда не пересчитывается, даже если цена услуги изменилась.
	PriceCents int64
	Currency   string

	Notes           *string // заметка клиента (видна клиенту)
	InternalNote    *string // внутренняя заметка (не видна клиенту)
	CancelledReason *string

	// ID пользователя, создавшего запись из админки (nil для онлайн-записи)
	CreatedByUserID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its time interval
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanTransitionTo проверяет допустимость перехода статуса.
// Единственный нетерминальный статус - planned; повторная запись после
// отмены оформляется новым Booking, а не переходом из cancelled.
func (b *Booking) CanTransitionTo(to BookingStatus) bool {
	if !to.IsValid() {
		return false
	}
	if b.Status != StatusPlanned {
		return false
	}
	return to == StatusArrived || to == StatusNoShow || to == StatusCancelled
}

// Overlaps проверяет пересечение с интервалом [start, end).
// Полуоткрытые интервалы: соприкасающиеся границы пересечением не считаются.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartAt.Before(end) && b.EndAt.After(start)
}

// BookingsRangeFilter фильтр для выборки записей за период
type BookingsRangeFilter struct {
	TenantID string    // Обязательный параметр
	From     time.Time // Начало периода (включительно)
	To       time.Time // Конец периода (не включительно)
	StaffID  *string   // Фильтр по мастеру (опционально)
}

// BookingWithNames запись с денормализованными именами для календаря и подтверждения
type BookingWithNames struct {
	Booking
	ServiceName string
	StaffName   string
	ClientName  string
	ClientPhone string
}
