package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// HoldRepository интерфейс репозитория удержаний
type HoldRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.BookingHold, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// ExistsActiveAtStart проверяет, занято ли точное время start_at неотменённой записью
	ExistsActiveAtStart(ctx context.Context, tenantID, staffID string, startAt time.Time) (bool, error)
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	UpsertByPhone(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetActiveService(ctx context.Context, tenantID, serviceID string) (*domain.Service, error)
	GetActiveStaff(ctx context.Context, tenantID, staffID string) (*domain.StaffProfile, error)
}

// HistoryRepository интерфейс репозитория истории
type HistoryRepository interface {
	Append(ctx context.Context, h *domain.BookingHistory) error
}

// ReminderScheduler интерфейс планировщика напоминаний.
// Вызов обязан быть идемпотентным по bookingId: ядро дергает его
// fire-and-forget после коммита и не ретраит само.
type ReminderScheduler interface {
	ScheduleForBooking(ctx context.Context, tenantID, bookingID string, startAt time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
