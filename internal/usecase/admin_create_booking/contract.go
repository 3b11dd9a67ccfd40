package admin_create_booking

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// ListActiveByStaffInterval возвращает активные записи мастера,
	// пересекающиеся с [from, to); внутри транзакции строки блокируются
	ListActiveByStaffInterval(ctx context.Context, tenantID, staffID string, from, to time.Time) ([]*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// HoldRepository интерфейс репозитория удержаний
type HoldRepository interface {
	// HasLiveOverlap проверяет, есть ли живой hold, пересекающий [start, end)
	HasLiveOverlap(ctx context.Context, tenantID, staffID string, start, end, now time.Time) (bool, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	UpsertByPhone(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetActiveService(ctx context.Context, tenantID, serviceID string) (*domain.Service, error)
	GetActiveStaff(ctx context.Context, tenantID, staffID string) (*domain.StaffProfile, error)
	GetActiveStaffByUserID(ctx context.Context, tenantID, userID string) (*domain.StaffProfile, error)
}

// HistoryRepository интерфейс репозитория истории
type HistoryRepository interface {
	Append(ctx context.Context, h *domain.BookingHistory) error
}

// ReminderScheduler интерфейс планировщика напоминаний
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
