package list_slots

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetActiveService(ctx context.Context, tenantID, serviceID string) (*domain.Service, error)
	GetActiveStaff(ctx context.Context, tenantID, staffID string) (*domain.StaffProfile, error)
	GetRule(ctx context.Context, tenantID, staffID string, weekday int) (*domain.AvailabilityRule, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// ListActiveByStaffInterval получает неотменённые записи мастера, пересекающие [from, to)
	ListActiveByStaffInterval(ctx context.Context, tenantID, staffID string, from, to time.Time) ([]*domain.Booking, error)
}

// HoldRepository интерфейс репозитория удержаний
type HoldRepository interface {
	// ListLiveByStaffInterval получает живые hold мастера, пересекающие [from, to)
	ListLiveByStaffInterval(ctx context.Context, tenantID, staffID string, from, to, now time.Time) ([]*domain.BookingHold, error)
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
