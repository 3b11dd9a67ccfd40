package create_hold

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	listSlots "github.com/m04kA/Salon-BookingService/internal/usecase/list_slots"
)

// SlotLister интерфейс расчёта доступных слотов.
// Создание hold обязано ре-валидировать запрошенное время через тот же
// расчёт, которым слоты выдавались клиенту: его картинка могла устареть.
type SlotLister interface {
	Execute(ctx context.Context, req *listSlots.Request) (*listSlots.Response, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetActiveService(ctx context.Context, tenantID, serviceID string) (*domain.Service, error)
}

// HoldRepository интерфейс репозитория удержаний
type HoldRepository interface {
	Create(ctx context.Context, h *domain.BookingHold) (*domain.BookingHold, error)
	DeleteExpired(ctx context.Context, tenantID, staffID string, now time.Time) (int64, error)
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
