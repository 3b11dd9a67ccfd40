package admin_update_status

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status domain.BookingStatus, cancelledReason, internalNote *string) error
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetActiveStaffByUserID(ctx context.Context, tenantID, userID string) (*domain.StaffProfile, error)
}

// HistoryRepository интерфейс репозитория истории
type HistoryRepository interface {
	Append(ctx context.Context, h *domain.BookingHistory) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
