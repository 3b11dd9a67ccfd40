package admin_list_bookings

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	ListRangeWithNames(ctx context.Context, filter domain.BookingsRangeFilter) ([]*domain.BookingWithNames, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetActiveStaffByUserID(ctx context.Context, tenantID, userID string) (*domain.StaffProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
