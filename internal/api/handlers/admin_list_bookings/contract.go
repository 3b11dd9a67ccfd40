package admin_list_bookings

import (
	"context"

	adminListBookings "github.com/m04kA/Salon-BookingService/internal/usecase/admin_list_bookings"
)

type AdminListBookingsUseCase interface {
	Execute(ctx context.Context, req *adminListBookings.Request) (*adminListBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
