package admin_create_booking

import (
	"context"

	adminCreateBooking "github.com/m04kA/Salon-BookingService/internal/usecase/admin_create_booking"
)

type AdminCreateBookingUseCase interface {
	Execute(ctx context.Context, req *adminCreateBooking.Request) (*adminCreateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
