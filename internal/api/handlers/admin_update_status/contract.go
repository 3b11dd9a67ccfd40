package admin_update_status

import (
	"context"

	adminUpdateStatus "github.com/m04kA/Salon-BookingService/internal/usecase/admin_update_status"
)

type AdminUpdateStatusUseCase interface {
	Execute(ctx context.Context, req *adminUpdateStatus.Request) (*adminUpdateStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
