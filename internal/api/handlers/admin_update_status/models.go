package admin_update_status

import (
	adminUpdateStatus "github.com/m04kA/Salon-BookingService/internal/usecase/admin_update_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status       string  `json:"status"`
	CancelReason *string `json:"cancelReason,omitempty"`
	InternalNote *string `json:"internalNote,omitempty"`
}

// StatusUpdatedResponse HTTP response model
type StatusUpdatedResponse struct {
	BookingID       string  `json:"bookingId"`
	Status          string  `json:"status"`
	CancelledReason *string `json:"cancelledReason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *adminUpdateStatus.Response) *StatusUpdatedResponse {
	return &StatusUpdatedResponse{
		BookingID:       resp.BookingID,
		Status:          string(resp.Status),
		CancelledReason: resp.CancelledReason,
	}
}
