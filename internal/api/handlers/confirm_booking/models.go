package confirm_booking

import (
	"time"

	confirmBooking "github.com/m04kA/Salon-BookingService/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	HoldID           string  `json:"holdId"`
	ClientName       string  `json:"clientName"`
	ClientPhone      string  `json:"clientPhone"`
	ConsentMarketing bool    `json:"consentMarketing"`
	Notes            *string `json:"notes,omitempty"`
}

// BookingConfirmedResponse HTTP response model
type BookingConfirmedResponse struct {
	BookingID   string `json:"bookingId"`
	Status      string `json:"status"`
	StartAt     string `json:"startAt"` // ISO-8601, UTC
	EndAt       string `json:"endAt"`   // ISO-8601, UTC
	ServiceName string `json:"serviceName"`
	StaffName   string `json:"staffName"`
	ClientName  string `json:"clientName"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *BookingConfirmedResponse {
	return &BookingConfirmedResponse{
		BookingID:   resp.BookingID,
		Status:      string(resp.Status),
		StartAt:     resp.StartAt.UTC().Format(time.RFC3339),
		EndAt:       resp.EndAt.UTC().Format(time.RFC3339),
		ServiceName: resp.ServiceName,
		StaffName:   resp.StaffName,
		ClientName:  resp.ClientName,
		PriceCents:  resp.PriceCents,
		Currency:    resp.Currency,
	}
}
