package admin_create_booking

import (
	"time"

	adminCreateBooking "github.com/m04kA/Salon-BookingService/internal/usecase/admin_create_booking"
)

// AdminCreateBookingRequest HTTP request model
type AdminCreateBookingRequest struct {
	ServiceID        string  `json:"serviceId"`
	StaffID          *string `json:"staffId,omitempty"` // для staff игнорируется
	StartAt          string  `json:"startAt"`           // ISO-8601
	ClientName       string  `json:"clientName"`
	ClientPhone      string  `json:"clientPhone"`
	ConsentMarketing bool    `json:"consentMarketing"`
	Notes            *string `json:"notes,omitempty"`
	InternalNote     *string `json:"internalNote,omitempty"`
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	BookingID  string `json:"bookingId"`
	Status     string `json:"status"`
	StaffID    string `json:"staffId"`
	StartAt    string `json:"startAt"` // ISO-8601, UTC
	EndAt      string `json:"endAt"`   // ISO-8601, UTC
	PriceCents int64  `json:"priceCents"`
	Currency   string `json:"currency"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *adminCreateBooking.Response) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		BookingID:  resp.BookingID,
		Status:     string(resp.Status),
		StaffID:    resp.StaffID,
		StartAt:    resp.StartAt.UTC().Format(time.RFC3339),
		EndAt:      resp.EndAt.UTC().Format(time.RFC3339),
		PriceCents: resp.PriceCents,
		Currency:   resp.Currency,
	}
}
