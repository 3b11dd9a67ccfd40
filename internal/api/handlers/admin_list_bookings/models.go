package admin_list_bookings

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	adminListBookings "github.com/m04kA/Salon-BookingService/internal/usecase/admin_list_bookings"
)

// BookingItemResponse HTTP модель одной записи календаря
type BookingItemResponse struct {
	BookingID   string  `json:"bookingId"`
	Status      string  `json:"status"`
	StartAt     string  `json:"startAt"` // ISO-8601, UTC
	EndAt       string  `json:"endAt"`   // ISO-8601, UTC
	ServiceName string  `json:"serviceName"`
	StaffID     string  `json:"staffId"`
	StaffName   string  `json:"staffName"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	PriceCents  int64   `json:"priceCents"`
	Currency    string  `json:"currency"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingsListResponse HTTP response model
type BookingsListResponse struct {
	Bookings []BookingItemResponse `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *adminListBookings.Response) *BookingsListResponse {
	items := make([]BookingItemResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		items = append(items, fromBooking(b))
	}
	return &BookingsListResponse{Bookings: items}
}

func fromBooking(b *domain.BookingWithNames) BookingItemResponse {
	return BookingItemResponse{
		BookingID:   b.ID,
		Status:      string(b.Status),
		StartAt:     b.StartAt.UTC().Format(time.RFC3339),
		EndAt:       b.EndAt.UTC().Format(time.RFC3339),
		ServiceName: b.ServiceName,
		StaffID:     b.StaffID,
		StaffName:   b.StaffName,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		PriceCents:  b.PriceCents,
		Currency:    b.Currency,
		Notes:       b.Notes,
	}
}
