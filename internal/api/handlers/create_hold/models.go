package create_hold

import (
	"time"

	createHold "github.com/m04kA/Salon-BookingService/internal/usecase/create_hold"
)

// CreateHoldRequest HTTP request model
type CreateHoldRequest struct {
	ServiceID   string  `json:"serviceId"`
	StaffID     string  `json:"staffId"`
	StartAt     string  `json:"startAt"` // ISO-8601
	ClientPhone *string `json:"clientPhone,omitempty"`
}

// HoldResponse HTTP response model
type HoldResponse struct {
	HoldID    string `json:"holdId"`
	ExpiresAt string `json:"expiresAt"` // ISO-8601, UTC
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createHold.Response) *HoldResponse {
	return &HoldResponse{
		HoldID:    resp.HoldID,
		ExpiresAt: resp.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
