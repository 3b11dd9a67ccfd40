package list_slots

import (
	"time"

	listSlots "github.com/m04kA/Salon-BookingService/internal/usecase/list_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartAt string `json:"startAt"` // ISO-8601, UTC
	EndAt   string `json:"endAt"`   // ISO-8601, UTC
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date    string         `json:"date"`
	StaffID string         `json:"staffId"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartAt: s.StartAt.UTC().Format(time.RFC3339),
			EndAt:   s.EndAt.UTC().Format(time.RFC3339),
		})
	}

	return &SlotsResponse{
		Date:    resp.DateISO,
		StaffID: resp.StaffID,
		Slots:   slots,
	}
}
