package confirm_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	if req.HoldID == "" {
		return fmt.Errorf("%w: holdID is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.ClientName) < domain.MinClientNameLength {
		return fmt.Errorf("%w: clientName is too short", ErrInvalidInput)
	}

	if req.ClientPhone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
