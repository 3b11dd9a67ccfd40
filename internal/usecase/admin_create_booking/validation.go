package admin_create_booking

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

	if req.ActorUserID == "" {
		return fmt.Errorf("%w: actorUserID is required", ErrInvalidInput)
	}

	if !req.ActorRole.IsValid() {
		return fmt.Errorf("%w: unknown actor role %q", ErrInvalidInput, req.ActorRole)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.StartAtISO == "" {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
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

	if req.InternalNote != nil && utf8.RuneCountInString(*req.InternalNote) > domain.MaxNotesLength {
		return fmt.Errorf("%w: internalNote must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
