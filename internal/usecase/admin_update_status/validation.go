package admin_update_status

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

	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if !req.NewStatus.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.NewStatus)
	}

	if req.CancelReason != nil && utf8.RuneCountInString(*req.CancelReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancelReason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	if req.InternalNote != nil && utf8.RuneCountInString(*req.InternalNote) > domain.MaxNotesLength {
		return fmt.Errorf("%w: internalNote must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
