package admin_list_bookings

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	if req.TenantTZ == "" {
		return fmt.Errorf("%w: tenantTZ is required", ErrInvalidInput)
	}

	if req.ActorUserID == "" {
		return fmt.Errorf("%w: actorUserID is required", ErrInvalidInput)
	}

	if !req.ActorRole.IsValid() {
		return fmt.Errorf("%w: unknown actor role %q", ErrInvalidInput, req.ActorRole)
	}

	if req.FromDateISO == "" || req.ToDateISO == "" {
		return fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}

	return nil
}
