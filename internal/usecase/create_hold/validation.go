package create_hold

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	if req.TenantTZ == "" {
		return fmt.Errorf("%w: tenantTZ is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.StaffID == "" {
		return fmt.Errorf("%w: staffID is required", ErrInvalidInput)
	}

	if req.StartAtISO == "" {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	return nil
}
