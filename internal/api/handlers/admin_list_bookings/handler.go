package admin_list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	adminListBookings "github.com/m04kA/Salon-BookingService/internal/usecase/admin_list_bookings"
)

const (
	msgMissingParams  = "требуются параметры from и to"
	msgInvalidRequest = "некорректные параметры запроса"
	msgForbidden      = "операция недоступна для вашей роли"
)

type Handler struct {
	useCase AdminListBookingsUseCase
	logger  Logger
}

func NewHandler(useCase AdminListBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/{tenantSlug}/bookings?from&to&staffId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		h.logger.Error("GET /admin/bookings - tenant is missing from context")
		handlers.RespondInternalError(w)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}
	role, ok := middleware.GetUserRole(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	q := r.URL.Query()
	from := q.Get("from")
	to := q.Get("to")
	if from == "" || to == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	var staffID *string
	if s := q.Get("staffId"); s != "" {
		staffID = &s
	}

	result, err := h.useCase.Execute(r.Context(), &adminListBookings.Request{
		TenantID:    tenant.ID,
		TenantTZ:    tenant.Timezone,
		ActorUserID: userID,
		ActorRole:   role,
		FromDateISO: from,
		ToDateISO:   to,
		StaffID:     staffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, adminListBookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid request: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, adminListBookings.ErrForbidden):
			h.logger.Warn("GET /admin/bookings - Forbidden: tenant=%s, user=%s, role=%s", tenant.ID, userID, role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
