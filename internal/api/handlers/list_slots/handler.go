package list_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	listSlots "github.com/m04kA/Salon-BookingService/internal/usecase/list_slots"
)

const (
	msgMissingParams  = "требуются параметры serviceId, staffId и date"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase ListSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/public/{tenantSlug}/slots?serviceId&staffId&date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		h.logger.Error("GET /slots - tenant is missing from context")
		handlers.RespondInternalError(w)
		return
	}

	q := r.URL.Query()
	serviceID := q.Get("serviceId")
	staffID := q.Get("staffId")
	date := q.Get("date")

	if serviceID == "" || staffID == "" || date == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listSlots.Request{
		TenantID:  tenant.ID,
		TenantTZ:  tenant.Timezone,
		ServiceID: serviceID,
		StaffID:   staffID,
		DateISO:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, listSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid request: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /slots - Failed to list slots: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
