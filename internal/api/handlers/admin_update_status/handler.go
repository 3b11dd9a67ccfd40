package admin_update_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/domain"
	adminUpdateStatus "github.com/m04kA/Salon-BookingService/internal/usecase/admin_update_status"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgForbidden          = "операция недоступна для вашей роли"
	msgBookingNotFound    = "запись не найдена"
	msgInvalidTransition  = "недопустимая смена статуса"
)

type Handler struct {
	useCase AdminUpdateStatusUseCase
	logger  Logger
}

func NewHandler(useCase AdminUpdateStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/{tenantSlug}/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		h.logger.Error("PATCH /admin/bookings/{id}/status - tenant is missing from context")
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

	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/%s/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &adminUpdateStatus.Request{
		TenantID:     tenant.ID,
		ActorUserID:  userID,
		ActorRole:    role,
		BookingID:    bookingID,
		NewStatus:    domain.BookingStatus(req.Status),
		CancelReason: req.CancelReason,
		InternalNote: req.InternalNote,
	})
	if err != nil {
		switch {
		case errors.Is(err, adminUpdateStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/%s/status - Invalid request: tenant=%s, error=%v",
				bookingID, tenant.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, adminUpdateStatus.ErrForbidden):
			h.logger.Warn("PATCH /admin/bookings/%s/status - Forbidden: tenant=%s, user=%s, role=%s",
				bookingID, tenant.ID, userID, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, adminUpdateStatus.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/%s/status - Booking not found: tenant=%s", bookingID, tenant.ID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, adminUpdateStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/%s/status - Invalid transition: tenant=%s, status=%s",
				bookingID, tenant.ID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /admin/bookings/%s/status - Failed to update status: tenant=%s, error=%v",
				bookingID, tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/%s/status - Status updated to %s: tenant=%s, actor=%s",
		bookingID, result.Status, tenant.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
