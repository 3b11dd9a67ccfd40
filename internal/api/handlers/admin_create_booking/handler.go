package admin_create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	adminCreateBooking "github.com/m04kA/Salon-BookingService/internal/usecase/admin_create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgForbidden          = "операция недоступна для вашей роли"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "мастер не найден"
	msgSlotTaken          = "выбранное время уже занято"
)

type Handler struct {
	useCase AdminCreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase AdminCreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/{tenantSlug}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		h.logger.Error("POST /admin/bookings - tenant is missing from context")
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

	var req AdminCreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &adminCreateBooking.Request{
		TenantID:         tenant.ID,
		ActorUserID:      userID,
		ActorRole:        role,
		ServiceID:        req.ServiceID,
		StaffID:          req.StaffID,
		StartAtISO:       req.StartAt,
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		ConsentMarketing: req.ConsentMarketing,
		Notes:            req.Notes,
		InternalNote:     req.InternalNote,
	})
	if err != nil {
		switch {
		case errors.Is(err, adminCreateBooking.ErrInvalidInput):
			h.logger.Warn("POST /admin/bookings - Invalid request: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, adminCreateBooking.ErrForbidden):
			h.logger.Warn("POST /admin/bookings - Forbidden: tenant=%s, user=%s, role=%s", tenant.ID, userID, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, adminCreateBooking.ErrServiceNotFound):
			h.logger.Warn("POST /admin/bookings - Service not found: tenant=%s, service=%s", tenant.ID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, adminCreateBooking.ErrStaffNotFound):
			h.logger.Warn("POST /admin/bookings - Staff not found: tenant=%s, user=%s", tenant.ID, userID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, adminCreateBooking.ErrSlotTaken):
			h.logger.Warn("POST /admin/bookings - Slot taken: tenant=%s, startAt=%s", tenant.ID, req.StartAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("POST /admin/bookings - Failed to create booking: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings - Booking created: tenant=%s, booking=%s, actor=%s",
		tenant.ID, result.BookingID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
