package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	confirmBooking "github.com/m04kA/Salon-BookingService/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgHoldNotFound       = "удержание слота не найдено"
	msgHoldExpired        = "время удержания слота истекло, выберите слот заново"
	msgSlotTaken          = "выбранное время уже занято"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "мастер не найден"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/public/{tenantSlug}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		h.logger.Error("POST /bookings - tenant is missing from context")
		handlers.RespondInternalError(w)
		return
	}

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		TenantID:         tenant.ID,
		HoldID:           req.HoldID,
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		ConsentMarketing: req.ConsentMarketing,
		Notes:            req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid request: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, confirmBooking.ErrHoldNotFound):
			h.logger.Warn("POST /bookings - Hold not found: tenant=%s, hold=%s", tenant.ID, req.HoldID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, confirmBooking.ErrHoldExpired):
			h.logger.Warn("POST /bookings - Hold expired: tenant=%s, hold=%s", tenant.ID, req.HoldID)
			handlers.RespondError(w, http.StatusConflict, msgHoldExpired)

		case errors.Is(err, confirmBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: tenant=%s, hold=%s", tenant.ID, req.HoldID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, confirmBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: tenant=%s, hold=%s", tenant.ID, req.HoldID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, confirmBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff not found: tenant=%s, hold=%s", tenant.ID, req.HoldID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to confirm booking: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking confirmed: tenant=%s, booking=%s", tenant.ID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
