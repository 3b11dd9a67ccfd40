package create_hold

import (
	"errors"
	"net"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	createHold "github.com/m04kA/Salon-BookingService/internal/usecase/create_hold"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotTaken          = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateHoldUseCase
	logger  Logger
}

func NewHandler(useCase CreateHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/public/{tenantSlug}/holds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		h.logger.Error("POST /holds - tenant is missing from context")
		handlers.RespondInternalError(w)
		return
	}

	var req CreateHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := &createHold.Request{
		TenantID:    tenant.ID,
		TenantTZ:    tenant.Timezone,
		ServiceID:   req.ServiceID,
		StaffID:     req.StaffID,
		StartAtISO:  req.StartAt,
		ClientPhone: req.ClientPhone,
	}
	if ip := clientIP(r); ip != "" {
		useCaseReq.IP = &ip
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createHold.ErrInvalidInput):
			h.logger.Warn("POST /holds - Invalid request: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createHold.ErrServiceNotFound):
			h.logger.Warn("POST /holds - Service not found: tenant=%s, service=%s", tenant.ID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createHold.ErrSlotTaken):
			h.logger.Warn("POST /holds - Slot taken: tenant=%s, staff=%s, startAt=%s",
				tenant.ID, req.StaffID, req.StartAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("POST /holds - Failed to create hold: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds - Hold created: tenant=%s, hold=%s", tenant.ID, result.HoldID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// clientIP возвращает IP клиента без порта
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
