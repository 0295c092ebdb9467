package calculate_price

import (
	"errors"
	"net/http"

	"github.com/rubenautodetail/autodetailapp/internal/api/handlers"
	calculatePrice "github.com/rubenautodetail/autodetailapp/internal/usecase/calculate_price"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Service ID and ZIP code are required"
	msgInvalidZip         = "Invalid ZIP code format"
	msgServiceNotFound    = "Service not found"
	msgAddOnNotFound      = "One or more add-ons not found"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/booking/calculate-price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calculate-price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("POST /calculate-price - Missing required fields: service=%q zip=%q", req.ServiceID, req.ZipCode)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, calculatePrice.ErrInvalidZip):
			h.logger.Warn("POST /calculate-price - Invalid ZIP code: %q", req.ZipCode)
			handlers.RespondBadRequest(w, msgInvalidZip)

		case errors.Is(err, calculatePrice.ErrServiceNotFound):
			h.logger.Warn("POST /calculate-price - Service not found: %q", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, calculatePrice.ErrAddOnNotFound):
			h.logger.Warn("POST /calculate-price - Add-on not found: %v", req.AddOnIDs)
			handlers.RespondNotFound(w, msgAddOnNotFound)

		default:
			h.logger.Error("POST /calculate-price - Failed to calculate price: service=%q, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calculate-price - service=%s addons=%d total=%.2f",
		result.Service.ID, len(result.AddOns), result.Breakdown.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
