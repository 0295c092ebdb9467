package get_availability

import (
	"errors"
	"net/http"

	"github.com/rubenautodetail/autodetailapp/internal/api/handlers"
	getAvailability "github.com/rubenautodetail/autodetailapp/internal/usecase/get_availability"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "ZIP code and month are required"
	msgInvalidZip         = "Invalid ZIP code format"
	msgInvalidMonth       = "Invalid month format, expected YYYY-MM"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/booking/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Missing required fields: zip=%q month=%q", req.ZipCode, req.Month)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, getAvailability.ErrInvalidZip):
			h.logger.Warn("POST /availability - Invalid ZIP code: %q", req.ZipCode)
			handlers.RespondBadRequest(w, msgInvalidZip)

		case errors.Is(err, getAvailability.ErrInvalidMonth):
			h.logger.Warn("POST /availability - Invalid month: %q", req.Month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("POST /availability - Failed to build calendar: zip=%q, error=%v", req.ZipCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - zip=%s month=%s dates=%d contractors=%d",
		result.ZipCode, result.Month, len(result.AvailableDates), result.ContractorCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
