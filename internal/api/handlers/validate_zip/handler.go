package validate_zip

import (
	"errors"
	"net/http"

	"github.com/rubenautodetail/autodetailapp/internal/api/handlers"
	validateZip "github.com/rubenautodetail/autodetailapp/internal/usecase/validate_zip"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgZipRequired        = "ZIP code is required"
	msgInvalidZip         = "Invalid ZIP code format. Please enter a 5-digit ZIP code."
)

type Handler struct {
	useCase ValidateZipUseCase
	logger  Logger
}

func NewHandler(useCase ValidateZipUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/booking/validate-zip
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateZipRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /validate-zip - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, validateZip.ErrZipRequired):
			h.logger.Warn("POST /validate-zip - Missing ZIP code")
			handlers.RespondBadRequest(w, msgZipRequired)

		case errors.Is(err, validateZip.ErrInvalidZip):
			h.logger.Warn("POST /validate-zip - Invalid ZIP code: %q", req.ZipCode)
			handlers.RespondBadRequest(w, msgInvalidZip)

		default:
			h.logger.Error("POST /validate-zip - Failed to validate ZIP: zip=%q, error=%v", req.ZipCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /validate-zip - zip=%s available=%t contractors=%d",
		result.ZipCode, result.Available, result.ContractorCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
