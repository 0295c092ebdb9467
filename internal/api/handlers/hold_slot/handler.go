package hold_slot

import (
	"errors"
	"net/http"

	"github.com/rubenautodetail/autodetailapp/internal/api/handlers"
	holdSlot "github.com/rubenautodetail/autodetailapp/internal/usecase/hold_slot"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "ZIP code, date and time window are required"
	msgInvalidZip         = "Invalid ZIP code format"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidTimeWindow  = "Invalid time window, expected morning, afternoon or evening"
)

type Handler struct {
	useCase HoldSlotUseCase
	logger  Logger
}

func NewHandler(useCase HoldSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/booking/hold-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req HoldSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hold-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, holdSlot.ErrInvalidInput):
			h.logger.Warn("POST /hold-slot - Missing required fields: zip=%q date=%q window=%q", req.ZipCode, req.Date, req.TimeWindow)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, holdSlot.ErrInvalidZip):
			h.logger.Warn("POST /hold-slot - Invalid ZIP code: %q", req.ZipCode)
			handlers.RespondBadRequest(w, msgInvalidZip)

		case errors.Is(err, holdSlot.ErrInvalidDate):
			h.logger.Warn("POST /hold-slot - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, holdSlot.ErrInvalidTimeWindow):
			h.logger.Warn("POST /hold-slot - Invalid time window: %q", req.TimeWindow)
			handlers.RespondBadRequest(w, msgInvalidTimeWindow)

		default:
			h.logger.Error("POST /hold-slot - Failed to hold slot: zip=%q date=%q, error=%v", req.ZipCode, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Занятый слот — не ошибка, клиент выбирает другое окно.
	if !result.Success {
		h.logger.Info("POST /hold-slot - Slot taken: zip=%s date=%s window=%s", req.ZipCode, req.Date, req.TimeWindow)
		handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("POST /hold-slot - Held: token=%s contractor=%s date=%s window=%s",
		result.Hold.Token, result.Hold.ContractorID, req.Date, req.TimeWindow)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
