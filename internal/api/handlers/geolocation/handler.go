package geolocation

import (
	"net/http"

	"github.com/rubenautodetail/autodetailapp/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidCoordinates = "Invalid coordinates"
	msgComingSoon         = "Geolocation feature coming soon. Please enter your ZIP code manually."
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/booking/geolocation
//
// Обратный геокодинг координат в ZIP пока не подключён: эндпоинт
// валидирует вход и честно отправляет клиента на ручной ввод ZIP.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GeolocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /geolocation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		h.logger.Warn("POST /geolocation - Coordinates out of range: lat=%f lon=%f", req.Latitude, req.Longitude)
		handlers.RespondBadRequest(w, msgInvalidCoordinates)
		return
	}

	h.logger.Info("POST /geolocation - lat=%f lon=%f, redirecting to manual ZIP entry", req.Latitude, req.Longitude)
	handlers.RespondJSON(w, http.StatusOK, &GeolocationResponse{
		Success: false,
		Message: msgComingSoon,
	})
}
