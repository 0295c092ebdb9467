package hold_slot

import (
	"time"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	holdSlot "github.com/rubenautodetail/autodetailapp/internal/usecase/hold_slot"
)

// HoldSlotRequest HTTP request model
type HoldSlotRequest struct {
	ZipCode    string `json:"zipCode"`
	Date       string `json:"date"` // YYYY-MM-DD
	TimeWindow string `json:"timeWindow"`
	Duration   int    `json:"duration,omitempty"` // минуты, 0 — по умолчанию
}

// HeldContractor назначенный контрактор
type HeldContractor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HeldSlot зарезервированный слот
type HeldSlot struct {
	Date       string `json:"date"`
	TimeWindow string `json:"timeWindow"`
	Duration   int    `json:"duration"`
}

// HoldSlotResponse HTTP response model.
// Success=false — слот занят, клиент должен выбрать другой.
type HoldSlotResponse struct {
	Success    bool            `json:"success"`
	HoldToken  string          `json:"holdToken,omitempty"`
	ExpiresAt  string          `json:"expiresAt,omitempty"`
	Contractor *HeldContractor `json:"contractor,omitempty"`
	Slot       *HeldSlot       `json:"slot,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *HoldSlotRequest) ToUseCaseRequest() *holdSlot.Request {
	return &holdSlot.Request{
		ZipCode:         r.ZipCode,
		Date:            r.Date,
		TimeWindow:      r.TimeWindow,
		DurationMinutes: r.Duration,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *holdSlot.Response) *HoldSlotResponse {
	if !resp.Success {
		return &HoldSlotResponse{
			Success: false,
			Message: resp.Message,
		}
	}

	return &HoldSlotResponse{
		Success:   true,
		HoldToken: resp.Hold.Token,
		ExpiresAt: resp.Hold.ExpiresAt.UTC().Format(time.RFC3339),
		Contractor: &HeldContractor{
			ID:   resp.Hold.ContractorID,
			Name: resp.Hold.ContractorName,
		},
		Slot: &HeldSlot{
			Date:       resp.Hold.Date.Format(domain.DateFormat),
			TimeWindow: string(resp.Hold.TimeWindow),
			Duration:   resp.Hold.DurationMinutes,
		},
	}
}
