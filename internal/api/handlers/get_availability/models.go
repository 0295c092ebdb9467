package get_availability

import (
	getAvailability "github.com/rubenautodetail/autodetailapp/internal/usecase/get_availability"
)

// AvailabilityRequest HTTP request model
type AvailabilityRequest struct {
	ZipCode   string  `json:"zipCode"`
	ServiceID *string `json:"serviceId,omitempty"`
	Month     string  `json:"month"` // YYYY-MM
}

// Slot одно временное окно дня
type Slot struct {
	Window               string `json:"window"`
	Label                string `json:"label"`
	ContractorsAvailable int    `json:"contractorsAvailable"`
}

// DateSlots окна одной даты
type DateSlots struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// NextAvailable первая доступная пара (дата, окно)
type NextAvailable struct {
	Date   string `json:"date"`
	Window string `json:"window"`
	Label  string `json:"label"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available       bool           `json:"available"`
	ZipCode         string         `json:"zipCode"`
	Month           string         `json:"month"`
	ServiceDuration int            `json:"serviceDuration"`
	ContractorCount int            `json:"contractorCount"`
	AvailableDates  []DateSlots    `json:"availableDates"`
	NextAvailable   *NextAvailable `json:"nextAvailable"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailabilityRequest) ToUseCaseRequest() *getAvailability.Request {
	return &getAvailability.Request{
		ZipCode:   r.ZipCode,
		ServiceID: r.ServiceID,
		Month:     r.Month,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	dates := make([]DateSlots, len(resp.AvailableDates))
	for i, d := range resp.AvailableDates {
		slots := make([]Slot, len(d.Slots))
		for j, s := range d.Slots {
			slots[j] = Slot{
				Window:               string(s.Window),
				Label:                s.Label,
				ContractorsAvailable: s.ContractorsAvailable,
			}
		}
		dates[i] = DateSlots{Date: d.Date, Slots: slots}
	}

	out := &AvailabilityResponse{
		Available:       resp.Available,
		ZipCode:         resp.ZipCode,
		Month:           resp.Month,
		ServiceDuration: resp.ServiceDuration,
		ContractorCount: resp.ContractorCount,
		AvailableDates:  dates,
	}

	if resp.NextAvailable != nil {
		out.NextAvailable = &NextAvailable{
			Date:   resp.NextAvailable.Date,
			Window: string(resp.NextAvailable.Window),
			Label:  resp.NextAvailable.Label,
		}
	}

	return out
}
