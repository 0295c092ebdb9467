package validate_zip

import (
	"github.com/rubenautodetail/autodetailapp/internal/domain"
	validateZip "github.com/rubenautodetail/autodetailapp/internal/usecase/validate_zip"
)

// ValidateZipRequest HTTP request model
type ValidateZipRequest struct {
	ZipCode string `json:"zipCode"`
}

// ZoneInfo данные зоны обслуживания
type ZoneInfo struct {
	CoverageRadiusMiles float64 `json:"coverageRadiusMiles"`
	PriceMultiplier     float64 `json:"priceMultiplier"`
}

// ServiceInfo услуга каталога
type ServiceInfo struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	BasePrice       float64 `json:"basePrice"`
	DurationMinutes int     `json:"durationMinutes"`
}

// AddOnInfo доп каталога
type AddOnInfo struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ValidateZipResponse HTTP response model
type ValidateZipResponse struct {
	Available         bool          `json:"available"`
	ZipCode           string        `json:"zipCode"`
	Zone              *ZoneInfo     `json:"zone,omitempty"`
	Services          []ServiceInfo `json:"services,omitempty"`
	AddOns            []AddOnInfo   `json:"addOns,omitempty"`
	Contractors       int           `json:"contractors"`
	NextAvailableDate string        `json:"nextAvailableDate,omitempty"`
	Message           string        `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateZipRequest) ToUseCaseRequest() *validateZip.Request {
	return &validateZip.Request{ZipCode: r.ZipCode}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateZip.Response) *ValidateZipResponse {
	out := &ValidateZipResponse{
		Available:   resp.Available,
		ZipCode:     resp.ZipCode,
		Contractors: resp.ContractorCount,
		Message:     resp.Message,
	}

	if resp.Zone != nil {
		out.Zone = &ZoneInfo{
			CoverageRadiusMiles: resp.Zone.CoverageRadiusMiles,
			PriceMultiplier:     resp.Zone.PriceMultiplier,
		}
	}

	if resp.NextAvailableDate != nil {
		out.NextAvailableDate = resp.NextAvailableDate.Format(domain.DateFormat)
	}

	if len(resp.Services) > 0 {
		out.Services = make([]ServiceInfo, len(resp.Services))
		for i, s := range resp.Services {
			out.Services[i] = ServiceInfo{
				ID:              s.ID,
				Name:            s.Name,
				Description:     s.Description,
				BasePrice:       s.BasePrice,
				DurationMinutes: s.DurationMinutes,
			}
		}
	}

	if len(resp.AddOns) > 0 {
		out.AddOns = make([]AddOnInfo, len(resp.AddOns))
		for i, a := range resp.AddOns {
			out.AddOns[i] = AddOnInfo{
				ID:              a.ID,
				Name:            a.Name,
				Description:     a.Description,
				Price:           a.Price,
				DurationMinutes: a.DurationMinutes,
			}
		}
	}

	return out
}
