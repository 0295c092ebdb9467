package calculate_price

import (
	calculatePrice "github.com/rubenautodetail/autodetailapp/internal/usecase/calculate_price"
)

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	ServiceID string   `json:"serviceId"`
	AddOnIDs  []string `json:"addOnIds"`
	ZipCode   string   `json:"zipCode"`
}

// ServicePricing услуга с ценой, скорректированной на зону
type ServicePricing struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	BasePrice     float64 `json:"basePrice"`
	AdjustedPrice float64 `json:"adjustedPrice"`
}

// AddOnPricing доп в составе расчёта
type AddOnPricing struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ZonePricing применённые данные зоны
type ZonePricing struct {
	ZipCode    string  `json:"zipCode"`
	Multiplier float64 `json:"multiplier"`
}

// Breakdown разбивка итоговой цены
type Breakdown struct {
	BasePrice   float64 `json:"basePrice"`
	AddOnsTotal float64 `json:"addOnsTotal"`
	Subtotal    float64 `json:"subtotal"`
	ServiceFee  float64 `json:"serviceFee"`
	Total       float64 `json:"total"`
}

// CalculatePriceResponse HTTP response model
type CalculatePriceResponse struct {
	Service       ServicePricing `json:"service"`
	AddOns        []AddOnPricing `json:"addOns"`
	Zone          ZonePricing    `json:"zone"`
	Breakdown     Breakdown      `json:"breakdown"`
	TotalDuration int            `json:"totalDuration"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculatePriceRequest) ToUseCaseRequest() *calculatePrice.Request {
	return &calculatePrice.Request{
		ServiceID: r.ServiceID,
		AddOnIDs:  r.AddOnIDs,
		ZipCode:   r.ZipCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *CalculatePriceResponse {
	addOns := make([]AddOnPricing, len(resp.AddOns))
	for i, a := range resp.AddOns {
		addOns[i] = AddOnPricing{
			ID:    a.ID,
			Name:  a.Name,
			Price: a.Price,
		}
	}

	return &CalculatePriceResponse{
		Service: ServicePricing{
			ID:            resp.Service.ID,
			Name:          resp.Service.Name,
			BasePrice:     resp.Service.BasePrice,
			AdjustedPrice: resp.Service.AdjustedPrice,
		},
		AddOns: addOns,
		Zone: ZonePricing{
			ZipCode:    resp.Zone.ZipCode,
			Multiplier: resp.Zone.Multiplier,
		},
		Breakdown: Breakdown{
			BasePrice:   resp.Breakdown.BasePrice,
			AddOnsTotal: resp.Breakdown.AddOnsTotal,
			Subtotal:    resp.Breakdown.Subtotal,
			ServiceFee:  resp.Breakdown.ServiceFee,
			Total:       resp.Breakdown.Total,
		},
		TotalDuration: resp.TotalDuration,
	}
}
