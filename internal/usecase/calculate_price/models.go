package calculate_price

import (
	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

// Request модель запроса расчёта цены
type Request struct {
	ServiceID string
	AddOnIDs  []string
	ZipCode   string
}

// ServicePricing данные услуги с ценой, скорректированной на зону
type ServicePricing struct {
	ID            string
	Name          string
	BasePrice     float64
	AdjustedPrice float64
}

// ZonePricing данные зоны, применённые к расчёту
type ZonePricing struct {
	ZipCode    string
	Multiplier float64
}

// Response модель ответа с разбивкой цены
type Response struct {
	Service       ServicePricing
	AddOns        []domain.AddOn
	Zone          ZonePricing
	Breakdown     domain.PriceBreakdown
	TotalDuration int // минуты, услуга + допы
}
