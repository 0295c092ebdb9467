package domain

// Service represents a bookable service from the catalog
type Service struct {
	ID              string
	Name            string
	Description     string
	BasePrice       float64
	DurationMinutes int
}

// AddOn represents an optional extra attached to a service
type AddOn struct {
	ID              string
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
}

// PriceBreakdown represents the result of a price calculation
type PriceBreakdown struct {
	BasePrice   float64 // base price adjusted by the zone multiplier
	AddOnsTotal float64
	Subtotal    float64
	ServiceFee  float64
	Total       float64
}

// CalculatePrice рассчитывает стоимость: база * множитель зоны + допы,
// плюс фиксированная платформенная комиссия ServiceFeeRate
func CalculatePrice(service *Service, addOns []AddOn, zoneMultiplier float64) PriceBreakdown {
	adjustedBase := service.BasePrice * zoneMultiplier

	addOnsTotal := 0.0
	for _, a := range addOns {
		addOnsTotal += a.Price
	}

	subtotal := adjustedBase + addOnsTotal
	serviceFee := subtotal * ServiceFeeRate

	return PriceBreakdown{
		BasePrice:   adjustedBase,
		AddOnsTotal: addOnsTotal,
		Subtotal:    subtotal,
		ServiceFee:  serviceFee,
		Total:       subtotal + serviceFee,
	}
}

// TotalDuration возвращает суммарную длительность услуги с допами в минутах
func TotalDuration(service *Service, addOns []AddOn) int {
	total := service.DurationMinutes
	for _, a := range addOns {
		total += a.DurationMinutes
	}
	return total
}
