package domain

// ContractorStatus represents the status of a contractor
type ContractorStatus string

const (
	ContractorActive   ContractorStatus = "active"
	ContractorInactive ContractorStatus = "inactive"
	ContractorPending  ContractorStatus = "pending"
)

// Contractor represents a service provider assigned to a zone
type Contractor struct {
	ID     string
	Name   string
	Status ContractorStatus
}

// IsActive returns true if the contractor counts toward availability
func (c *Contractor) IsActive() bool {
	return c.Status == ContractorActive
}

// ServiceZone represents a coverage area keyed by ZIP code
type ServiceZone struct {
	ZipCode             string
	IsActive            bool
	CoverageRadiusMiles float64
	PriceMultiplier     float64
	Contractors         []Contractor
}

// ActiveContractors returns only contractors with active status
func (z *ServiceZone) ActiveContractors() []Contractor {
	active := make([]Contractor, 0, len(z.Contractors))
	for _, c := range z.Contractors {
		if c.IsActive() {
			active = append(active, c)
		}
	}
	return active
}

// FallbackZone возвращает синтетическую зону для degraded mode:
// ZIP без записи в service_zones обслуживается с дефолтным покрытием
// и множителем 1.0, без контракторов
func FallbackZone(zipCode string) *ServiceZone {
	return &ServiceZone{
		ZipCode:             zipCode,
		IsActive:            true,
		CoverageRadiusMiles: FallbackCoverageRadiusMiles,
		PriceMultiplier:     FallbackPriceMultiplier,
		Contractors:         nil,
	}
}
