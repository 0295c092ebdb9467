package validate_zip

import (
	"time"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

// Request модель запроса проверки ZIP
type Request struct {
	ZipCode string
}

// Response модель ответа проверки ZIP
type Response struct {
	Available         bool
	ZipCode           string              // канонизированный ZIP (5 цифр)
	Zone              *domain.ServiceZone // nil, если зона не обслуживается
	Services          []domain.Service
	AddOns            []domain.AddOn
	ContractorCount   int
	NextAvailableDate *time.Time
	Message           string
	DegradedMode      bool // ответ собран на fallback-зоне
}
