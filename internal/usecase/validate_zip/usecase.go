package validate_zip

import (
	"context"
	"errors"
	"fmt"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	catalogRepo "github.com/rubenautodetail/autodetailapp/internal/infra/storage/catalog"
)

const (
	msgAreaServiced  = "Great news! We service your area."
	msgAreaNotServed = "We are not currently servicing your area. Join our waitlist to be notified when we expand!"
)

// UseCase use case проверки ZIP и доступности сервиса в зоне
type UseCase struct {
	catalogRepo  CatalogRepository
	degradedMode bool
	metrics      MetricsReporter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	degradedMode bool,
	metrics MetricsReporter,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		degradedMode: degradedMode,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку ZIP: канонизация, поиск зоны, каталог услуг
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и канонизация ZIP
	zip, err := validateZip(req.ZipCode)
	if err != nil {
		uc.logger.Warn("ValidateZip: validation failed for %q: %v", req.ZipCode, err)
		return nil, err
	}

	// 2. Sentinel ZIP всегда не обслуживается (демо waitlist-сценария)
	if zip == domain.SentinelUnservedZip {
		uc.logger.Info("ValidateZip: sentinel zip=%s, area not serviced", zip)
		return &Response{
			Available: false,
			ZipCode:   zip,
			Message:   msgAreaNotServed,
		}, nil
	}

	// 3. Ищем зону обслуживания
	degraded := false
	zone, err := uc.catalogRepo.GetZoneByZip(ctx, zip)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrZoneNotFound) {
			uc.logger.Error("ValidateZip: failed to get zone for zip=%s: %v", zip, err)
			return nil, fmt.Errorf("%w: failed to get zone: %v", ErrInternal, err)
		}

		// Зоны нет. При выключенном degraded mode — честный отказ.
		if !uc.degradedMode {
			uc.logger.Info("ValidateZip: no zone for zip=%s, degraded mode disabled", zip)
			return &Response{
				Available: false,
				ZipCode:   zip,
				Message:   msgAreaNotServed,
			}, nil
		}

		uc.logger.Warn("ValidateZip: no service zone found for zip=%s, using fallback zone", zip)
		uc.metrics.IncDegradedMode("validate_zip")
		zone = domain.FallbackZone(zip)
		degraded = true
	}

	// 4. Явно выключенная зона — отдельный исход, не degraded mode
	if !zone.IsActive {
		uc.logger.Info("ValidateZip: zone for zip=%s is disabled", zip)
		return &Response{
			Available: false,
			ZipCode:   zip,
			Message:   msgAreaNotServed,
		}, nil
	}

	// 5. Загружаем каталог услуг и допов
	services, err := uc.catalogRepo.GetPublishedServices(ctx)
	if err != nil {
		uc.logger.Error("ValidateZip: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	addOns, err := uc.catalogRepo.GetPublishedAddOns(ctx)
	if err != nil {
		uc.logger.Error("ValidateZip: failed to get add-ons: %v", err)
		return nil, fmt.Errorf("%w: failed to get add-ons: %v", ErrInternal, err)
	}

	// 6. Ближайшая доступная дата — завтра.
	// TODO: брать первую открытую дату из availability ledger вместо завтра
	now := uc.timeProvider.Now()
	nextAvailable := now.AddDate(0, 0, 1)

	contractorCount := len(zone.ActiveContractors())

	uc.logger.Info("ValidateZip: zip=%s serviced, contractors=%d, services=%d, degraded=%t",
		zip, contractorCount, len(services), degraded)

	return &Response{
		Available:         true,
		ZipCode:           zip,
		Zone:              zone,
		Services:          services,
		AddOns:            addOns,
		ContractorCount:   contractorCount,
		NextAvailableDate: &nextAvailable,
		Message:           msgAreaServiced,
		DegradedMode:      degraded,
	}, nil
}
