package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	catalogRepo "github.com/rubenautodetail/autodetailapp/internal/infra/storage/catalog"
)

// UseCase use case расчёта цены: чистая функция от (услуга, допы, множитель зоны)
type UseCase struct {
	catalogRepo CatalogRepository
	metrics     MetricsReporter
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, metrics MetricsReporter, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет расчёт цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	zip, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Множитель зоны. Отсутствие зоны не фейлит расчёт —
	// применяем fallback-множитель 1.0 и помечаем degraded.
	multiplier := domain.FallbackPriceMultiplier
	zone, err := uc.catalogRepo.GetZoneByZip(ctx, zip)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrZoneNotFound) {
			uc.logger.Error("CalculatePrice: failed to get zone for zip=%s: %v", zip, err)
			return nil, fmt.Errorf("%w: failed to get zone: %v", ErrInternal, err)
		}
		uc.logger.Warn("CalculatePrice: no service zone for zip=%s, using fallback multiplier", zip)
		uc.metrics.IncDegradedMode("calculate_price")
	} else if zone.IsActive {
		multiplier = zone.PriceMultiplier
	}

	// 3. Услуга
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CalculatePrice: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Допы. Любой неразрешившийся ID — NotFound:
	// молча пропускать позиции из чека нельзя.
	addOns, err := uc.catalogRepo.GetAddOnsByIDs(ctx, req.AddOnIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrAddOnNotFound) {
			uc.logger.Warn("CalculatePrice: some add-ons not found: %v", req.AddOnIDs)
			return nil, ErrAddOnNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get add-ons: %v", err)
		return nil, fmt.Errorf("%w: failed to get add-ons: %v", ErrInternal, err)
	}

	// 5. Расчёт
	breakdown := domain.CalculatePrice(service, addOns, multiplier)
	totalDuration := domain.TotalDuration(service, addOns)

	uc.logger.Info("CalculatePrice: service=%s, addons=%d, zip=%s, multiplier=%.2f, total=%.2f",
		service.ID, len(addOns), zip, multiplier, breakdown.Total)

	return &Response{
		Service: ServicePricing{
			ID:            service.ID,
			Name:          service.Name,
			BasePrice:     service.BasePrice,
			AdjustedPrice: breakdown.BasePrice,
		},
		AddOns: addOns,
		Zone: ZonePricing{
			ZipCode:    zip,
			Multiplier: multiplier,
		},
		Breakdown:     breakdown,
		TotalDuration: totalDuration,
	}, nil
}
