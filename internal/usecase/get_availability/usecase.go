package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	catalogRepo "github.com/rubenautodetail/autodetailapp/internal/infra/storage/catalog"
)

// UseCase use case построения календаря доступности на месяц
type UseCase struct {
	catalogRepo  CatalogRepository
	availRepo    AvailabilityRepository
	degradedMode bool
	metrics      MetricsReporter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	availRepo AvailabilityRepository,
	degradedMode bool,
	metrics MetricsReporter,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		availRepo:    availRepo,
		degradedMode: degradedMode,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет построение календаря доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	zip, month, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Зона обслуживания. Отсутствие зоны не фейлит запрос —
	// переходим в degraded mode (если включён).
	zoneDegraded := false
	zone, err := uc.catalogRepo.GetZoneByZip(ctx, zip)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrZoneNotFound) {
			uc.logger.Error("GetAvailability: failed to get zone for zip=%s: %v", zip, err)
			return nil, fmt.Errorf("%w: failed to get zone: %v", ErrInternal, err)
		}
		uc.logger.Warn("GetAvailability: no service zone found for zip=%s, using fallback zone", zip)
		zone = domain.FallbackZone(zip)
		zoneDegraded = true
	}

	// Явно выключенная зона — календарь пустой, это не degraded mode
	if !zone.IsActive {
		uc.logger.Info("GetAvailability: zone for zip=%s is disabled", zip)
		return uc.emptyResponse(zip, req.Month, domain.DefaultServiceDurationMinutes), nil
	}

	// 3. Длительность услуги (неизвестный serviceId не фейлит запрос)
	serviceDuration := domain.DefaultServiceDurationMinutes
	if req.ServiceID != nil && *req.ServiceID != "" {
		service, err := uc.catalogRepo.GetServiceByID(ctx, *req.ServiceID)
		if err == nil {
			serviceDuration = service.DurationMinutes
		} else if !errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Error("GetAvailability: failed to get service id=%s: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	start, end := monthRange(month)
	activeContractors := zone.ActiveContractors()

	// 4. Нет активных контракторов — синтетический календарь
	if len(activeContractors) == 0 {
		if !uc.degradedMode {
			uc.logger.Info("GetAvailability: no active contractors for zip=%s, degraded mode disabled", zip)
			return uc.emptyResponse(zip, req.Month, serviceDuration), nil
		}

		uc.logger.Warn("GetAvailability: no active contractors for zip=%s, synthesizing calendar (degraded=%t)",
			zip, zoneDegraded)
		uc.metrics.IncDegradedMode("availability")

		dates := synthesizeCalendar(start, end, now)
		return &Response{
			Available:       len(dates) > 0,
			ZipCode:         zip,
			Month:           req.Month,
			ServiceDuration: serviceDuration,
			ContractorCount: 1, // синтетическая вместимость для UI
			AvailableDates:  dates,
			NextAvailable:   firstAvailable(dates),
			DegradedMode:    true,
		}, nil
	}

	// 5. Реальные записи ledger'а за месяц
	contractorIDs := make([]string, len(activeContractors))
	for i, c := range activeContractors {
		contractorIDs[i] = c.ID
	}

	records, err := uc.availRepo.GetByContractorsAndDateRange(ctx, contractorIDs, start, end)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get availability records: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability records: %v", ErrInternal, err)
	}

	// 6. Контракторы есть, но записей нет — тоже синтетический календарь
	if len(records) == 0 {
		if !uc.degradedMode {
			uc.logger.Info("GetAvailability: no availability records for zip=%s, degraded mode disabled", zip)
			return uc.emptyResponse(zip, req.Month, serviceDuration), nil
		}

		uc.logger.Warn("GetAvailability: contractors=%d but no availability records for zip=%s month=%s, synthesizing calendar",
			len(activeContractors), zip, req.Month)
		uc.metrics.IncDegradedMode("availability")

		dates := synthesizeCalendar(start, end, now)
		return &Response{
			Available:       len(dates) > 0,
			ZipCode:         zip,
			Month:           req.Month,
			ServiceDuration: serviceDuration,
			ContractorCount: len(activeContractors),
			AvailableDates:  dates,
			NextAvailable:   firstAvailable(dates),
			DegradedMode:    true,
		}, nil
	}

	// 7. Агрегация реальной доступности
	dates := aggregateCalendar(records, now)

	uc.logger.Info("GetAvailability: zip=%s month=%s contractors=%d records=%d dates=%d",
		zip, req.Month, len(activeContractors), len(records), len(dates))

	return &Response{
		Available:       len(dates) > 0,
		ZipCode:         zip,
		Month:           req.Month,
		ServiceDuration: serviceDuration,
		ContractorCount: len(activeContractors),
		AvailableDates:  dates,
		NextAvailable:   firstAvailable(dates),
	}, nil
}

func (uc *UseCase) emptyResponse(zip, month string, serviceDuration int) *Response {
	return &Response{
		Available:       false,
		ZipCode:         zip,
		Month:           month,
		ServiceDuration: serviceDuration,
		AvailableDates:  []DateSlots{},
	}
}
