package hold_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	availRepo "github.com/rubenautodetail/autodetailapp/internal/infra/storage/availability"
	catalogRepo "github.com/rubenautodetail/autodetailapp/internal/infra/storage/catalog"
)

const msgSlotGone = "This time slot is no longer available. Please select another."

// UseCase use case hold'а слота: подбирает контрактора first-fit
// и ставит hold условной записью (compare-and-swap)
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

// Execute выполняет hold слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	zip, date, window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("HoldSlot: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultServiceDurationMinutes
	}

	// 2. Перепроверяем покрытие по ZIP — контрактора клиент не выбирает,
	// зона и кандидаты всегда выводятся сервером заново
	zone, err := uc.catalogRepo.GetZoneByZip(ctx, zip)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrZoneNotFound) {
			uc.logger.Error("HoldSlot: failed to get zone for zip=%s: %v", zip, err)
			return nil, fmt.Errorf("%w: failed to get zone: %v", ErrInternal, err)
		}

		if !uc.degradedMode {
			uc.logger.Info("HoldSlot: no zone for zip=%s, degraded mode disabled", zip)
			return &Response{Success: false, Message: msgSlotGone}, nil
		}

		uc.logger.Warn("HoldSlot: no service zone found for zip=%s, using fallback zone", zip)
		zone = domain.FallbackZone(zip)
	}

	if !zone.IsActive {
		uc.logger.Info("HoldSlot: zone for zip=%s is disabled", zip)
		return &Response{Success: false, Message: msgSlotGone}, nil
	}

	activeContractors := zone.ActiveContractors()

	// 3. Зона без контракторов — синтетический hold, чтобы booking funnel
	// оставался проходимым до онбординга реального supply
	if len(activeContractors) == 0 {
		if !uc.degradedMode {
			uc.logger.Info("HoldSlot: no active contractors for zip=%s, degraded mode disabled", zip)
			return &Response{Success: false, Message: msgSlotGone}, nil
		}
		return uc.syntheticHold(zip, date, window, duration, now), nil
	}

	// 4. Читаем записи ledger'а на дату
	contractorIDs := make([]string, len(activeContractors))
	names := make(map[string]string, len(activeContractors))
	for i, c := range activeContractors {
		contractorIDs[i] = c.ID
		names[c.ID] = c.Name
	}

	records, err := uc.availRepo.GetByContractorsAndDate(ctx, contractorIDs, date)
	if err != nil {
		uc.logger.Error("HoldSlot: failed to get availability records: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability records: %v", ErrInternal, err)
	}

	// 5. First-fit по порядку выборки: каждый кандидат — условная запись.
	// Проигранная гонка не ошибка, пробуем следующего.
	expiresAt := now.Add(domain.HoldTTL)

	for _, rec := range records {
		state := rec.Windows.Window(window)
		if state == nil || !state.IsBookable(now) {
			continue
		}

		token := newHoldToken(now)
		err := uc.availRepo.HoldWindow(ctx, rec.ID, window, token, expiresAt, now)
		if err != nil {
			if errors.Is(err, availRepo.ErrHoldRaceLost) {
				uc.logger.Warn("HoldSlot: lost hold race for contractor=%s date=%s window=%s, trying next candidate",
					rec.ContractorID, req.Date, window)
				uc.metrics.IncHoldRaceLost()
				continue
			}
			uc.logger.Error("HoldSlot: failed to hold window: %v", err)
			return nil, fmt.Errorf("%w: failed to hold window: %v", ErrInternal, err)
		}

		uc.logger.Info("HoldSlot: held contractor=%s date=%s window=%s token=%s expires=%s",
			rec.ContractorID, req.Date, window, token, expiresAt.Format(time.RFC3339))
		uc.metrics.IncHoldCreated("real")

		return &Response{
			Success: true,
			Hold: &domain.Hold{
				Token:           token,
				ContractorID:    rec.ContractorID,
				ContractorName:  names[rec.ContractorID],
				Date:            date,
				TimeWindow:      window,
				DurationMinutes: duration,
				ExpiresAt:       expiresAt,
			},
		}, nil
	}

	// 6. Кандидатов не осталось — слот занят, клиент перезапрашивает календарь
	uc.logger.Info("HoldSlot: no bookable window for zip=%s date=%s window=%s (contractors=%d, records=%d)",
		zip, req.Date, window, len(activeContractors), len(records))

	return &Response{Success: false, Message: msgSlotGone}, nil
}

// syntheticHold собирает фиктивный hold для degraded mode
func (uc *UseCase) syntheticHold(zip string, date time.Time, window domain.TimeWindow, duration int, now time.Time) *Response {
	uc.logger.Warn("HoldSlot: no contractors for zip=%s, issuing synthetic hold", zip)
	uc.metrics.IncDegradedMode("hold_slot")
	uc.metrics.IncHoldCreated("synthetic")

	return &Response{
		Success: true,
		Hold: &domain.Hold{
			Token:           newMockHoldToken(now),
			ContractorID:    domain.MockContractorID,
			ContractorName:  domain.MockContractorName,
			Date:            date,
			TimeWindow:      window,
			DurationMinutes: duration,
			ExpiresAt:       now.Add(domain.HoldTTL),
			Synthetic:       true,
		},
	}
}
