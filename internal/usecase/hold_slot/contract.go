package hold_slot

import (
	"context"
	"time"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetZoneByZip(ctx context.Context, zipCode string) (*domain.ServiceZone, error)
}

// AvailabilityRepository интерфейс репозитория availability ledger
type AvailabilityRepository interface {
	GetByContractorsAndDate(ctx context.Context, contractorIDs []string, date time.Time) ([]*domain.AvailabilityRecord, error)
	// HoldWindow условная запись hold'а (compare-and-swap);
	// ErrHoldRaceLost — окно успели занять после чтения
	HoldWindow(ctx context.Context, recordID int64, window domain.TimeWindow, token string, expiresAt, now time.Time) error
}

// MetricsReporter интерфейс для бизнес-метрик
type MetricsReporter interface {
	IncDegradedMode(operation string)
	IncHoldCreated(mode string)
	IncHoldRaceLost()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
