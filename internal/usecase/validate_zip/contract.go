package validate_zip

import (
	"context"
	"time"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetZoneByZip(ctx context.Context, zipCode string) (*domain.ServiceZone, error)
	GetPublishedServices(ctx context.Context) ([]domain.Service, error)
	GetPublishedAddOns(ctx context.Context) ([]domain.AddOn, error)
}

// MetricsReporter интерфейс для бизнес-метрик
type MetricsReporter interface {
	IncDegradedMode(operation string)
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
