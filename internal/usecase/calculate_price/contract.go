package calculate_price

import (
	"context"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetZoneByZip(ctx context.Context, zipCode string) (*domain.ServiceZone, error)
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
	GetAddOnsByIDs(ctx context.Context, ids []string) ([]domain.AddOn, error)
}

// MetricsReporter интерфейс для бизнес-метрик
type MetricsReporter interface {
	IncDegradedMode(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
