package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBOpenConns     prometheus.Gauge
	DBIdleConns     prometheus.Gauge

	// Бизнес-метрики
	// DegradedModeTotal считает срабатывания degraded mode по операциям,
	// чтобы операторы видели, как часто отдаются синтетические данные
	DegradedModeTotal *prometheus.CounterVec
	HoldsCreatedTotal *prometheus.CounterVec
	HoldRaceLostTotal prometheus.Counter
}

// New регистрирует и возвращает коллекторы для сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		DBOpenConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}),

		DBIdleConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),

		DegradedModeTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_degraded_mode_total",
			Help:        "Number of requests served with synthetic (degraded mode) data",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		HoldsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_holds_created_total",
			Help:        "Number of slot holds created",
			ConstLabels: constLabels,
		}, []string{"mode"}),

		HoldRaceLostTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_hold_race_lost_total",
			Help:        "Number of conditional hold updates that lost the race",
			ConstLabels: constLabels,
		}),
	}
}
