package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calculatePriceHandler "github.com/rubenautodetail/autodetailapp/internal/api/handlers/calculate_price"
	geolocationHandler "github.com/rubenautodetail/autodetailapp/internal/api/handlers/geolocation"
	getAvailabilityHandler "github.com/rubenautodetail/autodetailapp/internal/api/handlers/get_availability"
	holdSlotHandler "github.com/rubenautodetail/autodetailapp/internal/api/handlers/hold_slot"
	validateZipHandler "github.com/rubenautodetail/autodetailapp/internal/api/handlers/validate_zip"
	"github.com/rubenautodetail/autodetailapp/internal/api/middleware"
	"github.com/rubenautodetail/autodetailapp/internal/config"
	availabilityRepo "github.com/rubenautodetail/autodetailapp/internal/infra/storage/availability"
	catalogRepo "github.com/rubenautodetail/autodetailapp/internal/infra/storage/catalog"
	calculatePriceUC "github.com/rubenautodetail/autodetailapp/internal/usecase/calculate_price"
	getAvailabilityUC "github.com/rubenautodetail/autodetailapp/internal/usecase/get_availability"
	holdSlotUC "github.com/rubenautodetail/autodetailapp/internal/usecase/hold_slot"
	validateZipUC "github.com/rubenautodetail/autodetailapp/internal/usecase/validate_zip"
	"github.com/rubenautodetail/autodetailapp/pkg/dbmetrics"
	"github.com/rubenautodetail/autodetailapp/pkg/logger"
	"github.com/rubenautodetail/autodetailapp/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting autodetailapp booking service...")
	log.Info("Configuration loaded from config.toml")
	if cfg.Booking.DegradedModeEnabled {
		log.Warn("Degraded mode enabled: synthetic zones and calendars will be served where real data is missing")
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Репортер бизнес-метрик для usecases: либо реальный коллектор, либо заглушка
	var bookingMetrics interface {
		IncDegradedMode(operation string)
		IncHoldCreated(mode string)
		IncHoldRaceLost()
	} = metrics.Nop{}
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		catalogRepository      *catalogRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
	} else {
		catalogRepository = catalogRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
	}

	// Фоновый reclaim просроченных hold'ов. Read path их и так игнорирует,
	// reclaim держит ledger чистым для операторских выборок.
	reclaimStop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				reclaimCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				released, err := availabilityRepository.ReleaseExpiredHolds(reclaimCtx, time.Now())
				cancel()
				if err != nil {
					log.Error("Expired holds reclaim failed: %v", err)
				} else if released > 0 {
					log.Info("Reclaimed %d expired holds", released)
				}
			case <-reclaimStop:
				return
			}
		}
	}()

	// Инициализируем use cases
	validateZipUseCase := validateZipUC.NewUseCase(
		catalogRepository,
		cfg.Booking.DegradedModeEnabled,
		bookingMetrics,
		log,
	)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		catalogRepository,
		bookingMetrics,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		catalogRepository,
		availabilityRepository,
		cfg.Booking.DegradedModeEnabled,
		bookingMetrics,
		log,
	)
	holdSlotUseCase := holdSlotUC.NewUseCase(
		catalogRepository,
		availabilityRepository,
		cfg.Booking.DegradedModeEnabled,
		bookingMetrics,
		log,
	)

	// Инициализируем handlers
	validateZip := validateZipHandler.NewHandler(validateZipUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	holdSlot := holdSlotHandler.NewHandler(holdSlotUseCase, log)
	geolocation := geolocationHandler.NewHandler(log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Публичный booking flow: все эндпоинты без аутентификации
	api := r.PathPrefix("/api/booking").Subrouter()

	// Шаг 1: проверка зоны обслуживания по ZIP
	api.HandleFunc("/validate-zip", validateZip.Handle).Methods(http.MethodPost)

	// Шаг 2: расчёт цены с учётом зоны
	api.HandleFunc("/calculate-price", calculatePrice.Handle).Methods(http.MethodPost)

	// Шаг 3: календарь доступности на месяц
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodPost)

	// Шаг 4: hold слота перед оплатой
	api.HandleFunc("/hold-slot", holdSlot.Handle).Methods(http.MethodPost)

	// Определение ZIP по координатам (пока заглушка)
	api.HandleFunc("/geolocation", geolocation.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(reclaimStop)

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
