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

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/essenza-booking/internal/api"
	cancelBookingHandler "github.com/m04kA/essenza-booking/internal/api/handlers/cancel_booking"
	clearDayHandler "github.com/m04kA/essenza-booking/internal/api/handlers/clear_day"
	confirmBookingHandler "github.com/m04kA/essenza-booking/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/essenza-booking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/essenza-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/essenza-booking/internal/api/handlers/get_booking"
	getDayScheduleHandler "github.com/m04kA/essenza-booking/internal/api/handlers/get_day_schedule"
	getFreeCountsHandler "github.com/m04kA/essenza-booking/internal/api/handlers/get_free_counts"
	listBookingsHandler "github.com/m04kA/essenza-booking/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/m04kA/essenza-booking/internal/api/handlers/list_services"
	listSlotsHandler "github.com/m04kA/essenza-booking/internal/api/handlers/list_slots"
	setDayScheduleHandler "github.com/m04kA/essenza-booking/internal/api/handlers/set_day_schedule"
	"github.com/m04kA/essenza-booking/internal/config"
	bookingRepo "github.com/m04kA/essenza-booking/internal/infra/storage/booking"
	"github.com/m04kA/essenza-booking/internal/infra/storage/memory"
	scheduleRepo "github.com/m04kA/essenza-booking/internal/infra/storage/schedule"
	bookingsService "github.com/m04kA/essenza-booking/internal/service/bookings"
	scheduleService "github.com/m04kA/essenza-booking/internal/service/schedule"
	confirmBookingUC "github.com/m04kA/essenza-booking/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/essenza-booking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/essenza-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/essenza-booking/pkg/dbmetrics"
	"github.com/m04kA/essenza-booking/pkg/logger"
	"github.com/m04kA/essenza-booking/pkg/metrics"
	"github.com/m04kA/essenza-booking/pkg/txmanager"
)

// Хранилище бронирований, общее для всех сервисов и use cases
type bookingStore interface {
	createBookingUC.BookingRepository
	confirmBookingUC.BookingRepository
	bookingsService.BookingRepository
	scheduleService.BookingRepository
	getAvailableSlotsUC.BookingRepository
}

type scheduleStore interface {
	scheduleService.ScheduleRepository
	getAvailableSlotsUC.ScheduleRepository
}

type businessMetrics interface {
	IncBookingTransition(status string)
	IncSlotRejection(operation string)
}

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

	log.Info("Starting essenza-booking...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		recorder         businessMetrics = metrics.NopRecorder{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		bookingRepository  bookingStore
		scheduleRepository scheduleStore
		txMgr              bookingsService.TransactionManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		bookingRepository = memory.NewBookingRepository(store)
		scheduleRepository = memory.NewScheduleRepository(store)
		txMgr = memory.NewTxManager(store)
		log.Warn("In-memory storage: data is lost on restart")

	default:
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			// Репозитории с обёрткой метрик
			bookingRepository = bookingRepo.NewRepository(wrappedDB)
			scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			bookingRepository = bookingRepo.NewRepository(db)
			scheduleRepository = scheduleRepo.NewRepository(db)
			txMgr = txmanager.NewTransactionManager(db)
		}
	}

	catalog := cfg.Catalog()
	log.Info("Service catalog loaded: %d services", len(catalog.List()))

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		recorder,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalog,
		txMgr,
		recorder,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		recorder,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	h := &api.Handlers{
		ListSlots:      listSlotsHandler.NewHandler(scheduleSvc, log),
		GetDaySchedule: getDayScheduleHandler.NewHandler(scheduleSvc, log),
		FreeTimes:      getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		FreeCounts:     getFreeCountsHandler.NewHandler(getAvailableSlotsUseCase, log),
		ListServices:   listServicesHandler.NewHandler(catalog, log),
		CreateBooking:  createBookingHandler.NewHandler(createBookingUseCase, log, false),

		SetDaySchedule: setDayScheduleHandler.NewHandler(scheduleSvc, log),
		ClearDay:       clearDayHandler.NewHandler(scheduleSvc, log),
		ListBookings:   listBookingsHandler.NewHandler(bookingSvc, log),
		GetBooking:     getBookingHandler.NewHandler(bookingSvc, log),
		ManualBooking:  createBookingHandler.NewHandler(createBookingUseCase, log, true),
		ConfirmBooking: confirmBookingHandler.NewHandler(confirmBookingUseCase, log),
		CancelBooking:  cancelBookingHandler.NewHandler(bookingSvc, log),
	}

	opts := api.Options{
		BookingRateLimit:  cfg.Server.BookingRateLimit,
		AdminPasswordHash: cfg.Admin.PasswordHash,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		Logger:            log,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	if cfg.Admin.PasswordHash == "" {
		log.Warn("Admin password hash is empty: admin routes are not protected (memory storage only)")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(h, opts),
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
