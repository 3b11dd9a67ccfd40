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
	"github.com/redis/go-redis/v9"

	adminCreateBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/admin_create_booking"
	adminListBookingsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/admin_list_bookings"
	adminUpdateStatusHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/admin_update_status"
	confirmBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/confirm_booking"
	createHoldHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_hold"
	listSlotsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/list_slots"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/config"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/client"
	historyRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/history"
	holdRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/hold"
	"github.com/m04kA/Salon-BookingService/internal/integrations/reminders"
	adminCreateBookingUC "github.com/m04kA/Salon-BookingService/internal/usecase/admin_create_booking"
	adminListBookingsUC "github.com/m04kA/Salon-BookingService/internal/usecase/admin_list_bookings"
	adminUpdateStatusUC "github.com/m04kA/Salon-BookingService/internal/usecase/admin_update_status"
	confirmBookingUC "github.com/m04kA/Salon-BookingService/internal/usecase/confirm_booking"
	createHoldUC "github.com/m04kA/Salon-BookingService/internal/usecase/create_hold"
	listSlotsUC "github.com/m04kA/Salon-BookingService/internal/usecase/list_slots"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/logger"
	"github.com/m04kA/Salon-BookingService/pkg/metrics"
	"github.com/m04kA/Salon-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Salon-BookingService/pkg/txmanager"
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

	log.Info("Starting Salon-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
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

	// Подключаемся к Redis (очередь напоминаний)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	reminderScheduler := reminders.NewScheduler(rdb, log)

	// Инициализируем репозитории (с метриками или без)
	var (
		catalogRepository *catalogRepo.Repository
		bookingRepository *bookingRepo.Repository
		holdRepository    *holdRepo.Repository
		clientRepository  *clientRepo.Repository
		historyRepository *historyRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		holdRepository = holdRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		historyRepository = historyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		catalogRepository = catalogRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		holdRepository = holdRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		historyRepository = historyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем use cases
	listSlotsUseCase := listSlotsUC.NewUseCase(
		catalogRepository,
		bookingRepository,
		holdRepository,
		cfg.Booking.SlotStepMinutes,
		log,
	)

	createHoldUseCase := createHoldUC.NewUseCase(
		listSlotsUseCase,
		catalogRepository,
		holdRepository,
		time.Duration(cfg.Booking.HoldTTLSeconds)*time.Second,
		log,
	)

	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		holdRepository,
		bookingRepository,
		clientRepository,
		catalogRepository,
		historyRepository,
		reminderScheduler,
		txMgr,
		log,
	)

	adminCreateBookingUseCase := adminCreateBookingUC.NewUseCase(
		bookingRepository,
		holdRepository,
		clientRepository,
		catalogRepository,
		historyRepository,
		reminderScheduler,
		txMgr,
		log,
	)

	adminUpdateStatusUseCase := adminUpdateStatusUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		historyRepository,
		txMgr,
		log,
	)

	adminListBookingsUseCase := adminListBookingsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		log,
	)

	// Инициализируем handlers
	listSlots := listSlotsHandler.NewHandler(listSlotsUseCase, log)
	createHold := createHoldHandler.NewHandler(createHoldUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	adminCreateBooking := adminCreateBookingHandler.NewHandler(adminCreateBookingUseCase, log)
	adminUpdateStatus := adminUpdateStatusHandler.NewHandler(adminUpdateStatusUseCase, log)
	adminListBookings := adminListBookingsHandler.NewHandler(adminListBookingsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (онлайн-запись, без аутентификации)
	// ============================================================

	public := api.PathPrefix("/public/{tenantSlug}").Subrouter()
	public.Use(middleware.ResolveTenant(catalogRepository, log))

	// Доступные слоты на день
	public.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Удержание слота
	public.HandleFunc("/holds", createHold.Handle).Methods(http.MethodPost)

	// Подтверждение записи по hold
	public.HandleFunc("/bookings", confirmBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID и X-User-Role)
	// ============================================================

	admin := api.PathPrefix("/admin/{tenantSlug}").Subrouter()
	admin.Use(middleware.ResolveTenant(catalogRepository, log))
	admin.Use(middleware.Auth)

	// Календарь записей за период
	admin.HandleFunc("/bookings", adminListBookings.Handle).Methods(http.MethodGet)

	// Создание записи из админки
	admin.HandleFunc("/bookings", adminCreateBooking.Handle).Methods(http.MethodPost)

	// Смена статуса записи
	admin.HandleFunc("/bookings/{bookingId}/status", adminUpdateStatus.Handle).Methods(http.MethodPatch)

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
