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

	blockSlotHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/block_slot"
	bookSlotHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/book_slot"
	createSlotHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_slot"
	generateSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getOperatingHoursHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_operating_hours"
	getSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_slots"
	releaseSlotHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/release_slot"
	unblockSlotHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/unblock_slot"
	updateOperatingHoursHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_operating_hours"
	updateSlotHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_slot"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	operatingHoursRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/operatinghours"
	timeslotRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/timeslot"
	locationServiceClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
	scheduleService "github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	slotsService "github.com/m04kA/SMC-SchedulingService/internal/service/slots"
	createSlotUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_slot"
	generateSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/generate_slots"
	updateSlotUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_slot"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиент LocationService
	locationClient := locationServiceClient.NewClient(
		cfg.LocationService.URL,
		time.Duration(cfg.LocationService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (LocationService=%s timeout=%ds)",
		cfg.LocationService.URL, cfg.LocationService.Timeout)

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		slotRepository  *timeslotRepo.Repository
		hoursRepository *operatingHoursRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = timeslotRepo.NewRepository(wrappedDB)
		hoursRepository = operatingHoursRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = timeslotRepo.NewRepository(db)
		hoursRepository = operatingHoursRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotSvc := slotsService.NewService(
		slotRepository,
		locationClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		hoursRepository,
		locationClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		hoursRepository,
		locationClient,
		txMgr,
		log,
	)
	createSlotUseCase := createSlotUC.NewUseCase(
		slotRepository,
		locationClient,
		txMgr,
		log,
	)
	updateSlotUseCase := updateSlotUC.NewUseCase(
		slotRepository,
		locationClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	createSlot := createSlotHandler.NewHandler(createSlotUseCase, log)
	updateSlot := updateSlotHandler.NewHandler(updateSlotUseCase, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	blockSlot := blockSlotHandler.NewHandler(slotSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(slotSvc, log)
	bookSlot := bookSlotHandler.NewHandler(slotSvc, log)
	releaseSlot := releaseSlotHandler.NewHandler(slotSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotSvc, log)
	getSlots := getSlotsHandler.NewHandler(slotSvc, log)
	getOperatingHours := getOperatingHoursHandler.NewHandler(scheduleSvc, log)
	updateOperatingHours := updateOperatingHoursHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты локации на дату
	api.HandleFunc("/locations/{locationId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Режим работы локации
	api.HandleFunc("/locations/{locationId}/operating-hours",
		getOperatingHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// INTERNAL ROUTES (service-to-service, вызывает BookingService)
	// ============================================================

	internal := api.PathPrefix("/internal").Subrouter()

	// Бронирование слота
	internal.HandleFunc("/slots/{slotId}/book", bookSlot.Handle).Methods(http.MethodPatch)

	// Освобождение слота при отмене брони
	internal.HandleFunc("/slots/{slotId}/release", releaseSlot.Handle).Methods(http.MethodPatch)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Partner-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление расписанием локации ---
	// Массовая генерация слотов по режиму работы
	protected.HandleFunc("/locations/{locationId}/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// Ручное создание слота
	protected.HandleFunc("/locations/{locationId}/slots", createSlot.Handle).Methods(http.MethodPost)

	// Слоты локации за период
	protected.HandleFunc("/locations/{locationId}/slots", getSlots.Handle).Methods(http.MethodGet)

	// Замена недельного режима работы
	protected.HandleFunc("/locations/{locationId}/operating-hours", updateOperatingHours.Handle).Methods(http.MethodPut)

	// --- Управление отдельными слотами ---
	// Редактирование слота
	protected.HandleFunc("/slots/{slotId}", updateSlot.Handle).Methods(http.MethodPut)

	// Удаление слота
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// Блокировка и разблокировка слота
	protected.HandleFunc("/slots/{slotId}/block", blockSlot.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{slotId}/unblock", unblockSlot.Handle).Methods(http.MethodPatch)

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
