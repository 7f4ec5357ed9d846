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

	cancelBookingHandler "github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers/get_booking"
	getEquipmentHandler "github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers/get_equipment"
	listBookingsHandler "github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers/list_bookings"
	listEquipmentHandler "github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers/list_equipment"
	updateBookingHandler "github.com/m04kA/SMC-EquipmentBooking/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-EquipmentBooking/internal/api/middleware"
	"github.com/m04kA/SMC-EquipmentBooking/internal/config"
	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/booking"
	equipmentRepo "github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/equipment"
	"github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/memstore"
	bookingsService "github.com/m04kA/SMC-EquipmentBooking/internal/service/bookings"
	equipmentService "github.com/m04kA/SMC-EquipmentBooking/internal/service/equipment"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/ledger"
	createBookingUC "github.com/m04kA/SMC-EquipmentBooking/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-EquipmentBooking/internal/usecase/get_availability"
	updateBookingUC "github.com/m04kA/SMC-EquipmentBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-EquipmentBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-EquipmentBooking/pkg/logger"
	"github.com/m04kA/SMC-EquipmentBooking/pkg/metrics"
	"github.com/m04kA/SMC-EquipmentBooking/pkg/txmanager"
)

// Хранилище, общее для postgres и memory драйверов
type equipmentStorage interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Equipment, error)
}

type bookingStorage interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	SumActiveQuantity(ctx context.Context, equipmentID int64, interval domain.Interval, excludeID *int64) (int, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type storage struct {
	equipment equipmentStorage
	bookings  bookingStorage
	tx        txManager
	close     func()
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

	log.Info("Starting SMC-EquipmentBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// Интерфейсные переменные остаются nil без метрик, а не typed nil
	var (
		metricsCollector   *metrics.Metrics
		admissionsRecorder createBookingUC.MetricsRecorder
		dbRecorder         dbmetrics.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		admissionsRecorder = metricsCollector
		dbRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var store *storage
	switch cfg.Database.Driver {
	case config.DriverMemory:
		store, err = newMemoryStorage(cfg.Memory, log)
	default:
		store, err = newPostgresStorage(cfg, dbRecorder, metricsCollector, stopMetricsCh, log)
	}
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer store.close()

	// Инициализируем сервисы
	capacityLedger := ledger.New(store.equipment, store.bookings)
	bookingSvc := bookingsService.NewService(store.bookings, store.tx, log)
	equipmentSvc := equipmentService.NewService(store.equipment, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store.bookings,
		capacityLedger,
		store.tx,
		admissionsRecorder,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		store.bookings,
		capacityLedger,
		store.tx,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(store.equipment, capacityLedger, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listEquipment := listEquipmentHandler.NewHandler(equipmentSvc, log)
	getEquipment := getEquipmentHandler.NewHandler(equipmentSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log), middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные единицы оборудования за период
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Каталог оборудования ---
	protected.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/equipment/{equipmentId}", getEquipment.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Отмена бронирования (освобождает единицы оборудования)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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

// newPostgresStorage подключается к PostgreSQL и собирает репозитории поверх dbmetrics обёртки
// recorder и collector могут быть nil, если метрики выключены
func newPostgresStorage(
	cfg *config.Config,
	recorder dbmetrics.Recorder,
	collector *metrics.Metrics,
	stopCh <-chan struct{},
	log *logger.Logger,
) (*storage, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, recorder, stopCh)

	opts := []txmanager.Option{
		txmanager.WithMaxRetries(cfg.Transactions.MaxRetries),
		txmanager.WithBackoff(time.Duration(cfg.Transactions.RetryBackoffMs) * time.Millisecond),
	}
	if collector != nil {
		opts = append(opts, txmanager.WithRetryRecorder(collector))
		log.Info("Database metrics collection started")
	}

	return &storage{
		equipment: equipmentRepo.NewRepository(wrappedDB),
		bookings:  bookingRepo.NewRepository(wrappedDB),
		tx:        txmanager.NewTransactionManager(wrappedDB, opts...),
		close: func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close database: %v", err)
			}
		},
	}, nil
}

// newMemoryStorage создает in-memory хранилище с каталогом из конфигурации
func newMemoryStorage(cfg config.MemoryConfig, log *logger.Logger) (*storage, error) {
	store := memstore.New()
	ctx := context.Background()

	for _, seed := range cfg.Equipment {
		eq := domain.Equipment{
			Name:          seed.Name,
			Type:          seed.Type,
			TotalQuantity: seed.TotalQuantity,
			IsAvailable:   seed.Available(),
		}
		if seed.Location != "" {
			location := seed.Location
			eq.Location = &location
		}
		if _, err := store.Equipment().Add(ctx, eq); err != nil {
			return nil, fmt.Errorf("seed equipment %q: %w", seed.Name, err)
		}
	}
	log.Warn("Using in-memory storage, data is lost on restart (equipment seeded: %d)", len(cfg.Equipment))

	return &storage{
		equipment: store.Equipment(),
		bookings:  store.Bookings(),
		tx:        store,
		close:     func() {},
	}, nil
}
