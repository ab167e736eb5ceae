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

	createCategoryHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/create_category"
	createCityHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/create_city"
	createPreReservationHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/create_prereservation"
	deletePreReservationHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/delete_prereservation"
	getAvailabilityHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/get_availability"
	getClientPreReservationsHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/get_client_prereservations"
	getClientReservationsHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/get_client_reservations"
	getClientReservationsCompleteHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/get_client_reservations_complete"
	getPreReservationDetailHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/get_prereservation_detail"
	listCategoriesHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/list_categories"
	listCitiesHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/list_cities"
	listRatesHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/list_rates"
	listScreensHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/list_screens"
	replaceItemsHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/replace_prereservation_items"
	sendConfirmationHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/send_prereservation_confirmation"
	updatePreReservationHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/update_prereservation"
	updateDatesHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/update_prereservation_dates"
	validateItemsHandler "github.com/Angelolozano-7/Prisma-Led/internal/api/handlers/validate_prereservation_items"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	"github.com/Angelolozano-7/Prisma-Led/internal/config"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/cache"
	catalogRepo "github.com/Angelolozano-7/Prisma-Led/internal/infra/storage/catalog"
	preReservationRepo "github.com/Angelolozano-7/Prisma-Led/internal/infra/storage/prereservation"
	reservationRepo "github.com/Angelolozano-7/Prisma-Led/internal/infra/storage/reservation"
	sheetsRepo "github.com/Angelolozano-7/Prisma-Led/internal/infra/storage/sheets"
	"github.com/Angelolozano-7/Prisma-Led/internal/integrations/googlesheets"
	"github.com/Angelolozano-7/Prisma-Led/internal/integrations/mailqueue"
	"github.com/Angelolozano-7/Prisma-Led/internal/integrations/smtpmailer"
	catalogService "github.com/Angelolozano-7/Prisma-Led/internal/service/catalog"
	preReservationsService "github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations"
	reservationsService "github.com/Angelolozano-7/Prisma-Led/internal/service/reservations"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/snapshot"
	createPreReservationUC "github.com/Angelolozano-7/Prisma-Led/internal/usecase/create_prereservation"
	getAvailabilityUC "github.com/Angelolozano-7/Prisma-Led/internal/usecase/get_availability"
	replaceItemsUC "github.com/Angelolozano-7/Prisma-Led/internal/usecase/replace_prereservation_items"
	sendConfirmationUC "github.com/Angelolozano-7/Prisma-Led/internal/usecase/send_prereservation_confirmation"
	updatePreReservationUC "github.com/Angelolozano-7/Prisma-Led/internal/usecase/update_prereservation"
	validateItemsUC "github.com/Angelolozano-7/Prisma-Led/internal/usecase/validate_prereservation_items"
	"github.com/Angelolozano-7/Prisma-Led/pkg/dbmetrics"
	"github.com/Angelolozano-7/Prisma-Led/pkg/ids"
	"github.com/Angelolozano-7/Prisma-Led/pkg/locker"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
	"github.com/Angelolozano-7/Prisma-Led/pkg/metrics"
	"github.com/Angelolozano-7/Prisma-Led/pkg/retry"
)

// reservationStore общий набор методов репозиториев резервов обоих драйверов
type reservationStore interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Reservation, error)
	ListItems(ctx context.Context) ([]domain.LineItem, error)
}

// preReservationStore общий набор методов репозиториев пре-резервов обоих драйверов
type preReservationStore interface {
	List(ctx context.Context) ([]domain.PreReservation, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.PreReservation, error)
	GetByID(ctx context.Context, id string) (*domain.PreReservation, error)
	ListItems(ctx context.Context) ([]domain.LineItem, error)
	ListItemsByPreReservation(ctx context.Context, id string) ([]domain.LineItem, error)
	Create(ctx context.Context, pre *domain.PreReservation, items []domain.LineItem) error
	Update(ctx context.Context, pre *domain.PreReservation) error
	ReplaceItems(ctx context.Context, id string, items []domain.LineItem) error
	Delete(ctx context.Context, id string) error
	MarkNotificationSent(ctx context.Context, id string) error
}

// notifier доставка писем-подтверждений
type notifier interface {
	Send(ctx context.Context, notice domain.ConfirmationNotice) error
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

	log.Info("Starting Prisma-Led...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены). nil-коллектор ничего не пишет.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	retryPolicy := retry.Policy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay(),
		MaxJitter:   cfg.Retry.MaxJitter(),
	}

	// Инициализируем хранилище записей
	var (
		catalogStore    cache.CatalogSource
		reservations    reservationStore
		preReservations preReservationStore
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var executor dbmetrics.DBExecutor = db
		if cfg.Metrics.Enabled {
			executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
		}

		catalogStore = catalogRepo.NewRepository(executor, retryPolicy)
		reservations = reservationRepo.NewRepository(executor, retryPolicy)
		preReservations = preReservationRepo.NewRepository(executor, retryPolicy)

	default:
		sheetsClient, err := googlesheets.NewClient(
			context.Background(),
			cfg.Sheets.CredentialsPath,
			cfg.Sheets.SpreadsheetID,
			time.Duration(cfg.Sheets.Timeout)*time.Second,
			retryPolicy,
			metricsCollector,
			log,
		)
		if err != nil {
			log.Fatal("Failed to create Google Sheets client: %v", err)
		}
		log.Info("Google Sheets client initialized (spreadsheet=%s, timeout=%ds)",
			cfg.Sheets.SpreadsheetID, cfg.Sheets.Timeout)

		catalogStore = sheetsRepo.NewCatalogRepository(sheetsClient)
		reservations = sheetsRepo.NewReservationRepository(sheetsClient)
		preReservations = sheetsRepo.NewPreReservationRepository(sheetsClient, log)
	}

	// Redis: кеш справочников и rate limit
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, continuing without it: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}
	}

	if cfg.Cache.Enabled {
		catalogStore = cache.NewCatalog(catalogStore, rdb, cfg.Cache.Prefix, cfg.Cache.TTL(), log)
		log.Info("Reference data cache enabled (prefix=%s, ttl=%s)", cfg.Cache.Prefix, cfg.Cache.TTL())
	}

	// Доставка писем: очередь, если включена, иначе SMTP напрямую
	var mailNotifier notifier
	if cfg.RabbitMQ.Enabled {
		publisher := mailqueue.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, metricsCollector, log)
		defer publisher.Close()
		mailNotifier = publisher
		log.Info("Confirmation mails are queued to %s", cfg.RabbitMQ.Queue)
	} else {
		mailNotifier = smtpmailer.New(smtpConfig(cfg), metricsCollector, log)
		log.Info("Confirmation mails are sent over SMTP (%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	}

	locks := locker.New()
	idGenerator := ids.ShortGenerator{}
	snapshotLoader := snapshot.NewLoader(catalogStore, reservations, preReservations)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogStore, locks, idGenerator, log)
	reservationsSvc := reservationsService.NewService(reservations, catalogStore, log)
	preReservationsSvc := preReservationsService.NewService(preReservations, catalogStore, snapshotLoader, locks, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(snapshotLoader, metricsCollector, log)
	validateItemsUseCase := validateItemsUC.NewUseCase(snapshotLoader, log)
	createPreReservationUseCase := createPreReservationUC.NewUseCase(preReservations, snapshotLoader, locks, idGenerator, log)
	updatePreReservationUseCase := updatePreReservationUC.NewUseCase(preReservations, snapshotLoader, locks, idGenerator, log)
	replaceItemsUseCase := replaceItemsUC.NewUseCase(preReservations, snapshotLoader, locks, idGenerator, log)
	sendConfirmationUseCase := sendConfirmationUC.NewUseCase(preReservations, mailNotifier, locks, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listScreens := listScreensHandler.NewHandler(catalogSvc, log)
	listRates := listRatesHandler.NewHandler(catalogSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc, log)
	createCategory := createCategoryHandler.NewHandler(catalogSvc, log)
	listCities := listCitiesHandler.NewHandler(catalogSvc, log)
	createCity := createCityHandler.NewHandler(catalogSvc, log)
	getClientReservations := getClientReservationsHandler.NewHandler(reservationsSvc, log)
	getClientReservationsComplete := getClientReservationsCompleteHandler.NewHandler(reservationsSvc, log)
	getClientPreReservations := getClientPreReservationsHandler.NewHandler(preReservationsSvc, log)
	getPreReservationDetail := getPreReservationDetailHandler.NewHandler(preReservationsSvc, log)
	createPreReservation := createPreReservationHandler.NewHandler(createPreReservationUseCase, log)
	updatePreReservation := updatePreReservationHandler.NewHandler(updatePreReservationUseCase, log)
	updateDates := updateDatesHandler.NewHandler(preReservationsSvc, log)
	replaceItems := replaceItemsHandler.NewHandler(replaceItemsUseCase, log)
	validateItems := validateItemsHandler.NewHandler(validateItemsUseCase, log)
	deletePreReservation := deletePreReservationHandler.NewHandler(preReservationsSvc, log)
	sendConfirmation := sendConfirmationHandler.NewHandler(sendConfirmationUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список городов нужен форме регистрации
	api.HandleFunc("/cities", listCities.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	if cfg.RateLimit.Enabled {
		protected.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Prefix:         cfg.RateLimit.Prefix,
			KeyStrategy:    cfg.RateLimit.KeyStrategy,
			Capacity:       cfg.RateLimit.Capacity,
			RefillTokens:   cfg.RateLimit.RefillTokens,
			RefillInterval: cfg.RateLimit.RefillInterval(),
			TTL:            cfg.RateLimit.TTL(),
		}, rdb, log))
		log.Info("Rate limit enabled (capacity=%d, strategy=%s)", cfg.RateLimit.Capacity, cfg.RateLimit.KeyStrategy)
	}

	// --- Доступность ---
	protected.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodPost)

	// --- Справочники ---
	protected.HandleFunc("/screens", listScreens.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rates", listRates.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/categories", listCategories.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/categories", createCategory.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cities", createCity.Handle).Methods(http.MethodPost)

	// --- Резервы клиента ---
	protected.HandleFunc("/reservations/client", getClientReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/client/complete", getClientReservationsComplete.Handle).Methods(http.MethodGet)

	// --- Пре-резервы ---
	protected.HandleFunc("/pre-reservations/client", getClientPreReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/pre-reservations", createPreReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/pre-reservations/{id}/detail", getPreReservationDetail.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/pre-reservations/{id}", updatePreReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/pre-reservations/{id}/dates", updateDates.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/pre-reservations/{id}/items", replaceItems.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/pre-reservations/{id}/items/validate", validateItems.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/pre-reservations/{id}", deletePreReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/pre-reservations/{id}/confirmation", sendConfirmation.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

func smtpConfig(cfg *config.Config) smtpmailer.Config {
	return smtpmailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}
}
