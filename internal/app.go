package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "catalog-service/internal/adapters/logger"
	postgres_adapter "catalog-service/internal/adapters/postgres"
	rabbitmq_adapter "catalog-service/internal/adapters/rabbitmq"
	"catalog-service/internal/adapters/rest"
	"catalog-service/internal/adapters/uploads"
	"catalog-service/internal/configs"
	"catalog-service/internal/constants"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/usecase"
	"catalog-service/pkg/fluentlogger"
	"catalog-service/pkg/postgres"
	pkg_rabbitmq "catalog-service/pkg/rabbitmq"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	eventProducer *pkg_rabbitmq.Publisher
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	if err := postgres_adapter.EnsureSchema(context.Background(), dbPool); err != nil {
		appLogger.Error("Failed to ensure database schema", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}
	if err := postgres_adapter.SeedDemoListings(context.Background(), dbPool, appLogger); err != nil {
		appLogger.Error("Failed to seed demo listings", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to seed demo listings: %w", err)
	}

	listingRepository, err := postgres_adapter.NewListingRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create listing repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create listing repository: %w", err)
	}
	appLogger.Info("Postgres storage adapters initialized.", nil)

	photoStorage, err := uploads.NewLocalPhotoStorage(appConfig.Uploads.Dir)
	if err != nil {
		appLogger.Error("Failed to create photo storage", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create photo storage: %w", err)
	}

	// --- 4. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	// Публикация событий опциональна: без RABBITMQ_URL сервис работает сам по себе
	var eventProducer *pkg_rabbitmq.Publisher
	var listingEvents port.ListingEventsPort
	if appConfig.RabbitMQ.URL != "" {
		producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
		producerCfg := pkg_rabbitmq.PublisherConfig{
			URL:                      appConfig.RabbitMQ.URL,
			ExchangeName:             constants.CatalogExchange,
			ExchangeType:             constants.CatalogExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,

			Logger: rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
		}
		eventProducer, err = pkg_rabbitmq.NewPublisher(producerCfg)
		if err != nil {
			appLogger.Error("Failed to create event producer", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create event producer: %w", err)
		}

		listingEvents, err = rabbitmq_adapter.NewListingEventsAdapter(eventProducer,
			constants.RoutingKeyListingCreated, constants.RoutingKeyListingDeleted)
		if err != nil {
			appLogger.Error("Failed to create listing events adapter", err, nil)
			eventProducer.Close()
			dbPool.Close()
			return nil, fmt.Errorf("failed to create listing events adapter: %w", err)
		}
		appLogger.Info("RabbitMQ Event Producer initialized.", nil)
	} else {
		appLogger.Info("RabbitMQ URL is empty, event publishing disabled.", nil)
	}

	// --- 5. USE CASES (ядро бизнес-логики) ---
	searchListingsUseCase := usecase.NewSearchListingsUseCase(listingRepository)
	getListingUseCase := usecase.NewGetListingUseCase(listingRepository)
	createListingUseCase := usecase.NewCreateListingUseCase(listingRepository, listingEvents, appConfig.Currency.USDRate)
	updateListingUseCase := usecase.NewUpdateListingUseCase(listingRepository, appConfig.Currency.USDRate)
	deleteListingUseCase := usecase.NewDeleteListingUseCase(listingRepository, listingEvents)
	myListingsUseCase := usecase.NewMyListingsUseCase(listingRepository)
	uploadPhotoUseCase := usecase.NewUploadPhotoUseCase(photoStorage, appConfig.Uploads.PublicPath)

	appLogger.Info("All use cases initialized.", nil)

	// --- 6. REST API Server ---
	handlers := rest.Handlers{
		Catalog: rest.NewCatalogHandler(searchListingsUseCase, getListingUseCase),
		Admin:   rest.NewAdminHandler(createListingUseCase, updateListingUseCase, deleteListingUseCase, myListingsUseCase),
		Upload:  rest.NewUploadHandler(uploadPhotoUseCase),
	}
	authMiddleware := rest.NewAuthMiddleware(appConfig.Admin.Tokens)

	apiServer := rest.NewServer(appConfig.Rest.PORT, handlers, authMiddleware,
		appConfig.Uploads.Dir, appConfig.Uploads.PublicPath, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:        appConfig,
		dbPool:        dbPool,
		apiServer:     apiServer,
		eventProducer: eventProducer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventProducer != nil {
			if err := a.eventProducer.Close(); err != nil {
				a.logger.Error("Error closing event producer", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
