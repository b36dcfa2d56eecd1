package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "usage-analytics/internal/http"
	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/configs"
	"usage-analytics/internal/shared/filestorages"
	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/redisclients"
	"usage-analytics/internal/stores"
	"usage-analytics/internal/streams"
	"usage-analytics/internal/summaries"
	"usage-analytics/internal/trackers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	requestEventConsumer streams.RequestEventConsumer
	backgroundCtx        context.Context
	backgroundCancel     context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "usage-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize the configured counter backend
	counterStore, err := newCounterStore(config, fileStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize counter backend: %w", err)
	}

	// Initialize the dimension registry and provision all summary tables
	registry, svcErr := summaries.NewDimensionRegistry(config.Tracking.Dimensions)
	if svcErr != nil {
		return nil, fmt.Errorf("failed to initialize dimension registry: %w", svcErr)
	}
	if err := provisionTables(registry, counterStore); err != nil {
		return nil, fmt.Errorf("failed to provision summary tables: %w", err)
	}

	// Initialize the summarization pipeline
	requestEventQueue := streams.NewPartitionedQueue[models.RequestEvent]()
	dispatcher := summaries.NewSummaryDispatcher(registry, counterStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	requestEventConsumer := streams.NewRequestEventConsumer(requestEventQueue, dispatcher, consumerLogger)

	// Initialize trackingService
	eventStore := stores.NewRequestEventStore(fileStorage)
	requestEventProducer := streams.NewRequestEventProducer(requestEventQueue)
	trackingService := trackers.NewTrackingService(eventStore, requestEventProducer, config.Tracking.ServerName)

	// Initialize queryService
	queryService := summaries.NewSummaryQueryService(registry, counterStore)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(trackingService, queryService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:               config,
		appLogger:            appLogger,
		server:               server,
		requestEventConsumer: requestEventConsumer,
	}, nil
}

// newCounterStore builds the counter backend named by tracking.backend.
func newCounterStore(config *configs.Config, fileStorage filestorages.FileStorage) (stores.CounterStore, error) {
	switch config.Tracking.Backend {
	case "redis":
		client, err := redisclients.New(config.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return stores.NewRedisCounterStore(context.Background(), client, config.Tracking.TablePrefix)
	case "file":
		return stores.NewFileCounterStore(context.Background(), fileStorage, config.Tracking.TablePrefix)
	default:
		return nil, fmt.Errorf("unknown tracking backend: %q", config.Tracking.Backend)
	}
}

// provisionTables creates or reflects every (dimension, period) table at
// startup, so the request path never has to.
func provisionTables(registry *summaries.DimensionRegistry, counterStore stores.CounterStore) error {
	ctx := context.Background()
	for _, dimension := range registry.Enabled() {
		for _, period := range models.AllPeriods() {
			if err := counterStore.Provision(ctx, dimension, period); err != nil {
				return fmt.Errorf("dimension %s period %s: %w", dimension, period, err)
			}
		}
	}
	return nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting usage-analytics service on port %d (log_level=%s, backend=%s, dimensions=%v)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Tracking.Backend,
			app.config.Tracking.Dimensions)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.requestEventConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.requestEventConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
