package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	ordersserver "github.com/heromeals/orders-api/go"

	catalogmemory "github.com/heromeals/orders-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/heromeals/orders-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/heromeals/orders-api/internal/domains/catalog/application"
	catalogports "github.com/heromeals/orders-api/internal/domains/catalog/ports"
	ordersmemory "github.com/heromeals/orders-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/heromeals/orders-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/heromeals/orders-api/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/heromeals/orders-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/heromeals/orders-api/internal/domains/orders/application"
	ordersports "github.com/heromeals/orders-api/internal/domains/orders/ports"
	"github.com/heromeals/orders-api/internal/platform/migrations"
	platformobservability "github.com/heromeals/orders-api/internal/platform/observability"
	platformpostgres "github.com/heromeals/orders-api/internal/platform/postgres"
)

// Run boots the orders HTTP API with observability, repositories, and the
// fulfillment hand-off wired.
func Run(ctx context.Context) error {
	const serviceName = "orders-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.Dial(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	catalogService := buildCatalogService(db)
	if cfg.SeedCatalog {
		if err := catalogService.Seed(ctx); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	orderRepo := buildOrderRepository(db, logger)

	var dispatcher ordersports.Dispatcher = ordersworkflows.NewLoggingDispatcher(logger)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal unavailable, order hand-off will only be logged", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		dispatcher = ordersworkflows.NewTemporalDispatcher(temporalClient)
		logger.Info("Temporal order hand-off enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	coreService := ordersapp.NewService(
		orderRepo,
		catalogService,
		ordersapp.WithDispatcher(dispatcher),
		ordersapp.WithLogger(logger),
	)
	orderService := ordersobs.New(
		coreService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	handlers := ordersserver.ApiHandleFunctions{
		OrdersAPI: ordersserver.NewOrdersAPI(orderService),
	}

	router := ordersserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("orders API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("orders API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildCatalogService(db *gorm.DB) *catalogapp.Service {
	var heroes catalogports.HeroRepository
	var meals catalogports.MealRepository
	if db != nil {
		heroes = catalogpostgres.NewHeroRepository(db)
		meals = catalogpostgres.NewMealRepository(db)
	} else {
		heroes = catalogmemory.NewHeroRepository()
		meals = catalogmemory.NewMealRepository()
	}
	return catalogapp.NewService(heroes, meals)
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) ordersports.Repository {
	if db == nil {
		logger.Warn("order repository running in-memory, data will not survive restarts")
		return ordersmemory.NewRepository()
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.Default()
}
