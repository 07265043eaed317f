package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	catalogmemory "github.com/heromeals/orders-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/heromeals/orders-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/heromeals/orders-api/internal/domains/catalog/application"
	ordersmemory "github.com/heromeals/orders-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/heromeals/orders-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/heromeals/orders-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/heromeals/orders-api/internal/domains/orders/application"
	ordersports "github.com/heromeals/orders-api/internal/domains/orders/ports"
	"github.com/heromeals/orders-api/internal/platform/migrations"
	platformobservability "github.com/heromeals/orders-api/internal/platform/observability"
	platformpostgres "github.com/heromeals/orders-api/internal/platform/postgres"
	orderactivities "github.com/heromeals/orders-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/heromeals/orders-api/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "orders-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	orderService, cleanupRepo := buildOrderService(ctx, instruments)
	defer cleanupRepo()
	activities := orderactivities.NewActivities(orderService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderProcessingTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderProcessingWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderProcessingWorkflowName})
	w.RegisterActivityWithOptions(activities.StartFulfillment, activity.RegisterOptions{Name: orderactivities.StartFulfillmentActivityName})
	w.RegisterActivityWithOptions(activities.CompleteFulfillment, activity.RegisterOptions{Name: orderactivities.CompleteFulfillmentActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderProcessingTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

// buildOrderService constructs the orders service without a dispatcher so
// fulfillment activities never start new workflows.
func buildOrderService(ctx context.Context, instruments *platformobservability.Instruments) (ordersports.Service, func()) {
	logger := instruments.Logger
	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	db, cleanup := platformpostgres.Dial(ctx, dsn, logger)
	if db != nil {
		if err := migrations.Run(db); err != nil {
			logger.Error("failed to run migrations", slog.String("error", err.Error()))
			cleanup()
			os.Exit(1)
		}
	}

	var repo ordersports.Repository
	var catalogService *catalogapp.Service
	if db != nil {
		repo = orderspostgres.NewRepository(db)
		catalogService = catalogapp.NewService(catalogpostgres.NewHeroRepository(db), catalogpostgres.NewMealRepository(db))
		logger.Info("worker order repository configured with postgres")
	} else {
		repo = ordersmemory.NewRepository()
		catalogService = catalogapp.NewService(catalogmemory.NewHeroRepository(), catalogmemory.NewMealRepository())
		logger.Warn("worker order repository running in-memory")
	}

	core := ordersapp.NewService(repo, catalogService, ordersapp.WithLogger(logger))
	service := ordersobs.New(
		core,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	return service, cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
