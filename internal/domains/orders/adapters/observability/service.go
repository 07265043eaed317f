package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderstypes "github.com/heromeals/orders-api/internal/domains/orders/application/types"
	"github.com/heromeals/orders-api/internal/domains/orders/domain"
	"github.com/heromeals/orders-api/internal/domains/orders/ports"
)

const tracerName = "github.com/heromeals/orders-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Create places a new order with instrumentation.
func (s *Service) Create(ctx context.Context, input orderstypes.CreateOrderInput) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.Create",
		attribute.Int64("order.hero_id", input.HeroID),
		attribute.Int64("order.meal_id", input.MealID),
	)
	defer span.End()

	s.logInfo(ctx, "creating order", slog.Int64("order.hero_id", input.HeroID), slog.Int64("order.meal_id", input.MealID))
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order", slog.Int64("order.hero_id", input.HeroID))
	}
	if result != nil {
		span.SetAttributes(attribute.Int64("order.id", result.ID))
		s.metrics.recordCreated(ctx, result.Status)
		s.logInfo(ctx, "order created", slog.Int64("order.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

// Update replaces an existing order.
func (s *Service) Update(ctx context.Context, input orderstypes.UpdateOrderInput) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.Update", attribute.Int64("order.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.Int64("order.id", input.ID))
	result, err := s.inner.Update(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.Int64("order.id", input.ID))
	}
	if result != nil {
		s.metrics.recordUpdated(ctx, result.Status)
		s.logInfo(ctx, "order updated", slog.Int64("order.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

// PartialUpdate patches status and message of an existing order.
func (s *Service) PartialUpdate(ctx context.Context, input orderstypes.PartialUpdateOrderInput) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.PartialUpdate", attribute.Int64("order.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "patching order", slog.Int64("order.id", input.ID))
	result, err := s.inner.PartialUpdate(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to patch order", slog.Int64("order.id", input.ID))
	}
	if result != nil {
		s.metrics.recordUpdated(ctx, result.Status)
		s.logInfo(ctx, "order patched", slog.Int64("order.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

// GetByID loads a single order.
func (s *Service) GetByID(ctx context.Context, input orderstypes.OrderIdentifier) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.Int64("order.id", input.ID))
	defer span.End()

	result, err := s.inner.GetByID(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", input.ID))
	}
	return result, nil
}

// Delete removes an order.
func (s *Service) Delete(ctx context.Context, input orderstypes.OrderIdentifier) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.Int64("order.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.Int64("order.id", input.ID))
	if err := s.inner.Delete(ctx, input); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", input.ID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.Int64("order.id", input.ID))
	return nil
}

// List exposes all orders, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.result.count", len(result)))
	return result, nil
}

// ListByStatus filters orders by a client-supplied status value.
func (s *Service) ListByStatus(ctx context.Context, rawStatus string) ([]*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.ListByStatus", attribute.String("order.status.requested", rawStatus))
	defer span.End()

	result, err := s.inner.ListByStatus(ctx, rawStatus)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders by status", slog.String("status", rawStatus))
	}
	span.SetAttributes(attribute.Int("order.result.count", len(result)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	ordersCreated metric.Int64Counter
	ordersUpdated metric.Int64Counter
	ordersDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersCreated, _ := m.Int64Counter("orders.service.created", metric.WithDescription("Number of orders created"))
	ordersUpdated, _ := m.Int64Counter("orders.service.updated", metric.WithDescription("Number of orders updated"))
	ordersDeleted, _ := m.Int64Counter("orders.service.deleted", metric.WithDescription("Number of orders deleted"))
	return serviceMetrics{
		ordersCreated: ordersCreated,
		ordersUpdated: ordersUpdated,
		ordersDeleted: ordersDeleted,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.ordersCreated, 1, attribute.String("order.status", string(status)))
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.ordersUpdated, 1, attribute.String("order.status", string(status)))
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	addCounter(ctx, m.ordersDeleted, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
