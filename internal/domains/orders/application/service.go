package application

import (
	"context"
	"log/slog"
	"time"

	types "github.com/heromeals/orders-api/internal/domains/orders/application/types"
	"github.com/heromeals/orders-api/internal/domains/orders/domain"
	"github.com/heromeals/orders-api/internal/domains/orders/ports"
)

// Service orchestrates the order lifecycle use cases. It is the only component
// with failure-handling logic; repositories and the dispatcher stay mechanical.
type Service struct {
	repo       ports.Repository
	catalog    ports.Catalog
	dispatcher ports.Dispatcher
	logger     *slog.Logger
	now        func() time.Time
}

type Option func(*Service)

// WithDispatcher injects the work-queue hand-off used after creation.
func WithDispatcher(d ports.Dispatcher) Option {
	return func(s *Service) {
		s.dispatcher = d
	}
}

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithNow overrides the clock used for order and completed timestamps.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService wires the orders service with its dependencies.
func NewService(repo ports.Repository, catalog ports.Catalog, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		catalog: catalog,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// List returns all orders, newest order_time first.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// GetByID loads a single order.
func (s *Service) GetByID(ctx context.Context, input types.OrderIdentifier) (*domain.Order, error) {
	return s.repo.GetByID(ctx, input.ID)
}

// Create persists a new order in the default status and, only after a
// successful save, hands it to the work queue. Dispatch failures are logged
// and swallowed; a saved order is never rolled back because dispatch failed.
func (s *Service) Create(ctx context.Context, input types.CreateOrderInput) (*domain.Order, error) {
	order := domain.NewOrder(input.HeroID, input.MealID, input.Message, s.now().UTC())
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, err
	}
	s.dispatch(ctx, saved.ID)
	return saved, nil
}

// Update replaces hero, meal, status, and message in one commit. Reference
// resolution and status parsing happen before the single save, so a failed
// lookup or an invalid status leaves the stored order untouched.
func (s *Service) Update(ctx context.Context, input types.UpdateOrderInput) (*domain.Order, error) {
	if input.HeroID == nil || input.MealID == nil {
		return nil, ErrMissingReference
	}
	order, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	hero, err := s.catalog.GetHero(ctx, *input.HeroID)
	if err != nil {
		return nil, err
	}
	meal, err := s.catalog.GetMeal(ctx, *input.MealID)
	if err != nil {
		return nil, err
	}
	order.HeroID = hero.ID
	order.MealID = meal.ID
	if err := applyStatusAndMessage(order, input.Status, input.Message, s.now); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, order)
}

// PartialUpdate touches only status and message. Hero and meal fields in the
// payload are ignored, not rejected.
func (s *Service) PartialUpdate(ctx context.Context, input types.PartialUpdateOrderInput) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := applyStatusAndMessage(order, input.Status, input.Message, s.now); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, order)
}

// Delete removes an order unconditionally; no status blocks deletion.
func (s *Service) Delete(ctx context.Context, input types.OrderIdentifier) error {
	return s.repo.Delete(ctx, input.ID)
}

// ListByStatus filters orders through the status machine's parser, so the
// read path rejects unknown statuses exactly like the write paths do.
func (s *Service) ListByStatus(ctx context.Context, rawStatus string) ([]*domain.Order, error) {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) dispatch(ctx context.Context, orderID int64) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Dispatch(ctx, orderID); err != nil {
		s.logger.ErrorContext(ctx, "order dispatch failed",
			slog.Int64("order.id", orderID),
			slog.String("error", err.Error()))
		return
	}
	s.logger.InfoContext(ctx, "order dispatched for processing", slog.Int64("order.id", orderID))
}

func applyStatusAndMessage(order *domain.Order, rawStatus, message *string, now func() time.Time) error {
	if rawStatus != nil {
		status, err := domain.ParseStatus(*rawStatus)
		if err != nil {
			return err
		}
		order.SetStatus(status, now().UTC())
	}
	if message != nil {
		order.Message = *message
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
