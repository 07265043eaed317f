package ports

import (
	"context"

	types "github.com/heromeals/orders-api/internal/domains/orders/application/types"
	"github.com/heromeals/orders-api/internal/domains/orders/domain"
)

// Service exposes the order lifecycle use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*domain.Order, error)
	GetByID(ctx context.Context, input types.OrderIdentifier) (*domain.Order, error)
	Create(ctx context.Context, input types.CreateOrderInput) (*domain.Order, error)
	Update(ctx context.Context, input types.UpdateOrderInput) (*domain.Order, error)
	PartialUpdate(ctx context.Context, input types.PartialUpdateOrderInput) (*domain.Order, error)
	Delete(ctx context.Context, input types.OrderIdentifier) error
	ListByStatus(ctx context.Context, rawStatus string) ([]*domain.Order, error)
}
