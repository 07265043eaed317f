package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	orderstypes "github.com/heromeals/orders-api/internal/domains/orders/application/types"
	"github.com/heromeals/orders-api/internal/domains/orders/domain"
	ordersports "github.com/heromeals/orders-api/internal/domains/orders/ports"
)

const (
	// StartFulfillmentActivityName moves an order into in_progress.
	StartFulfillmentActivityName = "orders.activities.StartFulfillment"
	// CompleteFulfillmentActivityName moves an order into completed.
	CompleteFulfillmentActivityName = "orders.activities.CompleteFulfillment"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
// The service must not carry a dispatcher or workflow starts would loop.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// StartFulfillment marks the order as being worked on.
func (a *Activities) StartFulfillment(ctx context.Context, orderID int64) error {
	return a.setStatus(ctx, orderID, domain.StatusInProgress)
}

// CompleteFulfillment marks the order as delivered. The status machine stamps
// the completion time on this transition.
func (a *Activities) CompleteFulfillment(ctx context.Context, orderID int64) error {
	return a.setStatus(ctx, orderID, domain.StatusCompleted)
}

func (a *Activities) setStatus(ctx context.Context, orderID int64, status domain.Status) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order fulfillment activity not initialized", "orderId", orderID)
		return errors.New("order fulfillment activity not initialized")
	}
	logger.Info("order status transition started", "orderId", orderID, "status", string(status))
	raw := string(status)
	_, err := a.service.PartialUpdate(ctx, orderstypes.PartialUpdateOrderInput{ID: orderID, Status: &raw})
	if err != nil {
		if errors.Is(err, ordersports.ErrNotFound) {
			// The order was deleted after hand-off. Nothing left to fulfill,
			// so the workflow should not keep retrying.
			logger.Info("order gone before fulfillment, skipping", "orderId", orderID)
			return nil
		}
		logger.Error("order status transition failed", "orderId", orderID, "status", string(status), "error", err)
		return err
	}
	logger.Info("order status transition completed", "orderId", orderID, "status", string(status))
	return nil
}
