package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderactivities "github.com/heromeals/orders-api/internal/platform/temporal/activities/orders"
)

// RunOrderFulfillmentSequence executes the ordered set of activities that take
// a pending order through fulfillment to completion.
func RunOrderFulfillmentSequence(ctx workflow.Context, orderID int64) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("order fulfillment sequence started", "orderId", orderID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	if err := workflow.ExecuteActivity(ctx, orderactivities.StartFulfillmentActivityName, orderID).Get(ctx, nil); err != nil {
		logger.Error("order fulfillment sequence failed to start", "orderId", orderID, "error", err)
		return err
	}
	logger.Info("order fulfillment sequence in progress", "orderId", orderID)

	if err := workflow.ExecuteActivity(ctx, orderactivities.CompleteFulfillmentActivityName, orderID).Get(ctx, nil); err != nil {
		logger.Error("order fulfillment sequence failed to complete", "orderId", orderID, "error", err)
		return err
	}
	logger.Info("order fulfillment sequence completed", "orderId", orderID)
	return nil
}
