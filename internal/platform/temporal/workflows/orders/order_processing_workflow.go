package orders

import (
	"go.temporal.io/sdk/workflow"

	"github.com/heromeals/orders-api/internal/platform/temporal/sequences"
)

const (
	// OrderProcessingWorkflowName is the public identifier for registering the workflow.
	OrderProcessingWorkflowName = "orders.workflows.Processing"
	// OrderProcessingTaskQueue is the queue consumed by the worker processing order workflows.
	OrderProcessingTaskQueue = "ORDER_PROCESSING"
)

// OrderProcessingWorkflowInput carries the order reference handed off by the API.
type OrderProcessingWorkflowInput struct {
	OrderID int64
	TraceID string
}

// OrderProcessingWorkflow drives a newly placed order through fulfillment.
func OrderProcessingWorkflow(ctx workflow.Context, input OrderProcessingWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderProcessingWorkflow started", withTraceID(input.TraceID, "orderId", input.OrderID)...)
	if err := sequences.RunOrderFulfillmentSequence(ctx, input.OrderID); err != nil {
		logger.Error("OrderProcessingWorkflow failed", withTraceID(input.TraceID, "orderId", input.OrderID, "error", err)...)
		return err
	}
	logger.Info("OrderProcessingWorkflow completed", withTraceID(input.TraceID, "orderId", input.OrderID)...)
	return nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
