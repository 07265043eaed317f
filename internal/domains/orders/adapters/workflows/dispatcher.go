package workflows

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/heromeals/orders-api/internal/domains/orders/ports"
	orderworkflows "github.com/heromeals/orders-api/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.Dispatcher = (*TemporalDispatcher)(nil)
	_ ports.Dispatcher = (*LoggingDispatcher)(nil)
)

// TemporalDispatcher hands new orders off to the fulfillment workflow. The
// start is fire and forget; callers never wait on workflow completion.
type TemporalDispatcher struct {
	client    client.Client
	taskQueue string
}

// NewTemporalDispatcher wires a Temporal client into the dispatcher.
func NewTemporalDispatcher(c client.Client) *TemporalDispatcher {
	return &TemporalDispatcher{client: c, taskQueue: orderworkflows.OrderProcessingTaskQueue}
}

// Dispatch starts the order processing workflow. The workflow id is derived
// from the order id, so a replayed dispatch for the same order collapses into
// the already running execution instead of processing it twice.
func (d *TemporalDispatcher) Dispatch(ctx context.Context, orderID int64) error {
	if d == nil || d.client == nil {
		return errors.New("temporal order dispatcher not configured")
	}
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("order-processing-%d", orderID),
		TaskQueue: d.taskQueue,
	}
	input := orderworkflows.OrderProcessingWorkflowInput{
		OrderID: orderID,
		TraceID: workflowTraceID(ctx),
	}
	_, err := d.client.ExecuteWorkflow(ctx, options, orderworkflows.OrderProcessingWorkflow, input)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil
		}
		return err
	}
	return nil
}

// LoggingDispatcher records hand-offs without durable orchestration, useful
// for tests or dev setups without a Temporal cluster.
type LoggingDispatcher struct {
	logger *slog.Logger
}

// NewLoggingDispatcher wraps a logger as a dispatcher.
func NewLoggingDispatcher(logger *slog.Logger) *LoggingDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingDispatcher{logger: logger}
}

// Dispatch logs the hand-off and succeeds.
func (d *LoggingDispatcher) Dispatch(ctx context.Context, orderID int64) error {
	d.logger.InfoContext(ctx, "order hand-off recorded without workflow engine", slog.Int64("order.id", orderID))
	return nil
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() || !spanCtx.TraceID().IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
