package ports

import "context"

// Dispatcher hands a processing job for a persisted order to the work queue.
// The call is fire-and-forget: implementations must not wait for the worker to
// start or finish processing.
type Dispatcher interface {
	Dispatch(ctx context.Context, orderID int64) error
}
