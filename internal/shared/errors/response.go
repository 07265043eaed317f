// Package errors defines the flat JSON error contract shared by all HTTP handlers.
package errors

// ErrorResponse is the body returned for every failed request. ValidStatuses
// is populated only when the failure was an unrecognized order status, so
// clients can discover the accepted values without a schema lookup.
type ErrorResponse struct {
	Error         string   `json:"error"`
	ValidStatuses []string `json:"valid_statuses,omitempty"`
}

// Canonical client-facing messages. Handlers return these verbatim so
// consumers can match on them.
const (
	MsgInvalidStatus    = "Invalid order status"
	MsgMissingReference = "Missing hero_id or meal_id"
)

// New builds a plain error body.
func New(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewInvalidStatus builds the invalid-status body with the accepted values attached.
func NewInvalidStatus(validStatuses []string) ErrorResponse {
	return ErrorResponse{Error: MsgInvalidStatus, ValidStatuses: validStatuses}
}
