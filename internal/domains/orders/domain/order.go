package domain

import (
	"errors"
	"time"
)

// Status enumerates order fulfillment progression. The set is closed; raw
// strings enter only through ParseStatus.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// DefaultStatus is assigned to newly created orders.
const DefaultStatus = StatusPending

var (
	ErrInvalidHeroID = errors.New("hero id must be greater than zero")
	ErrInvalidMealID = errors.New("meal id must be greater than zero")
	ErrInvalidStatus = errors.New("order status is invalid")
)

// Statuses returns all members of the enumeration in declaration order.
// Rejections of unknown statuses enumerate this list verbatim.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

// StatusValues returns the enumeration as raw strings.
func StatusValues() []string {
	statuses := Statuses()
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}
	return values
}

// ParseStatus maps a raw string to the enumeration. Every path that accepts an
// untrusted status string routes through here, writes and reads alike.
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	if !isValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Order models one fulfillment request linking a hero to a meal.
type Order struct {
	ID            int64
	HeroID        int64
	MealID        int64
	Status        Status
	Message       string
	OrderTime     time.Time
	CompletedTime *time.Time
}

// NewOrder constructs an order in the default status with its creation time
// stamped. The id is assigned by the store on first save.
func NewOrder(heroID, mealID int64, message string, now time.Time) *Order {
	return &Order{
		HeroID:    heroID,
		MealID:    mealID,
		Status:    DefaultStatus,
		Message:   message,
		OrderTime: now,
	}
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.HeroID <= 0 {
		return ErrInvalidHeroID
	}
	if o.MealID <= 0 {
		return ErrInvalidMealID
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// SetStatus applies a status transition. Entering completed stamps
// CompletedTime once; the stamp is never overwritten or cleared, even if the
// order later leaves and re-enters completed. Any member may follow any member;
// there is no transition graph.
func (o *Order) SetStatus(status Status, now time.Time) {
	o.Status = status
	if status == StatusCompleted && o.CompletedTime == nil {
		stamp := now
		o.CompletedTime = &stamp
	}
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
