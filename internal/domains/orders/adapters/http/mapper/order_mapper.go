package mapper

import (
	"time"

	orderstypes "github.com/heromeals/orders-api/internal/domains/orders/application/types"
	"github.com/heromeals/orders-api/internal/domains/orders/domain"
)

// Order is the HTTP representation of a placed order.
type Order struct {
	ID            int64      `json:"id"`
	HeroID        int64      `json:"hero_id"`
	MealID        int64      `json:"meal_id"`
	Status        string     `json:"status"`
	Message       string     `json:"message,omitempty"`
	OrderTime     time.Time  `json:"order_time"`
	CompletedTime *time.Time `json:"completed_time"`
}

// OrderCreate captures the payload for placing a new order. Hero and meal
// references are mandatory; everything else is derived server side.
type OrderCreate struct {
	HeroID  int64  `json:"hero_id" binding:"required"`
	MealID  int64  `json:"meal_id" binding:"required"`
	Message string `json:"message"`
}

// OrderUpdate captures a full replacement. Pointers preserve field presence
// so a missing reference can be distinguished from a zero value.
type OrderUpdate struct {
	HeroID  *int64  `json:"hero_id"`
	MealID  *int64  `json:"meal_id"`
	Status  *string `json:"status"`
	Message *string `json:"message"`
}

// OrderPatch captures a partial update of mutable fields only.
type OrderPatch struct {
	Status  *string `json:"status"`
	Message *string `json:"message"`
}

// ToCreateInput maps the creation payload to the application input.
func ToCreateInput(payload OrderCreate) orderstypes.CreateOrderInput {
	return orderstypes.CreateOrderInput{
		HeroID:  payload.HeroID,
		MealID:  payload.MealID,
		Message: payload.Message,
	}
}

// ToUpdateInput maps the replacement payload to the application input.
func ToUpdateInput(id int64, payload OrderUpdate) orderstypes.UpdateOrderInput {
	return orderstypes.UpdateOrderInput{
		ID:      id,
		HeroID:  payload.HeroID,
		MealID:  payload.MealID,
		Status:  payload.Status,
		Message: payload.Message,
	}
}

// ToPatchInput maps the patch payload to the application input.
func ToPatchInput(id int64, payload OrderPatch) orderstypes.PartialUpdateOrderInput {
	return orderstypes.PartialUpdateOrderInput{
		ID:      id,
		Status:  payload.Status,
		Message: payload.Message,
	}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *domain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:            order.ID,
		HeroID:        order.HeroID,
		MealID:        order.MealID,
		Status:        string(order.Status),
		Message:       order.Message,
		OrderTime:     order.OrderTime,
		CompletedTime: order.CompletedTime,
	}
}

// FromDomainOrderList converts a slice of domain orders.
func FromDomainOrderList(orders []*domain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
