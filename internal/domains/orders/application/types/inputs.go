// Package types carries the transport-agnostic inputs of the orders use cases.
package types

// OrderIdentifier addresses a single order.
type OrderIdentifier struct {
	ID int64
}

// CreateOrderInput is the payload for order creation. Hero and meal ids arrive
// already shape-validated by the transport binding; existence is enforced by
// the store.
type CreateOrderInput struct {
	HeroID  int64
	MealID  int64
	Message string
}

// UpdateOrderInput is the full-replace payload. HeroID and MealID are required;
// nil pointers reject the update before any store access.
type UpdateOrderInput struct {
	ID      int64
	HeroID  *int64
	MealID  *int64
	Status  *string
	Message *string
}

// PartialUpdateOrderInput touches only the supplied fields. Hero and meal
// references are never read on this path.
type PartialUpdateOrderInput struct {
	ID      int64
	Status  *string
	Message *string
}
