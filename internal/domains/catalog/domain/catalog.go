// Package domain holds the hero and meal reference entities. Orders only ever
// look these up by id; their own lifecycle is managed elsewhere.
package domain

// Hero is a customer of the delivery service.
type Hero struct {
	ID     int64
	Name   string
	Powers []string
}

// Meal is an item a hero can order.
type Meal struct {
	ID          int64
	Name        string
	Ingredients []string
	Calories    int32
}
