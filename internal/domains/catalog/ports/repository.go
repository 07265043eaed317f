package ports

import (
	"context"
	"errors"

	"github.com/heromeals/orders-api/internal/domains/catalog/domain"
)

var (
	ErrHeroNotFound = errors.New("hero not found")
	ErrMealNotFound = errors.New("meal not found")
)

// HeroRepository persists heroes. Save exists for seeding and tests; the order
// flow only reads.
type HeroRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hero, error)
	Save(ctx context.Context, hero *domain.Hero) (*domain.Hero, error)
}

// MealRepository persists meals.
type MealRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Meal, error)
	Save(ctx context.Context, meal *domain.Meal) (*domain.Meal, error)
}
