package ports

import (
	"context"

	catalogdomain "github.com/heromeals/orders-api/internal/domains/catalog/domain"
)

// Catalog resolves hero and meal references. Lookups fail with the catalog
// context's not-found sentinels.
type Catalog interface {
	GetHero(ctx context.Context, id int64) (*catalogdomain.Hero, error)
	GetMeal(ctx context.Context, id int64) (*catalogdomain.Meal, error)
}
