package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/heromeals/orders-api/internal/domains/catalog/domain"
	"github.com/heromeals/orders-api/internal/domains/catalog/ports"
)

var (
	_ ports.HeroRepository = (*HeroRepository)(nil)
	_ ports.MealRepository = (*MealRepository)(nil)
)

// HeroRepository is an in-memory hero lookup adapter.
type HeroRepository struct {
	mu     sync.RWMutex
	heroes map[int64]*domain.Hero
	nextID int64
}

func NewHeroRepository() *HeroRepository {
	return &HeroRepository{heroes: map[int64]*domain.Hero{}}
}

func (r *HeroRepository) GetByID(_ context.Context, id int64) (*domain.Hero, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	hero, ok := r.heroes[id]
	if !ok {
		return nil, ports.ErrHeroNotFound
	}
	clone := *hero
	return &clone, nil
}

func (r *HeroRepository) Save(_ context.Context, hero *domain.Hero) (*domain.Hero, error) {
	if hero == nil {
		return nil, errors.New("hero is nil")
	}
	clone := *hero
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.heroes[clone.ID] = &clone
	result := clone
	return &result, nil
}

// MealRepository is an in-memory meal lookup adapter.
type MealRepository struct {
	mu     sync.RWMutex
	meals  map[int64]*domain.Meal
	nextID int64
}

func NewMealRepository() *MealRepository {
	return &MealRepository{meals: map[int64]*domain.Meal{}}
}

func (r *MealRepository) GetByID(_ context.Context, id int64) (*domain.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meal, ok := r.meals[id]
	if !ok {
		return nil, ports.ErrMealNotFound
	}
	clone := *meal
	return &clone, nil
}

func (r *MealRepository) Save(_ context.Context, meal *domain.Meal) (*domain.Meal, error) {
	if meal == nil {
		return nil, errors.New("meal is nil")
	}
	clone := *meal
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.meals[clone.ID] = &clone
	result := clone
	return &result, nil
}
