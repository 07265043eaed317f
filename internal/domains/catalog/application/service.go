package application

import (
	"context"

	"github.com/heromeals/orders-api/internal/domains/catalog/domain"
	"github.com/heromeals/orders-api/internal/domains/catalog/ports"
)

// Service exposes hero and meal lookups to other bounded contexts.
type Service struct {
	heroes ports.HeroRepository
	meals  ports.MealRepository
}

func NewService(heroes ports.HeroRepository, meals ports.MealRepository) *Service {
	return &Service{heroes: heroes, meals: meals}
}

// GetHero loads a hero by id, ports.ErrHeroNotFound when absent.
func (s *Service) GetHero(ctx context.Context, id int64) (*domain.Hero, error) {
	return s.heroes.GetByID(ctx, id)
}

// GetMeal loads a meal by id, ports.ErrMealNotFound when absent.
func (s *Service) GetMeal(ctx context.Context, id int64) (*domain.Meal, error) {
	return s.meals.GetByID(ctx, id)
}

// Seed upserts the default roster so a fresh deployment can take orders
// without manual inserts. Existing rows with the same ids are overwritten.
func (s *Service) Seed(ctx context.Context) error {
	for _, hero := range DefaultHeroes() {
		h := hero
		if _, err := s.heroes.Save(ctx, &h); err != nil {
			return err
		}
	}
	for _, meal := range DefaultMeals() {
		m := meal
		if _, err := s.meals.Save(ctx, &m); err != nil {
			return err
		}
	}
	return nil
}

// DefaultHeroes is the seed roster.
func DefaultHeroes() []domain.Hero {
	return []domain.Hero{
		{ID: 1, Name: "Night Courier", Powers: []string{"flight", "night vision"}},
		{ID: 2, Name: "Captain Ember", Powers: []string{"pyrokinesis"}},
		{ID: 3, Name: "Tidebreaker", Powers: []string{"hydrokinesis", "super strength"}},
	}
}

// DefaultMeals is the seed menu.
func DefaultMeals() []domain.Meal {
	return []domain.Meal{
		{ID: 1, Name: "Volcano Ramen", Ingredients: []string{"noodles", "chili oil", "pork"}, Calories: 780},
		{ID: 2, Name: "Glacier Poke", Ingredients: []string{"rice", "tuna", "avocado"}, Calories: 540},
		{ID: 3, Name: "Thunder Burger", Ingredients: []string{"bun", "beef", "cheddar"}, Calories: 920},
	}
}
