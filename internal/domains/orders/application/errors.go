package application

import (
	"errors"
	"fmt"

	"github.com/heromeals/orders-api/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrMissingReference signals a full update without both hero and meal ids.
	ErrMissingReference = errors.New("missing hero_id or meal_id")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidHeroID) ||
		errors.Is(err, domain.ErrInvalidMealID) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
