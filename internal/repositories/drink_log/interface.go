package drink_log

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tipsy/internal/repositories/drink_log Repository

import (
	"context"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// Repository defines the interface for drink log persistence
type Repository interface {
	// AddDrink stores a drink in its owner's log
	AddDrink(ctx context.Context, input *AddDrinkInput) error

	// GetDrink retrieves a single drink owned by a user
	GetDrink(ctx context.Context, input *GetDrinkInput) (*models.Drink, error)

	// GetDrinks retrieves a user's drinks ordered by timestamp
	GetDrinks(ctx context.Context, input *GetDrinksInput) (*GetDrinksOutput, error)

	// RemoveDrink deletes a single drink from a user's log
	RemoveDrink(ctx context.Context, input *RemoveDrinkInput) error

	// ClearDrinks deletes every drink in a user's log
	ClearDrinks(ctx context.Context, input *ClearDrinksInput) error
}
