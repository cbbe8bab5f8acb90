package drink_log

import (
	"errors"
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// ErrDrinkNotFound is returned when a drink is not in the user's log
var ErrDrinkNotFound = errors.New("drink not found")

// AddDrinkInput contains parameters for adding a drink
type AddDrinkInput struct {
	Drink *models.Drink
}

// GetDrinkInput contains parameters for retrieving a drink
type GetDrinkInput struct {
	UserID  string
	DrinkID string
}

// GetDrinksInput contains parameters for retrieving a user's drinks
type GetDrinksInput struct {
	UserID string

	// Since is the earliest timestamp to include; zero means unbounded
	Since time.Time

	// Until is the latest timestamp to include; zero means unbounded
	Until time.Time
}

// GetDrinksOutput contains the drinks ordered by timestamp
type GetDrinksOutput struct {
	Drinks []*models.Drink
}

// RemoveDrinkInput contains parameters for removing a drink
type RemoveDrinkInput struct {
	UserID  string
	DrinkID string
}

// ClearDrinksInput contains parameters for clearing a user's log
type ClearDrinksInput struct {
	UserID string
}

func validateDrink(drink *models.Drink) error {
	if drink == nil {
		return errors.New("input and drink cannot be nil")
	}
	if drink.ID == "" {
		return errors.New("drink ID cannot be empty")
	}
	if drink.UserID == "" {
		return errors.New("drink user ID cannot be empty")
	}
	return nil
}
