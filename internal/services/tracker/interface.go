package tracker

import "context"

// Service defines the operations the bot and CLI use to track drinking
type Service interface {
	// SetProfile validates and stores a user's physiological profile
	SetProfile(ctx context.Context, input *SetProfileInput) (*SetProfileOutput, error)

	// GetProfile retrieves a user's profile
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// AddDrink validates and logs a drink, optionally combined with a mixer
	AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error)

	// RemoveDrink deletes one drink from the user's log
	RemoveDrink(ctx context.Context, input *RemoveDrinkInput) (*RemoveDrinkOutput, error)

	// RemoveLastDrink deletes the drink with the latest timestamp, which is not
	// necessarily the one logged most recently
	RemoveLastDrink(ctx context.Context, input *RemoveLastDrinkInput) (*RemoveDrinkOutput, error)

	// ListDrinks returns the user's drinks ordered by timestamp
	ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error)

	// ClearDrinks empties the user's log
	ClearDrinks(ctx context.Context, input *ClearDrinksInput) error

	// GetStatus derives the user's current BAC snapshot
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// GetTrend produces a chart series around an instant
	GetTrend(ctx context.Context, input *GetTrendInput) (*GetTrendOutput, error)

	// Watch streams status snapshots until the context is cancelled
	Watch(ctx context.Context, input *WatchInput) (<-chan *WatchUpdate, error)
}
