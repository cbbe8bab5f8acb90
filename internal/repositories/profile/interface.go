package profile

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tipsy/internal/repositories/profile Repository

import (
	"context"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// Repository defines the interface for profile persistence
type Repository interface {
	// SaveProfile creates or replaces a user's profile
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a user's profile
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error)
}
