package profile

import (
	"errors"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// ErrProfileNotFound is returned when a user has never saved a profile
var ErrProfileNotFound = errors.New("profile not found")

// SaveProfileInput contains parameters for saving a profile
type SaveProfileInput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}
