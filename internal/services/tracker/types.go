package tracker

import (
	"time"

	"github.com/KirkDiggler/tipsy/internal/bac"
	"github.com/KirkDiggler/tipsy/internal/common/clock"
	"github.com/KirkDiggler/tipsy/internal/common/uuid"
	"github.com/KirkDiggler/tipsy/internal/models"
	drinkLogRepo "github.com/KirkDiggler/tipsy/internal/repositories/drink_log"
	profileRepo "github.com/KirkDiggler/tipsy/internal/repositories/profile"
	"github.com/KirkDiggler/tipsy/internal/services/messaging"
)

const (
	// DefaultWatchInterval is how often Watch recomputes the status
	DefaultWatchInterval = time.Minute

	// DefaultLookback bounds how far back drinks are loaded for a simulation
	DefaultLookback = 48 * time.Hour

	// MaxVolumeMl is the largest single drink, mixer included, AddDrink accepts
	MaxVolumeMl = 5000.0

	// MaxFutureSkew is how far past the clock a drink timestamp may lie
	MaxFutureSkew = 5 * time.Minute

	// warningThreshold is the BAC above which a tier change raises a warning
	warningThreshold = 0.05
)

// Config holds configuration for the tracker service
type Config struct {
	// WatchInterval defaults to DefaultWatchInterval
	WatchInterval time.Duration

	// Lookback defaults to DefaultLookback
	Lookback time.Duration

	// Repository dependencies
	DrinkRepo   drinkLogRepo.Repository
	ProfileRepo profileRepo.Repository

	// Service dependencies
	Calculator    bac.Calculator
	Messaging     messaging.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// SetProfileInput contains parameters for saving a profile
type SetProfileInput struct {
	UserID   string
	WeightKg float64
	Gender   models.Gender

	// DrinkingSpeed defaults to average
	DrinkingSpeed models.DrinkingSpeed

	// Unit defaults to percent
	Unit models.BacUnit
}

// SetProfileOutput contains the stored profile
type SetProfileOutput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput contains the stored profile
type GetProfileOutput struct {
	Profile *models.Profile
}

// MixerInput describes the non-base liquid of a mixed drink
type MixerInput struct {
	Name     string
	VolumeMl float64
	ABV      float64
}

// AddDrinkInput contains parameters for logging a drink
type AddDrinkInput struct {
	UserID   string
	Name     string
	VolumeMl float64
	ABV      float64
	Type     models.DrinkType
	IsChug   bool
	Icon     string

	// Timestamp defaults to now
	Timestamp time.Time

	// Mixer is combined into the base drink when set
	Mixer *MixerInput
}

// AddDrinkOutput contains the logged drink and the status it leads to
type AddDrinkOutput struct {
	Drink   *models.Drink
	Status  *models.BacStatus
	Message string
}

// RemoveDrinkInput contains parameters for removing a drink
type RemoveDrinkInput struct {
	UserID  string
	DrinkID string
}

// RemoveLastDrinkInput contains parameters for undoing the latest drink
type RemoveLastDrinkInput struct {
	UserID string
}

// RemoveDrinkOutput contains the removed drink
type RemoveDrinkOutput struct {
	Drink *models.Drink
}

// ListDrinksInput contains parameters for listing drinks
type ListDrinksInput struct {
	UserID string

	// Since and Until are inclusive; zero means unbounded
	Since time.Time
	Until time.Time
}

// ListDrinksOutput contains the user's drinks ordered by timestamp
type ListDrinksOutput struct {
	Drinks []*models.Drink
}

// ClearDrinksInput contains parameters for clearing a log
type ClearDrinksInput struct {
	UserID string
}

// GetStatusInput contains parameters for a status snapshot
type GetStatusInput struct {
	UserID string
}

// GetStatusOutput contains the snapshot and the profile it was computed for
type GetStatusOutput struct {
	Status  *models.BacStatus
	Profile *models.Profile
	Message string
}

// GetTrendInput contains parameters for a trend series
type GetTrendInput struct {
	UserID string

	// Center defaults to now
	Center time.Time
}

// GetTrendOutput contains the series; Points is empty when the profile is not set up
type GetTrendOutput struct {
	Points  []models.BacPoint
	Profile *models.Profile
}

// WatchInput contains parameters for watching a user's status
type WatchInput struct {
	UserID string

	// Interval overrides the configured watch interval
	Interval time.Duration
}

// WatchUpdate is one snapshot emitted by Watch
type WatchUpdate struct {
	Status *models.BacStatus

	// Warning is set when the tier label changed while above the warning threshold
	Warning string
}
