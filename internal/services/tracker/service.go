package tracker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/KirkDiggler/tipsy/internal/bac"
	"github.com/KirkDiggler/tipsy/internal/common/clock"
	"github.com/KirkDiggler/tipsy/internal/common/uuid"
	"github.com/KirkDiggler/tipsy/internal/models"
	drinkLogRepo "github.com/KirkDiggler/tipsy/internal/repositories/drink_log"
	profileRepo "github.com/KirkDiggler/tipsy/internal/repositories/profile"
	"github.com/KirkDiggler/tipsy/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	watchInterval time.Duration
	lookback      time.Duration
	drinkRepo     drinkLogRepo.Repository
	profileRepo   profileRepo.Repository
	calculator    bac.Calculator
	messaging     messaging.Service
	clock         clock.Clock
	uuid          uuid.UUID
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DrinkRepo == nil {
		return nil, ErrNilDrinkRepo
	}
	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}
	if cfg.Calculator == nil {
		return nil, ErrNilCalculator
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	watchInterval := cfg.WatchInterval
	if watchInterval <= 0 {
		watchInterval = DefaultWatchInterval
	}

	lookback := cfg.Lookback
	if lookback <= 0 {
		lookback = DefaultLookback
	}

	return &service{
		watchInterval: watchInterval,
		lookback:      lookback,
		drinkRepo:     cfg.DrinkRepo,
		profileRepo:   cfg.ProfileRepo,
		calculator:    cfg.Calculator,
		messaging:     cfg.Messaging,
		clock:         cfg.Clock,
		uuid:          cfg.UUIDGenerator,
	}, nil
}

// SetProfile validates and stores a user's physiological profile
func (s *service) SetProfile(ctx context.Context, input *SetProfileInput) (*SetProfileOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if !(input.WeightKg > 0) || math.IsInf(input.WeightKg, 0) {
		return nil, ErrInvalidWeight
	}
	if !input.Gender.IsValid() {
		return nil, ErrInvalidGender
	}

	speed := input.DrinkingSpeed
	if speed == "" {
		speed = models.DrinkingSpeedAverage
	}
	if !speed.IsValid() {
		return nil, ErrInvalidSpeed
	}

	unit := input.Unit
	if unit == "" {
		unit = models.BacUnitPercent
	}
	if unit != models.BacUnitPercent && unit != models.BacUnitPermille {
		return nil, ErrInvalidUnit
	}

	profile := &models.Profile{
		UserID:        input.UserID,
		WeightKg:      input.WeightKg,
		Gender:        input.Gender,
		DrinkingSpeed: speed,
		Unit:          unit,
		UpdatedAt:     s.clock.Now(),
	}

	if err := s.profileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{Profile: profile}); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &SetProfileOutput{Profile: profile}, nil
}

// GetProfile retrieves a user's profile
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidUserID
	}

	profile, err := s.loadProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return &GetProfileOutput{Profile: profile}, nil
}

// AddDrink validates and logs a drink, optionally combined with a mixer
func (s *service) AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if err := validateLiquid(input.VolumeMl, input.ABV); err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, ErrInvalidDrinkType
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = defaultDrinkName(input.Type)
	}
	volume := input.VolumeMl
	abv := input.ABV

	if input.Mixer != nil {
		if !(input.Mixer.VolumeMl > 0 && input.Mixer.VolumeMl <= MaxVolumeMl) {
			return nil, ErrInvalidMixer
		}
		if !(input.Mixer.ABV >= 0 && input.Mixer.ABV <= 100) {
			return nil, ErrInvalidABV
		}
		name, volume, abv = combineMixer(name, volume, abv, input.Mixer)
		if volume > MaxVolumeMl {
			return nil, ErrInvalidVolume
		}
	}

	now := s.clock.Now()
	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = now
	}
	if timestamp.After(now.Add(MaxFutureSkew)) {
		return nil, ErrFutureTimestamp
	}

	drink := &models.Drink{
		ID:        s.uuid.NewUUID(),
		UserID:    input.UserID,
		Name:      name,
		VolumeMl:  volume,
		ABV:       abv,
		Timestamp: timestamp,
		IsChug:    input.IsChug,
		Type:      input.Type,
		Icon:      input.Icon,
	}

	if err := s.drinkRepo.AddDrink(ctx, &drinkLogRepo.AddDrinkInput{Drink: drink}); err != nil {
		return nil, fmt.Errorf("failed to add drink: %w", err)
	}

	status, _, err := s.currentStatus(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	msg, err := s.messaging.GetDrinkLoggedMessage(ctx, &messaging.GetDrinkLoggedMessageInput{
		DrinkName: drink.Name,
		Tier:      status.Tier,
	})
	if err != nil {
		return nil, err
	}

	return &AddDrinkOutput{
		Drink:   drink,
		Status:  status,
		Message: msg.Message,
	}, nil
}

// RemoveDrink deletes one drink from the user's log
func (s *service) RemoveDrink(ctx context.Context, input *RemoveDrinkInput) (*RemoveDrinkOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidUserID
	}

	drink, err := s.drinkRepo.GetDrink(ctx, &drinkLogRepo.GetDrinkInput{
		UserID:  input.UserID,
		DrinkID: input.DrinkID,
	})
	if err != nil {
		if errors.Is(err, drinkLogRepo.ErrDrinkNotFound) {
			return nil, ErrDrinkNotFound
		}
		return nil, fmt.Errorf("failed to get drink: %w", err)
	}

	if err := s.removeDrink(ctx, drink); err != nil {
		return nil, err
	}

	return &RemoveDrinkOutput{Drink: drink}, nil
}

// RemoveLastDrink deletes the drink with the latest timestamp
func (s *service) RemoveLastDrink(ctx context.Context, input *RemoveLastDrinkInput) (*RemoveDrinkOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidUserID
	}

	out, err := s.drinkRepo.GetDrinks(ctx, &drinkLogRepo.GetDrinksInput{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}
	if len(out.Drinks) == 0 {
		return nil, ErrNoDrinks
	}

	last := out.Drinks[len(out.Drinks)-1]
	if err := s.removeDrink(ctx, last); err != nil {
		return nil, err
	}

	return &RemoveDrinkOutput{Drink: last}, nil
}

// ListDrinks returns the user's drinks ordered by timestamp
func (s *service) ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidUserID
	}

	out, err := s.drinkRepo.GetDrinks(ctx, &drinkLogRepo.GetDrinksInput{
		UserID: input.UserID,
		Since:  input.Since,
		Until:  input.Until,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}

	return &ListDrinksOutput{Drinks: out.Drinks}, nil
}

// ClearDrinks empties the user's log
func (s *service) ClearDrinks(ctx context.Context, input *ClearDrinksInput) error {
	if input == nil || input.UserID == "" {
		return ErrInvalidUserID
	}

	if err := s.drinkRepo.ClearDrinks(ctx, &drinkLogRepo.ClearDrinksInput{UserID: input.UserID}); err != nil {
		return fmt.Errorf("failed to clear drinks: %w", err)
	}

	return nil
}

// GetStatus derives the user's current BAC snapshot
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidUserID
	}

	status, profile, err := s.currentStatus(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	msg, err := s.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{Tier: status.Tier})
	if err != nil {
		return nil, err
	}

	return &GetStatusOutput{
		Status:  status,
		Profile: profile,
		Message: msg.Message,
	}, nil
}

// GetTrend produces a chart series around an instant
func (s *service) GetTrend(ctx context.Context, input *GetTrendInput) (*GetTrendOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidUserID
	}

	profile, err := s.loadProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !profile.IsSetup() {
		return &GetTrendOutput{Profile: profile}, nil
	}

	center := input.Center
	if center.IsZero() {
		center = s.clock.Now()
	}

	drinks, err := s.recentDrinks(ctx, input.UserID, center)
	if err != nil {
		return nil, err
	}

	points := s.calculator.Trend(&bac.TrendInput{
		Drinks:  drinks,
		Profile: profile,
		Center:  center,
	})

	return &GetTrendOutput{
		Points:  points,
		Profile: profile,
	}, nil
}

// currentStatus computes the status at the clock's now; a missing profile yields setup-required
func (s *service) currentStatus(ctx context.Context, userID string) (*models.BacStatus, *models.Profile, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if !profile.IsSetup() {
		return bac.SetupRequiredStatus(), profile, nil
	}

	now := s.clock.Now()
	drinks, err := s.recentDrinks(ctx, userID, now)
	if err != nil {
		return nil, nil, err
	}

	status := s.calculator.Status(&bac.StatusInput{
		Drinks:  drinks,
		Profile: profile,
		Now:     now,
	})

	return status, profile, nil
}

// loadProfile returns nil without error when the user has no profile
func (s *service) loadProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{UserID: userID})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// recentDrinks loads every drink that can still contribute alcohol at the given instant.
// Drinks stamped past the clock's skew allowance are never simulated.
func (s *service) recentDrinks(ctx context.Context, userID string, at time.Time) ([]*models.Drink, error) {
	out, err := s.drinkRepo.GetDrinks(ctx, &drinkLogRepo.GetDrinksInput{
		UserID: userID,
		Since:  at.Add(-s.lookback),
		Until:  s.clock.Now().Add(MaxFutureSkew),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}
	return out.Drinks, nil
}

func (s *service) removeDrink(ctx context.Context, drink *models.Drink) error {
	err := s.drinkRepo.RemoveDrink(ctx, &drinkLogRepo.RemoveDrinkInput{
		UserID:  drink.UserID,
		DrinkID: drink.ID,
	})
	if err != nil {
		if errors.Is(err, drinkLogRepo.ErrDrinkNotFound) {
			return ErrDrinkNotFound
		}
		return fmt.Errorf("failed to remove drink: %w", err)
	}
	return nil
}

func validateLiquid(volumeMl, abv float64) error {
	if !(volumeMl > 0 && volumeMl <= MaxVolumeMl) {
		return ErrInvalidVolume
	}
	if !(abv >= 0 && abv <= 100) {
		return ErrInvalidABV
	}
	return nil
}

// combineMixer merges a base drink and its mixer into one liquid.
// ABV is rounded to one decimal and volume to a whole millilitre.
func combineMixer(name string, volumeMl, abv float64, mixer *MixerInput) (string, float64, float64) {
	total := volumeMl + mixer.VolumeMl
	combinedABV := (volumeMl*abv + mixer.VolumeMl*mixer.ABV) / total

	mixerName := strings.TrimSpace(mixer.Name)
	if mixerName != "" {
		name = name + " & " + mixerName
	}

	return name, math.Round(total), math.Round(combinedABV*10) / 10
}

func defaultDrinkName(t models.DrinkType) string {
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}
