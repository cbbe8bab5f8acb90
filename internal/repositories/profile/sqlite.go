package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// SQLiteConfig holds configuration for the SQLite profile repository
type SQLiteConfig struct {
	// DB is an opened and migrated database handle
	DB *sql.DB
}

// sqliteRepository implements the Repository interface on the local database
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed profile repository
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// SaveProfile creates or replaces a user's profile
func (r *sqliteRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	p := input.Profile
	if p.UserID == "" {
		return errors.New("profile user ID cannot be empty")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, weight_kg, gender, drinking_speed, unit, updated_at_ms)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			weight_kg = excluded.weight_kg,
			gender = excluded.gender,
			drinking_speed = excluded.drinking_speed,
			unit = excluded.unit,
			updated_at_ms = excluded.updated_at_ms
	`, p.UserID, p.WeightKg, string(p.Gender), string(p.DrinkingSpeed), string(p.Unit), p.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a user's profile
func (r *sqliteRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	var (
		p                   models.Profile
		gender, speed, unit string
		updatedAtMs         int64
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, weight_kg, gender, drinking_speed, unit, updated_at_ms
		FROM profiles
		WHERE user_id = ?
	`, input.UserID).Scan(&p.UserID, &p.WeightKg, &gender, &speed, &unit, &updatedAtMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	p.Gender = models.Gender(gender)
	p.DrinkingSpeed = models.DrinkingSpeed(speed)
	p.Unit = models.BacUnit(unit)
	p.UpdatedAt = time.UnixMilli(updatedAtMs).UTC()

	return &p, nil
}
