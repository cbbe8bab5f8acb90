package drink_log

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// SQLiteConfig holds configuration for the SQLite drink log repository
type SQLiteConfig struct {
	// DB is an opened and migrated database handle
	DB *sql.DB
}

// sqliteRepository implements the Repository interface on the local database
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed drink log repository
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

const drinkColumns = `id, user_id, name, volume_ml, abv, timestamp_ms, is_chug, type, icon`

// AddDrink stores a drink in its owner's log
func (r *sqliteRepository) AddDrink(ctx context.Context, input *AddDrinkInput) error {
	if input == nil {
		return errors.New("input and drink cannot be nil")
	}
	if err := validateDrink(input.Drink); err != nil {
		return err
	}

	d := input.Drink
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO drinks (`+drinkColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, d.ID, d.UserID, d.Name, d.VolumeMl, d.ABV, d.Timestamp.UnixMilli(), d.IsChug, string(d.Type), d.Icon)
	if err != nil {
		return fmt.Errorf("failed to insert drink: %w", err)
	}

	return nil
}

// GetDrink retrieves a single drink owned by a user
func (r *sqliteRepository) GetDrink(ctx context.Context, input *GetDrinkInput) (*models.Drink, error) {
	if input == nil || input.UserID == "" || input.DrinkID == "" {
		return nil, errors.New("input, user ID and drink ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+drinkColumns+`
		FROM drinks
		WHERE id = ? AND user_id = ?
	`, input.DrinkID, input.UserID)

	drink, err := scanDrink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDrinkNotFound
		}
		return nil, fmt.Errorf("failed to get drink: %w", err)
	}

	return drink, nil
}

// GetDrinks retrieves a user's drinks ordered by timestamp
func (r *sqliteRepository) GetDrinks(ctx context.Context, input *GetDrinksInput) (*GetDrinksOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	since := int64(math.MinInt64)
	if !input.Since.IsZero() {
		since = input.Since.UnixMilli()
	}
	until := int64(math.MaxInt64)
	if !input.Until.IsZero() {
		until = input.Until.UnixMilli()
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+drinkColumns+`
		FROM drinks
		WHERE user_id = ? AND timestamp_ms >= ? AND timestamp_ms <= ?
		ORDER BY timestamp_ms, id
	`, input.UserID, since, until)
	if err != nil {
		return nil, fmt.Errorf("failed to query drinks: %w", err)
	}
	defer rows.Close()

	drinks := []*models.Drink{}
	for rows.Next() {
		drink, err := scanDrink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drink: %w", err)
		}
		drinks = append(drinks, drink)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read drinks: %w", err)
	}

	return &GetDrinksOutput{
		Drinks: drinks,
	}, nil
}

// RemoveDrink deletes a single drink from a user's log
func (r *sqliteRepository) RemoveDrink(ctx context.Context, input *RemoveDrinkInput) error {
	if input == nil || input.UserID == "" || input.DrinkID == "" {
		return errors.New("input, user ID and drink ID cannot be empty")
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM drinks WHERE id = ? AND user_id = ?`, input.DrinkID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to remove drink: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove drink: %w", err)
	}
	if affected == 0 {
		return ErrDrinkNotFound
	}

	return nil
}

// ClearDrinks deletes every drink in a user's log
func (r *sqliteRepository) ClearDrinks(ctx context.Context, input *ClearDrinksInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM drinks WHERE user_id = ?`, input.UserID); err != nil {
		return fmt.Errorf("failed to clear drinks: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDrink(row rowScanner) (*models.Drink, error) {
	var (
		drink       models.Drink
		timestampMs int64
		drinkType   string
	)

	if err := row.Scan(
		&drink.ID,
		&drink.UserID,
		&drink.Name,
		&drink.VolumeMl,
		&drink.ABV,
		&timestampMs,
		&drink.IsChug,
		&drinkType,
		&drink.Icon,
	); err != nil {
		return nil, err
	}

	drink.Timestamp = time.UnixMilli(timestampMs).UTC()
	drink.Type = models.DrinkType(drinkType)
	return &drink, nil
}
