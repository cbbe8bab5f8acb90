package drink_log

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/tipsy/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	drinkKeyPrefix      = "drink:"
	userDrinksKeyPrefix = "user_drinks:"
)

// Config holds configuration for the Redis drink log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
// Each drink is a JSON blob; a per-user sorted set scored by unix milliseconds orders the log.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed drink log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddDrink stores a drink in its owner's log
func (r *redisRepository) AddDrink(ctx context.Context, input *AddDrinkInput) error {
	if input == nil {
		return errors.New("input and drink cannot be nil")
	}
	if err := validateDrink(input.Drink); err != nil {
		return err
	}

	drink := input.Drink

	drinkJSON, err := json.Marshal(drink)
	if err != nil {
		return fmt.Errorf("failed to marshal drink: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, drinkKey(drink.ID), drinkJSON, 0)
	pipe.ZAdd(ctx, userDrinksKey(drink.UserID), redis.Z{
		Score:  float64(drink.Timestamp.UnixMilli()),
		Member: drink.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add drink: %w", err)
	}

	return nil
}

// GetDrink retrieves a single drink owned by a user
func (r *redisRepository) GetDrink(ctx context.Context, input *GetDrinkInput) (*models.Drink, error) {
	if input == nil || input.UserID == "" || input.DrinkID == "" {
		return nil, errors.New("input, user ID and drink ID cannot be empty")
	}

	drinkJSON, err := r.client.Get(ctx, drinkKey(input.DrinkID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDrinkNotFound
		}
		return nil, fmt.Errorf("failed to get drink: %w", err)
	}

	var drink models.Drink
	if err := json.Unmarshal([]byte(drinkJSON), &drink); err != nil {
		return nil, fmt.Errorf("failed to unmarshal drink: %w", err)
	}

	// Drinks are only visible to their owner
	if drink.UserID != input.UserID {
		return nil, ErrDrinkNotFound
	}

	return &drink, nil
}

// GetDrinks retrieves a user's drinks ordered by timestamp
func (r *redisRepository) GetDrinks(ctx context.Context, input *GetDrinksInput) (*GetDrinksOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	scoreRange := &redis.ZRangeBy{Min: "-inf", Max: "+inf"}
	if !input.Since.IsZero() {
		scoreRange.Min = strconv.FormatInt(input.Since.UnixMilli(), 10)
	}
	if !input.Until.IsZero() {
		scoreRange.Max = strconv.FormatInt(input.Until.UnixMilli(), 10)
	}

	drinkIDs, err := r.client.ZRangeByScore(ctx, userDrinksKey(input.UserID), scoreRange).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink IDs for user: %w", err)
	}

	if len(drinkIDs) == 0 {
		return &GetDrinksOutput{
			Drinks: []*models.Drink{},
		}, nil
	}

	// Fetch every blob in one round trip, keeping the sorted-set order
	pipe := r.client.Pipeline()
	drinkCommands := make([]*redis.StringCmd, len(drinkIDs))
	for i, drinkID := range drinkIDs {
		drinkCommands[i] = pipe.Get(ctx, drinkKey(drinkID))
	}

	// redis.Nil for a single missing blob is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}

	drinks := make([]*models.Drink, 0, len(drinkIDs))
	for i, cmd := range drinkCommands {
		drinkJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Drink was removed between reading the index and fetching the blob
				continue
			}
			return nil, fmt.Errorf("failed to get drink %s: %w", drinkIDs[i], err)
		}

		var drink models.Drink
		if err := json.Unmarshal([]byte(drinkJSON), &drink); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drink %s: %w", drinkIDs[i], err)
		}

		drinks = append(drinks, &drink)
	}

	return &GetDrinksOutput{
		Drinks: drinks,
	}, nil
}

// RemoveDrink deletes a single drink from a user's log
func (r *redisRepository) RemoveDrink(ctx context.Context, input *RemoveDrinkInput) error {
	if input == nil || input.UserID == "" || input.DrinkID == "" {
		return errors.New("input, user ID and drink ID cannot be empty")
	}

	// Confirms ownership before deleting
	if _, err := r.GetDrink(ctx, &GetDrinkInput{
		UserID:  input.UserID,
		DrinkID: input.DrinkID,
	}); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, drinkKey(input.DrinkID))
	pipe.ZRem(ctx, userDrinksKey(input.UserID), input.DrinkID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove drink: %w", err)
	}

	return nil
}

// ClearDrinks deletes every drink in a user's log
func (r *redisRepository) ClearDrinks(ctx context.Context, input *ClearDrinksInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	key := userDrinksKey(input.UserID)
	drinkIDs, err := r.client.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get drink IDs for user: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, drinkID := range drinkIDs {
		pipe.Del(ctx, drinkKey(drinkID))
	}
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear drinks: %w", err)
	}

	return nil
}

func drinkKey(drinkID string) string {
	return fmt.Sprintf("%s%s", drinkKeyPrefix, drinkID)
}

func userDrinksKey(userID string) string {
	return fmt.Sprintf("%s%s", userDrinksKeyPrefix, userID)
}
