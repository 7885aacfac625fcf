package active_game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
)

const (
	// Key prefix for Redis
	activeGameKeyPrefix = "active_game:"
)

// ErrActiveGameNotFound is returned when a device has no saved snapshot
var ErrActiveGameNotFound = errors.New("active game not found")

// Config holds configuration for the Redis active game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed active game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveActiveGame upserts a device's snapshot to Redis
func (r *redisRepository) SaveActiveGame(ctx context.Context, input *SaveActiveGameInput) error {
	if input == nil || input.ActiveGame == nil {
		return errors.New("input and active game cannot be nil")
	}

	if input.ActiveGame.DeviceID == "" {
		return errors.New("device ID cannot be empty")
	}

	gameJSON, err := json.Marshal(input.ActiveGame)
	if err != nil {
		return fmt.Errorf("failed to marshal active game: %w", err)
	}

	gameKey := fmt.Sprintf("%s%s", activeGameKeyPrefix, input.ActiveGame.DeviceID)
	if err := r.client.Set(ctx, gameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save active game: %w", err)
	}

	return nil
}

// GetActiveGame retrieves a device's snapshot from Redis
func (r *redisRepository) GetActiveGame(ctx context.Context, input *GetActiveGameInput) (*models.ActiveGame, error) {
	if input == nil || input.DeviceID == "" {
		return nil, errors.New("input and device ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", activeGameKeyPrefix, input.DeviceID)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrActiveGameNotFound
		}
		return nil, fmt.Errorf("failed to get active game: %w", err)
	}

	var game models.ActiveGame
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal active game: %w", err)
	}

	return &game, nil
}

// ClearActiveGame flips a device's snapshot inactive. The record is kept,
// matching the soft delete the snapshot store has always used. Clearing a
// device with no snapshot is a no-op.
func (r *redisRepository) ClearActiveGame(ctx context.Context, input *ClearActiveGameInput) error {
	if input == nil || input.DeviceID == "" {
		return errors.New("input and device ID cannot be empty")
	}

	game, err := r.GetActiveGame(ctx, &GetActiveGameInput{DeviceID: input.DeviceID})
	if err != nil {
		if errors.Is(err, ErrActiveGameNotFound) {
			return nil
		}
		return err
	}

	game.Active = false

	return r.SaveActiveGame(ctx, &SaveActiveGameInput{ActiveGame: game})
}
