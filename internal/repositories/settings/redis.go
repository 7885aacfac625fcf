package settings

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
	settingsKeyPrefix = "settings:"
)

// ErrSettingsNotFound is returned when a device has no saved settings
var ErrSettingsNotFound = errors.New("settings not found")

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
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

// SaveLastPlayerNames upserts a device's last-used player names to Redis
func (r *redisRepository) SaveLastPlayerNames(ctx context.Context, input *SaveLastPlayerNamesInput) error {
	if input == nil || input.DeviceID == "" {
		return errors.New("input and device ID cannot be empty")
	}

	namesJSON, err := json.Marshal(input.PlayerNames)
	if err != nil {
		return fmt.Errorf("failed to marshal player names: %w", err)
	}

	settingsKey := fmt.Sprintf("%s%s", settingsKeyPrefix, input.DeviceID)
	if err := r.client.Set(ctx, settingsKey, namesJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetLastPlayerNames retrieves a device's last-used player names from Redis
func (r *redisRepository) GetLastPlayerNames(ctx context.Context, input *GetLastPlayerNamesInput) (*GetLastPlayerNamesOutput, error) {
	if input == nil || input.DeviceID == "" {
		return nil, errors.New("input and device ID cannot be empty")
	}

	settingsKey := fmt.Sprintf("%s%s", settingsKeyPrefix, input.DeviceID)
	namesJSON, err := r.client.Get(ctx, settingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var names [models.NumPlayers]string
	if err := json.Unmarshal([]byte(namesJSON), &names); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player names: %w", err)
	}

	return &GetLastPlayerNamesOutput{
		PlayerNames: names,
	}, nil
}
