package room

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
	roomKeyPrefix = "room:"
)

var (
	// ErrRoomNotFound is returned when a room is not found
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomExists is returned when creating a room whose code is taken
	ErrRoomExists = errors.New("room already exists")

	// ErrStaleVersion is returned when an update carries a version the
	// store has already moved past
	ErrStaleVersion = errors.New("room state has changed since last read")
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
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

// CreateRoom persists a new room to Redis
func (r *redisRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	if input.Room.ID == "" {
		return errors.New("room ID cannot be empty")
	}

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Room.ID)
	created, err := r.client.SetNX(ctx, roomKey, roomJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	if !created {
		return ErrRoomExists
	}

	return nil
}

// GetRoom retrieves a room by its join code from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	roomJSON, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// UpdateRoom replaces a room's state in Redis. The stored version is
// checked against the writer's expected version inside a WATCH
// transaction, so two devices racing within the same poll window cannot
// silently clobber one another: the late writer gets ErrStaleVersion and
// must re-fetch.
func (r *redisRepository) UpdateRoom(ctx context.Context, input *UpdateRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Room.ID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		currentJSON, err := tx.Get(ctx, roomKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to get room: %w", err)
		}

		var current models.Room
		if err := json.Unmarshal([]byte(currentJSON), &current); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}

		if current.State != nil && current.State.Version != input.ExpectedVersion {
			return ErrStaleVersion
		}

		roomJSON, err := json.Marshal(input.Room)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, roomKey, roomJSON, 0)
			return nil
		})
		return err
	}, roomKey)

	if err != nil {
		if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrStaleVersion) {
			return err
		}
		if err == redis.TxFailedErr {
			return ErrStaleVersion
		}
		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

// DeleteRoom removes a room from Redis
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	if err := r.client.Del(ctx, roomKey).Err(); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}
