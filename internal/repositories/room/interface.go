package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/panuwat-oat/dummy-calculator/internal/repositories/room Repository

import (
	"context"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
)

// Repository defines the interface for room data persistence
type Repository interface {
	// CreateRoom persists a new room, failing if the room code is taken
	CreateRoom(ctx context.Context, input *CreateRoomInput) error

	// GetRoom retrieves a room by its join code
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// UpdateRoom replaces a room's state, rejecting stale writers
	UpdateRoom(ctx context.Context, input *UpdateRoomInput) error

	// DeleteRoom removes a room
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error
}
