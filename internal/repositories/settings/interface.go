package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/panuwat-oat/dummy-calculator/internal/repositories/settings Repository

import (
	"context"
)

// Repository defines the interface for per-device settings persistence
type Repository interface {
	// SaveLastPlayerNames upserts the names a device last played with
	SaveLastPlayerNames(ctx context.Context, input *SaveLastPlayerNamesInput) error

	// GetLastPlayerNames retrieves the names a device last played with
	GetLastPlayerNames(ctx context.Context, input *GetLastPlayerNamesInput) (*GetLastPlayerNamesOutput, error)
}
