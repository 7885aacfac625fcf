package active_game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/panuwat-oat/dummy-calculator/internal/repositories/active_game Repository

import (
	"context"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
)

// Repository defines the interface for active game snapshot persistence
type Repository interface {
	// SaveActiveGame upserts a device's active game snapshot
	SaveActiveGame(ctx context.Context, input *SaveActiveGameInput) error

	// GetActiveGame retrieves a device's active game snapshot
	GetActiveGame(ctx context.Context, input *GetActiveGameInput) (*models.ActiveGame, error)

	// ClearActiveGame marks a device's snapshot inactive
	ClearActiveGame(ctx context.Context, input *ClearActiveGameInput) error
}
