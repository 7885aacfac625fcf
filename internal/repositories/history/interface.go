package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/panuwat-oat/dummy-calculator/internal/repositories/history Repository

import (
	"context"
)

// Repository defines the interface for finished-game history persistence
type Repository interface {
	// AppendGame records one finished game
	AppendGame(ctx context.Context, input *AppendGameInput) error

	// ListGames retrieves a device's finished games, newest first
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// ClearGames deletes all of a device's finished games
	ClearGames(ctx context.Context, input *ClearGamesInput) error
}
