package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/panuwat-oat/dummy-calculator/internal/services/game Service

// Service defines the interface for game operations
type Service interface {
	// StartGame begins a fresh game for a device
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// GetGame retrieves the current game snapshot for a session
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// RecordRound appends one round of deltas and reports a win if one occurred
	RecordRound(ctx context.Context, input *RecordRoundInput) (*RecordRoundOutput, error)

	// UndoRound removes the most recent round
	UndoRound(ctx context.Context, input *UndoRoundInput) (*UndoRoundOutput, error)

	// EditRound corrects an earlier round in place
	EditRound(ctx context.Context, input *EditRoundInput) (*EditRoundOutput, error)

	// ResetGame clears the ledger back to four zero scores
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// RenamePlayers changes the table's names, starting a fresh ledger
	RenamePlayers(ctx context.Context, input *RenamePlayersInput) (*RenamePlayersOutput, error)

	// EndGame abandons a session's game
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// GetStatistics derives per-player round statistics
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error)

	// CreateRoom opens a shared room with a fresh game
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom claims a seat in a room, idempotently for a known name
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// LeaveRoom gives up a seat, deleting the room when it empties
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)

	// GetRoom retrieves a room by its join code
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// GetHistory lists a device's finished games, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// ClearHistory deletes a device's finished games
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// GetLastPlayerNames retrieves the names a device last played with
	GetLastPlayerNames(ctx context.Context, input *GetLastPlayerNamesInput) (*GetLastPlayerNamesOutput, error)

	// SaveLastPlayerNames stores the names a device last played with
	SaveLastPlayerNames(ctx context.Context, input *SaveLastPlayerNamesInput) (*SaveLastPlayerNamesOutput, error)
}
