package game

import (
	"github.com/panuwat-oat/dummy-calculator/internal/common/clock"
	"github.com/panuwat-oat/dummy-calculator/internal/common/uuid"
	"github.com/panuwat-oat/dummy-calculator/internal/models"
	activeGameRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/active_game"
	historyRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/history"
	roomRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/room"
	settingsRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/settings"
	"github.com/panuwat-oat/dummy-calculator/internal/scoring"
)

// Session identifies whose game an operation targets. Every call carries
// one explicitly; the service holds no notion of a current device or
// current room.
type Session struct {
	// DeviceID identifies the calling device
	DeviceID string

	// RoomID is the shared room code, empty for single-device play
	RoomID string
}

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	RoomRepo       roomRepo.Repository
	ActiveGameRepo activeGameRepo.Repository
	HistoryRepo    historyRepo.Repository
	SettingsRepo   settingsRepo.Repository

	// Service dependencies
	Engine        *scoring.Engine
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartGameInput contains parameters for starting a fresh game
type StartGameInput struct {
	// Session identifies the caller
	Session Session

	// PlayerNames seats the table. When all four are empty the device's
	// last-used names are looked up instead.
	PlayerNames [models.NumPlayers]string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	// State is the fresh game snapshot
	State *models.GameState
}

// GetGameInput contains parameters for fetching the current game
type GetGameInput struct {
	Session Session
}

// GetGameOutput contains the current game snapshot
type GetGameOutput struct {
	State *models.GameState
}

// RecordRoundInput contains one round of raw deltas. The deltas must
// already be clean integers; input parsing is the API boundary's job.
type RecordRoundInput struct {
	Session Session

	// Deltas is the raw score change per slot for this round
	Deltas [models.NumPlayers]int
}

// RecordRoundOutput contains the result of recording a round
type RecordRoundOutput struct {
	// State is the updated game snapshot
	State *models.GameState

	// Won reports whether this round produced a winner
	Won bool

	// WinnerSlot is the winning slot index, only meaningful when Won
	WinnerSlot int

	// Settlement is the net payment per slot, only meaningful when Won
	Settlement [models.NumPlayers]int
}

// UndoRoundInput contains parameters for undoing the last round
type UndoRoundInput struct {
	Session Session
}

// UndoRoundOutput contains the replayed game snapshot
type UndoRoundOutput struct {
	State *models.GameState
}

// EditRoundInput contains parameters for correcting an earlier round
type EditRoundInput struct {
	Session Session

	// Position indexes the round entries only, zero-based
	Position int

	// Deltas replaces the round's tuple
	Deltas [models.NumPlayers]int
}

// EditRoundOutput contains the replayed game snapshot
type EditRoundOutput struct {
	State *models.GameState
}

// ResetGameInput contains parameters for resetting the ledger
type ResetGameInput struct {
	Session Session
}

// ResetGameOutput contains the cleared game snapshot
type ResetGameOutput struct {
	State *models.GameState
}

// RenamePlayersInput contains the table's new names. Changing players
// starts a fresh ledger.
type RenamePlayersInput struct {
	Session Session

	PlayerNames [models.NumPlayers]string
}

// RenamePlayersOutput contains the fresh game snapshot
type RenamePlayersOutput struct {
	State *models.GameState
}

// EndGameInput contains parameters for abandoning a game
type EndGameInput struct {
	Session Session
}

// EndGameOutput contains the result of abandoning a game
type EndGameOutput struct {
	Success bool
}

// GetStatisticsInput contains parameters for deriving statistics
type GetStatisticsInput struct {
	Session Session
}

// GetStatisticsOutput contains per-slot round statistics
type GetStatisticsOutput struct {
	Stats [models.NumPlayers]models.PlayerStats
}

// CreateRoomInput contains parameters for opening a shared room
type CreateRoomInput struct {
	// DeviceID is the host device
	DeviceID string

	// PlayerNames seeds the table; empty slots wait for joiners
	PlayerNames [models.NumPlayers]string
}

// CreateRoomOutput contains the created room
type CreateRoomOutput struct {
	Room *models.Room
}

// JoinRoomInput contains parameters for claiming a seat
type JoinRoomInput struct {
	// RoomID is the join code
	RoomID string

	// DeviceID is the joining device
	DeviceID string

	// PlayerName is the display name to seat
	PlayerName string
}

// JoinRoomOutput contains the result of joining
type JoinRoomOutput struct {
	// Room is the room after joining
	Room *models.Room

	// Slot is the seat the player holds
	Slot int

	// AlreadyJoined reports an idempotent rejoin under a known name
	AlreadyJoined bool
}

// LeaveRoomInput contains parameters for giving up a seat
type LeaveRoomInput struct {
	RoomID string

	PlayerName string
}

// LeaveRoomOutput contains the result of leaving
type LeaveRoomOutput struct {
	// RoomDeleted reports that the last seat emptied and the room is gone
	RoomDeleted bool
}

// GetRoomInput contains parameters for fetching a room
type GetRoomInput struct {
	RoomID string
}

// GetRoomOutput contains the fetched room
type GetRoomOutput struct {
	Room *models.Room
}

// GetHistoryInput contains parameters for listing finished games
type GetHistoryInput struct {
	DeviceID string
}

// GetHistoryOutput contains a device's finished games, newest first
type GetHistoryOutput struct {
	Records []*models.HistoryRecord
}

// ClearHistoryInput contains parameters for deleting finished games
type ClearHistoryInput struct {
	DeviceID string
}

// ClearHistoryOutput contains the result of clearing history
type ClearHistoryOutput struct {
	Success bool
}

// GetLastPlayerNamesInput contains parameters for fetching saved names
type GetLastPlayerNamesInput struct {
	DeviceID string
}

// GetLastPlayerNamesOutput contains the saved names, if any
type GetLastPlayerNamesOutput struct {
	PlayerNames [models.NumPlayers]string

	// Found is false when the device has never saved names
	Found bool
}

// SaveLastPlayerNamesInput contains the names to save
type SaveLastPlayerNamesInput struct {
	DeviceID string

	PlayerNames [models.NumPlayers]string
}

// SaveLastPlayerNamesOutput contains the result of saving names
type SaveLastPlayerNamesOutput struct {
	Success bool
}
