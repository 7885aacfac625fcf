package game

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/sirupsen/logrus"

	"github.com/panuwat-oat/dummy-calculator/internal/common/clock"
	"github.com/panuwat-oat/dummy-calculator/internal/common/uuid"
	"github.com/panuwat-oat/dummy-calculator/internal/models"
	activeGameRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/active_game"
	historyRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/history"
	roomRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/room"
	settingsRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/settings"
	"github.com/panuwat-oat/dummy-calculator/internal/scoring"
)

// createRoomAttempts bounds the retries when a generated join code collides
const createRoomAttempts = 5

// service implements the Service interface
type service struct {
	roomRepo       roomRepo.Repository
	activeGameRepo activeGameRepo.Repository
	historyRepo    historyRepo.Repository
	settingsRepo   settingsRepo.Repository
	engine         *scoring.Engine
	clock          clock.Clock
	uuidGenerator  uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}
	if cfg.ActiveGameRepo == nil {
		return nil, ErrNilActiveGameRepo
	}
	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}
	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		roomRepo:       cfg.RoomRepo,
		activeGameRepo: cfg.ActiveGameRepo,
		historyRepo:    cfg.HistoryRepo,
		settingsRepo:   cfg.SettingsRepo,
		engine:         cfg.Engine,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
	}, nil
}

// loadedGame carries a snapshot together with where it came from and the
// version it had at load time, so the save can reject stale room writes.
type loadedGame struct {
	state   *models.GameState
	room    *models.Room // nil for single-device play
	version int64
}

// loadGame fetches the session's game from the room store or the device's
// active game store.
func (s *service) loadGame(ctx context.Context, session Session) (*loadedGame, error) {
	if session.RoomID != "" {
		room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
			RoomID: session.RoomID,
		})
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, fmt.Errorf("failed to load room: %w", err)
		}
		return &loadedGame{
			state:   room.State,
			room:    room,
			version: room.State.Version,
		}, nil
	}

	active, err := s.activeGameRepo.GetActiveGame(ctx, &activeGameRepo.GetActiveGameInput{
		DeviceID: session.DeviceID,
	})
	if err != nil {
		if errors.Is(err, activeGameRepo.ErrActiveGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load active game: %w", err)
	}
	if !active.Active {
		return nil, ErrGameNotFound
	}

	return &loadedGame{
		state:   active.State,
		version: active.State.Version,
	}, nil
}

// saveGame writes the mutated snapshot back. Room writes carry the version
// guard and surface ErrStaleState so a clobbered writer can re-fetch; plain
// store outages are logged and swallowed, because the in-memory mutation
// already happened and must not be rolled back.
func (s *service) saveGame(ctx context.Context, session Session, game *loadedGame) error {
	game.state.Version = game.version + 1

	if game.room != nil {
		game.room.State = game.state
		game.room.Status = roomStatusFor(game.state)
		game.room.UpdatedAt = s.clock.Now()

		err := s.roomRepo.UpdateRoom(ctx, &roomRepo.UpdateRoomInput{
			Room:            game.room,
			ExpectedVersion: game.version,
		})
		if err != nil {
			if errors.Is(err, roomRepo.ErrStaleVersion) {
				return ErrStaleState
			}
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			logrus.WithError(err).WithField("room_id", game.room.ID).
				Warn("failed to save room state")
		}
		return nil
	}

	err := s.activeGameRepo.SaveActiveGame(ctx, &activeGameRepo.SaveActiveGameInput{
		ActiveGame: &models.ActiveGame{
			DeviceID:  session.DeviceID,
			Active:    true,
			State:     game.state,
			UpdatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		logrus.WithError(err).WithField("device_id", session.DeviceID).
			Warn("failed to save game snapshot")
	}
	return nil
}

func roomStatusFor(state *models.GameState) models.RoomStatus {
	switch {
	case state.Finished():
		return models.RoomStatusFinished
	case state.RoundCount() > 0:
		return models.RoomStatusPlaying
	default:
		return models.RoomStatusWaiting
	}
}

// StartGame begins a fresh game for a device
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Session.DeviceID == "" {
		return nil, errors.New("device ID is required")
	}

	names := input.PlayerNames
	if namesEmpty(names) {
		// Fall back to the device's last-used table
		saved, err := s.settingsRepo.GetLastPlayerNames(ctx, &settingsRepo.GetLastPlayerNamesInput{
			DeviceID: input.Session.DeviceID,
		})
		if err == nil {
			names = saved.PlayerNames
		}
	}

	// A solo table has no joiners, so an unnamed seat gets a default
	for i, name := range names {
		if name == "" {
			names[i] = fmt.Sprintf("Player %d", i+1)
		}
	}

	state := models.NewGameState(names)

	err := s.activeGameRepo.SaveActiveGame(ctx, &activeGameRepo.SaveActiveGameInput{
		ActiveGame: &models.ActiveGame{
			DeviceID:  input.Session.DeviceID,
			Active:    true,
			State:     state,
			UpdatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save new game: %w", err)
	}

	s.rememberNames(ctx, input.Session.DeviceID, names)

	return &StartGameOutput{State: state}, nil
}

// GetGame retrieves the current game snapshot for a session
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{State: game.state}, nil
}

// RecordRound appends one round of deltas, updates the cumulative scores
// and checks for a win. On a win the finished game is appended to the
// device's history; history store failures are logged, never surfaced.
func (s *service) RecordRound(ctx context.Context, input *RecordRoundInput) (*RecordRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	if game.state.Finished() {
		return nil, ErrGameFinished
	}

	result := s.engine.AppendRound(game.state, input.Deltas)

	if err := s.saveGame(ctx, input.Session, game); err != nil {
		return nil, err
	}

	output := &RecordRoundOutput{
		State:      game.state,
		WinnerSlot: result.WinnerSlot,
	}

	if result.WinnerSlot >= 0 {
		output.Won = true
		output.Settlement = result.Settlement
		s.recordFinishedGame(ctx, input.Session.DeviceID, game.state, result)
	}

	return output, nil
}

// recordFinishedGame appends the finished game to the history store.
// Fire and forget: a history outage never blocks the table.
func (s *service) recordFinishedGame(ctx context.Context, deviceID string, state *models.GameState, result *scoring.RoundResult) {
	record := &models.HistoryRecord{
		DeviceID: deviceID,
		Winner:   state.WinnerName(),
		Rounds:   state.RoundCount(),
		Date:     s.clock.Now(),
	}
	for i := range record.Players {
		record.Players[i] = models.HistoryPlayer{
			Name:       state.PlayerNames[i],
			Score:      state.Scores[i],
			Settlement: result.Settlement[i],
		}
	}

	err := s.historyRepo.AppendGame(ctx, &historyRepo.AppendGameInput{
		Record: record,
	})
	if err != nil {
		logrus.WithError(err).WithField("device_id", deviceID).
			Warn("failed to record finished game")
	}
}

// UndoRound removes the most recent round. Undoing an empty ledger is a
// no-op that still returns the current snapshot.
func (s *service) UndoRound(ctx context.Context, input *UndoRoundInput) (*UndoRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	s.engine.UndoLastRound(game.state)

	if err := s.saveGame(ctx, input.Session, game); err != nil {
		return nil, err
	}

	return &UndoRoundOutput{State: game.state}, nil
}

// EditRound corrects an earlier round in place and replays the ledger
func (s *service) EditRound(ctx context.Context, input *EditRoundInput) (*EditRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	if input.Position < 0 || input.Position >= game.state.RoundCount() {
		return nil, ErrRoundNotFound
	}

	s.engine.EditRound(game.state, input.Position, input.Deltas)

	if err := s.saveGame(ctx, input.Session, game); err != nil {
		return nil, err
	}

	return &EditRoundOutput{State: game.state}, nil
}

// ResetGame clears the ledger back to four zero scores, keeping names
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	s.engine.Reset(game.state)

	if err := s.saveGame(ctx, input.Session, game); err != nil {
		return nil, err
	}

	return &ResetGameOutput{State: game.state}, nil
}

// RenamePlayers changes the table's names. A changed table always starts
// a fresh ledger.
func (s *service) RenamePlayers(ctx context.Context, input *RenamePlayersInput) (*RenamePlayersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	for _, name := range input.PlayerNames {
		if name == "" {
			return nil, errors.New("player names cannot be empty")
		}
	}

	game, err := s.loadGame(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	game.state.PlayerNames = input.PlayerNames
	s.engine.Reset(game.state)

	if err := s.saveGame(ctx, input.Session, game); err != nil {
		return nil, err
	}

	s.rememberNames(ctx, input.Session.DeviceID, input.PlayerNames)

	return &RenamePlayersOutput{State: game.state}, nil
}

// EndGame abandons a session's game: the device snapshot is flipped
// inactive, or the room is deleted.
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Session.RoomID != "" {
		err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{
			RoomID: input.Session.RoomID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to delete room: %w", err)
		}
		return &EndGameOutput{Success: true}, nil
	}

	err := s.activeGameRepo.ClearActiveGame(ctx, &activeGameRepo.ClearActiveGameInput{
		DeviceID: input.Session.DeviceID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear active game: %w", err)
	}

	return &EndGameOutput{Success: true}, nil
}

// GetStatistics derives per-player round statistics for a session
func (s *service) GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.loadGame(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	return &GetStatisticsOutput{
		Stats: s.engine.Statistics(game.state),
	}, nil
}

// CreateRoom opens a shared room seeded with the host's table
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.DeviceID == "" {
		return nil, errors.New("device ID is required")
	}

	now := s.clock.Now()

	var room *models.Room
	for attempt := 0; attempt < createRoomAttempts; attempt++ {
		room = &models.Room{
			ID:        s.newRoomCode(),
			HostID:    input.DeviceID,
			Status:    models.RoomStatusWaiting,
			State:     models.NewGameState(input.PlayerNames),
			CreatedAt: now,
			UpdatedAt: now,
		}

		err := s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{
			Room: room,
		})
		if err == nil {
			return &CreateRoomOutput{Room: room}, nil
		}
		if !errors.Is(err, roomRepo.ErrRoomExists) {
			return nil, fmt.Errorf("failed to create room: %w", err)
		}
	}

	return nil, errors.New("could not find a free room code")
}

// newRoomCode derives a 6 digit join code from a fresh UUID
func (s *service) newRoomCode() string {
	h := fnv.New32a()
	h.Write([]byte(s.uuidGenerator.NewUUID()))
	return fmt.Sprintf("%06d", 100000+h.Sum32()%900000)
}

// JoinRoom claims a seat in a room. Joining again under a name already at
// the table succeeds idempotently with the existing seat.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.PlayerName == "" {
		return nil, errors.New("player name is required")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	// Already seated under this name: nothing to write
	for slot, name := range room.State.PlayerNames {
		if name == input.PlayerName {
			return &JoinRoomOutput{
				Room:          room,
				Slot:          slot,
				AlreadyJoined: true,
			}, nil
		}
	}

	seat := -1
	for slot, name := range room.State.PlayerNames {
		if name == "" {
			seat = slot
			break
		}
	}
	if seat < 0 {
		return nil, ErrRoomFull
	}

	version := room.State.Version
	room.State.PlayerNames[seat] = input.PlayerName
	room.State.Version = version + 1
	room.UpdatedAt = s.clock.Now()

	err = s.roomRepo.UpdateRoom(ctx, &roomRepo.UpdateRoomInput{
		Room:            room,
		ExpectedVersion: version,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrStaleVersion) {
			return nil, ErrStaleState
		}
		return nil, fmt.Errorf("failed to join room: %w", err)
	}

	return &JoinRoomOutput{
		Room: room,
		Slot: seat,
	}, nil
}

// LeaveRoom gives up a seat. The room is deleted once its last seat empties.
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	occupied := 0
	vacated := false
	for slot, name := range room.State.PlayerNames {
		if name == input.PlayerName {
			room.State.PlayerNames[slot] = ""
			vacated = true
		} else if name != "" {
			occupied++
		}
	}

	// An unknown name holds no seat; nothing to write
	if !vacated {
		return &LeaveRoomOutput{}, nil
	}

	if occupied == 0 {
		err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{
			RoomID: input.RoomID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to delete room: %w", err)
		}
		return &LeaveRoomOutput{RoomDeleted: true}, nil
	}

	version := room.State.Version
	room.State.Version = version + 1
	room.UpdatedAt = s.clock.Now()

	err = s.roomRepo.UpdateRoom(ctx, &roomRepo.UpdateRoomInput{
		Room:            room,
		ExpectedVersion: version,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrStaleVersion) {
			return nil, ErrStaleState
		}
		return nil, fmt.Errorf("failed to leave room: %w", err)
	}

	return &LeaveRoomOutput{}, nil
}

// GetRoom retrieves a room by its join code
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &GetRoomOutput{Room: room}, nil
}

// GetHistory lists a device's finished games, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.historyRepo.ListGames(ctx, &historyRepo.ListGamesInput{
		DeviceID: input.DeviceID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return &GetHistoryOutput{Records: out.Records}, nil
}

// ClearHistory deletes a device's finished games
func (s *service) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := s.historyRepo.ClearGames(ctx, &historyRepo.ClearGamesInput{
		DeviceID: input.DeviceID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear history: %w", err)
	}

	return &ClearHistoryOutput{Success: true}, nil
}

// GetLastPlayerNames retrieves the names a device last played with
func (s *service) GetLastPlayerNames(ctx context.Context, input *GetLastPlayerNamesInput) (*GetLastPlayerNamesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.settingsRepo.GetLastPlayerNames(ctx, &settingsRepo.GetLastPlayerNamesInput{
		DeviceID: input.DeviceID,
	})
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return &GetLastPlayerNamesOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &GetLastPlayerNamesOutput{
		PlayerNames: out.PlayerNames,
		Found:       true,
	}, nil
}

// SaveLastPlayerNames stores the names a device last played with
func (s *service) SaveLastPlayerNames(ctx context.Context, input *SaveLastPlayerNamesInput) (*SaveLastPlayerNamesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	for _, name := range input.PlayerNames {
		if name == "" {
			return nil, errors.New("player names cannot be empty")
		}
	}

	err := s.settingsRepo.SaveLastPlayerNames(ctx, &settingsRepo.SaveLastPlayerNamesInput{
		DeviceID:    input.DeviceID,
		PlayerNames: input.PlayerNames,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &SaveLastPlayerNamesOutput{Success: true}, nil
}

// rememberNames saves the device's table for next time. Best effort.
func (s *service) rememberNames(ctx context.Context, deviceID string, names [models.NumPlayers]string) {
	err := s.settingsRepo.SaveLastPlayerNames(ctx, &settingsRepo.SaveLastPlayerNamesInput{
		DeviceID:    deviceID,
		PlayerNames: names,
	})
	if err != nil {
		logrus.WithError(err).WithField("device_id", deviceID).
			Warn("failed to save last player names")
	}
}

func namesEmpty(names [models.NumPlayers]string) bool {
	for _, name := range names {
		if name != "" {
			return false
		}
	}
	return true
}
