package httpapi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
)

// startGameRequest is the body of POST /active.
type startGameRequest struct {
	DeviceID    string                    `json:"device_id"`
	PlayerNames [models.NumPlayers]string `json:"player_names"`
}

// roundRequest is the body of POST /game/round. Deltas arrive as raw
// strings straight from the client's input fields and are validated
// here before anything touches the ledger.
type roundRequest struct {
	DeviceID string   `json:"device_id"`
	RoomID   string   `json:"room_id"`
	Deltas   []string `json:"deltas"`
}

// sessionRequest is the body of the game actions that need no payload
// beyond identifying whose game is meant.
type sessionRequest struct {
	DeviceID string `json:"device_id"`
	RoomID   string `json:"room_id"`
}

// editRoundRequest is the body of POST /game/edit.
type editRoundRequest struct {
	DeviceID string   `json:"device_id"`
	RoomID   string   `json:"room_id"`
	Position int      `json:"position"`
	Deltas   []string `json:"deltas"`
}

// renamePlayersRequest is the body of POST /game/players and PUT /room/:id.
type renamePlayersRequest struct {
	DeviceID    string                    `json:"device_id"`
	RoomID      string                    `json:"room_id"`
	PlayerNames [models.NumPlayers]string `json:"player_names"`
}

// createRoomRequest is the body of POST /room.
type createRoomRequest struct {
	DeviceID    string                    `json:"device_id"`
	PlayerNames [models.NumPlayers]string `json:"player_names"`
}

// joinRoomRequest is the body of POST /room/:id/join.
type joinRoomRequest struct {
	DeviceID   string `json:"device_id"`
	PlayerName string `json:"player_name"`
}

// leaveRoomRequest is the body of POST /room/:id/leave.
type leaveRoomRequest struct {
	PlayerName string `json:"player_name"`
}

// settingsRequest is the body of POST /settings.
type settingsRequest struct {
	DeviceID    string                    `json:"device_id"`
	PlayerNames [models.NumPlayers]string `json:"player_names"`
}

// roundResponse is returned by POST /game/round.
type roundResponse struct {
	State      *models.GameState      `json:"state"`
	Won        bool                   `json:"won"`
	WinnerSlot int                    `json:"winner_slot"`
	Settlement [models.NumPlayers]int `json:"settlement"`
}

// stateResponse wraps a bare game snapshot.
type stateResponse struct {
	State *models.GameState `json:"state"`
}

// joinRoomResponse is returned by POST /room/:id/join.
type joinRoomResponse struct {
	Room          *models.Room `json:"room"`
	Slot          int          `json:"slot"`
	AlreadyJoined bool         `json:"already_joined"`
}

// leaveRoomResponse is returned by POST /room/:id/leave.
type leaveRoomResponse struct {
	RoomDeleted bool `json:"room_deleted"`
}

// statsResponse is returned by GET /game/stats.
type statsResponse struct {
	Stats [models.NumPlayers]models.PlayerStats `json:"stats"`
}

// historyResponse is returned by GET /history.
type historyResponse struct {
	Records []*models.HistoryRecord `json:"records"`
}

// settingsResponse is returned by GET /settings.
type settingsResponse struct {
	PlayerNames [models.NumPlayers]string `json:"player_names"`
	Found       bool                      `json:"found"`
}

// statusResponse acknowledges an operation with no payload.
type statusResponse struct {
	Success bool `json:"success"`
}

// parseDeltas validates one round of raw score inputs. Every slot must
// hold a parseable integer; a short, long, or non-numeric row is
// rejected whole so a typo never half-applies.
func parseDeltas(raw []string) ([models.NumPlayers]int, error) {
	var deltas [models.NumPlayers]int
	if len(raw) != models.NumPlayers {
		return deltas, fmt.Errorf("expected %d deltas, got %d", models.NumPlayers, len(raw))
	}
	for i, field := range raw {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return deltas, fmt.Errorf("delta for slot %d is not a number: %q", i, field)
		}
		deltas[i] = value
	}
	return deltas, nil
}
