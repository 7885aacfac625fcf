package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound      GameError = "no active game for this session"
	ErrGameFinished      GameError = "game already has a winner"
	ErrRoundNotFound     GameError = "no round at that position"
	ErrRoomNotFound      GameError = "room not found"
	ErrRoomFull          GameError = "room is full"
	ErrStaleState        GameError = "game state changed since last read"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilRoomRepo       GameError = "room repository cannot be nil"
	ErrNilActiveGameRepo GameError = "active game repository cannot be nil"
	ErrNilHistoryRepo    GameError = "history repository cannot be nil"
	ErrNilSettingsRepo   GameError = "settings repository cannot be nil"
	ErrNilEngine         GameError = "scoring engine cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
)
