package models

import (
	"time"
)

// RoomStatus represents the current state of a shared room
type RoomStatus string

const (
	// RoomStatusWaiting indicates a room is waiting for players to claim seats
	RoomStatusWaiting RoomStatus = "waiting"

	// RoomStatusPlaying indicates a game is in progress
	RoomStatusPlaying RoomStatus = "playing"

	// RoomStatusFinished indicates the room's game has a winner
	RoomStatusFinished RoomStatus = "finished"
)

// Room is a shared scoreboard that several devices mutate and poll. The
// room's state is replaced wholesale on every write; State.Version is the
// stale-write guard.
type Room struct {
	// ID is the join code players type in, a 6 digit string
	ID string `json:"room_id"`

	// HostID is the device that created the room
	HostID string `json:"host_id"`

	// Status is the current state of the room
	Status RoomStatus `json:"status"`

	// State is the shared game snapshot
	State *GameState `json:"state"`

	// CreatedAt is when the room was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the room was last written
	UpdatedAt time.Time `json:"updated_at"`
}
