package models

import (
	"time"
)

// ActiveGame is the per-device snapshot of a game in progress, used to
// restore play after a reload. One record per device; clearing flips
// Active off instead of deleting so the row keeps its history.
type ActiveGame struct {
	// DeviceID identifies the owning device
	DeviceID string `json:"device_id"`

	// Active is false once the game has been finished or abandoned
	Active bool `json:"active"`

	// State is the saved game snapshot
	State *GameState `json:"state"`

	// UpdatedAt is when the snapshot was last written
	UpdatedAt time.Time `json:"updated_at"`
}
