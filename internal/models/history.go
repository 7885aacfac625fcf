package models

import (
	"time"
)

// HistoryPlayer is one player's final line in a finished game
type HistoryPlayer struct {
	// Name is the player's display name at the time the game ended
	Name string `json:"name"`

	// Score is the player's final cumulative score
	Score int `json:"score"`

	// Settlement is the player's net payment in price units, positive
	// for receivers and negative for payers
	Settlement int `json:"settlement"`
}

// HistoryRecord is an append-only record of one finished game
type HistoryRecord struct {
	// ID is assigned by the store on insert
	ID int64 `json:"id"`

	// DeviceID is the device the game belongs to
	DeviceID string `json:"device_id"`

	// Winner is the display name of the winning player
	Winner string `json:"winner"`

	// Rounds is the number of round entries the game took
	Rounds int `json:"rounds"`

	// Players holds the final line for each slot
	Players [NumPlayers]HistoryPlayer `json:"players"`

	// Date is when the game finished
	Date time.Time `json:"date"`
}
