package models

// NumPlayers is the fixed table size for Dummy. The whole system assumes
// exactly four seats; this is a hard constant, not a tunable.
const NumPlayers = 4

// EntryType identifies the kind of a ledger entry
type EntryType string

const (
	// EntryRound is a raw per-round score delta entered by the players
	EntryRound EntryType = "round"

	// EntryPriceUnits is the derived tong count per player, recorded once
	// immediately after the round that triggered a win
	EntryPriceUnits EntryType = "price_units"

	// EntrySettlement is the derived net payment per player, recorded once
	// immediately after the price_units entry
	EntrySettlement EntryType = "settlement"
)

// LedgerEntry is a single row of the game log
type LedgerEntry struct {
	// Type is the kind of entry
	Type EntryType `json:"type"`

	// Values holds one signed value per player slot
	Values [NumPlayers]int `json:"values"`
}

// GameState is the full snapshot of a game in progress. It is the unit of
// persistence for both single-device play and shared rooms: every mutation
// writes the whole snapshot, and room participants replace theirs wholesale.
type GameState struct {
	// PlayerNames holds the display name for each slot
	PlayerNames [NumPlayers]string `json:"player_names"`

	// Scores holds the cumulative score for each slot. Always equal to the
	// elementwise sum of the round entries in Log.
	Scores [NumPlayers]int `json:"scores"`

	// Log is the append-only ledger, in chronological order
	Log []LedgerEntry `json:"log"`

	// WinnerSlot is the index of the winning seat, -1 while the game is
	// still running. The designation is the slot, not the name: seats may
	// legitimately be unnamed while a room is still filling.
	WinnerSlot int `json:"winner_slot"`

	// Version increments on every mutation. Writers carry the version they
	// last read so the store can reject stale overwrites.
	Version int64 `json:"version"`
}

// NewGameState returns an empty game for the given players.
func NewGameState(playerNames [NumPlayers]string) *GameState {
	return &GameState{
		PlayerNames: playerNames,
		Log:         []LedgerEntry{},
		WinnerSlot:  -1,
	}
}

// RoundCount returns the number of round entries in the log.
func (g *GameState) RoundCount() int {
	n := 0
	for _, entry := range g.Log {
		if entry.Type == EntryRound {
			n++
		}
	}
	return n
}

// Finished reports whether a winner has been designated.
func (g *GameState) Finished() bool {
	return g.WinnerSlot >= 0
}

// WinnerName returns the winning seat's display name, empty while the
// game is still running.
func (g *GameState) WinnerName() string {
	if g.WinnerSlot < 0 {
		return ""
	}
	return g.PlayerNames[g.WinnerSlot]
}
