package scoring

import (
	"fmt"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
)

// DefaultWinThreshold is the cumulative score that ends a game of Dummy.
const DefaultWinThreshold = 500

// Config for the scoring engine
type Config struct {
	// WinThreshold overrides the default winning score. Optional.
	WinThreshold int
}

// Engine applies the Dummy scoring rules to a game snapshot. The round
// tuples in the log are the only source of truth; cumulative scores, the
// winner designation and the derived price_units/settlement entries are
// all rebuilt from them by replay after every mutation.
type Engine struct {
	winThreshold int
}

// New creates a new scoring engine
func New(cfg *Config) *Engine {
	threshold := DefaultWinThreshold
	if cfg != nil && cfg.WinThreshold > 0 {
		threshold = cfg.WinThreshold
	}

	return &Engine{
		winThreshold: threshold,
	}
}

// RoundResult reports the outcome of appending one round
type RoundResult struct {
	// Scores are the cumulative scores after the round
	Scores [models.NumPlayers]int

	// WinnerSlot is the winning slot index, or -1 when nobody has won
	WinnerSlot int

	// PriceUnits is the tong count per slot. Only set on a win.
	PriceUnits [models.NumPlayers]int

	// Settlement is the net payment per slot. Only set on a win.
	Settlement [models.NumPlayers]int
}

// AppendRound records one round of raw deltas and recomputes the game.
// Callers must hand it clean integers; input parsing happens at the API
// boundary. The first slot in index order to reach the winning threshold
// is the winner, so a round that pushes two players over the line always
// selects the lower seat.
func (e *Engine) AppendRound(state *models.GameState, deltas [models.NumPlayers]int) *RoundResult {
	rounds := append(roundTuples(state), deltas)
	e.rebuild(state, rounds)

	result := &RoundResult{
		Scores:     state.Scores,
		WinnerSlot: -1,
	}

	if state.WinnerSlot >= 0 {
		result.WinnerSlot = state.WinnerSlot
		result.PriceUnits = priceUnitsOf(state)
		result.Settlement = settlementOf(state)
	}

	return result
}

// UndoLastRound removes the most recent round entry along with any derived
// entries it produced, then replays the rest. Undoing an empty ledger is a
// no-op.
func (e *Engine) UndoLastRound(state *models.GameState) {
	rounds := roundTuples(state)
	if len(rounds) == 0 {
		return
	}

	e.rebuild(state, rounds[:len(rounds)-1])
}

// EditRound replaces the tuple of the round entry at the given position
// (an index into round entries only, zero-based) and replays the whole
// sequence. A recorded win does not survive the edit on its own: the
// derived entries are rebuilt from the corrected history, so the win
// moves, stays, or disappears with the scores that justify it.
//
// Position must name an existing round entry. Anything else is a caller
// bug and panics.
func (e *Engine) EditRound(state *models.GameState, position int, deltas [models.NumPlayers]int) {
	rounds := roundTuples(state)
	if position < 0 || position >= len(rounds) {
		panic(fmt.Sprintf("scoring: edit of round %d, ledger has %d rounds", position, len(rounds)))
	}

	rounds[position] = deltas
	e.rebuild(state, rounds)
}

// Reset clears the ledger, scores and winner. Player names are kept.
func (e *Engine) Reset(state *models.GameState) {
	e.rebuild(state, nil)
}

// Statistics derives the per-slot mean, max and min over the round
// entries. All zeros when no rounds have been played.
func (e *Engine) Statistics(state *models.GameState) [models.NumPlayers]models.PlayerStats {
	var stats [models.NumPlayers]models.PlayerStats

	rounds := roundTuples(state)
	if len(rounds) == 0 {
		return stats
	}

	for slot := 0; slot < models.NumPlayers; slot++ {
		sum := 0
		max := rounds[0][slot]
		min := rounds[0][slot]
		for _, tuple := range rounds {
			sum += tuple[slot]
			if tuple[slot] > max {
				max = tuple[slot]
			}
			if tuple[slot] < min {
				min = tuple[slot]
			}
		}
		stats[slot] = models.PlayerStats{
			Average: roundToTenth(float64(sum) / float64(len(rounds))),
			Max:     max,
			Min:     min,
		}
	}

	return stats
}

// rebuild replays the given round tuples into state: cumulative scores,
// the reconstructed log with derived entries inserted immediately after
// the round that triggered the win, and the winner designation.
func (e *Engine) rebuild(state *models.GameState, rounds [][models.NumPlayers]int) {
	var scores [models.NumPlayers]int
	log := make([]models.LedgerEntry, 0, len(rounds))

	winnerSlot := -1
	for _, tuple := range rounds {
		for slot, delta := range tuple {
			scores[slot] += delta
		}
		log = append(log, models.LedgerEntry{Type: models.EntryRound, Values: tuple})

		if winnerSlot >= 0 {
			continue
		}
		for slot := 0; slot < models.NumPlayers; slot++ {
			if scores[slot] >= e.winThreshold {
				winnerSlot = slot
				break
			}
		}
		if winnerSlot >= 0 {
			var units [models.NumPlayers]int
			for slot, score := range scores {
				units[slot] = UnitsOf(score)
			}
			log = append(log,
				models.LedgerEntry{Type: models.EntryPriceUnits, Values: units},
				models.LedgerEntry{Type: models.EntrySettlement, Values: settle(units)},
			)
		}
	}

	state.Scores = scores
	state.Log = log
	state.WinnerSlot = winnerSlot
}

// settle turns a price-units tuple into net payments. Every player owes
// each opponent the difference in their unit counts, so the tuple always
// sums to zero.
func settle(units [models.NumPlayers]int) [models.NumPlayers]int {
	var payments [models.NumPlayers]int
	for i := 0; i < models.NumPlayers; i++ {
		for j := 0; j < models.NumPlayers; j++ {
			if i != j {
				payments[i] += units[i] - units[j]
			}
		}
	}
	return payments
}

// roundTuples extracts the raw round tuples from the log in order.
func roundTuples(state *models.GameState) [][models.NumPlayers]int {
	var rounds [][models.NumPlayers]int
	for _, entry := range state.Log {
		if entry.Type == models.EntryRound {
			rounds = append(rounds, entry.Values)
		}
	}
	return rounds
}

func priceUnitsOf(state *models.GameState) [models.NumPlayers]int {
	return derivedValues(state, models.EntryPriceUnits)
}

func settlementOf(state *models.GameState) [models.NumPlayers]int {
	return derivedValues(state, models.EntrySettlement)
}

func derivedValues(state *models.GameState, entryType models.EntryType) [models.NumPlayers]int {
	for _, entry := range state.Log {
		if entry.Type == entryType {
			return entry.Values
		}
	}
	return [models.NumPlayers]int{}
}

func roundToTenth(x float64) float64 {
	if x < 0 {
		return float64(int(x*10-0.5)) / 10
	}
	return float64(int(x*10+0.5)) / 10
}
