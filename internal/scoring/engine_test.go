package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
)

func newTestState() *models.GameState {
	return models.NewGameState([models.NumPlayers]string{"Aom", "Beam", "Chai", "Dao"})
}

func TestAppendRoundAccumulatesScores(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	result := engine.AppendRound(state, [models.NumPlayers]int{10, -20, 30, 0})
	assert.Equal(t, [models.NumPlayers]int{10, -20, 30, 0}, result.Scores)
	assert.Equal(t, -1, result.WinnerSlot)

	result = engine.AppendRound(state, [models.NumPlayers]int{-5, 25, 0, 40})
	assert.Equal(t, [models.NumPlayers]int{5, 5, 30, 40}, result.Scores)
	assert.Equal(t, -1, result.WinnerSlot)

	assert.Equal(t, 2, state.RoundCount())
	assert.False(t, state.Finished())
}

func TestAppendRoundWholeGame(t *testing.T) {
	// Four even rounds then a decisive one, per the worked example:
	// scores end at [510, 420, 420, 420], slot 0 wins, price units
	// [5, 4, 4, 4], settlement [3, -1, -1, -1].
	engine := New(nil)
	state := newTestState()

	for i := 0; i < 4; i++ {
		result := engine.AppendRound(state, [models.NumPlayers]int{100, 100, 100, 100})
		require.Equal(t, -1, result.WinnerSlot)
	}

	result := engine.AppendRound(state, [models.NumPlayers]int{110, 20, 20, 20})
	assert.Equal(t, [models.NumPlayers]int{510, 420, 420, 420}, result.Scores)
	assert.Equal(t, 0, result.WinnerSlot)
	assert.Equal(t, [models.NumPlayers]int{5, 4, 4, 4}, result.PriceUnits)
	assert.Equal(t, [models.NumPlayers]int{3, -1, -1, -1}, result.Settlement)

	assert.Equal(t, 0, state.WinnerSlot)
	assert.Equal(t, "Aom", state.WinnerName())
	assert.Equal(t, 5, state.RoundCount())

	// The log ends round, price_units, settlement in that order
	require.Len(t, state.Log, 7)
	assert.Equal(t, models.EntryRound, state.Log[4].Type)
	assert.Equal(t, models.EntryPriceUnits, state.Log[5].Type)
	assert.Equal(t, models.EntrySettlement, state.Log[6].Type)
}

func TestAppendRoundWinTieBreaksBySlot(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	result := engine.AppendRound(state, [models.NumPlayers]int{510, 520, 0, 0})
	assert.Equal(t, 0, result.WinnerSlot, "lower slot wins a simultaneous crossing")
	assert.Equal(t, 0, state.WinnerSlot)
}

func TestAppendRoundWinOnUnnamedSeat(t *testing.T) {
	engine := New(nil)
	state := models.NewGameState([models.NumPlayers]string{"Aom", "", "", ""})

	result := engine.AppendRound(state, [models.NumPlayers]int{0, 510, 0, 0})

	assert.Equal(t, 1, result.WinnerSlot, "an unnamed seat still wins")
	assert.Equal(t, 1, state.WinnerSlot)
	assert.Equal(t, "", state.WinnerName())
	assert.True(t, state.Finished())

	// The derived pair and the designation always arrive together
	require.Len(t, state.Log, 3)
	assert.Equal(t, models.EntryPriceUnits, state.Log[1].Type)
	assert.Equal(t, models.EntrySettlement, state.Log[2].Type)
}

func TestAppendRoundWinThresholdConfigurable(t *testing.T) {
	engine := New(&Config{WinThreshold: 100})
	state := newTestState()

	result := engine.AppendRound(state, [models.NumPlayers]int{0, 0, 100, 0})
	assert.Equal(t, 2, result.WinnerSlot)
}

func TestSettlementSumsToZero(t *testing.T) {
	tuples := [][models.NumPlayers]int{
		{5, 4, 4, 4},
		{0, 0, 0, 0},
		{7, -2, 3, 1},
		{-1, -1, -1, 6},
	}

	for _, units := range tuples {
		payments := settle(units)
		sum := 0
		for _, p := range payments {
			sum += p
		}
		assert.Equal(t, 0, sum, fmt.Sprintf("settle(%v)", units))
	}
}

func TestUndoLastRound(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	engine.AppendRound(state, [models.NumPlayers]int{10, 20, 30, 40})
	engine.AppendRound(state, [models.NumPlayers]int{1, 2, 3, 4})

	engine.UndoLastRound(state)
	assert.Equal(t, [models.NumPlayers]int{10, 20, 30, 40}, state.Scores)
	assert.Equal(t, 1, state.RoundCount())
}

func TestUndoLastRoundRemovesWin(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	engine.AppendRound(state, [models.NumPlayers]int{400, 0, 0, 0})
	result := engine.AppendRound(state, [models.NumPlayers]int{150, 0, 0, 0})
	require.Equal(t, 0, result.WinnerSlot)

	engine.UndoLastRound(state)
	assert.False(t, state.Finished())
	assert.Equal(t, [models.NumPlayers]int{400, 0, 0, 0}, state.Scores)
	require.Len(t, state.Log, 1, "derived entries go with the round that produced them")
}

func TestUndoLastRoundOnEmptyLedgerIsNoop(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	engine.UndoLastRound(state)
	assert.Equal(t, [models.NumPlayers]int{0, 0, 0, 0}, state.Scores)
	assert.Empty(t, state.Log)
	assert.False(t, state.Finished())
}

func TestEditRoundReplays(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	engine.AppendRound(state, [models.NumPlayers]int{10, 20, 30, 40})
	engine.AppendRound(state, [models.NumPlayers]int{1, 2, 3, 4})

	engine.EditRound(state, 0, [models.NumPlayers]int{-10, -20, -30, -40})
	assert.Equal(t, [models.NumPlayers]int{-9, -18, -27, -36}, state.Scores)
	assert.Equal(t, 2, state.RoundCount())
}

func TestEditRoundInvalidatesWin(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	engine.AppendRound(state, [models.NumPlayers]int{400, 0, 0, 0})
	result := engine.AppendRound(state, [models.NumPlayers]int{150, 0, 0, 0})
	require.Equal(t, 0, result.WinnerSlot)

	// Correcting the first round below the line removes the win and its
	// derived entries
	engine.EditRound(state, 0, [models.NumPlayers]int{100, 0, 0, 0})
	assert.False(t, state.Finished())
	assert.Equal(t, [models.NumPlayers]int{250, 0, 0, 0}, state.Scores)
	require.Len(t, state.Log, 2)
}

func TestEditRoundMovesWinLine(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	engine.AppendRound(state, [models.NumPlayers]int{400, 0, 0, 0})
	engine.AppendRound(state, [models.NumPlayers]int{150, 0, 0, 0})

	// Raising the first round means the win now happened one round earlier
	engine.EditRound(state, 0, [models.NumPlayers]int{500, 0, 0, 0})
	assert.Equal(t, 0, state.WinnerSlot)
	require.Len(t, state.Log, 4)
	assert.Equal(t, models.EntryRound, state.Log[0].Type)
	assert.Equal(t, models.EntryPriceUnits, state.Log[1].Type)
	assert.Equal(t, models.EntrySettlement, state.Log[2].Type)
	assert.Equal(t, models.EntryRound, state.Log[3].Type)

	// Price units reflect the scores at the win line, not the final ones
	assert.Equal(t, [models.NumPlayers]int{5, 0, 0, 0}, state.Log[1].Values)
}

func TestEditRoundOutOfRangePanics(t *testing.T) {
	engine := New(nil)
	state := newTestState()
	engine.AppendRound(state, [models.NumPlayers]int{1, 2, 3, 4})

	assert.Panics(t, func() {
		engine.EditRound(state, 1, [models.NumPlayers]int{0, 0, 0, 0})
	})
	assert.Panics(t, func() {
		engine.EditRound(state, -1, [models.NumPlayers]int{0, 0, 0, 0})
	})
}

func TestReset(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	engine.AppendRound(state, [models.NumPlayers]int{510, 0, 0, 0})
	engine.Reset(state)

	assert.Equal(t, [models.NumPlayers]int{0, 0, 0, 0}, state.Scores)
	assert.Empty(t, state.Log)
	assert.False(t, state.Finished())
	assert.Equal(t, "Aom", state.PlayerNames[0], "reset keeps names")
}

func TestReplayDeterminism(t *testing.T) {
	// The same round sequence yields the same scores no matter how many
	// undos and edits it took to get there.
	engine := New(nil)

	direct := newTestState()
	engine.AppendRound(direct, [models.NumPlayers]int{10, 20, 30, 40})
	engine.AppendRound(direct, [models.NumPlayers]int{-5, 15, 25, 35})

	meandering := newTestState()
	engine.AppendRound(meandering, [models.NumPlayers]int{99, 99, 99, 99})
	engine.UndoLastRound(meandering)
	engine.AppendRound(meandering, [models.NumPlayers]int{10, 20, 30, 40})
	engine.AppendRound(meandering, [models.NumPlayers]int{7, 7, 7, 7})
	engine.EditRound(meandering, 1, [models.NumPlayers]int{-5, 15, 25, 35})

	assert.Equal(t, direct.Scores, meandering.Scores)
	assert.Equal(t, direct.Log, meandering.Log)
}

func TestStatistics(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	engine.AppendRound(state, [models.NumPlayers]int{10, -20, 0, 5})
	engine.AppendRound(state, [models.NumPlayers]int{20, -10, 0, 10})
	engine.AppendRound(state, [models.NumPlayers]int{15, 0, 0, -14})

	stats := engine.Statistics(state)
	assert.Equal(t, models.PlayerStats{Average: 15, Max: 20, Min: 10}, stats[0])
	assert.Equal(t, models.PlayerStats{Average: -10, Max: 0, Min: -20}, stats[1])
	assert.Equal(t, models.PlayerStats{Average: 0, Max: 0, Min: 0}, stats[2])
	assert.Equal(t, models.PlayerStats{Average: 0.3, Max: 10, Min: -14}, stats[3])
}

func TestStatisticsEmptyLedger(t *testing.T) {
	engine := New(nil)
	state := newTestState()

	stats := engine.Statistics(state)
	for slot, s := range stats {
		assert.Equal(t, models.PlayerStats{}, s, fmt.Sprintf("slot %d", slot))
	}
}
