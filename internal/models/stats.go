package models

// PlayerStats summarizes one slot's per-round deltas. Derived on demand
// from the round entries, never persisted.
type PlayerStats struct {
	// Average is the arithmetic mean of the slot's deltas, rounded to
	// one decimal place
	Average float64 `json:"average"`

	// Max is the largest single-round delta
	Max int `json:"max"`

	// Min is the smallest single-round delta
	Min int `json:"min"`
}
