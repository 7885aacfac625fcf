package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitsOf(t *testing.T) {
	tests := []struct {
		score int
		units int
	}{
		{score: 0, units: 0},
		{score: 54, units: 0},
		{score: 55, units: 1},
		{score: 99, units: 1},
		{score: 100, units: 1},
		{score: 154, units: 1},
		{score: 155, units: 2},
		{score: 199, units: 2},
		{score: 200, units: 2},
		{score: 420, units: 4},
		{score: 500, units: 5},
		{score: 510, units: 5},
		{score: 550, units: 5},
		{score: 555, units: 6},
		{score: 560, units: 6},
	}

	for _, test := range tests {
		msg := fmt.Sprintf("UnitsOf(%d)", test.score)
		assert.Equal(t, test.units, UnitsOf(test.score), msg)

		// The negative side mirrors exactly
		msg = fmt.Sprintf("UnitsOf(%d)", -test.score)
		assert.Equal(t, -test.units, UnitsOf(-test.score), msg)
	}
}
