package scoring

// UnitsOf converts a cumulative score into tong units: one unit per full
// hundred, plus one more when the remainder reaches 55. Negative scores
// mirror the rule, so UnitsOf(-560) == -6.
func UnitsOf(score int) int {
	units := 0

	if score >= 0 {
		for score >= 100 {
			score -= 100
			units++
		}
		if score >= 55 {
			units++
		}
		return units
	}

	for score <= -100 {
		score += 100
		units--
	}
	if score <= -55 {
		units--
	}
	return units
}
