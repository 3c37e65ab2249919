package domain

// ProgressPercent returns how far the raised total is toward the goal, as a
// percentage. A zero or negative goal yields 0 rather than dividing by zero.
// The value is uncapped; display layers clamp it to 100.
func ProgressPercent(totalCents, goal int64) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(totalCents) / float64(goal*100) * 100
}

// ClampPercent caps a percentage into the [0, 100] display range.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
