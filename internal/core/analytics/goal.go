package analytics

// ProgressPercent is the progress-bar view of total against goal, clamped to
// [0, 100]. A zero or negative goal yields 0 rather than dividing by zero.
func ProgressPercent(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}

	pct := total / goal * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// RawPercent is the unclamped ratio, used where over-achievement matters
// (weekly workout percentages can legitimately exceed 100). Same zero-goal
// guard as ProgressPercent.
func RawPercent(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return total / goal * 100
}

// DisplayPercent caps a raw percent at 100 for progress-bar rendering.
func DisplayPercent(pct float64) float64 {
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
