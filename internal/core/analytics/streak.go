package analytics

// StreakSummary holds consecutive-success run lengths over a bucket sequence.
type StreakSummary struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ComputeStreaks scans a goal-met sequence ordered oldest to newest and
// returns the run of successes ending at the most recent bucket (Current)
// and the maximum run anywhere in the sequence (Longest).
//
// The sequence must be dense: one flag per calendar bucket in range, so a
// day with no entries is a false, not a missing element.
func ComputeStreaks(goalMet []bool) StreakSummary {
	var s StreakSummary

	run := 0
	for i := len(goalMet) - 1; i >= 0; i-- {
		if !goalMet[i] {
			run = 0
			continue
		}

		run++
		if run > s.Longest {
			s.Longest = run
		}
		// The tail run is still unbroken as long as every bucket from the
		// newest down to here was true.
		if run == len(goalMet)-i {
			s.Current = run
		}
	}

	return s
}
