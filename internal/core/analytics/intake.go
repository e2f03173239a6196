package analytics

import (
	"time"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

// DayStats is one calendar day's aggregated intake. UserVolumes always has a
// key for every supplied member (zero when they logged nothing) plus any id
// found on a matching entry, so TotalVolume equals the sum of the map values
// and no entry is dropped because its author left the household.
type DayStats struct {
	Date        string             `json:"date"`
	UserVolumes map[string]float64 `json:"user_volumes"`
	TotalVolume float64            `json:"total_volume"`
	GoalMet     bool               `json:"goal_met"`
}

// ComputeDayStats aggregates the entries whose household-local calendar day
// matches dateKey. GoalMet compares the combined total against the shared
// daily goal with >=.
func ComputeDayStats(entries []*domain.IntakeEntry, dateKey string, goalOz float64, users []*domain.HouseholdUser, loc *time.Location) DayStats {
	volumes := make(map[string]float64, len(users))
	for _, u := range users {
		volumes[u.ID] = 0
	}

	total := 0.0
	for _, e := range entries {
		if LocalDateKey(e.RecordedAt, loc) != dateKey {
			continue
		}
		volumes[e.HouseholdUserID] += e.VolumeOz
		total += e.VolumeOz
	}

	return DayStats{
		Date:        dateKey,
		UserVolumes: volumes,
		TotalVolume: total,
		GoalMet:     goalOz > 0 && total >= goalOz,
	}
}

// StatsForRange produces one DayStats per calendar day in the trailing
// window, oldest first. The slice length always equals the window's day
// count, with all-zero days where nothing was logged, so downstream streak
// math never sees gaps.
func StatsForRange(entries []*domain.IntakeEntry, kind RangeKind, goalOz float64, users []*domain.HouseholdUser, now time.Time, loc *time.Location) []DayStats {
	start, end := DateRange(kind, now, loc)

	keys := DayKeysInRange(start, end, loc)
	stats := make([]DayStats, 0, len(keys))
	for _, key := range keys {
		stats = append(stats, ComputeDayStats(entries, key, goalOz, users, loc))
	}
	return stats
}

// GoalMetSequence projects a stats slice onto the boolean series the streak
// calculator consumes, preserving order.
func GoalMetSequence(stats []DayStats) []bool {
	met := make([]bool, len(stats))
	for i, s := range stats {
		met[i] = s.GoalMet
	}
	return met
}
