package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/analytics"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

func member(id string) *domain.HouseholdUser {
	return &domain.HouseholdUser{
		ID:           id,
		HouseholdID:  "hh-1",
		DisplayName:  id,
		Color:        "#ffffff",
		BottleSizeOz: 24,
	}
}

func intakeAt(userID string, volumeOz float64, ts time.Time) *domain.IntakeEntry {
	return &domain.IntakeEntry{
		ID:              userID + ts.Format(time.RFC3339),
		HouseholdID:     "hh-1",
		HouseholdUserID: userID,
		VolumeOz:        volumeOz,
		RecordedAt:      ts,
	}
}

func TestComputeDayStats(t *testing.T) {
	alice := member("alice")
	bob := member("bob")
	day := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Combined total meets the shared goal", func(t *testing.T) {
		entries := []*domain.IntakeEntry{
			intakeAt("alice", 32, day),
			intakeAt("alice", 40, day.Add(4*time.Hour)),
			intakeAt("bob", 10, day.Add(6*time.Hour)),
			intakeAt("alice", 20, day.AddDate(0, 0, 1)), // next day, excluded
		}

		stats := analytics.ComputeDayStats(entries, "2024-01-01", 64, []*domain.HouseholdUser{alice, bob}, time.UTC)

		assert.Equal(t, "2024-01-01", stats.Date)
		assert.Equal(t, 82.0, stats.TotalVolume)
		assert.True(t, stats.GoalMet)
		assert.Equal(t, 72.0, stats.UserVolumes["alice"])
		assert.Equal(t, 10.0, stats.UserVolumes["bob"])
	})

	t.Run("Conservation: departed member's entries still count", func(t *testing.T) {
		entries := []*domain.IntakeEntry{
			intakeAt("alice", 30, day),
			intakeAt("ghost", 12, day),
		}

		stats := analytics.ComputeDayStats(entries, "2024-01-01", 64, []*domain.HouseholdUser{alice}, time.UTC)

		sum := 0.0
		for _, v := range stats.UserVolumes {
			sum += v
		}
		assert.Equal(t, 42.0, stats.TotalVolume)
		assert.Equal(t, stats.TotalVolume, sum, "total must equal the per-user sum")
		assert.Equal(t, 12.0, stats.UserVolumes["ghost"])
	})

	t.Run("Empty member list never panics", func(t *testing.T) {
		stats := analytics.ComputeDayStats(nil, "2024-01-01", 64, nil, time.UTC)
		assert.Equal(t, 0.0, stats.TotalVolume)
		assert.Empty(t, stats.UserVolumes)
		assert.False(t, stats.GoalMet)
	})

	t.Run("Goal is met with >=, not >", func(t *testing.T) {
		entries := []*domain.IntakeEntry{intakeAt("alice", 64, day)}
		stats := analytics.ComputeDayStats(entries, "2024-01-01", 64, []*domain.HouseholdUser{alice}, time.UTC)
		assert.True(t, stats.GoalMet)
	})

	t.Run("Zero goal is never met", func(t *testing.T) {
		entries := []*domain.IntakeEntry{intakeAt("alice", 64, day)}
		stats := analytics.ComputeDayStats(entries, "2024-01-01", 0, []*domain.HouseholdUser{alice}, time.UTC)
		assert.False(t, stats.GoalMet)
	})

	t.Run("Bucketing follows the household timezone", func(t *testing.T) {
		eastern := time.FixedZone("UTC-5", -5*60*60)
		// 02:00 UTC on Jan 2 is 21:00 Jan 1 eastern.
		entries := []*domain.IntakeEntry{
			intakeAt("alice", 16, time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC)),
		}

		utcStats := analytics.ComputeDayStats(entries, "2024-01-01", 64, []*domain.HouseholdUser{alice}, time.UTC)
		assert.Equal(t, 0.0, utcStats.TotalVolume)

		localStats := analytics.ComputeDayStats(entries, "2024-01-01", 64, []*domain.HouseholdUser{alice}, eastern)
		assert.Equal(t, 16.0, localStats.TotalVolume)
	})
}

func TestStatsForRange(t *testing.T) {
	alice := member("alice")
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Week range is always 7 days, even with no entries", func(t *testing.T) {
		stats := analytics.StatsForRange(nil, analytics.RangeWeek, 64, []*domain.HouseholdUser{alice}, now, time.UTC)

		require.Len(t, stats, 7)
		assert.Equal(t, "2024-01-04", stats[0].Date)
		assert.Equal(t, "2024-01-10", stats[6].Date)
		for _, day := range stats {
			assert.Equal(t, 0.0, day.TotalVolume)
			assert.False(t, day.GoalMet)
		}
	})

	t.Run("Month range is 30 days", func(t *testing.T) {
		stats := analytics.StatsForRange(nil, analytics.RangeMonth, 64, []*domain.HouseholdUser{alice}, now, time.UTC)
		assert.Len(t, stats, 30)
	})

	t.Run("Entries land in their own buckets", func(t *testing.T) {
		entries := []*domain.IntakeEntry{
			intakeAt("alice", 70, time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)),
			intakeAt("alice", 20, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)),
		}

		stats := analytics.StatsForRange(entries, analytics.RangeWeek, 64, []*domain.HouseholdUser{alice}, now, time.UTC)

		require.Len(t, stats, 7)
		assert.Equal(t, 70.0, stats[4].TotalVolume)
		assert.True(t, stats[4].GoalMet)
		assert.Equal(t, 20.0, stats[6].TotalVolume)
		assert.False(t, stats[6].GoalMet)
	})

	t.Run("Identical inputs give identical outputs", func(t *testing.T) {
		entries := []*domain.IntakeEntry{
			intakeAt("alice", 70, time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)),
		}
		users := []*domain.HouseholdUser{alice}

		first := analytics.StatsForRange(entries, analytics.RangeWeek, 64, users, now, time.UTC)
		second := analytics.StatsForRange(entries, analytics.RangeWeek, 64, users, now, time.UTC)
		assert.Equal(t, first, second)
	})
}
