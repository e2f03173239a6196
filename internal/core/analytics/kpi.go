package analytics

import (
	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

// PeakDay is the highest-volume day of a range.
type PeakDay struct {
	Date     string  `json:"date"`
	VolumeOz float64 `json:"volume_oz"`
}

// KPIReport is the water dashboard bundle for one date range.
//
// UserPercentages are contribution shares of the range's grand total and sum
// to ~100 for a non-empty member list; they are not capped at 100 because
// they are shares of a whole, not progress values.
type KPIReport struct {
	TotalDays          int                `json:"total_days"`
	DaysGoalMet        int                `json:"days_goal_met"`
	DaysGoalMetPercent float64            `json:"days_goal_met_percent"`
	AvgDailyIntakeOz   float64            `json:"avg_daily_intake_oz"`
	UserAverages       map[string]float64 `json:"user_averages"`
	UserPercentages    map[string]float64 `json:"user_percentages"`
	CurrentStreak      int                `json:"current_streak"`
	LongestStreak      int                `json:"longest_streak"`
	PeakDay            *PeakDay           `json:"peak_day"`
}

// ComputeKPIs condenses a day-stats sequence (oldest first) into the KPI
// bundle. An all-zero range yields zero KPIs and a nil PeakDay rather than a
// bogus zero-volume peak; a zero grand total splits contributions evenly so
// charts have a sane default instead of NaN.
func ComputeKPIs(stats []DayStats, users []*domain.HouseholdUser) KPIReport {
	report := KPIReport{
		TotalDays:       len(stats),
		UserAverages:    make(map[string]float64, len(users)),
		UserPercentages: make(map[string]float64, len(users)),
	}

	grandTotal := 0.0
	userTotals := make(map[string]float64, len(users))
	var peak *PeakDay

	for _, day := range stats {
		if day.GoalMet {
			report.DaysGoalMet++
		}
		grandTotal += day.TotalVolume

		for id, vol := range day.UserVolumes {
			userTotals[id] += vol
		}

		if day.TotalVolume > 0 && (peak == nil || day.TotalVolume > peak.VolumeOz) {
			peak = &PeakDay{Date: day.Date, VolumeOz: day.TotalVolume}
		}
	}

	if report.TotalDays > 0 {
		report.DaysGoalMetPercent = float64(report.DaysGoalMet) / float64(report.TotalDays) * 100
		report.AvgDailyIntakeOz = grandTotal / float64(report.TotalDays)
	}

	for _, u := range users {
		total := userTotals[u.ID]
		if report.TotalDays > 0 {
			report.UserAverages[u.ID] = total / float64(report.TotalDays)
		} else {
			report.UserAverages[u.ID] = 0
		}

		if grandTotal > 0 {
			report.UserPercentages[u.ID] = total / grandTotal * 100
		} else {
			report.UserPercentages[u.ID] = 100 / float64(len(users))
		}
	}

	streaks := ComputeStreaks(GoalMetSequence(stats))
	report.CurrentStreak = streaks.Current
	report.LongestStreak = streaks.Longest
	report.PeakDay = peak

	return report
}
