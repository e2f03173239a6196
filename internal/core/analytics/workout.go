package analytics

import (
	"time"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

// weeksTracked bounds the workout streak scan: one year of week buckets.
const weeksTracked = 52

// WorkoutUserStat is one member's current-week workout summary. The percent
// fields are raw ratios against that member's weekly goals and may exceed
// 100 on over-achievement; cap with DisplayPercent for progress bars.
type WorkoutUserStat struct {
	User            *domain.HouseholdUser `json:"user"`
	CardioHours     float64               `json:"cardio_hours"`
	StrengthHours   float64               `json:"strength_hours"`
	TotalHours      float64               `json:"total_hours"`
	CardioPercent   float64               `json:"cardio_percent"`
	StrengthPercent float64               `json:"strength_percent"`
}

// UserContribution is a member's share of the household's workout hours.
type UserContribution struct {
	User       *domain.HouseholdUser `json:"user"`
	TotalHours float64               `json:"total_hours"`
	Percent    float64               `json:"percent"`
}

// MostActiveDaySummary names the weekday with the highest average hours per
// session across all history. Averages, not totals: one long Wednesday
// session outranks five short Mondays.
type MostActiveDaySummary struct {
	DayName  string  `json:"day_name"`
	AvgHours float64 `json:"avg_hours"`
}

// WorkoutKPIReport is the workout dashboard bundle. Current-week figures and
// balance use this week's entries; streaks and the most-active day consider
// all supplied history.
type WorkoutKPIReport struct {
	TotalCardioHours   float64               `json:"total_cardio_hours"`
	TotalStrengthHours float64               `json:"total_strength_hours"`
	TotalHours         float64               `json:"total_hours"`
	CombinedPercent    float64               `json:"combined_percent"`
	WorkoutDays        int                   `json:"workout_days"`
	TotalDays          int                   `json:"total_days"`
	ConsistencyPercent float64               `json:"consistency_percent"`
	CardioPercent      float64               `json:"cardio_percent"`
	StrengthPercent    float64               `json:"strength_percent"`
	CurrentStreak      int                   `json:"current_streak"`
	LongestStreak      int                   `json:"longest_streak"`
	MostActiveDay      *MostActiveDaySummary `json:"most_active_day"`
	UserContributions  []UserContribution    `json:"user_contributions"`
}

// WorkoutsForWeek filters entries to the Sunday-to-Saturday week containing
// weekStart's day, bounds inclusive.
func WorkoutsForWeek(entries []*domain.WorkoutEntry, weekStart time.Time, loc *time.Location) []*domain.WorkoutEntry {
	start := WeekStart(weekStart, loc)
	end := WeekEnd(weekStart, loc)

	week := []*domain.WorkoutEntry{}
	for _, e := range entries {
		ts := e.RecordedAt.In(loc)
		if !ts.Before(start) && !ts.After(end) {
			week = append(week, e)
		}
	}
	return week
}

func hoursByType(entries []*domain.WorkoutEntry) (cardio, strength float64) {
	for _, e := range entries {
		switch e.WorkoutType {
		case domain.WorkoutTypeCardio:
			cardio += e.DurationHours
		case domain.WorkoutTypeStrength:
			strength += e.DurationHours
		}
	}
	return cardio, strength
}

// WeeklyWorkoutStats summarizes the current week per member, in the order the
// members were supplied. An empty member list yields an empty slice.
func WeeklyWorkoutStats(entries []*domain.WorkoutEntry, users []*domain.HouseholdUser, now time.Time, loc *time.Location) []WorkoutUserStat {
	week := WorkoutsForWeek(entries, now, loc)

	stats := make([]WorkoutUserStat, 0, len(users))
	for _, u := range users {
		var mine []*domain.WorkoutEntry
		for _, e := range week {
			if e.HouseholdUserID == u.ID {
				mine = append(mine, e)
			}
		}

		cardio, strength := hoursByType(mine)
		stats = append(stats, WorkoutUserStat{
			User:            u,
			CardioHours:     cardio,
			StrengthHours:   strength,
			TotalHours:      cardio + strength,
			CardioPercent:   RawPercent(cardio, u.WeeklyCardioGoalHours),
			StrengthPercent: RawPercent(strength, u.WeeklyStrengthGoalHours),
		})
	}
	return stats
}

func combinedGoalHours(users []*domain.HouseholdUser) float64 {
	total := 0.0
	for _, u := range users {
		total += u.CombinedWeeklyGoalHours()
	}
	return total
}

// CombinedWorkoutPercent is this week's household hours against the sum of
// every member's weekly goals, unclamped.
func CombinedWorkoutPercent(entries []*domain.WorkoutEntry, users []*domain.HouseholdUser, now time.Time, loc *time.Location) float64 {
	cardio, strength := hoursByType(WorkoutsForWeek(entries, now, loc))
	return RawPercent(cardio+strength, combinedGoalHours(users))
}

// HouseholdGoalMetPercent is the share of members whose current-week total
// meets their own combined weekly goal. Members with a zero goal never count
// as meeting it.
func HouseholdGoalMetPercent(stats []WorkoutUserStat) float64 {
	if len(stats) == 0 {
		return 0
	}

	met := 0
	for _, s := range stats {
		goal := s.User.CombinedWeeklyGoalHours()
		if goal > 0 && s.TotalHours >= goal {
			met++
		}
	}
	return float64(met) / float64(len(stats)) * 100
}

// WorkoutDaysThisWeek counts distinct calendar days with at least one workout
// in the current week.
func WorkoutDaysThisWeek(entries []*domain.WorkoutEntry, now time.Time, loc *time.Location) int {
	days := make(map[string]struct{})
	for _, e := range WorkoutsForWeek(entries, now, loc) {
		days[LocalDateKey(e.RecordedAt, loc)] = struct{}{}
	}
	return len(days)
}

// WorkoutBalance splits this week's hours between cardio and strength.
// With nothing logged it reports an even 50/50 so gauges render centered.
func WorkoutBalance(entries []*domain.WorkoutEntry, now time.Time, loc *time.Location) (cardioPercent, strengthPercent float64) {
	cardio, strength := hoursByType(WorkoutsForWeek(entries, now, loc))

	total := cardio + strength
	if total == 0 {
		return 50, 50
	}
	return cardio / total * 100, strength / total * 100
}

// WorkoutStreaks evaluates the last 52 week buckets (oldest first) against
// the combined household goal and runs the streak scan over the resulting
// goal-met flags. A household with no workout goals has no streak to track.
func WorkoutStreaks(entries []*domain.WorkoutEntry, users []*domain.HouseholdUser, now time.Time, loc *time.Location) StreakSummary {
	goal := combinedGoalHours(users)
	if goal <= 0 {
		return StreakSummary{}
	}

	met := make([]bool, 0, weeksTracked)
	for i := weeksTracked - 1; i >= 0; i-- {
		weekStart := WeekStart(now, loc).AddDate(0, 0, -7*i)
		cardio, strength := hoursByType(WorkoutsForWeek(entries, weekStart, loc))
		met = append(met, cardio+strength >= goal)
	}

	return ComputeStreaks(met)
}

// MostActiveDay finds the weekday with the highest average session length
// over all supplied entries. Ties resolve to the earliest weekday (Sunday
// first). Returns nil when there is nothing to rank.
func MostActiveDay(entries []*domain.WorkoutEntry, loc *time.Location) *MostActiveDaySummary {
	if len(entries) == 0 {
		return nil
	}

	var totals, counts [7]float64
	for _, e := range entries {
		wd := e.RecordedAt.In(loc).Weekday()
		totals[wd] += e.DurationHours
		counts[wd]++
	}

	best := -1
	bestAvg := 0.0
	for wd := 0; wd < 7; wd++ {
		if counts[wd] == 0 {
			continue
		}
		if avg := totals[wd] / counts[wd]; avg > bestAvg {
			bestAvg = avg
			best = wd
		}
	}

	if best < 0 {
		return nil
	}
	return &MostActiveDaySummary{
		DayName:  time.Weekday(best).String(),
		AvgHours: bestAvg,
	}
}

// ComputeWorkoutKPIs composes the full workout report for the current week
// plus all-history streaks and the most-active day.
func ComputeWorkoutKPIs(entries []*domain.WorkoutEntry, users []*domain.HouseholdUser, now time.Time, loc *time.Location) WorkoutKPIReport {
	week := WorkoutsForWeek(entries, now, loc)
	cardio, strength := hoursByType(week)
	total := cardio + strength

	cardioBalance, strengthBalance := WorkoutBalance(entries, now, loc)
	streaks := WorkoutStreaks(entries, users, now, loc)

	workoutDays := WorkoutDaysThisWeek(entries, now, loc)

	contributions := make([]UserContribution, 0, len(users))
	for _, u := range users {
		mine := 0.0
		for _, e := range week {
			if e.HouseholdUserID == u.ID {
				mine += e.DurationHours
			}
		}

		pct := 0.0
		if total > 0 {
			pct = mine / total * 100
		} else if len(users) > 0 {
			pct = 100 / float64(len(users))
		}

		contributions = append(contributions, UserContribution{
			User:       u,
			TotalHours: mine,
			Percent:    pct,
		})
	}

	return WorkoutKPIReport{
		TotalCardioHours:   cardio,
		TotalStrengthHours: strength,
		TotalHours:         total,
		CombinedPercent:    RawPercent(total, combinedGoalHours(users)),
		WorkoutDays:        workoutDays,
		TotalDays:          7,
		ConsistencyPercent: float64(workoutDays) / 7 * 100,
		CardioPercent:      cardioBalance,
		StrengthPercent:    strengthBalance,
		CurrentStreak:      streaks.Current,
		LongestStreak:      streaks.Longest,
		MostActiveDay:      MostActiveDay(entries, loc),
		UserContributions:  contributions,
	}
}
