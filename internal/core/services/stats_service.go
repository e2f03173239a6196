package services

import (
	"context"
	"errors"
	"time"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/analytics"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

// StatsService is the read side: it assembles the snapshots the analytics
// engine needs (entries, members, settings) and hands back plain reports.
// It holds no state of its own; every call recomputes from the store.
type StatsService struct {
	members  domain.HouseholdUserRepository
	settings domain.SettingsRepository
	intake   domain.IntakeEntryRepository
	workouts domain.WorkoutEntryRepository

	now func() time.Time
}

func NewStatsService(
	members domain.HouseholdUserRepository,
	settings domain.SettingsRepository,
	intake domain.IntakeEntryRepository,
	workouts domain.WorkoutEntryRepository,
) *StatsService {
	return &StatsService{
		members:  members,
		settings: settings,
		intake:   intake,
		workouts: workouts,
		now:      time.Now,
	}
}

// snapshot loads the pieces every report needs.
func (s *StatsService) snapshot(ctx context.Context, householdID string) ([]*domain.HouseholdUser, *domain.Settings, error) {
	users, err := s.members.ListByHouseholdID(ctx, householdID)
	if err != nil {
		return nil, nil, err
	}

	settings, err := s.settings.Get(ctx, householdID)
	if err != nil {
		if !errors.Is(err, domain.ErrSettingsNotFound) {
			return nil, nil, err
		}
		settings = domain.NewDefaultSettings(householdID)
	}

	return users, settings, nil
}

// DailyStats returns one DayStats per calendar day of the trailing window,
// bucketed in the household's timezone.
func (s *StatsService) DailyStats(ctx context.Context, householdID string, kind analytics.RangeKind) ([]analytics.DayStats, error) {
	users, settings, err := s.snapshot(ctx, householdID)
	if err != nil {
		return nil, err
	}

	loc := settings.Location()
	now := s.now()

	start, end := analytics.DateRange(kind, now, loc)
	entries, err := s.intake.ListByHouseholdID(ctx, householdID, start.AddDate(0, 0, -1), end.AddDate(0, 0, 2))
	if err != nil {
		return nil, err
	}

	return analytics.StatsForRange(entries, kind, settings.DailyGoalVolumeOz, users, now, loc), nil
}

// WaterKPIs composes the hydration dashboard report for a range.
func (s *StatsService) WaterKPIs(ctx context.Context, householdID string, kind analytics.RangeKind) (*analytics.KPIReport, error) {
	users, _, err := s.snapshot(ctx, householdID)
	if err != nil {
		return nil, err
	}

	stats, err := s.DailyStats(ctx, householdID, kind)
	if err != nil {
		return nil, err
	}

	report := analytics.ComputeKPIs(stats, users)
	return &report, nil
}

// WeeklyWorkoutStats summarizes the current week per member.
func (s *StatsService) WeeklyWorkoutStats(ctx context.Context, householdID string) ([]analytics.WorkoutUserStat, error) {
	users, settings, err := s.snapshot(ctx, householdID)
	if err != nil {
		return nil, err
	}

	loc := settings.Location()
	now := s.now()

	entries, err := s.workouts.ListByHouseholdID(ctx, householdID,
		analytics.WeekStart(now, loc).AddDate(0, 0, -1), analytics.WeekEnd(now, loc).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return analytics.WeeklyWorkoutStats(entries, users, now, loc), nil
}

// WorkoutKPIs composes the workout dashboard report. It loads a year of
// history so the 52-week streaks and the most-active-day ranking have their
// full window.
func (s *StatsService) WorkoutKPIs(ctx context.Context, householdID string) (*analytics.WorkoutKPIReport, error) {
	users, settings, err := s.snapshot(ctx, householdID)
	if err != nil {
		return nil, err
	}

	loc := settings.Location()
	now := s.now()

	entries, err := s.workouts.ListByHouseholdID(ctx, householdID,
		now.AddDate(0, 0, -(52*7+7)), now.AddDate(0, 0, 2))
	if err != nil {
		return nil, err
	}

	report := analytics.ComputeWorkoutKPIs(entries, users, now, loc)
	return &report, nil
}
