package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/analytics"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/services"
)

type statsMocks struct {
	members  *MockMemberRepo
	settings *MockSettingsRepo
	intake   *MockIntakeRepo
	workouts *MockWorkoutRepo
}

func newStatsService() (*services.StatsService, *statsMocks) {
	m := &statsMocks{
		members:  new(MockMemberRepo),
		settings: new(MockSettingsRepo),
		intake:   new(MockIntakeRepo),
		workouts: new(MockWorkoutRepo),
	}
	return services.NewStatsService(m.members, m.settings, m.intake, m.workouts), m
}

func statsHousehold(t *testing.T) []*domain.HouseholdUser {
	t.Helper()
	alice, err := domain.NewHouseholdUser("house-1", "auth-1", "Alice", "#3B82F6", 24, true)
	require.NoError(t, err)
	bob, err := domain.NewHouseholdUser("house-1", "auth-2", "Bob", "#EC4899", 16, false)
	require.NoError(t, err)
	return []*domain.HouseholdUser{alice, bob}
}

func TestDailyStats_WeekWindow(t *testing.T) {
	svc, m := newStatsService()
	users := statsHousehold(t)
	now := time.Now().UTC()

	// Alice alone clears the 64oz goal today; yesterday stays short.
	entries := []*domain.IntakeEntry{
		domain.NewIntakeEntry("house-1", users[0].ID, 40, now),
		domain.NewIntakeEntry("house-1", users[0].ID, 32, now),
		domain.NewIntakeEntry("house-1", users[1].ID, 10, now.AddDate(0, 0, -1)),
	}

	settings := domain.NewDefaultSettings("house-1")
	settings.DailyGoalVolumeOz = 64

	m.members.On("ListByHouseholdID", mock.Anything, "house-1").Return(users, nil)
	m.settings.On("Get", mock.Anything, "house-1").Return(settings, nil)
	m.intake.On("ListByHouseholdID", mock.Anything, "house-1", mock.Anything, mock.Anything).Return(entries, nil)

	stats, err := svc.DailyStats(context.Background(), "house-1", analytics.RangeWeek)

	require.NoError(t, err)
	require.Len(t, stats, 7)

	today := stats[6]
	assert.Equal(t, analytics.LocalDateKey(now, time.UTC), today.Date)
	assert.Equal(t, 72.0, today.TotalVolume)
	assert.Equal(t, 72.0, today.UserVolumes[users[0].ID])
	assert.True(t, today.GoalMet)

	yesterday := stats[5]
	assert.Equal(t, 10.0, yesterday.TotalVolume)
	assert.False(t, yesterday.GoalMet)
}

func TestDailyStats_MissingSettingsUsesDefaults(t *testing.T) {
	svc, m := newStatsService()
	users := statsHousehold(t)

	m.members.On("ListByHouseholdID", mock.Anything, "house-1").Return(users, nil)
	m.settings.On("Get", mock.Anything, "house-1").Return(nil, domain.ErrSettingsNotFound)
	m.intake.On("ListByHouseholdID", mock.Anything, "house-1", mock.Anything, mock.Anything).Return([]*domain.IntakeEntry{}, nil)

	stats, err := svc.DailyStats(context.Background(), "house-1", analytics.RangeMonth)

	require.NoError(t, err)
	assert.Len(t, stats, 30)
	for _, day := range stats {
		assert.Zero(t, day.TotalVolume)
		assert.False(t, day.GoalMet)
	}
}

func TestWaterKPIs_ContributionsSumToHundred(t *testing.T) {
	svc, m := newStatsService()
	users := statsHousehold(t)
	now := time.Now().UTC()

	entries := []*domain.IntakeEntry{
		domain.NewIntakeEntry("house-1", users[0].ID, 60, now),
		domain.NewIntakeEntry("house-1", users[1].ID, 20, now),
	}

	m.members.On("ListByHouseholdID", mock.Anything, "house-1").Return(users, nil)
	m.settings.On("Get", mock.Anything, "house-1").Return(domain.NewDefaultSettings("house-1"), nil)
	m.intake.On("ListByHouseholdID", mock.Anything, "house-1", mock.Anything, mock.Anything).Return(entries, nil)

	report, err := svc.WaterKPIs(context.Background(), "house-1", analytics.RangeWeek)

	require.NoError(t, err)
	assert.Equal(t, 7, report.TotalDays)
	assert.Equal(t, 75.0, report.UserPercentages[users[0].ID])
	assert.Equal(t, 25.0, report.UserPercentages[users[1].ID])
	require.NotNil(t, report.PeakDay)
	assert.Equal(t, 80.0, report.PeakDay.VolumeOz)
}

func TestWeeklyWorkoutStats_CurrentWeek(t *testing.T) {
	svc, m := newStatsService()
	users := statsHousehold(t)
	require.NoError(t, users[0].SetWorkoutGoals(4, 2))
	now := time.Now().UTC()

	entries := []*domain.WorkoutEntry{
		domain.NewWorkoutEntry("house-1", users[0].ID, domain.WorkoutTypeCardio, 2, now),
		domain.NewWorkoutEntry("house-1", users[0].ID, domain.WorkoutTypeStrength, 1, now),
	}

	m.members.On("ListByHouseholdID", mock.Anything, "house-1").Return(users, nil)
	m.settings.On("Get", mock.Anything, "house-1").Return(domain.NewDefaultSettings("house-1"), nil)
	m.workouts.On("ListByHouseholdID", mock.Anything, "house-1", mock.Anything, mock.Anything).Return(entries, nil)

	stats, err := svc.WeeklyWorkoutStats(context.Background(), "house-1")

	require.NoError(t, err)
	require.Len(t, stats, 2)

	var alice analytics.WorkoutUserStat
	for _, s := range stats {
		if s.User.ID == users[0].ID {
			alice = s
		}
	}
	assert.Equal(t, 2.0, alice.CardioHours)
	assert.Equal(t, 1.0, alice.StrengthHours)
	assert.Equal(t, 3.0, alice.TotalHours)
	assert.Equal(t, 50.0, alice.CardioPercent)
	assert.Equal(t, 50.0, alice.StrengthPercent)
}

func TestWorkoutKPIs_EmptyHistory(t *testing.T) {
	svc, m := newStatsService()
	users := statsHousehold(t)

	m.members.On("ListByHouseholdID", mock.Anything, "house-1").Return(users, nil)
	m.settings.On("Get", mock.Anything, "house-1").Return(domain.NewDefaultSettings("house-1"), nil)
	m.workouts.On("ListByHouseholdID", mock.Anything, "house-1", mock.Anything, mock.Anything).Return([]*domain.WorkoutEntry{}, nil)

	report, err := svc.WorkoutKPIs(context.Background(), "house-1")

	require.NoError(t, err)
	assert.Zero(t, report.TotalHours)
	assert.Zero(t, report.CurrentStreak)
	assert.Nil(t, report.MostActiveDay)
	assert.Equal(t, 50.0, report.CardioPercent)
	assert.Equal(t, 50.0, report.StrengthPercent)
}

func TestStatsService_RepositoryErrorPropagates(t *testing.T) {
	svc, m := newStatsService()

	m.members.On("ListByHouseholdID", mock.Anything, "house-1").Return(nil, domain.ErrHouseholdNotFound)

	_, err := svc.WaterKPIs(context.Background(), "house-1", analytics.RangeWeek)

	assert.ErrorIs(t, err, domain.ErrHouseholdNotFound)
}
