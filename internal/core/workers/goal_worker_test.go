package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

type stubSettingsRepo struct {
	settings *domain.Settings
}

func (s *stubSettingsRepo) Get(ctx context.Context, householdID string) (*domain.Settings, error) {
	return s.settings, nil
}

type stubEntryRepo struct {
	entries []*domain.IntakeEntry
}

func (s *stubEntryRepo) ListByHouseholdID(ctx context.Context, householdID string, from, to time.Time) ([]*domain.IntakeEntry, error) {
	return s.entries, nil
}

type stubMemberRepo struct {
	members []*domain.HouseholdUser
}

func (s *stubMemberRepo) ListByHouseholdID(ctx context.Context, householdID string) ([]*domain.HouseholdUser, error) {
	return s.members, nil
}

type stubCelebrationRepo struct {
	marked map[string]bool
}

func (s *stubCelebrationRepo) Mark(ctx context.Context, householdID, dateKey string) error {
	s.marked[dateKey] = true
	return nil
}

func (s *stubCelebrationRepo) IsMarked(ctx context.Context, householdID, dateKey string) (bool, error) {
	return s.marked[dateKey], nil
}

func intakeNow(memberID string, volumeOz float64, ts time.Time) *domain.IntakeEntry {
	return &domain.IntakeEntry{
		ID:              memberID + ts.Format(time.RFC3339Nano),
		HouseholdID:     "hh-1",
		HouseholdUserID: memberID,
		VolumeOz:        volumeOz,
		RecordedAt:      ts,
	}
}

func newTestWorker(settings *domain.Settings, entries []*domain.IntakeEntry, celebrations *stubCelebrationRepo, now time.Time) *GoalWorker {
	w := NewGoalWorker(
		&stubSettingsRepo{settings: settings},
		&stubEntryRepo{entries: entries},
		&stubMemberRepo{members: []*domain.HouseholdUser{{ID: "m1", HouseholdID: "hh-1"}}},
		celebrations,
	)
	w.now = func() time.Time { return now }
	return w
}

func TestGoalWorker_ProcessJob(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)

	settings := domain.NewDefaultSettings("hh-1")
	settings.DailyGoalVolumeOz = 64

	t.Run("Marks the day once the goal is met", func(t *testing.T) {
		celebrations := &stubCelebrationRepo{marked: map[string]bool{}}
		entries := []*domain.IntakeEntry{
			intakeNow("m1", 40, now.Add(-6*time.Hour)),
			intakeNow("m1", 30, now.Add(-1*time.Hour)),
		}

		w := newTestWorker(settings, entries, celebrations, now)
		w.processJob(ctx, GoalJob{HouseholdID: "hh-1"})

		assert.True(t, celebrations.marked["2024-01-10"])
	})

	t.Run("Below goal stays unmarked", func(t *testing.T) {
		celebrations := &stubCelebrationRepo{marked: map[string]bool{}}
		entries := []*domain.IntakeEntry{intakeNow("m1", 20, now)}

		w := newTestWorker(settings, entries, celebrations, now)
		w.processJob(ctx, GoalJob{HouseholdID: "hh-1"})

		assert.Empty(t, celebrations.marked)
	})

	t.Run("Yesterday's volume does not count for today", func(t *testing.T) {
		celebrations := &stubCelebrationRepo{marked: map[string]bool{}}
		entries := []*domain.IntakeEntry{intakeNow("m1", 100, now.AddDate(0, 0, -1))}

		w := newTestWorker(settings, entries, celebrations, now)
		w.processJob(ctx, GoalJob{HouseholdID: "hh-1"})

		assert.Empty(t, celebrations.marked)
	})

	t.Run("Celebrations disabled", func(t *testing.T) {
		quiet := domain.NewDefaultSettings("hh-1")
		quiet.DailyGoalVolumeOz = 64
		quiet.CelebrationEnabled = false

		celebrations := &stubCelebrationRepo{marked: map[string]bool{}}
		entries := []*domain.IntakeEntry{intakeNow("m1", 100, now)}

		w := newTestWorker(quiet, entries, celebrations, now)
		w.processJob(ctx, GoalJob{HouseholdID: "hh-1"})

		assert.Empty(t, celebrations.marked)
	})
}

func TestGoalWorker_Enqueue(t *testing.T) {
	w := NewGoalWorker(nil, nil, nil, nil)

	// Queue holds 100 jobs; overflow is dropped, never blocking the caller.
	for i := 0; i < 150; i++ {
		w.Enqueue("hh-1")
	}
	assert.Len(t, w.jobs, 100)
}
