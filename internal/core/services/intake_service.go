package services

import (
	"context"
	"time"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/analytics"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/workers"
)

// IntakeService logs and removes water entries. Every write nudges the goal
// worker so the day's celebration state catches up in the background.
type IntakeService struct {
	repo    domain.IntakeEntryRepository
	members domain.HouseholdUserRepository
	worker  *workers.GoalWorker
}

func NewIntakeService(repo domain.IntakeEntryRepository, members domain.HouseholdUserRepository, worker *workers.GoalWorker) *IntakeService {
	return &IntakeService{
		repo:    repo,
		members: members,
		worker:  worker,
	}
}

type LogIntakeInput struct {
	MemberID   string
	VolumeOz   float64
	RecordedAt time.Time
}

func (s *IntakeService) LogIntake(ctx context.Context, input LogIntakeInput) (*domain.IntakeEntry, error) {
	member, err := s.members.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	entry := domain.NewIntakeEntry(member.HouseholdID, member.ID, input.VolumeOz, recordedAt)
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.worker.Enqueue(member.HouseholdID)

	return entry, nil
}

// LogBottles is the quick-add path: n of the member's configured bottles.
func (s *IntakeService) LogBottles(ctx context.Context, memberID string, bottles int) (*domain.IntakeEntry, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return s.LogIntake(ctx, LogIntakeInput{
		MemberID: memberID,
		VolumeOz: float64(bottles) * member.BottleSizeOz,
	})
}

// DeleteEntry is the only correction mechanism: negative volumes are never
// written, a wrong log is removed instead.
func (s *IntakeService) DeleteEntry(ctx context.Context, id, memberID string) error {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.HouseholdUserID != memberID {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, id, memberID); err != nil {
		return err
	}

	s.worker.Enqueue(entry.HouseholdID)

	return nil
}

// ListForRange returns the household's entries covering the trailing window,
// padded by a day on each side so timezone bucketing downstream never misses
// an edge entry.
func (s *IntakeService) ListForRange(ctx context.Context, householdID string, kind analytics.RangeKind, now time.Time, loc *time.Location) ([]*domain.IntakeEntry, error) {
	start, end := analytics.DateRange(kind, now, loc)
	return s.repo.ListByHouseholdID(ctx, householdID, start.AddDate(0, 0, -1), end.AddDate(0, 0, 2))
}
