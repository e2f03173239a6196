package services

import (
	"context"
	"time"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

type WorkoutService struct {
	repo    domain.WorkoutEntryRepository
	members domain.HouseholdUserRepository
}

func NewWorkoutService(repo domain.WorkoutEntryRepository, members domain.HouseholdUserRepository) *WorkoutService {
	return &WorkoutService{
		repo:    repo,
		members: members,
	}
}

type LogWorkoutInput struct {
	MemberID      string
	WorkoutType   string
	DurationHours float64
	Notes         string
	RecordedAt    time.Time
}

func (s *WorkoutService) LogWorkout(ctx context.Context, input LogWorkoutInput) (*domain.WorkoutEntry, error) {
	member, err := s.members.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	entry := domain.NewWorkoutEntry(member.HouseholdID, member.ID, input.WorkoutType, input.DurationHours, recordedAt)
	entry.Notes = input.Notes

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *WorkoutService) DeleteEntry(ctx context.Context, id, memberID string) error {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.HouseholdUserID != memberID {
		return domain.ErrUnauthorized
	}

	return s.repo.Delete(ctx, id, memberID)
}

func (s *WorkoutService) ListForRange(ctx context.Context, householdID string, from, to time.Time) ([]*domain.WorkoutEntry, error) {
	return s.repo.ListByHouseholdID(ctx, householdID, from, to)
}
