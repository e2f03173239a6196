package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

// HouseholdService owns the membership workflows: onboarding a first user
// into a fresh household, inviting and joining, profile updates, and the
// household-wide goal settings.
type HouseholdService struct {
	households  domain.HouseholdRepository
	members     domain.HouseholdUserRepository
	invitations domain.InvitationRepository
	settings    domain.SettingsRepository
	intake      domain.IntakeEntryRepository
	workouts    domain.WorkoutEntryRepository
}

func NewHouseholdService(
	households domain.HouseholdRepository,
	members domain.HouseholdUserRepository,
	invitations domain.InvitationRepository,
	settings domain.SettingsRepository,
	intake domain.IntakeEntryRepository,
	workouts domain.WorkoutEntryRepository,
) *HouseholdService {
	return &HouseholdService{
		households:  households,
		members:     members,
		invitations: invitations,
		settings:    settings,
		intake:      intake,
		workouts:    workouts,
	}
}

type CreateHouseholdInput struct {
	AuthUserID    string
	HouseholdName string
	DisplayName   string
	Color         string
	BottleSizeOz  float64
}

type JoinHouseholdInput struct {
	AuthUserID   string
	InviteCode   string
	DisplayName  string
	Color        string
	BottleSizeOz float64
}

// CreateHousehold onboards a first-time user: a new household with a
// permanent invite code, the user as owner, and default settings.
func (s *HouseholdService) CreateHousehold(ctx context.Context, input CreateHouseholdInput) (*domain.Household, *domain.HouseholdUser, error) {
	if _, err := s.members.GetByAuthUserID(ctx, input.AuthUserID); err == nil {
		return nil, nil, domain.ErrAlreadyMember
	} else if !errors.Is(err, domain.ErrHouseholdUserNotFound) {
		return nil, nil, err
	}

	household, err := domain.NewHousehold(input.HouseholdName)
	if err != nil {
		return nil, nil, err
	}

	owner, err := domain.NewHouseholdUser(household.ID, input.AuthUserID, input.DisplayName, input.Color, input.BottleSizeOz, true)
	if err != nil {
		return nil, nil, err
	}

	if err := s.households.Create(ctx, household); err != nil {
		return nil, nil, fmt.Errorf("household service: create household: %w", err)
	}
	if err := s.members.Create(ctx, owner); err != nil {
		return nil, nil, fmt.Errorf("household service: create owner: %w", err)
	}
	if err := s.settings.Upsert(ctx, domain.NewDefaultSettings(household.ID)); err != nil {
		return nil, nil, fmt.Errorf("household service: default settings: %w", err)
	}

	return household, owner, nil
}

func (s *HouseholdService) GetHousehold(ctx context.Context, id string) (*domain.Household, error) {
	return s.households.GetByID(ctx, id)
}

func (s *HouseholdService) RenameHousehold(ctx context.Context, id, name string) (*domain.Household, error) {
	household, err := s.households.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := household.Rename(name); err != nil {
		return nil, err
	}

	if err := s.households.Update(ctx, household); err != nil {
		return nil, err
	}
	return household, nil
}

// CurrentMember resolves an authenticated account to its household profile.
// ErrHouseholdUserNotFound means the account still needs onboarding.
func (s *HouseholdService) CurrentMember(ctx context.Context, authUserID string) (*domain.HouseholdUser, error) {
	return s.members.GetByAuthUserID(ctx, authUserID)
}

func (s *HouseholdService) ListMembers(ctx context.Context, householdID string) ([]*domain.HouseholdUser, error) {
	return s.members.ListByHouseholdID(ctx, householdID)
}

type UpdateMemberInput struct {
	MemberID     string
	DisplayName  string
	Color        string
	BottleSizeOz float64
	CardioGoal   float64
	StrengthGoal float64
}

func (s *HouseholdService) UpdateMember(ctx context.Context, input UpdateMemberInput) (*domain.HouseholdUser, error) {
	member, err := s.members.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	if err := member.UpdateProfile(input.DisplayName, input.Color, input.BottleSizeOz); err != nil {
		return nil, err
	}
	if err := member.SetWorkoutGoals(input.CardioGoal, input.StrengthGoal); err != nil {
		return nil, err
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *HouseholdService) RemoveMember(ctx context.Context, memberID string) error {
	return s.members.Delete(ctx, memberID)
}

// CreateInvitation issues a 7-day invite code for the household.
func (s *HouseholdService) CreateInvitation(ctx context.Context, householdID, invitedByMemberID string, email *string) (*domain.Invitation, error) {
	inv, err := domain.NewInvitation(householdID, invitedByMemberID, email)
	if err != nil {
		return nil, err
	}

	if err := s.invitations.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("household service: create invitation: %w", err)
	}
	return inv, nil
}

// resolveInviteCode finds the household a code leads to. Pending invitations
// win; the household's permanent code is the fallback.
func (s *HouseholdService) resolveInviteCode(ctx context.Context, code string, now time.Time) (string, *domain.Invitation, error) {
	inv, err := s.invitations.GetPendingByCode(ctx, code)
	if err == nil {
		if inv.IsExpired(now) {
			return "", nil, domain.ErrInvitationExpired
		}
		return inv.HouseholdID, inv, nil
	}
	if !errors.Is(err, domain.ErrInvitationNotFound) {
		return "", nil, err
	}

	household, err := s.households.GetByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrHouseholdNotFound) {
			return "", nil, domain.ErrInvitationNotFound
		}
		return "", nil, err
	}
	return household.ID, nil, nil
}

// JoinHousehold accepts an invite code and creates the joining member's
// profile. Time-limited invitations are marked accepted; the permanent code
// stays open.
func (s *HouseholdService) JoinHousehold(ctx context.Context, input JoinHouseholdInput) (*domain.HouseholdUser, error) {
	if _, err := s.members.GetByAuthUserID(ctx, input.AuthUserID); err == nil {
		return nil, domain.ErrAlreadyMember
	} else if !errors.Is(err, domain.ErrHouseholdUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	householdID, inv, err := s.resolveInviteCode(ctx, input.InviteCode, now)
	if err != nil {
		return nil, err
	}

	member, err := domain.NewHouseholdUser(householdID, input.AuthUserID, input.DisplayName, input.Color, input.BottleSizeOz, false)
	if err != nil {
		return nil, err
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("household service: create member: %w", err)
	}

	if inv != nil {
		if err := inv.Accept(member.ID, now); err == nil {
			if err := s.invitations.Update(ctx, inv); err != nil {
				return nil, fmt.Errorf("household service: mark invitation accepted: %w", err)
			}
		}
	}

	return member, nil
}

func (s *HouseholdService) GetSettings(ctx context.Context, householdID string) (*domain.Settings, error) {
	settings, err := s.settings.Get(ctx, householdID)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		// Households created before settings existed fall back to defaults.
		return domain.NewDefaultSettings(householdID), nil
	}
	return settings, err
}

type UpdateSettingsInput struct {
	HouseholdID        string
	Unit               string
	DailyGoalVolumeOz  float64
	Timezone           string
	CelebrationEnabled bool
	SoundEnabled       bool
}

func (s *HouseholdService) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error) {
	settings := &domain.Settings{
		HouseholdID:        input.HouseholdID,
		Unit:               input.Unit,
		DailyGoalVolumeOz:  input.DailyGoalVolumeOz,
		Timezone:           input.Timezone,
		CelebrationEnabled: input.CelebrationEnabled,
		SoundEnabled:       input.SoundEnabled,
		UpdatedAt:          time.Now().UTC(),
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := s.settings.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("household service: update settings: %w", err)
	}
	return settings, nil
}

// ResetData wipes every intake and workout entry of a household. Members,
// settings and the household itself survive.
func (s *HouseholdService) ResetData(ctx context.Context, householdID string) error {
	if err := s.intake.DeleteByHouseholdID(ctx, householdID); err != nil {
		return fmt.Errorf("household service: reset intake: %w", err)
	}
	if err := s.workouts.DeleteByHouseholdID(ctx, householdID); err != nil {
		return fmt.Errorf("household service: reset workouts: %w", err)
	}
	return nil
}
