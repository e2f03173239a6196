package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type HouseholdRepository interface {
	Create(ctx context.Context, household *Household) error
	GetByID(ctx context.Context, id string) (*Household, error)

	// GetByInviteCode resolves a household by its permanent invite code.
	GetByInviteCode(ctx context.Context, code string) (*Household, error)

	Update(ctx context.Context, household *Household) error
}

type HouseholdUserRepository interface {
	Create(ctx context.Context, user *HouseholdUser) error
	GetByID(ctx context.Context, id string) (*HouseholdUser, error)

	// GetByAuthUserID finds the member profile of an authenticated account.
	// Returns ErrHouseholdUserNotFound when the account has not joined a
	// household yet (the onboarding check).
	GetByAuthUserID(ctx context.Context, authUserID string) (*HouseholdUser, error)

	ListByHouseholdID(ctx context.Context, householdID string) ([]*HouseholdUser, error)
	Update(ctx context.Context, user *HouseholdUser) error
	Delete(ctx context.Context, id string) error
}

type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error

	// GetPendingByCode returns the pending invitation matching a code,
	// or ErrInvitationNotFound.
	GetPendingByCode(ctx context.Context, code string) (*Invitation, error)

	Update(ctx context.Context, inv *Invitation) error
}

type SettingsRepository interface {
	Get(ctx context.Context, householdID string) (*Settings, error)
	Upsert(ctx context.Context, settings *Settings) error
}

type CelebrationRepository interface {
	// Mark records a celebrated date. Idempotent: marking an already
	// celebrated date is not an error.
	Mark(ctx context.Context, householdID, dateKey string) error

	IsMarked(ctx context.Context, householdID, dateKey string) (bool, error)
	ListByHouseholdID(ctx context.Context, householdID string) ([]string, error)
}

type IntakeEntryRepository interface {
	Create(ctx context.Context, entry *IntakeEntry) error
	GetByID(ctx context.Context, id string) (*IntakeEntry, error)

	// ListByHouseholdID returns active entries recorded in [from, to].
	ListByHouseholdID(ctx context.Context, householdID string, from, to time.Time) ([]*IntakeEntry, error)

	// Delete soft-deletes an entry. It requires the owning member's id so a
	// member cannot remove someone else's log.
	Delete(ctx context.Context, id, householdUserID string) error

	// DeleteByHouseholdID removes every entry of a household (data reset).
	DeleteByHouseholdID(ctx context.Context, householdID string) error
}

type WorkoutEntryRepository interface {
	Create(ctx context.Context, entry *WorkoutEntry) error
	GetByID(ctx context.Context, id string) (*WorkoutEntry, error)
	ListByHouseholdID(ctx context.Context, householdID string, from, to time.Time) ([]*WorkoutEntry, error)
	Delete(ctx context.Context, id, householdUserID string) error
	DeleteByHouseholdID(ctx context.Context, householdID string) error
}
