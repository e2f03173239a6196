package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrInvitationUsed     = errors.New("invitation has already been accepted")
)

const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusExpired  = "expired"
)

const invitationTTL = 7 * 24 * time.Hour

// Invitation is a time-limited invite code to join a household. The
// household's permanent invite code is a separate, never-expiring path;
// lookups fall back to it when no pending invitation matches.
type Invitation struct {
	ID               string     `json:"id" db:"id"`
	HouseholdID      string     `json:"household_id" db:"household_id"`
	InvitedByUserID  string     `json:"invited_by_user_id" db:"invited_by_user_id"`
	Email            *string    `json:"email,omitempty" db:"email"`
	InviteCode       string     `json:"invite_code" db:"invite_code"`
	Status           string     `json:"status" db:"status"`
	ExpiresAt        time.Time  `json:"expires_at" db:"expires_at"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	AcceptedAt       *time.Time `json:"accepted_at,omitempty" db:"accepted_at"`
	AcceptedByUserID *string    `json:"accepted_by_user_id,omitempty" db:"accepted_by_user_id"`
}

func NewInvitation(householdID, invitedByUserID string, email *string) (*Invitation, error) {
	if householdID == "" {
		return nil, ErrHouseholdNotFound
	}

	now := time.Now().UTC()
	return &Invitation{
		ID:              uuid.NewString(),
		HouseholdID:     householdID,
		InvitedByUserID: invitedByUserID,
		Email:           email,
		InviteCode:      GenerateInviteCode(),
		Status:          InvitationStatusPending,
		ExpiresAt:       now.Add(invitationTTL),
		CreatedAt:       now,
	}, nil
}

func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

func (i *Invitation) Accept(byUserID string, now time.Time) error {
	if i.Status == InvitationStatusAccepted {
		return ErrInvitationUsed
	}
	if i.Status == InvitationStatusExpired || i.IsExpired(now) {
		return ErrInvitationExpired
	}

	accepted := now.UTC()
	i.Status = InvitationStatusAccepted
	i.AcceptedAt = &accepted
	i.AcceptedByUserID = &byUserID
	return nil
}
