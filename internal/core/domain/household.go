package domain

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHouseholdNotFound  = errors.New("household not found")
	ErrHouseholdNameEmpty = errors.New("household name cannot be empty")
	ErrHouseholdNameLong  = errors.New("household name is too long (max 100 chars)")
)

const maxHouseholdNameLen = 100

// Characters chosen to avoid ambiguous glyphs (no I, O, 0, 1).
const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const inviteCodeLength = 6

// Household groups members who share a daily water goal. Every household
// carries a permanent invite code; time-limited codes live on Invitation.
type Household struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	InviteCode string    `json:"invite_code" db:"invite_code"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func NewHousehold(name string) (*Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrHouseholdNameEmpty
	}
	if len(name) > maxHouseholdNameLen {
		return nil, ErrHouseholdNameLong
	}

	now := time.Now().UTC()
	return &Household{
		ID:         uuid.NewString(),
		Name:       name,
		InviteCode: GenerateInviteCode(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (h *Household) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrHouseholdNameEmpty
	}
	if len(name) > maxHouseholdNameLen {
		return ErrHouseholdNameLong
	}

	h.Name = name
	h.UpdatedAt = time.Now().UTC()
	return nil
}

// RotateInviteCode replaces the permanent invite code, revoking the old one.
func (h *Household) RotateInviteCode() {
	h.InviteCode = GenerateInviteCode()
	h.UpdatedAt = time.Now().UTC()
}

func GenerateInviteCode() string {
	code := make([]byte, inviteCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(inviteCodeAlphabet))))
		if err != nil {
			// crypto/rand failing means the platform is broken; fall back
			// to a fixed index rather than panic in a constructor path.
			n = big.NewInt(int64(i % len(inviteCodeAlphabet)))
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(code)
}
