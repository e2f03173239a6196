package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHouseholdUserNotFound = errors.New("household user not found")
	ErrDisplayNameEmpty      = errors.New("display name cannot be empty")
	ErrDisplayNameTooLong    = errors.New("display name is too long (max 50 chars)")
	ErrInvalidColor          = errors.New("invalid color format (must be #RRGGBB)")
	ErrInvalidBottleSize     = errors.New("bottle size must be positive")
	ErrNegativeGoalHours     = errors.New("weekly goal hours cannot be negative")
	ErrAlreadyMember         = errors.New("user already belongs to a household")
)

var colorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

const MaxDisplayNameLen = 50

// HouseholdUser is one member's profile within a household: display identity
// plus the per-user goal parameters the analytics engine reads. The shared
// daily water goal lives on Settings; cardio/strength goals are per member.
type HouseholdUser struct {
	ID                      string    `json:"id" db:"id"`
	HouseholdID             string    `json:"household_id" db:"household_id"`
	AuthUserID              string    `json:"auth_user_id" db:"auth_user_id"`
	DisplayName             string    `json:"display_name" db:"display_name"`
	Color                   string    `json:"color" db:"color"`
	BottleSizeOz            float64   `json:"bottle_size_oz" db:"bottle_size_oz"`
	WeeklyCardioGoalHours   float64   `json:"weekly_cardio_goal_hours" db:"weekly_cardio_goal_hours"`
	WeeklyStrengthGoalHours float64   `json:"weekly_strength_goal_hours" db:"weekly_strength_goal_hours"`
	IsOwner                 bool      `json:"is_owner" db:"is_owner"`
	CreatedAt               time.Time `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time `json:"updated_at" db:"updated_at"`
}

func validateProfile(displayName, color string, bottleSizeOz, cardioGoal, strengthGoal float64) (string, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return "", ErrDisplayNameEmpty
	}
	if len(name) > MaxDisplayNameLen {
		return "", ErrDisplayNameTooLong
	}
	if !colorRegex.MatchString(color) {
		return "", ErrInvalidColor
	}
	if bottleSizeOz <= 0 {
		return "", ErrInvalidBottleSize
	}
	if cardioGoal < 0 || strengthGoal < 0 {
		return "", ErrNegativeGoalHours
	}
	return name, nil
}

func NewHouseholdUser(householdID, authUserID, displayName, color string, bottleSizeOz float64, isOwner bool) (*HouseholdUser, error) {
	if householdID == "" || authUserID == "" {
		return nil, ErrHouseholdUserNotFound
	}

	name, err := validateProfile(displayName, color, bottleSizeOz, 0, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &HouseholdUser{
		ID:           uuid.NewString(),
		HouseholdID:  householdID,
		AuthUserID:   authUserID,
		DisplayName:  name,
		Color:        color,
		BottleSizeOz: bottleSizeOz,
		IsOwner:      isOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (u *HouseholdUser) UpdateProfile(displayName, color string, bottleSizeOz float64) error {
	name, err := validateProfile(displayName, color, bottleSizeOz, u.WeeklyCardioGoalHours, u.WeeklyStrengthGoalHours)
	if err != nil {
		return err
	}

	u.DisplayName = name
	u.Color = color
	u.BottleSizeOz = bottleSizeOz
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (u *HouseholdUser) SetWorkoutGoals(cardioHours, strengthHours float64) error {
	if cardioHours < 0 || strengthHours < 0 {
		return ErrNegativeGoalHours
	}

	u.WeeklyCardioGoalHours = cardioHours
	u.WeeklyStrengthGoalHours = strengthHours
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// CombinedWeeklyGoalHours is the member's individual workout target, the sum
// of the cardio and strength goals.
func (u *HouseholdUser) CombinedWeeklyGoalHours() float64 {
	return u.WeeklyCardioGoalHours + u.WeeklyStrengthGoalHours
}
