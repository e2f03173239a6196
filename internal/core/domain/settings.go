package domain

import (
	"errors"
	"time"
)

var (
	ErrSettingsNotFound = errors.New("settings not found")
	ErrInvalidUnit      = errors.New("invalid unit (must be oz or l)")
	ErrInvalidDailyGoal = errors.New("daily goal volume must be positive")
	ErrInvalidTimezone  = errors.New("invalid timezone name")
)

const (
	UnitOunces = "oz"
	UnitLiters = "l"
)

const DefaultDailyGoalOz float64 = 128

// Settings is the household-wide goal configuration. DailyGoalVolumeOz is the
// combined water goal evaluated against the sum of all members' intake; it is
// always stored in ounces regardless of the display unit.
//
// Timezone is the IANA name used to bucket timestamps into calendar days for
// the whole household. Entries are stored in UTC and bucketed at read time.
type Settings struct {
	HouseholdID        string    `json:"household_id" db:"household_id"`
	Unit               string    `json:"unit" db:"unit"`
	DailyGoalVolumeOz  float64   `json:"daily_goal_volume_oz" db:"daily_goal_volume_oz"`
	Timezone           string    `json:"timezone" db:"timezone"`
	CelebrationEnabled bool      `json:"celebration_enabled" db:"celebration_enabled"`
	SoundEnabled       bool      `json:"sound_enabled" db:"sound_enabled"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

func NewDefaultSettings(householdID string) *Settings {
	return &Settings{
		HouseholdID:        householdID,
		Unit:               UnitOunces,
		DailyGoalVolumeOz:  DefaultDailyGoalOz,
		Timezone:           "UTC",
		CelebrationEnabled: true,
		SoundEnabled:       true,
		UpdatedAt:          time.Now().UTC(),
	}
}

func (s *Settings) Validate() error {
	switch s.Unit {
	case UnitOunces, UnitLiters:
	default:
		return ErrInvalidUnit
	}

	if s.DailyGoalVolumeOz <= 0 {
		return ErrInvalidDailyGoal
	}

	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return ErrInvalidTimezone
	}

	return nil
}

// Location resolves the household timezone, falling back to UTC when the
// stored name no longer resolves (e.g. tzdata changes between deploys).
func (s *Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
