package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNonPositiveVolume = errors.New("intake volume must be positive")
)

// IntakeEntry is one logged drink, always recorded in ounces. Entries are
// append-only: a correction is a deletion of the original entry, never a
// negative-volume adjustment, so a day's total can never go below zero.
type IntakeEntry struct {
	ID              string  `json:"id" db:"id"`
	HouseholdID     string  `json:"household_id" db:"household_id"`
	HouseholdUserID string  `json:"household_user_id" db:"household_user_id"`
	VolumeOz        float64 `json:"volume_oz" db:"volume_oz"`

	// RecordedAt is the instant the drink was logged, stored in UTC and
	// bucketed into calendar days with the household timezone at read time.
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

func NewIntakeEntry(householdID, householdUserID string, volumeOz float64, recordedAt time.Time) *IntakeEntry {
	now := time.Now().UTC()

	return &IntakeEntry{
		HouseholdID:     householdID,
		HouseholdUserID: householdUserID,
		VolumeOz:        volumeOz,
		RecordedAt:      recordedAt.UTC(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (e *IntakeEntry) Validate() error {
	if strings.TrimSpace(e.HouseholdID) == "" {
		return errors.New("household_id is required")
	}
	if strings.TrimSpace(e.HouseholdUserID) == "" {
		return errors.New("household_user_id is required")
	}
	if e.VolumeOz <= 0 {
		return ErrNonPositiveVolume
	}
	if e.RecordedAt.IsZero() {
		return errors.New("recorded_at is required")
	}
	return nil
}
