package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidWorkoutType  = errors.New("invalid workout type (must be cardio or strength)")
	ErrNonPositiveDuration = errors.New("workout duration must be positive")
	ErrNotesTooLong        = errors.New("workout notes are too long (max 500 chars)")
)

const (
	WorkoutTypeCardio   = "cardio"
	WorkoutTypeStrength = "strength"
	MaxWorkoutNotesLen  = 500
)

// WorkoutEntry is one logged exercise session. Durations are hours so that
// goal math shares a unit with the per-user weekly goals.
type WorkoutEntry struct {
	ID              string  `json:"id" db:"id"`
	HouseholdID     string  `json:"household_id" db:"household_id"`
	HouseholdUserID string  `json:"household_user_id" db:"household_user_id"`
	WorkoutType     string  `json:"workout_type" db:"workout_type"`
	DurationHours   float64 `json:"duration_hours" db:"duration_hours"`
	Notes           string  `json:"notes,omitempty" db:"notes"`

	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

func NewWorkoutEntry(householdID, householdUserID, workoutType string, durationHours float64, recordedAt time.Time) *WorkoutEntry {
	now := time.Now().UTC()

	return &WorkoutEntry{
		HouseholdID:     householdID,
		HouseholdUserID: householdUserID,
		WorkoutType:     workoutType,
		DurationHours:   durationHours,
		RecordedAt:      recordedAt.UTC(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (e *WorkoutEntry) Validate() error {
	if strings.TrimSpace(e.HouseholdID) == "" {
		return errors.New("household_id is required")
	}
	if strings.TrimSpace(e.HouseholdUserID) == "" {
		return errors.New("household_user_id is required")
	}
	switch e.WorkoutType {
	case WorkoutTypeCardio, WorkoutTypeStrength:
	default:
		return ErrInvalidWorkoutType
	}
	if e.DurationHours <= 0 {
		return ErrNonPositiveDuration
	}
	if len(e.Notes) > MaxWorkoutNotesLen {
		return ErrNotesTooLong
	}
	if e.RecordedAt.IsZero() {
		return errors.New("recorded_at is required")
	}
	return nil
}
