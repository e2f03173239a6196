package domain

import "time"

// Celebration marks a calendar day (household-local "YYYY-MM-DD" key) whose
// daily water goal was met and already celebrated, so the clients do not
// replay the animation on every load.
type Celebration struct {
	HouseholdID string    `json:"household_id" db:"household_id"`
	DateKey     string    `json:"date" db:"date_key"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
