package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

type PostgresWorkoutRepository struct {
	db *sqlx.DB
}

func NewPostgresWorkoutRepository(db *sqlx.DB) *PostgresWorkoutRepository {
	return &PostgresWorkoutRepository{db: db}
}

func (r *PostgresWorkoutRepository) Create(ctx context.Context, entry *domain.WorkoutEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO workout_entries (
			id, household_id, household_user_id,
			workout_type, duration_hours, notes, recorded_at,
			created_at, updated_at, deleted_at
		) VALUES (
			:id, :household_id, :household_user_id,
			:workout_type, :duration_hours, :notes, :recorded_at,
			:created_at, :updated_at, :deleted_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrHouseholdUserNotFound
		}
		return fmt.Errorf("repository: create workout entry failed: %w", err)
	}
	return nil
}

func (r *PostgresWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutEntry, error) {
	var entry domain.WorkoutEntry
	query := `SELECT * FROM workout_entries WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &entry, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("repository: get workout entry failed: %w", err)
	}
	return &entry, nil
}

func (r *PostgresWorkoutRepository) ListByHouseholdID(ctx context.Context, householdID string, from, to time.Time) ([]*domain.WorkoutEntry, error) {
	entries := []*domain.WorkoutEntry{}

	query := `
		SELECT * FROM workout_entries
		WHERE household_id = $1
		  AND recorded_at >= $2
		  AND recorded_at <= $3
		  AND deleted_at IS NULL
		ORDER BY recorded_at ASC`

	err := r.db.SelectContext(ctx, &entries, query, householdID, from, to)
	if err != nil {
		return nil, fmt.Errorf("repository: list workout entries failed: %w", err)
	}
	return entries, nil
}

func (r *PostgresWorkoutRepository) Delete(ctx context.Context, id, householdUserID string) error {
	now := time.Now().UTC()

	query := `
		UPDATE workout_entries
		SET deleted_at = $1,
		    updated_at = $1
		WHERE id = $2
		  AND household_user_id = $3
		  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, now, id, householdUserID)
	if err != nil {
		return fmt.Errorf("repository: delete workout entry failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *PostgresWorkoutRepository) DeleteByHouseholdID(ctx context.Context, householdID string) error {
	now := time.Now().UTC()

	query := `
		UPDATE workout_entries
		SET deleted_at = $1,
		    updated_at = $1
		WHERE household_id = $2 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, now, householdID); err != nil {
		return fmt.Errorf("repository: reset workout entries failed: %w", err)
	}
	return nil
}
