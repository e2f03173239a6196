package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostgresCelebrationRepository struct {
	db *sqlx.DB
}

func NewPostgresCelebrationRepository(db *sqlx.DB) *PostgresCelebrationRepository {
	return &PostgresCelebrationRepository{db: db}
}

func (r *PostgresCelebrationRepository) Mark(ctx context.Context, householdID, dateKey string) error {
	query := `
		INSERT INTO celebrations (id, household_id, date_key, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (household_id, date_key) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, uuid.NewString(), householdID, dateKey, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("repository: mark celebration failed: %w", err)
	}
	return nil
}

func (r *PostgresCelebrationRepository) IsMarked(ctx context.Context, householdID, dateKey string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM celebrations WHERE household_id = $1 AND date_key = $2`

	if err := r.db.GetContext(ctx, &count, query, householdID, dateKey); err != nil {
		return false, fmt.Errorf("repository: celebration lookup failed: %w", err)
	}
	return count > 0, nil
}

func (r *PostgresCelebrationRepository) ListByHouseholdID(ctx context.Context, householdID string) ([]string, error) {
	dates := []string{}

	query := `
		SELECT date_key FROM celebrations
		WHERE household_id = $1
		ORDER BY date_key ASC`

	if err := r.db.SelectContext(ctx, &dates, query, householdID); err != nil {
		return nil, fmt.Errorf("repository: list celebrations failed: %w", err)
	}
	return dates, nil
}
