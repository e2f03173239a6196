package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

type PostgresHouseholdUserRepository struct {
	db *sqlx.DB
}

func NewPostgresHouseholdUserRepository(db *sqlx.DB) *PostgresHouseholdUserRepository {
	return &PostgresHouseholdUserRepository{db: db}
}

func (r *PostgresHouseholdUserRepository) Create(ctx context.Context, user *domain.HouseholdUser) error {
	query := `
		INSERT INTO household_users (
			id, household_id, auth_user_id, display_name, color,
			bottle_size_oz, weekly_cardio_goal_hours, weekly_strength_goal_hours,
			is_owner, created_at, updated_at
		) VALUES (
			:id, :household_id, :auth_user_id, :display_name, :color,
			:bottle_size_oz, :weekly_cardio_goal_hours, :weekly_strength_goal_hours,
			:is_owner, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23503" {
				return domain.ErrHouseholdNotFound
			}
			if pqErr.Code == "23505" {
				return domain.ErrAlreadyMember
			}
		}
		return fmt.Errorf("repository: create household user failed: %w", err)
	}
	return nil
}

func (r *PostgresHouseholdUserRepository) GetByID(ctx context.Context, id string) (*domain.HouseholdUser, error) {
	var user domain.HouseholdUser
	query := `SELECT * FROM household_users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHouseholdUserNotFound
		}
		return nil, fmt.Errorf("repository: get household user failed: %w", err)
	}
	return &user, nil
}

func (r *PostgresHouseholdUserRepository) GetByAuthUserID(ctx context.Context, authUserID string) (*domain.HouseholdUser, error) {
	var user domain.HouseholdUser
	query := `SELECT * FROM household_users WHERE auth_user_id = $1`

	err := r.db.GetContext(ctx, &user, query, authUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHouseholdUserNotFound
		}
		return nil, fmt.Errorf("repository: get household user by auth id failed: %w", err)
	}
	return &user, nil
}

func (r *PostgresHouseholdUserRepository) ListByHouseholdID(ctx context.Context, householdID string) ([]*domain.HouseholdUser, error) {
	users := []*domain.HouseholdUser{}

	query := `
		SELECT * FROM household_users
		WHERE household_id = $1
		ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &users, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("repository: list household users failed: %w", err)
	}
	return users, nil
}

func (r *PostgresHouseholdUserRepository) Update(ctx context.Context, user *domain.HouseholdUser) error {
	user.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE household_users
		SET display_name = :display_name,
		    color = :color,
		    bottle_size_oz = :bottle_size_oz,
		    weekly_cardio_goal_hours = :weekly_cardio_goal_hours,
		    weekly_strength_goal_hours = :weekly_strength_goal_hours,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("repository: update household user failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHouseholdUserNotFound
	}
	return nil
}

// Delete removes the membership row. Logged entries keep their member id so
// historical totals still add up after someone leaves.
func (r *PostgresHouseholdUserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM household_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: delete household user failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHouseholdUserNotFound
	}
	return nil
}
