package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

type PostgresHouseholdRepository struct {
	db *sqlx.DB
}

func NewPostgresHouseholdRepository(db *sqlx.DB) *PostgresHouseholdRepository {
	return &PostgresHouseholdRepository{db: db}
}

func (r *PostgresHouseholdRepository) Create(ctx context.Context, household *domain.Household) error {
	query := `
		INSERT INTO households (id, name, invite_code, created_at, updated_at)
		VALUES (:id, :name, :invite_code, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, household)
	if err != nil {
		return fmt.Errorf("repository: create household failed: %w", err)
	}
	return nil
}

func (r *PostgresHouseholdRepository) GetByID(ctx context.Context, id string) (*domain.Household, error) {
	var household domain.Household
	query := `SELECT * FROM households WHERE id = $1`

	err := r.db.GetContext(ctx, &household, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHouseholdNotFound
		}
		return nil, fmt.Errorf("repository: get household failed: %w", err)
	}
	return &household, nil
}

func (r *PostgresHouseholdRepository) GetByInviteCode(ctx context.Context, code string) (*domain.Household, error) {
	var household domain.Household
	query := `SELECT * FROM households WHERE invite_code = $1`

	err := r.db.GetContext(ctx, &household, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHouseholdNotFound
		}
		return nil, fmt.Errorf("repository: get household by invite code failed: %w", err)
	}
	return &household, nil
}

func (r *PostgresHouseholdRepository) Update(ctx context.Context, household *domain.Household) error {
	query := `
		UPDATE households
		SET name = :name,
		    invite_code = :invite_code,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, household)
	if err != nil {
		return fmt.Errorf("repository: update household failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHouseholdNotFound
	}
	return nil
}
