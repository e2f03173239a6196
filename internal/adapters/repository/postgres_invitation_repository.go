package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

type PostgresInvitationRepository struct {
	db *sqlx.DB
}

func NewPostgresInvitationRepository(db *sqlx.DB) *PostgresInvitationRepository {
	return &PostgresInvitationRepository{db: db}
}

func (r *PostgresInvitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (
			id, household_id, invited_by_user_id, email, invite_code,
			status, expires_at, created_at, accepted_at, accepted_by_user_id
		) VALUES (
			:id, :household_id, :invited_by_user_id, :email, :invite_code,
			:status, :expires_at, :created_at, :accepted_at, :accepted_by_user_id
		)`

	_, err := r.db.NamedExecContext(ctx, query, inv)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrHouseholdNotFound
		}
		return fmt.Errorf("repository: create invitation failed: %w", err)
	}
	return nil
}

func (r *PostgresInvitationRepository) GetPendingByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	var inv domain.Invitation

	query := `
		SELECT * FROM invitations
		WHERE invite_code = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1`

	err := r.db.GetContext(ctx, &inv, query, code, domain.InvitationStatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("repository: get invitation failed: %w", err)
	}
	return &inv, nil
}

func (r *PostgresInvitationRepository) Update(ctx context.Context, inv *domain.Invitation) error {
	query := `
		UPDATE invitations
		SET status = :status,
		    accepted_at = :accepted_at,
		    accepted_by_user_id = :accepted_by_user_id
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, inv)
	if err != nil {
		return fmt.Errorf("repository: update invitation failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}
