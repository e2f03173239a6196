package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

type PostgresSettingsRepository struct {
	db *sqlx.DB
}

func NewPostgresSettingsRepository(db *sqlx.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Get(ctx context.Context, householdID string) (*domain.Settings, error) {
	var settings domain.Settings
	query := `SELECT * FROM settings WHERE household_id = $1`

	err := r.db.GetContext(ctx, &settings, query, householdID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("repository: get settings failed: %w", err)
	}
	return &settings, nil
}

// Upsert writes the household's settings row whether or not one exists yet.
// Settings are one row per household, keyed by household_id.
func (r *PostgresSettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	query := `
		INSERT INTO settings (
			household_id, unit, daily_goal_volume_oz, timezone,
			celebration_enabled, sound_enabled, updated_at
		) VALUES (
			:household_id, :unit, :daily_goal_volume_oz, :timezone,
			:celebration_enabled, :sound_enabled, :updated_at
		)
		ON CONFLICT (household_id) DO UPDATE SET
			unit = EXCLUDED.unit,
			daily_goal_volume_oz = EXCLUDED.daily_goal_volume_oz,
			timezone = EXCLUDED.timezone,
			celebration_enabled = EXCLUDED.celebration_enabled,
			sound_enabled = EXCLUDED.sound_enabled,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, settings)
	if err != nil {
		return fmt.Errorf("repository: upsert settings failed: %w", err)
	}
	return nil
}
