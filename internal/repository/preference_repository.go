package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mmw1984/timetable/internal/models"
)

// PreferenceRepository persists the reminder preference in Postgres.
type PreferenceRepository struct {
	db *sqlx.DB
}

// NewPreferenceRepository constructs the repository.
func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get returns the stored preference for a profile.
func (r *PreferenceRepository) Get(ctx context.Context, profileID string) (*models.ReminderPreference, error) {
	const query = `SELECT profile_id, enabled, lead_minutes, updated_at FROM reminder_preferences WHERE profile_id = $1`
	var pref models.ReminderPreference
	if err := r.db.GetContext(ctx, &pref, query, profileID); err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert creates or updates the preference row.
func (r *PreferenceRepository) Upsert(ctx context.Context, pref *models.ReminderPreference) error {
	if pref.ProfileID == "" {
		pref.ProfileID = models.DefaultProfileID
	}
	if pref.UpdatedAt.IsZero() {
		pref.UpdatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO reminder_preferences (profile_id, enabled, lead_minutes, updated_at)
		VALUES (:profile_id, :enabled, :lead_minutes, :updated_at)
		ON CONFLICT (profile_id) DO UPDATE
		SET enabled = EXCLUDED.enabled,
		    lead_minutes = EXCLUDED.lead_minutes,
		    updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, pref); err != nil {
		return fmt.Errorf("upsert reminder preference: %w", err)
	}
	return nil
}
