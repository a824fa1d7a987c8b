package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/mmw1984/timetable/internal/models"
)

func newPreferenceRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestPreferenceRepositoryGet(t *testing.T) {
	db, mock, cleanup := newPreferenceRepoMock(t)
	defer cleanup()

	repo := NewPreferenceRepository(db)
	rows := sqlmock.NewRows([]string{"profile_id", "enabled", "lead_minutes", "updated_at"}).
		AddRow("default", true, 10, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT profile_id, enabled, lead_minutes, updated_at FROM reminder_preferences")).
		WithArgs("default").
		WillReturnRows(rows)

	pref, err := repo.Get(context.Background(), models.DefaultProfileID)
	require.NoError(t, err)
	require.Equal(t, "default", pref.ProfileID)
	require.True(t, pref.Enabled)
	require.Equal(t, 10, pref.LeadMinutes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepositoryGetAbsent(t *testing.T) {
	db, mock, cleanup := newPreferenceRepoMock(t)
	defer cleanup()

	repo := NewPreferenceRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT profile_id, enabled, lead_minutes, updated_at FROM reminder_preferences")).
		WithArgs("default").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), models.DefaultProfileID)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newPreferenceRepoMock(t)
	defer cleanup()

	repo := NewPreferenceRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reminder_preferences")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	pref := &models.ReminderPreference{Enabled: true, LeadMinutes: 5}
	require.NoError(t, repo.Upsert(context.Background(), pref))
	require.Equal(t, models.DefaultProfileID, pref.ProfileID)
	require.False(t, pref.UpdatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryPreferenceRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryPreferenceRepository()

	_, err := repo.Get(context.Background(), models.DefaultProfileID)
	require.ErrorIs(t, err, sql.ErrNoRows)

	pref := &models.ReminderPreference{Enabled: true, LeadMinutes: 15}
	require.NoError(t, repo.Upsert(context.Background(), pref))

	stored, err := repo.Get(context.Background(), models.DefaultProfileID)
	require.NoError(t, err)
	require.Equal(t, 15, stored.LeadMinutes)

	// The returned value is a copy; mutating it must not leak back.
	stored.LeadMinutes = 99
	again, err := repo.Get(context.Background(), models.DefaultProfileID)
	require.NoError(t, err)
	require.Equal(t, 15, again.LeadMinutes)
}
