package repository

import (
	"context"
	"database/sql"
	"sync"

	"github.com/mmw1984/timetable/internal/models"
)

// MemoryPreferenceRepository keeps the preference in process memory.
// Used when Postgres is unavailable: the preference then lives for the
// session only, which is the safe fallback the engine expects.
type MemoryPreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[string]models.ReminderPreference
}

// NewMemoryPreferenceRepository constructs an empty in-memory store.
func NewMemoryPreferenceRepository() *MemoryPreferenceRepository {
	return &MemoryPreferenceRepository{prefs: make(map[string]models.ReminderPreference)}
}

// Get returns the stored preference or sql.ErrNoRows when absent.
func (r *MemoryPreferenceRepository) Get(_ context.Context, profileID string) (*models.ReminderPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pref, ok := r.prefs[profileID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := pref
	return &cp, nil
}

// Upsert stores the preference.
func (r *MemoryPreferenceRepository) Upsert(_ context.Context, pref *models.ReminderPreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pref.ProfileID == "" {
		pref.ProfileID = models.DefaultProfileID
	}
	r.prefs[pref.ProfileID] = *pref
	return nil
}
