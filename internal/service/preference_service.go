package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mmw1984/timetable/internal/models"
	"github.com/mmw1984/timetable/pkg/config"
	appErrors "github.com/mmw1984/timetable/pkg/errors"
)

// PreferenceRepository persists the reminder preference.
type PreferenceRepository interface {
	Get(ctx context.Context, profileID string) (*models.ReminderPreference, error)
	Upsert(ctx context.Context, pref *models.ReminderPreference) error
}

// PreferenceService reads and mutates the reminder preference. A
// missing row resolves to configured defaults, never an error.
type PreferenceService struct {
	repo      PreferenceRepository
	defaults  config.ReminderConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPreferenceService constructs the service.
func NewPreferenceService(repo PreferenceRepository, defaults config.ReminderConfig, validate *validator.Validate, logger *zap.Logger) *PreferenceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{repo: repo, defaults: defaults, validator: validate, logger: logger}
}

// UpdateReminderRequest is the preference mutation payload. Lead time
// is bounded to keep reminders meaningful.
type UpdateReminderRequest struct {
	Enabled     bool `json:"enabled"`
	LeadMinutes int  `json:"leadMinutes" validate:"required,min=1,max=30"`
}

// Get returns the stored preference or the defaults.
func (s *PreferenceService) Get(ctx context.Context) (models.ReminderPreference, error) {
	pref, err := s.repo.Get(ctx, models.DefaultProfileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.defaultPreference(), nil
		}
		// Storage trouble degrades to safe defaults with reminders off.
		s.logger.Warn("preference read failed, using defaults", zap.Error(err))
		fallback := s.defaultPreference()
		fallback.Enabled = false
		return fallback, nil
	}
	return *pref, nil
}

// Update validates and stores a new preference.
func (s *PreferenceService) Update(ctx context.Context, req UpdateReminderRequest) (models.ReminderPreference, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.ReminderPreference{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "leadMinutes must be between 1 and 30")
	}

	pref := models.ReminderPreference{
		ProfileID:   models.DefaultProfileID,
		Enabled:     req.Enabled,
		LeadMinutes: req.LeadMinutes,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, &pref); err != nil {
		return models.ReminderPreference{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store reminder preference")
	}
	return pref, nil
}

func (s *PreferenceService) defaultPreference() models.ReminderPreference {
	lead := s.defaults.DefaultLeadMinutes
	if lead < 1 || lead > 30 {
		lead = 5
	}
	return models.ReminderPreference{
		ProfileID:   models.DefaultProfileID,
		Enabled:     s.defaults.DefaultEnabled,
		LeadMinutes: lead,
	}
}
