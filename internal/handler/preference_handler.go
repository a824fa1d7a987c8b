package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmw1984/timetable/internal/service"
	appErrors "github.com/mmw1984/timetable/pkg/errors"
	"github.com/mmw1984/timetable/pkg/response"
)

// ReminderClearer drops all pending armed/fired reminder state. The
// notification policy implements this; clearing on disable guarantees
// no scheduled reminder fires after the feature is switched off.
type ReminderClearer interface {
	Reset()
}

// PreferenceHandler serves the reminder preference.
type PreferenceHandler struct {
	service *service.PreferenceService
	clearer ReminderClearer
}

// NewPreferenceHandler constructs the handler. The clearer may be nil.
func NewPreferenceHandler(svc *service.PreferenceService, clearer ReminderClearer) *PreferenceHandler {
	return &PreferenceHandler{service: svc, clearer: clearer}
}

// Get godoc
// @Summary Current reminder preference
// @Tags Preferences
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /preferences/reminder [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	pref, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, pref)
}

// Update godoc
// @Summary Update the reminder preference
// @Tags Preferences
// @Accept json
// @Produce json
// @Param payload body service.UpdateReminderRequest true "Preference payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /preferences/reminder [put]
func (h *PreferenceHandler) Update(c *gin.Context) {
	var req service.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	pref, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !pref.Enabled && h.clearer != nil {
		h.clearer.Reset()
	}
	response.OK(c, pref)
}
