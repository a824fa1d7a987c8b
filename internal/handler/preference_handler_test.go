package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmw1984/timetable/internal/repository"
	"github.com/mmw1984/timetable/internal/service"
	"github.com/mmw1984/timetable/pkg/config"
)

type fakeClearer struct{ resets int }

func (f *fakeClearer) Reset() { f.resets++ }

func testPreferenceService() *service.PreferenceService {
	defaults := config.ReminderConfig{DefaultEnabled: true, DefaultLeadMinutes: 5}
	return service.NewPreferenceService(repository.NewMemoryPreferenceRepository(), defaults, nil, nil)
}

func performPUT(t *testing.T, h *PreferenceHandler, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPut, "/preferences/reminder", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Update(c)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestPreferenceHandlerGetDefaults(t *testing.T) {
	h := NewPreferenceHandler(testPreferenceService(), nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/preferences/reminder", nil)
	require.NoError(t, err)
	c.Request = req

	h.Get(c)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var pref map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &pref))
	assert.Equal(t, true, pref["enabled"])
	assert.Equal(t, float64(5), pref["leadMinutes"])
}

func TestPreferenceHandlerUpdate(t *testing.T) {
	clearer := &fakeClearer{}
	h := NewPreferenceHandler(testPreferenceService(), clearer)

	w, env := performPUT(t, h, `{"enabled":true,"leadMinutes":10}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Zero(t, clearer.resets)

	var pref map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &pref))
	assert.Equal(t, float64(10), pref["leadMinutes"])
}

func TestPreferenceHandlerDisableClearsReminders(t *testing.T) {
	clearer := &fakeClearer{}
	h := NewPreferenceHandler(testPreferenceService(), clearer)

	w, _ := performPUT(t, h, `{"enabled":false,"leadMinutes":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, clearer.resets)
}

func TestPreferenceHandlerRejectsBadPayload(t *testing.T) {
	h := NewPreferenceHandler(testPreferenceService(), &fakeClearer{})

	w, env := performPUT(t, h, `not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	w, env = performPUT(t, h, `{"enabled":true,"leadMinutes":45}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "leadMinutes")
}
