package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmw1984/timetable/internal/models"
	"github.com/mmw1984/timetable/internal/service"
	"github.com/mmw1984/timetable/internal/timetable"
)

type envelope struct {
	Success   bool            `json:"success"`
	Timestamp string          `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// December 2025: the 15th is a Monday, the 20th a Saturday.
func testScheduleService() *service.ScheduleService {
	ds := &timetable.Dataset{
		CycleDays:     8,
		FridayVariant: models.VariantSpecialB,
		DayCycles:     map[string]int{"2025-12-15": 6},
		Timetables: map[models.Variant]models.TimetableDefinition{
			models.VariantNormal: {
				Periods: []models.TimeRange{
					{Start: "08:40", End: "09:15"},
					{Start: "09:15", End: "09:50"},
				},
			},
			models.VariantSpecialB: {
				Periods: []models.TimeRange{{Start: "08:30", End: "09:00"}},
			},
		},
		Subjects: map[int]map[int]string{6: {1: "中文", 2: "英文"}},
	}
	clock := func() time.Time {
		return time.Date(2025, time.December, 15, 8, 50, 0, 0, time.UTC)
	}
	return service.NewScheduleService(timetable.NewEngine(ds), clock, nil)
}

func performGET(t *testing.T, handle gin.HandlerFunc, target string, params gin.Params) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req
	c.Params = params

	handle(c)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestScheduleHandlerToday(t *testing.T) {
	h := NewScheduleHandler(testScheduleService(), nil)

	w, env := performGET(t, h.Today, "/schedule/today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Timestamp)
	assert.Nil(t, env.Error)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, "2025-12-15", record["date"])
	assert.Equal(t, true, record["isSchoolDay"])
	assert.Equal(t, float64(1), record["dayOfWeekNumber"])
}

func TestScheduleHandlerByDate(t *testing.T) {
	h := NewScheduleHandler(testScheduleService(), nil)

	w, env := performGET(t, h.ByDate, "/schedule/date/2025-12-20", gin.Params{{Key: "date", Value: "2025-12-20"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, false, record["isSchoolDay"])
	assert.Equal(t, "週末休息", record["message"])
}

func TestScheduleHandlerByDateMalformed(t *testing.T) {
	h := NewScheduleHandler(testScheduleService(), nil)

	w, env := performGET(t, h.ByDate, "/schedule/date/15-12-2025", gin.Params{{Key: "date", Value: "15-12-2025"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "Invalid date format")
	assert.Nil(t, env.Data)
}

func TestScheduleHandlerCurrent(t *testing.T) {
	h := NewScheduleHandler(testScheduleService(), nil)

	w, env := performGET(t, h.Current, "/schedule/current", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "period", status["status"])
	assert.Equal(t, "08:50:00", status["currentTime"])
	assert.Equal(t, float64(1500), status["remainingSeconds"])
}

func TestScheduleHandlerWeek(t *testing.T) {
	h := NewScheduleHandler(testScheduleService(), nil)

	w, env := performGET(t, h.Week, "/schedule/week", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 7)
	assert.Equal(t, "2025-12-15", records[0]["date"])
}

func TestScheduleHandlerCatalogWithoutCache(t *testing.T) {
	// A nil cache service must behave as a plain pass-through.
	h := NewScheduleHandler(testScheduleService(), nil)

	w, env := performGET(t, h.Subjects, "/subjects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, env = performGET(t, h.Timetables, "/timetables", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "normal", summaries[0]["variant"])
}
