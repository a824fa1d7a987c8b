package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmw1984/timetable/internal/service"
)

func performExport(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewExportHandler(service.NewExportService(testScheduleService(), nil))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req

	h.Week(c)
	return w
}

func TestExportHandlerDefaultsToCSV(t *testing.T) {
	w := performExport(t, "/export/week")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "week-schedule-2025-12-15.csv")
	assert.Contains(t, w.Body.String(), "日期,星期,時段,開始,結束,科目")
}

func TestExportHandlerUnsupportedFormat(t *testing.T) {
	w := performExport(t, "/export/week?format=xlsx")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
