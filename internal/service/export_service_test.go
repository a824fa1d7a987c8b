package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/mmw1984/timetable/pkg/errors"
)

func TestExportWeekCSV(t *testing.T) {
	schedule := newScheduleService(fixedClock("2025-12-17 12:00:00"))
	svc := NewExportService(schedule, nil)

	result, err := svc.Week(FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "week-schedule-2025-12-15.csv", result.Filename)

	body := string(result.Content)
	assert.Contains(t, body, "週時間表 2025-12-15")
	assert.Contains(t, body, "日期,星期,時段,開始,結束,科目")
	assert.Contains(t, body, "2025-12-15,星期一,第1節,08:40,09:15,中文")
	// Non-school days export their message row.
	assert.Contains(t, body, "2025-12-20,星期六,週末休息")
}

func TestExportWeekPDF(t *testing.T) {
	schedule := newScheduleService(fixedClock("2025-12-17 12:00:00"))
	svc := NewExportService(schedule, nil)

	result, err := svc.Week(FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "week-schedule-2025-12-15.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	schedule := newScheduleService(fixedClock("2025-12-17 12:00:00"))
	svc := NewExportService(schedule, nil)

	_, err := svc.Week(ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
