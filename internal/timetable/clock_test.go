package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateCanonical(t *testing.T) {
	day, err := ParseDate("2025-12-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-15", CanonicalDate(day))
	assert.Equal(t, time.Monday, day.Weekday())
}

func TestParseDateRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "2025-13-01", "15/12/2025", "2025-1-2", "2025-12-15T10:00", "yesterday"} {
		_, err := ParseDate(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "08:40", "23:59"}
	for _, raw := range valid {
		assert.True(t, ValidClock(raw), raw)
	}

	invalid := []string{"", "8:40", "08:4", "24:00", "12:60", "08-40", "ab:cd", "08:40:00"}
	for _, raw := range invalid {
		assert.False(t, ValidClock(raw), raw)
	}
}

func TestMinuteOf(t *testing.T) {
	assert.Equal(t, 0, MinuteOf("00:00"))
	assert.Equal(t, 8*60+40, MinuteOf("08:40"))
	assert.Equal(t, 23*60+59, MinuteOf("23:59"))
}
