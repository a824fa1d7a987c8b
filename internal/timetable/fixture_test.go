package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmw1984/timetable/internal/models"
)

// December 2025: the 15th is a Monday, the 19th a Friday, the 20th and
// 21st a weekend. The fixture mirrors that week.
func testDataset() *Dataset {
	return &Dataset{
		CycleDays:     8,
		FridayVariant: models.VariantSpecialB,
		DayCycles: map[string]int{
			"2025-12-15": 6,
			"2025-12-16": 7,
			"2025-12-19": 2,
			"2025-12-20": 3, // weekend entry, must be ignored
		},
		SpecialDates: map[string]string{
			"2025-12-21": "A", // Sunday override
			"2025-12-22": "A", // Monday override
			"2025-12-26": "C", // Friday override, no specialC definition
		},
		Timetables: map[models.Variant]models.TimetableDefinition{
			models.VariantNormal: {
				Assembly: &models.TimeRange{Start: "08:25", End: "08:35"},
				Periods: []models.TimeRange{
					{Start: "08:40", End: "09:15"},
					{Start: "09:15", End: "09:50"},
					{Start: "10:05", End: "10:40"},
				},
				Breaks: []models.BreakDef{
					{Name: "小息", Start: "09:50", End: "10:05"},
				},
			},
			models.VariantSpecialA: {
				Periods: []models.TimeRange{
					{Start: "08:40", End: "09:10"},
					{Start: "09:10", End: "09:40"},
				},
			},
			models.VariantSpecialB: {
				Periods: []models.TimeRange{
					{Start: "08:30", End: "09:00"},
					{Start: "09:00", End: "09:30"},
				},
			},
		},
		Subjects: map[int]map[int]string{
			6: {1: "中文", 2: "英文", 3: "數學"},
			2: {1: "物理"},
		},
	}
}

func testEngine() *Engine {
	return NewEngine(testDataset())
}

func mustDate(t *testing.T, raw string) time.Time {
	t.Helper()
	day, err := ParseDate(raw)
	require.NoError(t, err)
	return day
}
