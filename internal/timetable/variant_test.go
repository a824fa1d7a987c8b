package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmw1984/timetable/internal/models"
)

func TestVariantFor(t *testing.T) {
	e := testEngine()

	cases := []struct {
		date string
		want models.Variant
	}{
		{"2025-12-15", models.VariantNormal},   // Monday with a cycle
		{"2025-12-19", models.VariantSpecialB}, // Friday rule
		{"2025-12-20", models.VariantNone},     // Saturday, cycle entry ignored
		{"2025-12-21", models.VariantSpecialA}, // override beats the weekend
		{"2025-12-22", models.VariantSpecialA}, // override beats normal
		{"2025-12-26", models.VariantSpecialC}, // override beats the Friday rule
		{"2025-12-17", models.VariantNone},     // weekday without data
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, e.VariantFor(mustDate(t, tc.date)), tc.date)
	}
}

func TestCalendarLookups(t *testing.T) {
	e := testEngine()

	cycle, ok := e.DayCycleFor(mustDate(t, "2025-12-15"))
	assert.True(t, ok)
	assert.Equal(t, 6, cycle)

	_, ok = e.DayCycleFor(mustDate(t, "2025-12-17"))
	assert.False(t, ok)

	assert.True(t, e.IsWeekend(mustDate(t, "2025-12-20")))
	assert.True(t, e.IsWeekend(mustDate(t, "2025-12-21")))
	assert.False(t, e.IsWeekend(mustDate(t, "2025-12-19")))

	assert.False(t, e.IsNonSchoolDay(mustDate(t, "2025-12-15")))
	assert.True(t, e.IsNonSchoolDay(mustDate(t, "2025-12-17")))
	assert.True(t, e.IsNonSchoolDay(mustDate(t, "2025-12-20")))
	// Weekday overrides make the date a school day even without a cycle.
	assert.False(t, e.IsNonSchoolDay(mustDate(t, "2025-12-22")))
}

func TestCatalogLookups(t *testing.T) {
	e := testEngine()

	_, ok := e.DefinitionFor(models.VariantNone)
	assert.False(t, ok)

	// specialC is referenced by an override but never defined.
	_, ok = e.DefinitionFor(models.VariantSpecialC)
	assert.False(t, ok)

	def, ok := e.DefinitionFor(models.VariantNormal)
	assert.True(t, ok)
	assert.Len(t, def.Periods, 3)

	assert.Equal(t, "中文", e.SubjectFor(6, 1))
	assert.Equal(t, PlaceholderSubject, e.SubjectFor(2, 2))
	assert.Equal(t, PlaceholderSubject, e.SubjectFor(99, 1))
}
