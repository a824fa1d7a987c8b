package timetable

import "github.com/mmw1984/timetable/internal/models"

// Display strings for degraded lookups. The audience of the source
// system reads Traditional Chinese.
const (
	// PlaceholderSubject stands in for a period with no subject mapping.
	PlaceholderSubject = "未編配"
	// NoCycleLabel marks a school day without a day-cycle entry.
	NoCycleLabel = "無循環日"
)

// DefinitionFor looks up the timetable layout of a variant. The second
// return is false for VariantNone and for configuration gaps; callers
// degrade to an empty schedule rather than failing.
func (e *Engine) DefinitionFor(variant models.Variant) (models.TimetableDefinition, bool) {
	if variant == models.VariantNone {
		return models.TimetableDefinition{}, false
	}
	def, ok := e.data.Timetables[variant]
	return def, ok
}

// SubjectFor resolves the subject taught in a period on a given day
// cycle, falling back to the generic placeholder when unmapped.
func (e *Engine) SubjectFor(cycle, period int) string {
	if table, ok := e.data.Subjects[cycle]; ok {
		if subject, ok := table[period]; ok && subject != "" {
			return subject
		}
	}
	return PlaceholderSubject
}
