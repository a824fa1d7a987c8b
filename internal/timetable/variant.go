package timetable

import (
	"time"

	"github.com/mmw1984/timetable/internal/models"
)

// VariantFor decides which timetable variant governs a date. The rules
// are evaluated in order and the first match wins:
//
//  1. an explicit special-date override,
//  2. non-school day (weekend or unmapped date) -> none,
//  3. the designated Friday variant,
//  4. normal.
//
// Human-entered overrides beat everything, including weekends; the
// Friday rule is a blanket policy applied only when nothing more
// specific is known. Swapping rules 2 and 3 would change behaviour on
// special Fridays, so the order is part of the contract.
func (e *Engine) VariantFor(day time.Time) models.Variant {
	if tag, ok := e.data.SpecialDates[CanonicalDate(day)]; ok {
		if variant, known := models.VariantForTag(tag); known {
			return variant
		}
	}
	if e.IsNonSchoolDay(day) {
		return models.VariantNone
	}
	if day.Weekday() == time.Friday {
		return e.data.FridayVariant
	}
	return models.VariantNormal
}
