package timetable

import "time"

// Engine resolves dates and clock times against the static schedule
// dataset. All methods are pure lookups; the engine carries no mutable
// state and is safe to share.
type Engine struct {
	data *Dataset
}

// NewEngine constructs an engine over a loaded dataset.
func NewEngine(data *Dataset) *Engine {
	return &Engine{data: data}
}

// Dataset exposes the underlying configuration tables (read-only).
func (e *Engine) Dataset() *Dataset {
	return e.data
}

// DayCycleFor returns the rotating day-cycle number assigned to the
// date, if any. Absent data is the "no cycle" case, never an error.
func (e *Engine) DayCycleFor(day time.Time) (int, bool) {
	cycle, ok := e.data.DayCycles[CanonicalDate(day)]
	return cycle, ok
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func (e *Engine) IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsNonSchoolDay reports whether no instruction happens on the date:
// a weekend, or a day with neither a cycle entry nor an override.
func (e *Engine) IsNonSchoolDay(day time.Time) bool {
	if e.IsWeekend(day) {
		return true
	}
	key := CanonicalDate(day)
	if _, ok := e.data.DayCycles[key]; ok {
		return false
	}
	_, overridden := e.data.SpecialDates[key]
	return !overridden
}
