package models

// Variant identifies the timetable template applied on a given date.
type Variant string

const (
	VariantNormal   Variant = "normal"
	VariantSpecialA Variant = "specialA"
	VariantSpecialB Variant = "specialB"
	VariantSpecialC Variant = "specialC"
	VariantSpecialD Variant = "specialD"
	VariantSpecialE Variant = "specialE"
	VariantNone     Variant = "none"
)

// VariantForTag maps a special-date override tag ("A".."E") to its variant.
func VariantForTag(tag string) (Variant, bool) {
	switch tag {
	case "A":
		return VariantSpecialA, true
	case "B":
		return VariantSpecialB, true
	case "C":
		return VariantSpecialC, true
	case "D":
		return VariantSpecialD, true
	case "E":
		return VariantSpecialE, true
	default:
		return VariantNone, false
	}
}

// SpecialVariants lists every special template in tag order.
var SpecialVariants = []Variant{VariantSpecialA, VariantSpecialB, VariantSpecialC, VariantSpecialD, VariantSpecialE}

// SlotKind distinguishes entries in a day's merged schedule.
type SlotKind string

const (
	SlotAssembly SlotKind = "assembly"
	SlotPeriod   SlotKind = "period"
	SlotBreak    SlotKind = "break"
)

// TimeRange is a wall-clock interval. Both ends are zero-padded 24-hour
// HH:MM strings; the fixed width is what makes lexicographic comparison
// valid, and the dataset loader enforces it.
type TimeRange struct {
	Start string `json:"start" mapstructure:"start"`
	End   string `json:"end" mapstructure:"end"`
}

// BreakDef names a break between periods.
type BreakDef struct {
	Name  string `json:"name" mapstructure:"name"`
	Start string `json:"start" mapstructure:"start"`
	End   string `json:"end" mapstructure:"end"`
}

// TimetableDefinition is the ordered layout of one timetable variant.
type TimetableDefinition struct {
	Assembly *TimeRange  `json:"preSchoolAssembly,omitempty"`
	Periods  []TimeRange `json:"periods"`
	Breaks   []BreakDef  `json:"breaks"`
}

// ScheduleSlot is one contiguous named interval in a day's merged schedule.
// Slots are derived per query and never persisted.
type ScheduleSlot struct {
	Kind            SlotKind `json:"kind"`
	DisplayName     string   `json:"displayName"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	Subject         string   `json:"subjectOrLabel"`
	DurationMinutes int      `json:"durationMinutes"`
	Period          int      `json:"period,omitempty"`
}
