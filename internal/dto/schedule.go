package dto

import "github.com/mmw1984/timetable/internal/models"

// DayRecord is the full schedule record for one calendar date. Field
// names follow the contract of the legacy client, hence camelCase.
type DayRecord struct {
	Date              string                `json:"date"`
	DayOfWeek         string                `json:"dayOfWeek"`
	DayOfWeekNumber   int                   `json:"dayOfWeekNumber"`
	DayCycle          *int                  `json:"dayCycle"`
	TimetableType     models.Variant        `json:"timetableType"`
	TimetableTypeName string                `json:"timetableTypeName"`
	IsSchoolDay       bool                  `json:"isSchoolDay"`
	IsWeekend         bool                  `json:"isWeekend"`
	Schedule          []models.ScheduleSlot `json:"schedule"`
	Periods           *int                  `json:"periods,omitempty"`
	Breaks            *int                  `json:"breaks,omitempty"`
	PreSchoolAssembly *models.TimeRange     `json:"preSchoolAssembly,omitempty"`
	Message           string                `json:"message,omitempty"`
}

// Status values reported by the current-status query.
const (
	StatusFree     = "free"
	StatusFinished = "finished"
	StatusNoSchool = "no-school"
)

// CurrentStatus describes where "now" falls in today's schedule.
type CurrentStatus struct {
	Date               string               `json:"date"`
	CurrentTime        string               `json:"currentTime"`
	DayCycle           *int                 `json:"dayCycle"`
	Status             string               `json:"status"`
	CurrentPeriod      *models.ScheduleSlot `json:"currentPeriod"`
	NextPeriod         *models.ScheduleSlot `json:"nextPeriod"`
	RemainingSeconds   *int                 `json:"remainingSeconds"`
	RemainingFormatted string               `json:"remainingFormatted,omitempty"`
}

// TimetableSummary lists one variant's shape for the timetables query.
type TimetableSummary struct {
	Variant     models.Variant `json:"variant"`
	Name        string         `json:"name"`
	Periods     int            `json:"periods"`
	Breaks      int            `json:"breaks"`
	HasAssembly bool           `json:"hasAssembly"`
}
