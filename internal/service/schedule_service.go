package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mmw1984/timetable/internal/dto"
	"github.com/mmw1984/timetable/internal/models"
	"github.com/mmw1984/timetable/internal/timetable"
	appErrors "github.com/mmw1984/timetable/pkg/errors"
)

// Clock abstracts "now" so tests can pin the time.
type Clock func() time.Time

// ScheduleService answers the read-only schedule queries. Everything is
// computed fresh per call; day records are never cached across days
// because "today" moves.
type ScheduleService struct {
	engine *timetable.Engine
	clock  Clock
	logger *zap.Logger
}

// NewScheduleService constructs the service.
func NewScheduleService(engine *timetable.Engine, clock Clock, logger *zap.Logger) *ScheduleService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{engine: engine, clock: clock, logger: logger}
}

// Engine exposes the underlying resolver for collaborators (runner).
func (s *ScheduleService) Engine() *timetable.Engine {
	return s.engine
}

// Today returns the day record for the current date.
func (s *ScheduleService) Today() dto.DayRecord {
	return s.DayRecord(s.clock())
}

// ByDate returns the day record for a caller-supplied date string.
// A malformed date is the only rejectable input on the query surface.
func (s *ScheduleService) ByDate(raw string) (dto.DayRecord, error) {
	day, err := timetable.ParseDate(raw)
	if err != nil {
		return dto.DayRecord{}, appErrors.Clone(appErrors.ErrInvalidDate, fmt.Sprintf("Invalid date format, expected YYYY-MM-DD, got %q", raw))
	}
	return s.DayRecord(day), nil
}

// Week returns the Monday-start week containing today.
func (s *ScheduleService) Week() []dto.DayRecord {
	today := s.clock()
	monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))

	records := make([]dto.DayRecord, 0, 7)
	for i := 0; i < 7; i++ {
		records = append(records, s.DayRecord(monday.AddDate(0, 0, i)))
	}
	return records
}

// Subjects returns the full subject table keyed by day cycle.
func (s *ScheduleService) Subjects() map[int]map[int]string {
	return s.engine.Dataset().Subjects
}

// Timetables summarises every configured variant.
func (s *ScheduleService) Timetables() []dto.TimetableSummary {
	ordered := append([]models.Variant{models.VariantNormal}, models.SpecialVariants...)

	summaries := make([]dto.TimetableSummary, 0, len(ordered))
	for _, variant := range ordered {
		def, ok := s.engine.DefinitionFor(variant)
		if !ok {
			continue
		}
		summaries = append(summaries, dto.TimetableSummary{
			Variant:     variant,
			Name:        variantName(variant),
			Periods:     len(def.Periods),
			Breaks:      len(def.Breaks),
			HasAssembly: def.Assembly != nil,
		})
	}
	return summaries
}

// Current reports where "now" falls in today's schedule.
func (s *ScheduleService) Current() dto.CurrentStatus {
	now := s.clock()
	status := dto.CurrentStatus{
		Date:        timetable.CanonicalDate(now),
		CurrentTime: now.Format("15:04:05"),
	}
	if cycle, ok := s.engine.DayCycleFor(now); ok {
		status.DayCycle = &cycle
	}

	variant := s.engine.VariantFor(now)
	if variant == models.VariantNone {
		status.Status = dto.StatusNoSchool
		return status
	}

	def, ok := s.engine.DefinitionFor(variant)
	if !ok {
		// Configuration gap: degraded but complete.
		status.Status = dto.StatusNoSchool
		return status
	}

	cycle := 0
	if status.DayCycle != nil {
		cycle = *status.DayCycle
	}
	slots := timetable.BuildSlots(s.engine, def, cycle)
	loc := timetable.Locate(slots, now)

	status.CurrentPeriod = loc.Current
	status.NextPeriod = loc.Next
	switch {
	case loc.Current != nil:
		status.Status = string(loc.Current.Kind)
		remaining := loc.RemainingSeconds
		status.RemainingSeconds = &remaining
		status.RemainingFormatted = formatSeconds(remaining)
	case loc.Next != nil:
		status.Status = dto.StatusFree
	default:
		status.Status = dto.StatusFinished
	}
	return status
}

// DayRecord builds the full record for any date.
func (s *ScheduleService) DayRecord(day time.Time) dto.DayRecord {
	variant := s.engine.VariantFor(day)
	record := dto.DayRecord{
		Date:              timetable.CanonicalDate(day),
		DayOfWeek:         weekdayNames[int(day.Weekday())],
		DayOfWeekNumber:   int(day.Weekday()),
		TimetableType:     variant,
		TimetableTypeName: variantName(variant),
		IsSchoolDay:       variant != models.VariantNone,
		IsWeekend:         s.engine.IsWeekend(day),
		Schedule:          []models.ScheduleSlot{},
	}
	if cycle, ok := s.engine.DayCycleFor(day); ok {
		record.DayCycle = &cycle
	}

	if variant == models.VariantNone {
		if record.IsWeekend {
			record.Message = weekendMessage
		} else {
			record.Message = nonSchoolMessage
		}
		return record
	}

	def, ok := s.engine.DefinitionFor(variant)
	if !ok {
		s.logger.Warn("timetable definition missing", zap.String("variant", string(variant)))
		record.Message = "未有此時間表的資料"
		return record
	}

	cycle := 0
	if record.DayCycle != nil {
		cycle = *record.DayCycle
	}
	record.Schedule = timetable.BuildSlots(s.engine, def, cycle)
	periods := len(def.Periods)
	breaks := len(def.Breaks)
	record.Periods = &periods
	record.Breaks = &breaks
	record.PreSchoolAssembly = def.Assembly
	return record
}

// formatSeconds renders a countdown as M:SS, or H:MM:SS beyond an hour.
func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
