package timetable

import (
	"fmt"
	"sort"

	"github.com/mmw1984/timetable/internal/models"
)

// AssemblyName labels the optional pre-school assembly slot.
const AssemblyName = "早會"

// BuildSlots merges a variant definition into one time-ordered sequence
// of labeled slots: the assembly if present, every numbered period with
// its subject resolved for the day cycle, and every named break. Pass
// cycle 0 for days without a cycle; periods then carry the placeholder
// subject.
//
// The transform is deterministic and side-effect free: identical inputs
// yield identical output, which tests and memoizing callers rely on.
func BuildSlots(e *Engine, def models.TimetableDefinition, cycle int) []models.ScheduleSlot {
	slots := make([]models.ScheduleSlot, 0, 1+len(def.Periods)+len(def.Breaks))

	if def.Assembly != nil {
		slots = append(slots, models.ScheduleSlot{
			Kind:            models.SlotAssembly,
			DisplayName:     AssemblyName,
			Subject:         AssemblyName,
			Start:           def.Assembly.Start,
			End:             def.Assembly.End,
			DurationMinutes: MinuteOf(def.Assembly.End) - MinuteOf(def.Assembly.Start),
		})
	}

	for i, p := range def.Periods {
		number := i + 1
		subject := PlaceholderSubject
		if cycle > 0 {
			subject = e.SubjectFor(cycle, number)
		}
		slots = append(slots, models.ScheduleSlot{
			Kind:            models.SlotPeriod,
			DisplayName:     fmt.Sprintf("第%d節", number),
			Subject:         subject,
			Start:           p.Start,
			End:             p.End,
			DurationMinutes: MinuteOf(p.End) - MinuteOf(p.Start),
			Period:          number,
		})
	}

	for _, b := range def.Breaks {
		// Breaks have no subject; the name serves both roles.
		slots = append(slots, models.ScheduleSlot{
			Kind:            models.SlotBreak,
			DisplayName:     b.Name,
			Subject:         b.Name,
			Start:           b.Start,
			End:             b.End,
			DurationMinutes: MinuteOf(b.End) - MinuteOf(b.Start),
		})
	}

	// Lexicographic compare is correct because times are zero-padded
	// HH:MM; the stable sort keeps catalog order for equal starts.
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })

	return slots
}
