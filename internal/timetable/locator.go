package timetable

import (
	"time"

	"github.com/mmw1984/timetable/internal/models"
)

// Location describes where "now" falls inside a day's slot sequence.
// Current is nil during an idle gap (the "free" state) and Next is nil
// once the day's schedule is finished. RemainingSeconds is meaningful
// only when Current is set.
type Location struct {
	Current          *models.ScheduleSlot
	Next             *models.ScheduleSlot
	RemainingSeconds int
}

// Locate finds the active slot and the nearest future slot for the
// given clock time.
//
// Containment is inclusive on both ends: a boundary instant belongs to
// the slot ending there, not the one about to start. With contiguous
// slots this creates a momentary ambiguity exactly at the boundary;
// that matches the source behaviour and is intentional.
func Locate(slots []models.ScheduleSlot, now time.Time) Location {
	nowSec := secondsIntoDay(now)
	var loc Location

	for i := range slots {
		slot := &slots[i]
		startSec := MinuteOf(slot.Start) * 60
		endSec := MinuteOf(slot.End) * 60

		if loc.Current == nil && startSec <= nowSec && nowSec <= endSec {
			loc.Current = slot
			remaining := endSec - nowSec
			if remaining < 0 {
				remaining = 0
			}
			loc.RemainingSeconds = remaining
		}
		if loc.Next == nil && startSec > nowSec {
			loc.Next = slot
		}
		if loc.Current != nil && loc.Next != nil {
			break
		}
	}

	return loc
}
