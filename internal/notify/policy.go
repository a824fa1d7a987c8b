package notify

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mmw1984/timetable/internal/models"
	"github.com/mmw1984/timetable/internal/timetable"
)

// EventType classifies emitted notices.
type EventType string

const (
	// EventReminder fires once per upcoming slot inside the lead window.
	EventReminder EventType = "reminder"
	// EventTransition fires when the active slot changes identity.
	EventTransition EventType = "transition"
	// EventSpecialSchedule fires once per session on special-variant days.
	EventSpecialSchedule EventType = "special-schedule"
)

// Event is a fact the policy emits; delivery is the notifier's concern.
type Event struct {
	Type              EventType           `json:"type"`
	Slot              models.ScheduleSlot `json:"slot"`
	MinutesUntilStart int                 `json:"minutesUntilStart,omitempty"`
	Message           string              `json:"message"`
}

// Notifier delivers events to the host platform. Capable reports
// whether delivery is possible (permission granted, channel present);
// when it returns false the policy degrades silently to a no-op.
type Notifier interface {
	Capable() bool
	Notify(Event)
}

// ZapNotifier logs events; the default sink for a headless deployment.
type ZapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier builds a logging notifier.
func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapNotifier{logger: logger}
}

// Capable always reports true; logging needs no permission.
func (n *ZapNotifier) Capable() bool { return true }

// Notify writes the event to the log.
func (n *ZapNotifier) Notify(e Event) {
	n.logger.Info("schedule_notice",
		zap.String("type", string(e.Type)),
		zap.String("slot", e.Slot.DisplayName),
		zap.String("message", e.Message),
	)
}

// Input is one evaluation tick's worth of facts.
type Input struct {
	Now      time.Time
	Variant  models.Variant
	Location timetable.Location
	Pref     models.ReminderPreference
}

// Policy decides when reminders and notices fire. Reminder state is a
// per-slot machine keyed by (start, displayName): Idle until the slot
// enters the lead window, then it fires exactly once, and the key is
// cleared after the slot starts so the same identity can fire again on
// a future day without the fired set growing without bound.
type Policy struct {
	notifier Notifier
	logger   *zap.Logger

	mu             sync.Mutex
	fired          map[string]string // slot key -> start clock, for cleanup
	lastCurrentKey string
	specialSeen    bool
}

// NewPolicy constructs the policy around a notifier.
func NewPolicy(notifier Notifier, logger *zap.Logger) *Policy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Policy{
		notifier: notifier,
		logger:   logger,
		fired:    make(map[string]string),
	}
}

// Evaluate runs one tick of the policy, delivering any due events to
// the notifier and returning them for observation. It never fails; a
// missing or incapable notifier simply produces no events.
func (p *Policy) Evaluate(in Input) []Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	var events []Event
	nowSec := secondsIntoDay(in.Now)

	p.cleanupFired(nowSec)

	if !p.specialSeen && in.Variant != models.VariantNormal && in.Variant != models.VariantNone {
		p.specialSeen = true
		events = append(events, Event{
			Type:    EventSpecialSchedule,
			Message: "今天使用特別時間表",
		})
	}

	events = append(events, p.transitionEvent(in.Location)...)
	events = append(events, p.reminderEvent(in, nowSec)...)

	if p.notifier != nil && p.notifier.Capable() {
		for _, e := range events {
			p.notifier.Notify(e)
		}
	}

	return events
}

// Reset clears all armed/fired reminder state. Called when reminders
// are disabled so no stale key survives a later re-enable.
func (p *Policy) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fired = make(map[string]string)
}

func (p *Policy) transitionEvent(loc timetable.Location) []Event {
	key := ""
	if loc.Current != nil {
		key = slotKey(*loc.Current)
	}
	prev := p.lastCurrentKey
	p.lastCurrentKey = key

	if key == "" || prev == "" || key == prev {
		return nil
	}
	return []Event{{
		Type:    EventTransition,
		Slot:    *loc.Current,
		Message: fmt.Sprintf("現在是%s", loc.Current.DisplayName),
	}}
}

func (p *Policy) reminderEvent(in Input, nowSec int) []Event {
	next := in.Location.Next
	if next == nil || !in.Pref.Enabled {
		return nil
	}
	if p.notifier == nil || !p.notifier.Capable() {
		return nil
	}

	secondsUntil := timetable.MinuteOf(next.Start)*60 - nowSec
	if secondsUntil <= 0 || secondsUntil > in.Pref.LeadMinutes*60 {
		return nil
	}

	key := slotKey(*next)
	if _, done := p.fired[key]; done {
		return nil
	}
	p.fired[key] = next.Start

	minutes := (secondsUntil + 59) / 60
	return []Event{{
		Type:              EventReminder,
		Slot:              *next,
		MinutesUntilStart: minutes,
		Message:           fmt.Sprintf("%s（%s）將於 %d 分鐘後開始", next.DisplayName, next.Subject, minutes),
	}}
}

// cleanupFired drops keys for slots that have already started.
func (p *Policy) cleanupFired(nowSec int) {
	for key, start := range p.fired {
		if timetable.MinuteOf(start)*60 <= nowSec {
			delete(p.fired, key)
		}
	}
}

func slotKey(slot models.ScheduleSlot) string {
	return slot.Start + "|" + slot.DisplayName
}

func secondsIntoDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
