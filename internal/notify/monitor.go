package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mmw1984/timetable/internal/models"
	"github.com/mmw1984/timetable/internal/timetable"
)

// PreferenceSource yields the reminder preference for each tick.
type PreferenceSource interface {
	Get(ctx context.Context) (models.ReminderPreference, error)
}

// Monitor adapts the engine to the runner's hook contract: Rebuild
// re-resolves today's variant and slot sequence (cheap, and the variant
// can only change at midnight), Tick locates "now" and feeds the
// notification policy.
type Monitor struct {
	engine *timetable.Engine
	prefs  PreferenceSource
	policy *Policy
	logger *zap.Logger

	mu      sync.Mutex
	variant models.Variant
	slots   []models.ScheduleSlot
}

// NewMonitor constructs a monitor.
func NewMonitor(engine *timetable.Engine, prefs PreferenceSource, policy *Policy, logger *zap.Logger) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{engine: engine, prefs: prefs, policy: policy, logger: logger}
}

// Rebuild recomputes the day context for the given moment.
func (m *Monitor) Rebuild(now time.Time) {
	variant := m.engine.VariantFor(now)
	var slots []models.ScheduleSlot
	if def, ok := m.engine.DefinitionFor(variant); ok {
		cycle, _ := m.engine.DayCycleFor(now)
		slots = timetable.BuildSlots(m.engine, def, cycle)
	}

	m.mu.Lock()
	m.variant = variant
	m.slots = slots
	m.mu.Unlock()
}

// Tick runs one policy evaluation against the rebuilt day context.
func (m *Monitor) Tick(now time.Time) {
	m.mu.Lock()
	variant, slots := m.variant, m.slots
	m.mu.Unlock()

	if variant == models.VariantNone && len(slots) == 0 {
		return
	}

	pref, err := m.prefs.Get(context.Background())
	if err != nil {
		m.logger.Warn("preference unavailable for tick", zap.Error(err))
		pref = models.ReminderPreference{}
	}

	m.policy.Evaluate(Input{
		Now:      now,
		Variant:  variant,
		Location: timetable.Locate(slots, now),
		Pref:     pref,
	})
}
