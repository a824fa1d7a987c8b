package runner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hooks are the host-supplied re-evaluation entry points. Rebuild runs
// on the slow cadence (the resolved variant can only change at
// midnight); Tick runs on the fast cadence and drives display refresh
// and the notification policy. Both must be non-blocking.
type Hooks struct {
	Rebuild func(now time.Time)
	Tick    func(now time.Time)
}

// Config tunes the loop cadence.
type Config struct {
	FastInterval time.Duration
	SlowInterval time.Duration
	Logger       *zap.Logger
}

// Runner drives the engine's tick-based re-evaluation. It owns the two
// timers the engine itself is decoupled from: a ~1s display tick and a
// ~1m rebuild tick. Start and Stop are idempotent; Pause suspends the
// fast tick entirely and Resume forces an immediate full re-evaluation
// since the clock may have jumped arbitrarily, including across
// midnight.
type Runner struct {
	hooks        Hooks
	fastInterval time.Duration
	slowInterval time.Duration
	logger       *zap.Logger

	mu      sync.Mutex
	started bool
	paused  bool
	cancel  context.CancelFunc
	kick    chan struct{}
	done    chan struct{}
}

// New builds a runner. Intervals default to 1s/1m when unset.
func New(cfg Config, hooks Hooks) *Runner {
	if cfg.FastInterval <= 0 {
		cfg.FastInterval = time.Second
	}
	if cfg.SlowInterval <= 0 {
		cfg.SlowInterval = time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Runner{
		hooks:        hooks,
		fastInterval: cfg.FastInterval,
		slowInterval: cfg.SlowInterval,
		logger:       cfg.Logger,
		kick:         make(chan struct{}, 1),
	}
}

// Start launches the loop. Calling Start twice is a no-op.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	r.started = true
	go r.loop(ctx)
	r.logger.Sugar().Infow("runner started", "fast", r.fastInterval, "slow", r.slowInterval)
}

// Stop cancels the loop and waits for it to exit. Idempotent.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return
	}
	r.started = false
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	cancel()
	<-done
	r.logger.Sugar().Infow("runner stopped")
}

// Pause suspends the fast tick, e.g. while the host view is hidden.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paused = true
}

// Resume re-enables ticking and forces an immediate re-evaluation
// rather than assuming continuity with the pre-pause state.
func (r *Runner) Resume() {
	r.mu.Lock()
	r.paused = false
	r.mu.Unlock()

	select {
	case r.kick <- struct{}{}:
	default:
	}
}

func (r *Runner) isPaused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paused
}

func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)

	r.evaluate(true)

	fast := time.NewTicker(r.fastInterval)
	slow := time.NewTicker(r.slowInterval)
	defer fast.Stop()
	defer slow.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.kick:
			r.evaluate(true)
		case <-slow.C:
			if !r.isPaused() {
				r.evaluate(true)
			}
		case <-fast.C:
			if !r.isPaused() {
				r.evaluate(false)
			}
		}
	}
}

func (r *Runner) evaluate(rebuild bool) {
	now := time.Now()
	if rebuild && r.hooks.Rebuild != nil {
		r.hooks.Rebuild(now)
	}
	if r.hooks.Tick != nil {
		r.hooks.Tick(now)
	}
}
