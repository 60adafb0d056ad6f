package push

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Wilson971/Flowis-sub010/internal/logging"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

const (
	autoSyncDelayMin  = 400 * time.Millisecond
	autoSyncDelaySpan = 200 * time.Millisecond
)

// AutoSync fires a forced single-entity push after a short randomized
// delay, staggering bursts of triggers so they do not hit the store at
// once. It is fire-and-forget: failures are logged, never returned, because
// the entity stays READY_TO_SYNC and the next manual push covers it.
type AutoSync struct {
	orchestrator *Orchestrator
	logger       interfaces.Logger
	sleep        SleepFunc
	jitter       func() time.Duration
}

// AutoSyncOption configures auto sync at construction time.
type AutoSyncOption func(*AutoSync)

// WithAutoSyncLogger injects the auto-sync logger.
func WithAutoSyncLogger(logger interfaces.Logger) AutoSyncOption {
	return func(a *AutoSync) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithAutoSyncSleep overrides how the stagger delay is waited out.
func WithAutoSyncSleep(sleep SleepFunc) AutoSyncOption {
	return func(a *AutoSync) {
		if sleep != nil {
			a.sleep = sleep
		}
	}
}

// WithAutoSyncJitter overrides the delay source.
func WithAutoSyncJitter(jitter func() time.Duration) AutoSyncOption {
	return func(a *AutoSync) {
		if jitter != nil {
			a.jitter = jitter
		}
	}
}

// NewAutoSync constructs the auto-sync trigger around an orchestrator.
func NewAutoSync(orchestrator *Orchestrator, opts ...AutoSyncOption) *AutoSync {
	a := &AutoSync{
		orchestrator: orchestrator,
		logger:       logging.NoOp(),
		sleep:        sleepContext,
	}
	a.jitter = func() time.Duration {
		return autoSyncDelayMin + time.Duration(rand.Int63n(int64(autoSyncDelaySpan)))
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Trigger waits 400-600ms, then pushes the single entity with Force set so
// the store-side short-circuit cannot drop it. Push failures yield a nil
// report and a nil error; only a context cancelled during the delay is
// returned.
func (a *AutoSync) Trigger(ctx context.Context, entityType interfaces.EntityType, id uuid.UUID) (*Report, error) {
	if err := a.sleep(ctx, a.jitter()); err != nil {
		return nil, err
	}

	req := interfaces.PushRequest{
		Type:  entityType,
		IDs:   []string{id.String()},
		Force: true,
	}
	report, err := a.orchestrator.Sync(ctx, req)
	if err != nil {
		a.logger.Warn("push.autosync_failed",
			"type", string(entityType),
			"entity_id", id.String(),
			"error", err,
		)
		return nil, nil
	}
	a.logger.Debug("push.autosync_completed",
		"type", string(entityType),
		"entity_id", id.String(),
		"outcome", string(report.Outcome),
	)
	return report, nil
}
