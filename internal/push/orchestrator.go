package push

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Wilson971/Flowis-sub010/internal/catalog"
	"github.com/Wilson971/Flowis-sub010/internal/logging"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

const (
	maxAttempts = 3
	backoffBase = time.Second
)

// Outcome classifies a completed batch push for the caller.
type Outcome string

const (
	OutcomeAllSynced  Outcome = "all_synced"
	OutcomePartial    Outcome = "partial"
	OutcomeAllSkipped Outcome = "all_skipped"
	OutcomeAllFailed  Outcome = "all_failed"
)

// Report is the orchestrator's view of a finished push: the raw gateway
// response plus its classification.
type Report struct {
	Outcome  Outcome
	Response *interfaces.PushResponse
}

// SleepFunc waits for the given duration unless the context ends first.
// Injectable so retry timing is deterministic in tests.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Orchestrator drives store pushes: it calls the gateway with bounded
// retries, classifies the batch outcome, promotes the synced entities'
// buffers and drops their cache entries.
type Orchestrator struct {
	gateway interfaces.PushGateway
	catalog catalog.Service
	cache   interfaces.CacheProvider
	logger  interfaces.Logger
	sleep   SleepFunc
	now     func() time.Time
}

// OrchestratorOption configures the orchestrator at construction time.
type OrchestratorOption func(*Orchestrator)

// WithCache enables cache invalidation after successful pushes.
func WithCache(cache interfaces.CacheProvider) OrchestratorOption {
	return func(o *Orchestrator) {
		o.cache = cache
	}
}

// WithLogger injects the push logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSleep overrides the retry backoff wait.
func WithSleep(sleep SleepFunc) OrchestratorOption {
	return func(o *Orchestrator) {
		if sleep != nil {
			o.sleep = sleep
		}
	}
}

// WithClock overrides the clock used to stamp sync times.
func WithClock(clock func() time.Time) OrchestratorOption {
	return func(o *Orchestrator) {
		if clock != nil {
			o.now = clock
		}
	}
}

// NewOrchestrator constructs a push orchestrator over the gateway and the
// catalog service.
func NewOrchestrator(gateway interfaces.PushGateway, svc catalog.Service, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		gateway: gateway,
		catalog: svc,
		logger:  logging.NoOp(),
		sleep:   sleepContext,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Sync pushes the requested entities to the store. The gateway call is
// retried up to three times with 1s then 2s backoff; a transport error and
// a response with Success=false both count as a failed attempt. On a
// successful response every synced entity has its snapshot promoted and its
// cache entries invalidated; skipped entities stay untouched.
func (o *Orchestrator) Sync(ctx context.Context, req interfaces.PushRequest) (*Report, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	resp, err := o.pushWithRetry(ctx, req)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Outcome:  classify(resp),
		Response: resp,
	}
	o.promoteSynced(ctx, req.Type, resp)
	o.logger.Info("push.completed",
		"type", string(req.Type),
		"outcome", string(report.Outcome),
		"total", resp.Total,
		"successful", resp.Successful,
		"skipped", resp.Skipped,
		"failed", resp.Failed,
	)
	return report, nil
}

// CancelSync abandons local edits for the given entities instead of
// pushing them. Purely local, the store is never contacted.
func (o *Orchestrator) CancelSync(ctx context.Context, entityType interfaces.EntityType, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return ErrNoEntities
	}
	if err := o.catalog.RevertToSnapshot(ctx, entityType, ids); err != nil {
		return err
	}
	o.invalidateList(ctx, entityType)
	for _, id := range ids {
		o.invalidateEntity(ctx, entityType, id.String())
	}
	return nil
}

func (o *Orchestrator) pushWithRetry(ctx context.Context, req interfaces.PushRequest) (*interfaces.PushResponse, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := o.gateway.Push(ctx, req)
		if err == nil && resp != nil && resp.Success {
			return resp, nil
		}
		if err == nil {
			err = errors.New("gateway reported failure")
		}
		lastErr = err
		o.logger.Warn("push.attempt_failed",
			"type", string(req.Type),
			"attempt", attempt,
			"error", err,
		)
		if attempt == maxAttempts {
			break
		}
		// 1s, then 2s. No jitter.
		delay := backoffBase << (attempt - 1)
		if err := o.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, &GatewayError{Attempts: maxAttempts, Err: lastErr}
}

// promoteSynced marks each successfully pushed entity as synced and drops
// its cache entries. Skipped entities already match the store, so neither
// their buffers nor their cache entries change.
func (o *Orchestrator) promoteSynced(ctx context.Context, entityType interfaces.EntityType, resp *interfaces.PushResponse) {
	syncedAt := o.now()
	invalidatedList := false

	for _, result := range resp.Results {
		if !result.Success || result.Skipped {
			continue
		}
		id, err := uuid.Parse(result.ID)
		if err != nil {
			o.logger.Warn("push.result_id_invalid", "id", result.ID, "error", err)
			continue
		}
		ref := catalog.EntityRef{Type: entityType, ID: id}
		if err := o.catalog.MarkSynced(ctx, ref, syncedAt); err != nil {
			o.logger.Error("push.mark_synced_failed", "entity_id", result.ID, "error", err)
			continue
		}
		o.invalidateEntity(ctx, entityType, result.ID)
		if !invalidatedList {
			o.invalidateList(ctx, entityType)
			invalidatedList = true
		}
	}
}

func (o *Orchestrator) invalidateEntity(ctx context.Context, entityType interfaces.EntityType, id string) {
	if o.cache == nil {
		return
	}
	key := fmt.Sprintf("catalog:%s:%s", entityType, id)
	if err := o.cache.Delete(ctx, key); err != nil {
		o.logger.Warn("push.cache_invalidate_failed", "key", key, "error", err)
	}
}

func (o *Orchestrator) invalidateList(ctx context.Context, entityType interfaces.EntityType) {
	if o.cache == nil {
		return
	}
	key := fmt.Sprintf("catalog:%s:list", entityType)
	if err := o.cache.Delete(ctx, key); err != nil {
		o.logger.Warn("push.cache_invalidate_failed", "key", key, "error", err)
	}
}

// classify reduces a batch response to one outcome. A response claiming
// Success while carrying failed items is treated as partial, not as fully
// synced.
func classify(resp *interfaces.PushResponse) Outcome {
	switch {
	case resp.Failed == 0 && resp.Skipped == 0:
		return OutcomeAllSynced
	case resp.Successful == 0 && resp.Failed == 0:
		return OutcomeAllSkipped
	case resp.Successful == 0 && resp.Skipped == 0:
		return OutcomeAllFailed
	default:
		return OutcomePartial
	}
}

func validateRequest(req interfaces.PushRequest) error {
	switch req.Type {
	case interfaces.EntityTypeProduct, interfaces.EntityTypeArticle:
	default:
		return ErrEntityTypeInvalid
	}
	if len(req.IDs) == 0 {
		return ErrNoEntities
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
