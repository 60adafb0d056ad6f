package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/Wilson971/Flowis-sub010/content"
	"github.com/Wilson971/Flowis-sub010/internal/logging"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

const defaultSaveDelay = 800 * time.Millisecond

// SaveFunc persists one entity's pending working-copy edit.
type SaveFunc func(ctx context.Context, ref EntityRef, data *content.ContentData) error

// ScheduleFunc runs fn after delay and returns a cancel function. The
// default uses time.AfterFunc; tests substitute a deterministic scheduler to
// advance virtual time.
type ScheduleFunc func(delay time.Duration, fn func()) (cancel func())

// SaveScheduler coalesces rapid edits into one persisted write per entity.
// Each new edit supersedes the pending one and restarts the delay; a save
// with flushImmediately, or an explicit Flush, writes synchronously and
// drops the pending timer.
type SaveScheduler struct {
	mu       sync.Mutex
	save     SaveFunc
	delay    time.Duration
	schedule ScheduleFunc
	pending  map[EntityRef]*pendingSave
	logger   interfaces.Logger
}

type pendingSave struct {
	data   *content.ContentData
	cancel func()
}

// SaveSchedulerOption configures the scheduler at construction time.
type SaveSchedulerOption func(*SaveScheduler)

// WithSaveDelay overrides the debounce window.
func WithSaveDelay(delay time.Duration) SaveSchedulerOption {
	return func(s *SaveScheduler) {
		if delay > 0 {
			s.delay = delay
		}
	}
}

// WithScheduleFunc overrides how delayed saves are scheduled.
func WithScheduleFunc(schedule ScheduleFunc) SaveSchedulerOption {
	return func(s *SaveScheduler) {
		if schedule != nil {
			s.schedule = schedule
		}
	}
}

// WithSchedulerLogger injects the logger used for background save failures.
func WithSchedulerLogger(logger interfaces.Logger) SaveSchedulerOption {
	return func(s *SaveScheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSaveScheduler constructs a scheduler around the supplied persist
// function.
func NewSaveScheduler(save SaveFunc, opts ...SaveSchedulerOption) *SaveScheduler {
	s := &SaveScheduler{
		save:    save,
		delay:   defaultSaveDelay,
		pending: make(map[EntityRef]*pendingSave),
		logger:  logging.NoOp(),
	}
	s.schedule = func(delay time.Duration, fn func()) func() {
		timer := time.AfterFunc(delay, fn)
		return func() { timer.Stop() }
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save records an edit. With flushImmediately the write happens now and any
// pending delayed write for the entity is dropped; otherwise the edit is
// scheduled and any previous pending edit for the same entity is replaced.
func (s *SaveScheduler) Save(ctx context.Context, ref EntityRef, data *content.ContentData, flushImmediately bool) error {
	if flushImmediately {
		s.cancelPending(ref)
		return s.save(ctx, ref, data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[ref]; ok {
		prev.cancel()
	}

	entry := &pendingSave{data: data}
	// The deferred write must survive the request that scheduled it.
	background := context.WithoutCancel(ctx)
	entry.cancel = s.schedule(s.delay, func() {
		s.mu.Lock()
		if s.pending[ref] == entry {
			delete(s.pending, ref)
		}
		s.mu.Unlock()
		if err := s.save(background, ref, entry.data); err != nil {
			s.logger.Error("catalog.save.deferred_failed", "entity_id", ref.ID.String(), "error", err)
		}
	})
	s.pending[ref] = entry
	return nil
}

// Flush writes the pending edit for the entity now, if any.
func (s *SaveScheduler) Flush(ctx context.Context, ref EntityRef) error {
	s.mu.Lock()
	entry, ok := s.pending[ref]
	if ok {
		entry.cancel()
		delete(s.pending, ref)
	}
	s.mu.Unlock()

	if !ok {
		return nil
	}
	return s.save(ctx, ref, entry.data)
}

func (s *SaveScheduler) cancelPending(ref EntityRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.pending[ref]; ok {
		entry.cancel()
		delete(s.pending, ref)
	}
}
