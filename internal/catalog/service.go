package catalog

import (
	"context"
	"strings"
	"time"

	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/Wilson971/Flowis-sub010/content"
	"github.com/Wilson971/Flowis-sub010/internal/identity"
	"github.com/Wilson971/Flowis-sub010/internal/logging"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

// EntityRef addresses one syncable entity across both catalog collections.
type EntityRef struct {
	Type interfaces.EntityType
	ID   uuid.UUID
}

// ImportRequest captures the information required to register a store
// entity locally. Import seeds both buffers with the pulled content, so a
// freshly imported entity is always SYNCED.
type ImportRequest struct {
	WorkspaceID uuid.UUID
	StoreID     uuid.UUID
	Platform    Platform
	PlatformID  string
	Content     *content.ContentData
	Metadata    map[string]any
}

// UpdateContentRequest replaces an entity's working copy with the supplied
// edit state.
type UpdateContentRequest struct {
	Ref     EntityRef
	Content *content.ContentData
}

// Service exposes the triple-buffer catalog use cases.
type Service interface {
	ImportProduct(ctx context.Context, req ImportRequest) (*Product, error)
	ImportArticle(ctx context.Context, req ImportRequest) (*Article, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*Article, error)
	ListProducts(ctx context.Context, storeID uuid.UUID) ([]*Product, error)
	ListArticles(ctx context.Context, storeID uuid.UUID) ([]*Article, error)
	UpdateWorkingContent(ctx context.Context, req UpdateContentRequest) (*SyncState, error)
	SetDraft(ctx context.Context, ref EntityRef, draft *content.ContentData) error
	ClearDraft(ctx context.Context, ref EntityRef) error
	AcceptDraftField(ctx context.Context, ref EntityRef, field string) error
	RejectDraftField(ctx context.Context, ref EntityRef, field string) error
	ApplyDraft(ctx context.Context, ref EntityRef) error
	SetConflict(ctx context.Context, ref EntityRef, conflicted bool) error
	MarkSynced(ctx context.Context, ref EntityRef, at time.Time) error
	RevertToSnapshot(ctx context.Context, entityType interfaces.EntityType, ids []uuid.UUID) error
	Delete(ctx context.Context, ref EntityRef) error
	StatusFor(ctx context.Context, ref EntityRef) (content.Status, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithLogger injects the catalog logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	products ProductRepository
	articles ArticleRepository
	now      func() time.Time
	logger   interfaces.Logger
}

// NewService constructs a catalog service with the required dependencies.
func NewService(products ProductRepository, articles ArticleRepository, opts ...ServiceOption) Service {
	s := &service{
		products: products,
		articles: articles,
		now:      time.Now,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ImportProduct(ctx context.Context, req ImportRequest) (*Product, error) {
	if err := validateImport(req); err != nil {
		return nil, err
	}
	now := s.now()
	record := &Product{
		ID:          identity.ProductUUID(req.StoreID, string(req.Platform), req.PlatformID),
		WorkspaceID: req.WorkspaceID,
		StoreID:     req.StoreID,
		Platform:    req.Platform,
		PlatformID:  strings.TrimSpace(req.PlatformID),
		Metadata:    req.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
		SyncState: SyncState{
			StoreSnapshotContent: req.Content.Clone(),
			WorkingContent:       req.Content.Clone(),
			DirtyFieldsContent:   []string{},
		},
	}
	return s.products.Create(ctx, record)
}

func (s *service) ImportArticle(ctx context.Context, req ImportRequest) (*Article, error) {
	if err := validateImport(req); err != nil {
		return nil, err
	}
	now := s.now()
	record := &Article{
		ID:          identity.ArticleUUID(req.StoreID, string(req.Platform), req.PlatformID),
		WorkspaceID: req.WorkspaceID,
		StoreID:     req.StoreID,
		Platform:    req.Platform,
		PlatformID:  strings.TrimSpace(req.PlatformID),
		Metadata:    req.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
		SyncState: SyncState{
			StoreSnapshotContent: req.Content.Clone(),
			WorkingContent:       req.Content.Clone(),
			DirtyFieldsContent:   []string{},
		},
	}
	return s.articles.Create(ctx, record)
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	if id == uuid.Nil {
		return nil, ErrEntityIDRequired
	}
	return s.products.GetByID(ctx, id)
}

func (s *service) GetArticle(ctx context.Context, id uuid.UUID) (*Article, error) {
	if id == uuid.Nil {
		return nil, ErrEntityIDRequired
	}
	return s.articles.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, storeID uuid.UUID) ([]*Product, error) {
	return s.products.List(ctx, storeID)
}

func (s *service) ListArticles(ctx context.Context, storeID uuid.UUID) ([]*Article, error) {
	return s.articles.List(ctx, storeID)
}

func (s *service) UpdateWorkingContent(ctx context.Context, req UpdateContentRequest) (*SyncState, error) {
	updated := req.Content.Clone()
	if updated != nil && strings.TrimSpace(updated.Slug) != "" {
		normalized, err := slug.Normalize(updated.Slug)
		if err != nil {
			return nil, ErrSlugInvalid
		}
		updated.Slug = normalized
	}

	var state *SyncState
	err := s.mutate(ctx, req.Ref, func(sync *SyncState) error {
		sync.WorkingContent = updated
		sync.RecomputeDirtyFields()
		state = sync
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) SetDraft(ctx context.Context, ref EntityRef, draft *content.ContentData) error {
	return s.mutate(ctx, ref, func(sync *SyncState) error {
		sync.DraftGeneratedContent = draft.Clone()
		return nil
	})
}

func (s *service) ClearDraft(ctx context.Context, ref EntityRef) error {
	return s.mutate(ctx, ref, func(sync *SyncState) error {
		sync.DraftGeneratedContent = nil
		return nil
	})
}

func (s *service) AcceptDraftField(ctx context.Context, ref EntityRef, field string) error {
	return s.mutate(ctx, ref, func(sync *SyncState) error {
		return sync.AcceptDraftField(field)
	})
}

func (s *service) RejectDraftField(ctx context.Context, ref EntityRef, field string) error {
	return s.mutate(ctx, ref, func(sync *SyncState) error {
		return sync.RejectDraftField(field)
	})
}

func (s *service) ApplyDraft(ctx context.Context, ref EntityRef) error {
	return s.mutate(ctx, ref, func(sync *SyncState) error {
		return sync.ApplyDraft()
	})
}

func (s *service) SetConflict(ctx context.Context, ref EntityRef, conflicted bool) error {
	return s.mutate(ctx, ref, func(sync *SyncState) error {
		sync.SyncConflict = conflicted
		return nil
	})
}

func (s *service) MarkSynced(ctx context.Context, ref EntityRef, at time.Time) error {
	return s.mutate(ctx, ref, func(sync *SyncState) error {
		sync.MarkSynced(at)
		return nil
	})
}

// RevertToSnapshot discards local edits for each ID, collecting per-ID
// failures instead of aborting the batch: a partial revert is possible and
// reported through RevertError.
func (s *service) RevertToSnapshot(ctx context.Context, entityType interfaces.EntityType, ids []uuid.UUID) error {
	failures := map[string]error{}
	for _, id := range ids {
		err := s.mutate(ctx, EntityRef{Type: entityType, ID: id}, func(sync *SyncState) error {
			sync.RevertToSnapshot()
			return nil
		})
		if err != nil {
			s.logger.Error("catalog.revert.failed", "entity_id", id.String(), "error", err)
			failures[id.String()] = err
		}
	}
	if len(failures) > 0 {
		return &RevertError{Failures: failures}
	}
	return nil
}

func (s *service) Delete(ctx context.Context, ref EntityRef) error {
	switch ref.Type {
	case interfaces.EntityTypeProduct:
		return s.products.Delete(ctx, ref.ID)
	case interfaces.EntityTypeArticle:
		return s.articles.Delete(ctx, ref.ID)
	default:
		return ErrEntityTypeInvalid
	}
}

func (s *service) StatusFor(ctx context.Context, ref EntityRef) (content.Status, error) {
	switch ref.Type {
	case interfaces.EntityTypeProduct:
		record, err := s.products.GetByID(ctx, ref.ID)
		if err != nil {
			return "", err
		}
		return record.Status(), nil
	case interfaces.EntityTypeArticle:
		record, err := s.articles.GetByID(ctx, ref.ID)
		if err != nil {
			return "", err
		}
		return record.Status(), nil
	default:
		return "", ErrEntityTypeInvalid
	}
}

// mutate loads the referenced entity, applies fn to the triple buffer,
// refreshes the dirty cache and persists the record. The derived cache is
// recomputed unconditionally so no mutation path can leave it stale.
func (s *service) mutate(ctx context.Context, ref EntityRef, fn func(*SyncState) error) error {
	if ref.ID == uuid.Nil {
		return ErrEntityIDRequired
	}
	now := s.now()

	switch ref.Type {
	case interfaces.EntityTypeProduct:
		record, err := s.products.GetByID(ctx, ref.ID)
		if err != nil {
			return err
		}
		if err := fn(&record.SyncState); err != nil {
			return err
		}
		record.SyncState.RecomputeDirtyFields()
		record.UpdatedAt = now
		_, err = s.products.Update(ctx, record)
		return err
	case interfaces.EntityTypeArticle:
		record, err := s.articles.GetByID(ctx, ref.ID)
		if err != nil {
			return err
		}
		if err := fn(&record.SyncState); err != nil {
			return err
		}
		record.SyncState.RecomputeDirtyFields()
		record.UpdatedAt = now
		_, err = s.articles.Update(ctx, record)
		return err
	default:
		return ErrEntityTypeInvalid
	}
}

func validateImport(req ImportRequest) error {
	if strings.TrimSpace(req.PlatformID) == "" {
		return ErrPlatformIDRequired
	}
	switch req.Platform {
	case PlatformWooCommerce, PlatformShopify:
		return nil
	default:
		return ErrPlatformInvalid
	}
}
