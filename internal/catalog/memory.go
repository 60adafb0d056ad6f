package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Wilson971/Flowis-sub010/internal/util"
)

// MemoryProductRepository is an in-memory implementation for scaffolding and tests.
type MemoryProductRepository struct {
	mu            sync.RWMutex
	products      map[uuid.UUID]*Product
	platformIndex map[string]uuid.UUID
}

// NewMemoryProductRepository creates an empty in-memory product repository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products:      make(map[uuid.UUID]*Product),
		platformIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied product.
func (m *MemoryProductRepository) Create(_ context.Context, record *Product) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneProduct(record)
	m.products[copied.ID] = copied
	m.platformIndex[copied.PlatformID] = copied.ID
	return cloneProduct(copied), nil
}

// GetByID retrieves a product by identifier.
func (m *MemoryProductRepository) GetByID(_ context.Context, id uuid.UUID) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.products[id]
	if !ok {
		return nil, &NotFoundError{Resource: "product", Key: id.String()}
	}
	return cloneProduct(rec), nil
}

// GetByPlatformID retrieves a product by its remote store identifier.
func (m *MemoryProductRepository) GetByPlatformID(_ context.Context, platformID string) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.platformIndex[platformID]
	if !ok {
		return nil, &NotFoundError{Resource: "product", Key: platformID}
	}
	return cloneProduct(m.products[id]), nil
}

// List returns every product belonging to the store.
func (m *MemoryProductRepository) List(_ context.Context, storeID uuid.UUID) ([]*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Product, 0, len(m.products))
	for _, rec := range m.products {
		if storeID == uuid.Nil || rec.StoreID == storeID {
			out = append(out, cloneProduct(rec))
		}
	}
	return out, nil
}

// ListByIDs returns the products matching the supplied identifiers, skipping
// unknown IDs.
func (m *MemoryProductRepository) ListByIDs(_ context.Context, ids []uuid.UUID) ([]*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Product, 0, len(ids))
	for _, id := range ids {
		if rec, ok := m.products[id]; ok {
			out = append(out, cloneProduct(rec))
		}
	}
	return out, nil
}

// Update replaces the stored product.
func (m *MemoryProductRepository) Update(_ context.Context, record *Product) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "product", Key: record.ID.String()}
	}
	copied := cloneProduct(record)
	m.products[copied.ID] = copied
	return cloneProduct(copied), nil
}

// Delete removes the product; the triple buffer has no lifecycle of its own
// and is discarded with the record.
func (m *MemoryProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.products[id]
	if !ok {
		return &NotFoundError{Resource: "product", Key: id.String()}
	}
	delete(m.platformIndex, rec.PlatformID)
	delete(m.products, id)
	return nil
}

// MemoryArticleRepository is an in-memory implementation for scaffolding and tests.
type MemoryArticleRepository struct {
	mu            sync.RWMutex
	articles      map[uuid.UUID]*Article
	platformIndex map[string]uuid.UUID
}

// NewMemoryArticleRepository creates an empty in-memory article repository.
func NewMemoryArticleRepository() *MemoryArticleRepository {
	return &MemoryArticleRepository{
		articles:      make(map[uuid.UUID]*Article),
		platformIndex: make(map[string]uuid.UUID),
	}
}

func (m *MemoryArticleRepository) Create(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneArticle(record)
	m.articles[copied.ID] = copied
	m.platformIndex[copied.PlatformID] = copied.ID
	return cloneArticle(copied), nil
}

func (m *MemoryArticleRepository) GetByID(_ context.Context, id uuid.UUID) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.articles[id]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: id.String()}
	}
	return cloneArticle(rec), nil
}

func (m *MemoryArticleRepository) GetByPlatformID(_ context.Context, platformID string) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.platformIndex[platformID]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: platformID}
	}
	return cloneArticle(m.articles[id]), nil
}

func (m *MemoryArticleRepository) List(_ context.Context, storeID uuid.UUID) ([]*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Article, 0, len(m.articles))
	for _, rec := range m.articles {
		if storeID == uuid.Nil || rec.StoreID == storeID {
			out = append(out, cloneArticle(rec))
		}
	}
	return out, nil
}

func (m *MemoryArticleRepository) ListByIDs(_ context.Context, ids []uuid.UUID) ([]*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Article, 0, len(ids))
	for _, id := range ids {
		if rec, ok := m.articles[id]; ok {
			out = append(out, cloneArticle(rec))
		}
	}
	return out, nil
}

func (m *MemoryArticleRepository) Update(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.articles[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "article", Key: record.ID.String()}
	}
	copied := cloneArticle(record)
	m.articles[copied.ID] = copied
	return cloneArticle(copied), nil
}

func (m *MemoryArticleRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.articles[id]
	if !ok {
		return &NotFoundError{Resource: "article", Key: id.String()}
	}
	delete(m.platformIndex, rec.PlatformID)
	delete(m.articles, id)
	return nil
}

func cloneSyncState(state SyncState) SyncState {
	copied := state
	copied.StoreSnapshotContent = state.StoreSnapshotContent.Clone()
	copied.WorkingContent = state.WorkingContent.Clone()
	copied.DraftGeneratedContent = state.DraftGeneratedContent.Clone()
	if state.DirtyFieldsContent != nil {
		copied.DirtyFieldsContent = append([]string(nil), state.DirtyFieldsContent...)
	}
	if state.LastSyncedAt != nil {
		at := *state.LastSyncedAt
		copied.LastSyncedAt = &at
	}
	return copied
}

func cloneProduct(record *Product) *Product {
	if record == nil {
		return nil
	}
	copied := *record
	copied.SyncState = cloneSyncState(record.SyncState)
	if record.Metadata != nil {
		copied.Metadata = util.CloneAnyMap(record.Metadata)
	}
	return &copied
}

func cloneArticle(record *Article) *Article {
	if record == nil {
		return nil
	}
	copied := *record
	copied.SyncState = cloneSyncState(record.SyncState)
	if record.Metadata != nil {
		copied.Metadata = util.CloneAnyMap(record.Metadata)
	}
	return &copied
}
