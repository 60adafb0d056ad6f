package catalog

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var productSyncColumns = []string{
	"store_snapshot_content",
	"working_content",
	"draft_generated_content",
	"dirty_fields_content",
	"sync_conflict",
	"last_synced_at",
	"metadata",
	"updated_at",
}

// BunProductRepository implements ProductRepository on bun with optional
// read caching.
type BunProductRepository struct {
	repo repository.Repository[*Product]
}

// NewBunProductRepository constructs a ProductRepository without caching.
func NewBunProductRepository(db *bun.DB) *BunProductRepository {
	return NewBunProductRepositoryWithCache(db, nil, nil)
}

// NewBunProductRepositoryWithCache constructs a ProductRepository with
// optional read caching.
func NewBunProductRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunProductRepository {
	base := NewProductRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunProductRepository{repo: wrapped}
}

func (r *BunProductRepository) Create(ctx context.Context, record *Product) (*Product, error) {
	return r.repo.Create(ctx, record)
}

func (r *BunProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "product", id.String())
	}
	return result, nil
}

func (r *BunProductRepository) GetByPlatformID(ctx context.Context, platformID string) (*Product, error) {
	result, err := r.repo.GetByIdentifier(ctx, platformID)
	if err != nil {
		return nil, mapRepositoryError(err, "product", platformID)
	}
	return result, nil
}

func (r *BunProductRepository) List(ctx context.Context, storeID uuid.UUID) ([]*Product, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.store_id = ?", storeID)
	}))
	return records, err
}

func (r *BunProductRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.id IN (?)", bun.In(ids))
	}))
	return records, err
}

func (r *BunProductRepository) Update(ctx context.Context, record *Product) (*Product, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(productSyncColumns...),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Product{ID: id})
}

// BunArticleRepository implements ArticleRepository on bun with optional
// read caching.
type BunArticleRepository struct {
	repo repository.Repository[*Article]
}

// NewBunArticleRepository constructs an ArticleRepository without caching.
func NewBunArticleRepository(db *bun.DB) *BunArticleRepository {
	return NewBunArticleRepositoryWithCache(db, nil, nil)
}

// NewBunArticleRepositoryWithCache constructs an ArticleRepository with
// optional read caching.
func NewBunArticleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunArticleRepository {
	base := NewArticleRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunArticleRepository{repo: wrapped}
}

func (r *BunArticleRepository) Create(ctx context.Context, record *Article) (*Article, error) {
	return r.repo.Create(ctx, record)
}

func (r *BunArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "article", id.String())
	}
	return result, nil
}

func (r *BunArticleRepository) GetByPlatformID(ctx context.Context, platformID string) (*Article, error) {
	result, err := r.repo.GetByIdentifier(ctx, platformID)
	if err != nil {
		return nil, mapRepositoryError(err, "article", platformID)
	}
	return result, nil
}

func (r *BunArticleRepository) List(ctx context.Context, storeID uuid.UUID) ([]*Article, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.store_id = ?", storeID)
	}))
	return records, err
}

func (r *BunArticleRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.id IN (?)", bun.In(ids))
	}))
	return records, err
}

func (r *BunArticleRepository) Update(ctx context.Context, record *Article) (*Article, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(productSyncColumns...),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Article{ID: id})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
