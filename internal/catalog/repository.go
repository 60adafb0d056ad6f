package catalog

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ProductRepository abstracts storage operations for products.
type ProductRepository interface {
	Create(ctx context.Context, record *Product) (*Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	GetByPlatformID(ctx context.Context, platformID string) (*Product, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*Product, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Product, error)
	Update(ctx context.Context, record *Product) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ArticleRepository abstracts storage operations for articles.
type ArticleRepository interface {
	Create(ctx context.Context, record *Article) (*Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	GetByPlatformID(ctx context.Context, platformID string) (*Article, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*Article, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Article, error)
	Update(ctx context.Context, record *Article) (*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewProductRepository builds the generic bun repository used by the
// catalog's product storage.
func NewProductRepository(db *bun.DB) repository.Repository[*Product] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Product]{
		NewRecord: func() *Product { return &Product{} },
		GetID: func(p *Product) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Product, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "platform_id"
		},
		GetIdentifierValue: func(p *Product) string {
			return p.PlatformID
		},
	})
}

// NewArticleRepository builds the generic bun repository used by the
// catalog's article storage.
func NewArticleRepository(db *bun.DB) repository.Repository[*Article] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Article]{
		NewRecord: func() *Article { return &Article{} },
		GetID: func(a *Article) uuid.UUID {
			return a.ID
		},
		SetID: func(a *Article, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "platform_id"
		},
		GetIdentifierValue: func(a *Article) string {
			return a.PlatformID
		},
	})
}
