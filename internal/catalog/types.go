package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Wilson971/Flowis-sub010/content"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

// Platform identifies the remote store backing an entity.
type Platform string

const (
	PlatformWooCommerce Platform = "woocommerce"
	PlatformShopify     Platform = "shopify"
)

// SyncState is the triple buffer every syncable entity owns: the last
// content known to match the remote store, the user's local edit state, and
// the AI-proposed draft. DirtyFieldsContent is a derived cache of
// content.ComputeDirtyFields over working and snapshot; it is recomputed on
// every mutation to either buffer and never trusted as an independent
// source of truth.
type SyncState struct {
	StoreSnapshotContent  *content.ContentData `bun:"store_snapshot_content,type:jsonb" json:"store_snapshot_content,omitempty"`
	WorkingContent        *content.ContentData `bun:"working_content,type:jsonb" json:"working_content,omitempty"`
	DraftGeneratedContent *content.ContentData `bun:"draft_generated_content,type:jsonb" json:"draft_generated_content,omitempty"`
	DirtyFieldsContent    []string             `bun:"dirty_fields_content,type:jsonb" json:"dirty_fields_content"`
	SyncConflict          bool                 `bun:"sync_conflict,notnull,default:false" json:"sync_conflict"`
	LastSyncedAt          *time.Time           `bun:"last_synced_at,nullzero" json:"last_synced_at,omitempty"`
}

// Product is a store product owning one triple buffer.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID          uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	WorkspaceID uuid.UUID      `bun:"workspace_id,notnull,type:uuid" json:"workspace_id"`
	StoreID     uuid.UUID      `bun:"store_id,notnull,type:uuid" json:"store_id"`
	Platform    Platform       `bun:"platform,notnull" json:"platform"`
	PlatformID  string         `bun:"platform_id,notnull" json:"platform_id"`
	SyncState
	Metadata    map[string]any `bun:"metadata,type:jsonb" json:"metadata,omitempty"`
	DeletedAt   *time.Time     `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt   time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Article is a store blog article owning one triple buffer.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID          uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	WorkspaceID uuid.UUID      `bun:"workspace_id,notnull,type:uuid" json:"workspace_id"`
	StoreID     uuid.UUID      `bun:"store_id,notnull,type:uuid" json:"store_id"`
	Platform    Platform       `bun:"platform,notnull" json:"platform"`
	PlatformID  string         `bun:"platform_id,notnull" json:"platform_id"`
	SyncState
	Metadata    map[string]any `bun:"metadata,type:jsonb" json:"metadata,omitempty"`
	DeletedAt   *time.Time     `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt   time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// EntityType reports the push entity type for a product.
func (p *Product) EntityType() interfaces.EntityType { return interfaces.EntityTypeProduct }

// EntityType reports the push entity type for an article.
func (a *Article) EntityType() interfaces.EntityType { return interfaces.EntityTypeArticle }
