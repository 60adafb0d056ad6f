package flowis

import (
	"github.com/Wilson971/Flowis-sub010/internal/catalog"
	"github.com/Wilson971/Flowis-sub010/internal/di"
	"github.com/Wilson971/Flowis-sub010/internal/draft"
	"github.com/Wilson971/Flowis-sub010/internal/push"
	"github.com/Wilson971/Flowis-sub010/internal/storeurl"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

// CatalogService exports the triple-buffer catalog contract.
type CatalogService = catalog.Service

// PushGateway exports the remote store-sync contract hosts must implement.
type PushGateway = interfaces.PushGateway

// EntityType selects a catalog collection.
type EntityType = interfaces.EntityType

// Entity type values accepted across the public surface.
const (
	EntityTypeProduct = interfaces.EntityTypeProduct
	EntityTypeArticle = interfaces.EntityTypeArticle
)

// Module is the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI
// overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Module{container: di.NewContainer(cfg, opts...)}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Catalog returns the configured catalog service.
func (m *Module) Catalog() CatalogService {
	return m.container.CatalogService()
}

// Saves returns the debounced working-copy persister.
func (m *Module) Saves() *catalog.SaveScheduler {
	return m.container.SaveScheduler()
}

// Push returns the push orchestrator, nil unless a gateway was wired and
// sync is enabled.
func (m *Module) Push() *push.Orchestrator {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.PushOrchestrator()
}

// AutoSync returns the auto-sync trigger, nil unless the feature is on.
func (m *Module) AutoSync() *push.AutoSync {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.AutoSync()
}

// Drafts returns the generation-payload ingestor.
func (m *Module) Drafts() *draft.Ingestor {
	return m.container.DraftIngestor()
}

// StoreURLs returns the per-platform deep-link resolver.
func (m *Module) StoreURLs() *storeurl.Resolver {
	return m.container.StoreURLs()
}
