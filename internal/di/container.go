package di

import (
	"context"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/Wilson971/Flowis-sub010/content"
	"github.com/Wilson971/Flowis-sub010/internal/catalog"
	"github.com/Wilson971/Flowis-sub010/internal/draft"
	"github.com/Wilson971/Flowis-sub010/internal/logging"
	"github.com/Wilson971/Flowis-sub010/internal/logging/gologger"
	"github.com/Wilson971/Flowis-sub010/internal/push"
	"github.com/Wilson971/Flowis-sub010/internal/runtimeconfig"
	"github.com/Wilson971/Flowis-sub010/internal/storeurl"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

// Container wires module dependencies. Defaults favour in-memory
// repositories so embedding hosts can boot without a database; supplying a
// bun.DB upgrades storage in place.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer
	cacheProvider interfaces.CacheProvider

	loggerProvider interfaces.LoggerProvider

	productRepo catalog.ProductRepository
	articleRepo catalog.ArticleRepository

	gateway  interfaces.PushGateway
	markdown interfaces.MarkdownParser
	clock    func() time.Time

	catalogSvc   catalog.Service
	scheduler    *catalog.SaveScheduler
	orchestrator *push.Orchestrator
	autoSync     *push.AutoSync
	ingestor     *draft.Ingestor
	urls         *storeurl.Resolver
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB switches storage from memory to bun-backed repositories.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithCacheProvider supplies the keyed cache the push pipeline invalidates
// after successful syncs.
func WithCacheProvider(provider interfaces.CacheProvider) Option {
	return func(c *Container) {
		c.cacheProvider = provider
	}
}

// WithLoggerProvider overrides the logger provider built from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithPushGateway supplies the remote store-sync operation. Without one the
// push orchestrator is not constructed.
func WithPushGateway(gateway interfaces.PushGateway) Option {
	return func(c *Container) {
		c.gateway = gateway
	}
}

// WithCatalogService overrides the catalog service entirely.
func WithCatalogService(svc catalog.Service) Option {
	return func(c *Container) {
		c.catalogSvc = svc
	}
}

// WithMarkdownParser overrides the Markdown renderer used by draft ingestion.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.markdown = parser
	}
}

// WithClock overrides the clock shared by catalog and push wiring.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// NewContainer validates the configuration and assembles the module graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) *Container {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:      cfg,
		cacheTTL:    cacheTTL,
		productRepo: catalog.NewMemoryProductRepository(),
		articleRepo: catalog.NewMemoryArticleRepository(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.configureLogging()
	c.configureCacheDefaults()
	c.configureRepositories()

	if c.catalogSvc == nil {
		svcOpts := []catalog.ServiceOption{
			catalog.WithLogger(logging.CatalogLogger(c.loggerProvider)),
		}
		if c.clock != nil {
			svcOpts = append(svcOpts, catalog.WithClock(c.clock))
		}
		c.catalogSvc = catalog.NewService(c.productRepo, c.articleRepo, svcOpts...)
	}

	if c.scheduler == nil {
		schedulerOpts := []catalog.SaveSchedulerOption{
			catalog.WithSchedulerLogger(logging.CatalogLogger(c.loggerProvider)),
		}
		if cfg.Sync.SaveDelay > 0 {
			schedulerOpts = append(schedulerOpts, catalog.WithSaveDelay(cfg.Sync.SaveDelay))
		}
		c.scheduler = catalog.NewSaveScheduler(c.saveWorkingContent, schedulerOpts...)
	}

	if c.gateway != nil && cfg.Sync.Enabled {
		orchOpts := []push.OrchestratorOption{
			push.WithLogger(logging.PushLogger(c.loggerProvider)),
		}
		if c.cacheProvider != nil {
			orchOpts = append(orchOpts, push.WithCache(c.cacheProvider))
		}
		if c.clock != nil {
			orchOpts = append(orchOpts, push.WithClock(c.clock))
		}
		c.orchestrator = push.NewOrchestrator(c.gateway, c.catalogSvc, orchOpts...)

		if cfg.Features.AutoSync {
			c.autoSync = push.NewAutoSync(c.orchestrator,
				push.WithAutoSyncLogger(logging.PushLogger(c.loggerProvider)),
			)
		}
	}

	ingestorOpts := []draft.IngestorOption{
		draft.WithLogger(logging.DraftLogger(c.loggerProvider)),
	}
	if c.markdown == nil {
		c.markdown = draft.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Draft.Parser.Extensions,
			HardWraps:  cfg.Draft.Parser.HardWraps,
			SafeMode:   cfg.Draft.Parser.SafeMode,
		})
	}
	ingestorOpts = append(ingestorOpts, draft.WithMarkdownParser(c.markdown))
	c.ingestor = draft.NewIngestor(c.catalogSvc, ingestorOpts...)

	c.urls = storeurl.NewResolver(storeurl.Config{Stores: cfg.Stores})

	return c
}

func (c *Container) configureLogging() {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return
	}
	if c.Config.Logging.Provider != "gologger" {
		return
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err == nil {
		c.loggerProvider = provider
	}
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}
	c.productRepo = catalog.NewBunProductRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.articleRepo = catalog.NewBunArticleRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
}

// saveWorkingContent is the scheduler's persist function.
func (c *Container) saveWorkingContent(ctx context.Context, ref catalog.EntityRef, data *content.ContentData) error {
	_, err := c.catalogSvc.UpdateWorkingContent(ctx, catalog.UpdateContentRequest{Ref: ref, Content: data})
	return err
}

// CatalogService returns the triple-buffer catalog service.
func (c *Container) CatalogService() catalog.Service {
	return c.catalogSvc
}

// SaveScheduler returns the debounced working-copy persister.
func (c *Container) SaveScheduler() *catalog.SaveScheduler {
	return c.scheduler
}

// PushOrchestrator returns the push pipeline, nil when no gateway is wired
// or sync is disabled.
func (c *Container) PushOrchestrator() *push.Orchestrator {
	return c.orchestrator
}

// AutoSync returns the auto-sync trigger, nil unless the feature is on.
func (c *Container) AutoSync() *push.AutoSync {
	return c.autoSync
}

// DraftIngestor returns the generation-payload ingestor.
func (c *Container) DraftIngestor() *draft.Ingestor {
	return c.ingestor
}

// StoreURLs returns the per-platform deep-link resolver.
func (c *Container) StoreURLs() *storeurl.Resolver {
	return c.urls
}

// LoggerProvider returns the configured logger provider, possibly nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// MarkdownParser returns the Markdown renderer shared by draft ingestion.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.markdown
}
