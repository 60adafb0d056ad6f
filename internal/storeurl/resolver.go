package storeurl

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/Wilson971/Flowis-sub010/internal/catalog"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

var (
	// ErrStoreNotConfigured means no endpoints exist for the platform.
	ErrStoreNotConfigured = errors.New("storeurl: store not configured")
	// ErrRouteUnknown means the platform has no route for the entity type.
	ErrRouteUnknown = errors.New("storeurl: route unknown")
)

// Endpoints holds the two base URLs a connected store exposes. For
// WooCommerce both usually share the shop domain; Shopify splits them
// between the storefront domain and the admin host.
type Endpoints struct {
	StorefrontBaseURL string
	AdminBaseURL      string
}

// Config maps each connected platform to its endpoints.
type Config struct {
	Stores map[catalog.Platform]Endpoints
}

// Resolver builds deep links into the connected store, both the shopper
// facing page and the platform admin editor for an entity. Backed by a
// go-urlkit RouteManager so route shapes live in one declarative table.
type Resolver struct {
	manager   *urlkit.RouteManager
	platforms map[catalog.Platform]bool

	mu     sync.RWMutex
	groups map[string]*urlkit.Group
}

// NewResolver constructs a resolver from the per-platform endpoints. Stores
// with blank base URLs are left unregistered and surface as
// ErrStoreNotConfigured at resolution time.
func NewResolver(cfg Config) *Resolver {
	groups := make([]urlkit.GroupConfig, 0, len(cfg.Stores)*2)
	platforms := make(map[catalog.Platform]bool, len(cfg.Stores))

	for platform, endpoints := range cfg.Stores {
		storeBase := strings.TrimRight(strings.TrimSpace(endpoints.StorefrontBaseURL), "/")
		adminBase := strings.TrimRight(strings.TrimSpace(endpoints.AdminBaseURL), "/")
		if storeBase == "" && adminBase == "" {
			continue
		}
		platforms[platform] = true

		if storeBase != "" {
			groups = append(groups, urlkit.GroupConfig{
				Name:    storefrontGroup(platform),
				BaseURL: storeBase,
				Paths:   storefrontPaths(platform),
			})
		}
		if adminBase != "" {
			groups = append(groups, urlkit.GroupConfig{
				Name:    adminGroup(platform),
				BaseURL: adminBase,
				Paths:   adminPaths(platform),
			})
		}
	}

	return &Resolver{
		manager:   urlkit.NewRouteManager(&urlkit.Config{Groups: groups}),
		platforms: platforms,
		groups:    make(map[string]*urlkit.Group),
	}
}

// AdminURL builds the platform editor link for an entity.
func (r *Resolver) AdminURL(platform catalog.Platform, entityType interfaces.EntityType, platformID string) (string, error) {
	if !r.platforms[platform] {
		return "", ErrStoreNotConfigured
	}
	builder, err := r.builder(adminGroup(platform), string(entityType))
	if err != nil {
		return "", err
	}
	switch platform {
	case catalog.PlatformWooCommerce:
		// wp-admin edits everything through post.php query params.
		builder.WithQuery("post", platformID)
		builder.WithQuery("action", "edit")
	default:
		builder.WithParam("id", platformID)
	}
	return builder.Build()
}

// StorefrontURL builds the shopper-facing link for an entity.
func (r *Resolver) StorefrontURL(platform catalog.Platform, entityType interfaces.EntityType, slug string) (string, error) {
	if !r.platforms[platform] {
		return "", ErrStoreNotConfigured
	}
	builder, err := r.builder(storefrontGroup(platform), string(entityType))
	if err != nil {
		return "", err
	}
	builder.WithParam("slug", slug)
	return builder.Build()
}

func storefrontGroup(platform catalog.Platform) string {
	return string(platform) + "_store"
}

func adminGroup(platform catalog.Platform) string {
	return string(platform) + "_admin"
}

func storefrontPaths(platform catalog.Platform) map[string]string {
	switch platform {
	case catalog.PlatformShopify:
		return map[string]string{
			string(interfaces.EntityTypeProduct): "/products/:slug",
			string(interfaces.EntityTypeArticle): "/blogs/news/:slug",
		}
	default:
		return map[string]string{
			string(interfaces.EntityTypeProduct): "/product/:slug",
			string(interfaces.EntityTypeArticle): "/:slug",
		}
	}
}

func adminPaths(platform catalog.Platform) map[string]string {
	switch platform {
	case catalog.PlatformShopify:
		return map[string]string{
			string(interfaces.EntityTypeProduct): "/admin/products/:id",
			string(interfaces.EntityTypeArticle): "/admin/articles/:id",
		}
	default:
		return map[string]string{
			string(interfaces.EntityTypeProduct): "/wp-admin/post.php",
			string(interfaces.EntityTypeArticle): "/wp-admin/post.php",
		}
	}
}

func (r *Resolver) builder(groupName, route string) (*urlkit.Builder, error) {
	group, err := r.lookupGroup(groupName)
	if err != nil {
		return nil, err
	}
	return safeBuilder(group, route)
}

// lookupGroup caches resolved groups; RouteManager.Group panics on unknown
// names, so resolution goes through a recover guard.
func (r *Resolver) lookupGroup(name string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groups[name]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	group, err := safeGroup(r.manager, name)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.groups[name] = group
	r.mu.Unlock()
	return group, nil
}

func safeGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: group %q", ErrStoreNotConfigured, name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: route %q", ErrRouteUnknown, route)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
