package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Wilson971/Flowis-sub010/internal/catalog"
	"github.com/Wilson971/Flowis-sub010/internal/storeurl"
)

var ErrAdvancedCacheRequiresEnabledCache = errors.New("flowis config: advanced cache feature requires cache to be enabled")
var ErrAutoSyncRequiresSync = errors.New("flowis config: auto sync requires sync to be enabled")
var ErrSaveDelayInvalid = errors.New("flowis config: save delay must be zero or positive")
var ErrCacheTTLInvalid = errors.New("flowis config: cache ttl must be zero or positive")
var ErrStorePlatformInvalid = errors.New("flowis config: store platform is invalid")
var ErrStoreEndpointsRequired = errors.New("flowis config: store needs at least one base url")
var ErrLoggingProviderRequired = errors.New("flowis config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("flowis config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("flowis config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("flowis config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Stores   map[catalog.Platform]storeurl.Endpoints
	Storage  StorageConfig
	Cache    CacheConfig
	Sync     SyncConfig
	Draft    DraftConfig
	Features Features
	Commands CommandsConfig
	Logging  LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// SyncConfig captures push-sync behaviour.
type SyncConfig struct {
	Enabled bool
	// SaveDelay is the debounce window for working-copy edits. Zero keeps
	// the built-in default.
	SaveDelay time.Duration
}

// DraftConfig captures generation-payload ingestion behaviour.
type DraftConfig struct {
	Parser MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// Features toggles module functionality.
type Features struct {
	AutoSync      bool
	Commands      bool
	AdvancedCache bool
	Logger        bool
}

// CommandsConfig captures optional command-layer behaviour. The layer
// itself is toggled through Features.Commands.
type CommandsConfig struct {
	// Timeout overrides the per-execution handler timeout. Zero keeps the
	// built-in default.
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for an embedded deployment.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Stores:  map[catalog.Platform]storeurl.Endpoints{},
		Storage: StorageConfig{
			Provider: "bun",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Sync: SyncConfig{
			Enabled: true,
		},
		Draft: DraftConfig{
			Parser: MarkdownParserConfig{
				Extensions: []string{"gfm"},
			},
		},
		Features: Features{},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Features.AdvancedCache && !cfg.Cache.Enabled {
		return ErrAdvancedCacheRequiresEnabledCache
	}
	if cfg.Features.AutoSync && !cfg.Sync.Enabled {
		return ErrAutoSyncRequiresSync
	}
	if cfg.Sync.SaveDelay < 0 {
		return ErrSaveDelayInvalid
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	for platform, endpoints := range cfg.Stores {
		switch platform {
		case catalog.PlatformWooCommerce, catalog.PlatformShopify:
		default:
			return fmt.Errorf("%w: %s", ErrStorePlatformInvalid, platform)
		}
		if strings.TrimSpace(endpoints.StorefrontBaseURL) == "" && strings.TrimSpace(endpoints.AdminBaseURL) == "" {
			return fmt.Errorf("%w: %s", ErrStoreEndpointsRequired, platform)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "noop", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
