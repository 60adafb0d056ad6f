package flowis

import "github.com/Wilson971/Flowis-sub010/internal/runtimeconfig"

var (
	ErrAdvancedCacheRequiresEnabledCache = runtimeconfig.ErrAdvancedCacheRequiresEnabledCache
	ErrAutoSyncRequiresSync              = runtimeconfig.ErrAutoSyncRequiresSync
	ErrSaveDelayInvalid                  = runtimeconfig.ErrSaveDelayInvalid
	ErrCacheTTLInvalid                   = runtimeconfig.ErrCacheTTLInvalid
	ErrStorePlatformInvalid              = runtimeconfig.ErrStorePlatformInvalid
	ErrStoreEndpointsRequired            = runtimeconfig.ErrStoreEndpointsRequired
	ErrLoggingProviderRequired           = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown            = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid               = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid              = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	StorageConfig        = runtimeconfig.StorageConfig
	CacheConfig          = runtimeconfig.CacheConfig
	SyncConfig           = runtimeconfig.SyncConfig
	DraftConfig          = runtimeconfig.DraftConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	Features             = runtimeconfig.Features
	CommandsConfig       = runtimeconfig.CommandsConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
