package interfaces

import (
	"context"
	"time"
)

// CacheProvider abstracts the read-cache invalidated after successful
// pushes. Implementations may be backed by go-repository-cache or any other
// keyed store.
type CacheProvider interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
