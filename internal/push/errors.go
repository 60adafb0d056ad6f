package push

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEntities means a sync was requested with an empty ID list.
	ErrNoEntities = errors.New("push: no entity ids")
	// ErrEntityTypeInvalid means the request named an unknown collection.
	ErrEntityTypeInvalid = errors.New("push: invalid entity type")
)

// GatewayError wraps the last transport or response failure after the retry
// budget is spent.
type GatewayError struct {
	Attempts int
	Err      error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("push: gateway failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
