package interfaces

import "context"

// EntityType selects which catalog collection a push targets.
type EntityType string

const (
	EntityTypeProduct EntityType = "product"
	EntityTypeArticle EntityType = "article"
)

// PushRequest is the payload handed to the store-side push operation.
type PushRequest struct {
	Type EntityType `json:"type"`
	IDs  []string   `json:"ids"`
	// Force bypasses the server-side "nothing changed" short-circuit so a
	// push attempt is guaranteed regardless of dirty-field state.
	Force bool `json:"force,omitempty"`
}

// PushResult reports the outcome for a single entity within a batch.
type PushResult struct {
	ID         string `json:"id"`
	PlatformID string `json:"platformId"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	Skipped    bool   `json:"skipped,omitempty"`
	SkipReason string `json:"skipReason,omitempty"`
}

// PushResponse aggregates a batch push. Success reflects the absence of an
// outright fatal error; individual item failures still surface in Results
// and must be read from there.
type PushResponse struct {
	Success    bool         `json:"success"`
	Type       EntityType   `json:"type"`
	Total      int          `json:"total"`
	Successful int          `json:"successful"`
	Skipped    int          `json:"skipped"`
	Failed     int          `json:"failed"`
	Results    []PushResult `json:"results"`
}

// PushGateway is the remote store-sync operation, implemented by the backend
// function gateway. Batch pushes go out as one aggregate call so concurrent
// per-entity retries never interleave partial writes to the same entity.
type PushGateway interface {
	Push(ctx context.Context, req PushRequest) (*PushResponse, error)
}
