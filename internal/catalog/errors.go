package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEntityIDRequired   = errors.New("catalog: entity id required")
	ErrPlatformIDRequired = errors.New("catalog: platform id required")
	ErrPlatformInvalid    = errors.New("catalog: platform is invalid")
	ErrEntityTypeInvalid  = errors.New("catalog: entity type is invalid")
	ErrNoDraft            = errors.New("catalog: entity has no draft")
	ErrFieldNotProposable = errors.New("catalog: field is not part of the draft review surface")
	ErrSlugInvalid        = errors.New("catalog: slug contains invalid characters")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// RevertError aggregates per-ID failures from a batch revert. A partial
// revert is possible: IDs absent from Failures were restored.
type RevertError struct {
	Failures map[string]error
}

func (e *RevertError) Error() string {
	if e == nil || len(e.Failures) == 0 {
		return "catalog: revert failed"
	}
	return fmt.Sprintf("catalog: revert failed for %d entities", len(e.Failures))
}
