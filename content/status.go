package content

// Status is the single display state derived for an entity's content.
type Status string

const (
	// StatusSynced means the working copy matches the store snapshot and no
	// draft awaits review.
	StatusSynced Status = "SYNCED"
	// StatusReadyToSync means local edits diverge from the store and can be
	// pushed.
	StatusReadyToSync Status = "READY_TO_SYNC"
	// StatusPendingApproval means an AI draft awaits human review. Review
	// takes precedence over known divergence because accepting the draft may
	// itself resolve it.
	StatusPendingApproval Status = "PENDING_APPROVAL"
	// StatusConflict means the remote store changed since the last pull. The
	// flag is raised out-of-band by the sync pipeline, never derived here.
	StatusConflict Status = "CONFLICT"
)

// ContentStatus classifies an entity from dirty-field presence, draft
// presence and the external conflict flag. It is a priority chain, first
// match wins, and carries no state of its own: callers re-evaluate it on
// every read.
func ContentStatus(dirtyFields []string, hasDraft, hasConflict bool) Status {
	switch {
	case hasConflict:
		return StatusConflict
	case hasDraft:
		return StatusPendingApproval
	case len(dirtyFields) > 0:
		return StatusReadyToSync
	default:
		return StatusSynced
	}
}
