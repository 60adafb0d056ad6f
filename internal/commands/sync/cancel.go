package synccmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/Wilson971/Flowis-sub010/internal/commands"
	"github.com/Wilson971/Flowis-sub010/internal/push"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

const cancelSyncMessageType = "flowis.sync.cancel"

// CancelSyncCommand abandons local edits for the given entities, restoring
// each working copy from its store snapshot.
type CancelSyncCommand struct {
	EntityType interfaces.EntityType `json:"entity_type"`
	IDs        []uuid.UUID           `json:"ids"`
}

// Type implements command.Message.
func (CancelSyncCommand) Type() string { return cancelSyncMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CancelSyncCommand) Validate() error {
	errs := validation.Errors{}
	if err := validateEntityType(m.EntityType, "flowis.sync.cancel"); err != nil {
		errs["entity_type"] = err
	}
	if len(m.IDs) == 0 {
		errs["ids"] = validation.NewError("flowis.sync.cancel.ids_required", "at least one entity id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CancelSyncHandler reverts entities through the orchestrator using the
// shared command handler foundation.
type CancelSyncHandler struct {
	inner *commands.Handler[CancelSyncCommand]
}

// NewCancelSyncHandler constructs a handler wired to the push orchestrator.
func NewCancelSyncHandler(orchestrator *push.Orchestrator, logger interfaces.Logger, opts ...commands.HandlerOption[CancelSyncCommand]) *CancelSyncHandler {
	exec := func(ctx context.Context, msg CancelSyncCommand) error {
		return orchestrator.CancelSync(ctx, msg.EntityType, msg.IDs)
	}

	handlerOpts := []commands.HandlerOption[CancelSyncCommand]{
		commands.WithLogger[CancelSyncCommand](logger),
		commands.WithOperation[CancelSyncCommand]("sync.cancel"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CancelSyncHandler{
		inner: commands.NewHandler[CancelSyncCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CancelSyncCommand].Execute.
func (h *CancelSyncHandler) Execute(ctx context.Context, msg CancelSyncCommand) error {
	return h.inner.Execute(ctx, msg)
}
