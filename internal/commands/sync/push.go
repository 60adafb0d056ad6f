package synccmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/Wilson971/Flowis-sub010/internal/commands"
	"github.com/Wilson971/Flowis-sub010/internal/push"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

const pushEntitiesMessageType = "flowis.sync.push"

// PushEntitiesCommand requests a batch push of local edits to the store.
type PushEntitiesCommand struct {
	EntityType interfaces.EntityType `json:"entity_type"`
	IDs        []uuid.UUID           `json:"ids"`
	Force      bool                  `json:"force,omitempty"`
}

// Type implements command.Message.
func (PushEntitiesCommand) Type() string { return pushEntitiesMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m PushEntitiesCommand) Validate() error {
	errs := validation.Errors{}
	if err := validateEntityType(m.EntityType, "flowis.sync.push"); err != nil {
		errs["entity_type"] = err
	}
	if len(m.IDs) == 0 {
		errs["ids"] = validation.NewError("flowis.sync.push.ids_required", "at least one entity id is required")
	}
	for _, id := range m.IDs {
		if id == uuid.Nil {
			errs["ids"] = validation.NewError("flowis.sync.push.ids_invalid", "entity ids must not be nil")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PushEntitiesHandler pushes entities through the orchestrator using the
// shared command handler foundation.
type PushEntitiesHandler struct {
	inner *commands.Handler[PushEntitiesCommand]
}

// NewPushEntitiesHandler constructs a handler wired to the push orchestrator.
func NewPushEntitiesHandler(orchestrator *push.Orchestrator, logger interfaces.Logger, opts ...commands.HandlerOption[PushEntitiesCommand]) *PushEntitiesHandler {
	exec := func(ctx context.Context, msg PushEntitiesCommand) error {
		ids := make([]string, 0, len(msg.IDs))
		for _, id := range msg.IDs {
			ids = append(ids, id.String())
		}
		_, err := orchestrator.Sync(ctx, interfaces.PushRequest{
			Type:  msg.EntityType,
			IDs:   ids,
			Force: msg.Force,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[PushEntitiesCommand]{
		commands.WithLogger[PushEntitiesCommand](logger),
		commands.WithOperation[PushEntitiesCommand]("sync.push"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PushEntitiesHandler{
		inner: commands.NewHandler[PushEntitiesCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PushEntitiesCommand].Execute.
func (h *PushEntitiesHandler) Execute(ctx context.Context, msg PushEntitiesCommand) error {
	return h.inner.Execute(ctx, msg)
}

func validateEntityType(entityType interfaces.EntityType, prefix string) error {
	switch entityType {
	case interfaces.EntityTypeProduct, interfaces.EntityTypeArticle:
		return nil
	default:
		return validation.NewError(prefix+".entity_type_invalid", "entity_type must be product or article")
	}
}
