package draftcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/Wilson971/Flowis-sub010/internal/catalog"
	"github.com/Wilson971/Flowis-sub010/internal/commands"
	"github.com/Wilson971/Flowis-sub010/internal/draft"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

const ingestDraftMessageType = "flowis.draft.ingest"

// IngestDraftCommand delivers one generation payload to an entity's draft
// buffer.
type IngestDraftCommand struct {
	EntityType  interfaces.EntityType `json:"entity_type"`
	EntityID    uuid.UUID             `json:"entity_id"`
	WorkspaceID uuid.UUID             `json:"workspace_id"`
	DraftID     *uuid.UUID            `json:"draft_id,omitempty"`
	Payload     map[string]any        `json:"payload"`
}

// Type implements command.Message.
func (IngestDraftCommand) Type() string { return ingestDraftMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m IngestDraftCommand) Validate() error {
	errs := validation.Errors{}
	switch m.EntityType {
	case interfaces.EntityTypeProduct, interfaces.EntityTypeArticle:
	default:
		errs["entity_type"] = validation.NewError("flowis.draft.ingest.entity_type_invalid", "entity_type must be product or article")
	}
	if m.EntityID == uuid.Nil {
		errs["entity_id"] = validation.NewError("flowis.draft.ingest.entity_id_required", "entity_id is required")
	}
	if m.WorkspaceID == uuid.Nil {
		errs["workspace_id"] = validation.NewError("flowis.draft.ingest.workspace_id_required", "workspace_id is required")
	}
	if len(m.Payload) == 0 {
		errs["payload"] = validation.NewError("flowis.draft.ingest.payload_required", "payload is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IngestDraftHandler routes generation payloads through the ingestor using
// the shared command handler foundation.
type IngestDraftHandler struct {
	inner *commands.Handler[IngestDraftCommand]
}

// NewIngestDraftHandler constructs a handler wired to the draft ingestor.
func NewIngestDraftHandler(ingestor *draft.Ingestor, logger interfaces.Logger, opts ...commands.HandlerOption[IngestDraftCommand]) *IngestDraftHandler {
	exec := func(ctx context.Context, msg IngestDraftCommand) error {
		_, err := ingestor.Ingest(ctx, draft.IngestRequest{
			Ref:         catalog.EntityRef{Type: msg.EntityType, ID: msg.EntityID},
			WorkspaceID: msg.WorkspaceID,
			DraftID:     msg.DraftID,
			Payload:     msg.Payload,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[IngestDraftCommand]{
		commands.WithLogger[IngestDraftCommand](logger),
		commands.WithOperation[IngestDraftCommand]("draft.ingest"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &IngestDraftHandler{
		inner: commands.NewHandler[IngestDraftCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[IngestDraftCommand].Execute.
func (h *IngestDraftHandler) Execute(ctx context.Context, msg IngestDraftCommand) error {
	return h.inner.Execute(ctx, msg)
}
