package draft

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Wilson971/Flowis-sub010/content"
	"github.com/Wilson971/Flowis-sub010/internal/catalog"
	"github.com/Wilson971/Flowis-sub010/internal/identity"
	"github.com/Wilson971/Flowis-sub010/internal/logging"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

// IngestRequest carries one generation payload toward an entity's draft
// buffer.
type IngestRequest struct {
	Ref         catalog.EntityRef
	WorkspaceID uuid.UUID
	// DraftID threads one draft identity across a generation run. The first
	// ingest leaves it nil and the response supplies the ID every subsequent
	// per-field ingest must pass back, so a run never fans out into several
	// competing drafts.
	DraftID *uuid.UUID
	Payload map[string]any
}

// Result reports where the proposals landed.
type Result struct {
	DraftID   uuid.UUID
	Proposals []string
}

// Ingestor validates generation payloads and folds them into the entity's
// single draft buffer. Description bodies arriving as Markdown are rendered
// to HTML first so draft review compares like against like.
type Ingestor struct {
	catalog  catalog.Service
	markdown interfaces.MarkdownParser
	logger   interfaces.Logger
}

// IngestorOption configures the ingestor at construction time.
type IngestorOption func(*Ingestor)

// WithMarkdownParser overrides the Markdown renderer.
func WithMarkdownParser(parser interfaces.MarkdownParser) IngestorOption {
	return func(i *Ingestor) {
		if parser != nil {
			i.markdown = parser
		}
	}
}

// WithLogger injects the draft logger.
func WithLogger(logger interfaces.Logger) IngestorOption {
	return func(i *Ingestor) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// NewIngestor constructs a draft ingestor over the catalog service.
func NewIngestor(svc catalog.Service, opts ...IngestorOption) *Ingestor {
	i := &Ingestor{
		catalog:  svc,
		markdown: NewGoldmarkParser(interfaces.ParseOptions{Extensions: []string{"gfm"}}),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Ingest validates the payload, renders Markdown bodies, merges the new
// proposals over the entity's existing draft and persists the result. Fields
// absent from the payload keep their current draft values, so per-field
// generation runs accumulate into one reviewable draft.
func (i *Ingestor) Ingest(ctx context.Context, req IngestRequest) (*Result, error) {
	if err := validatePayload(req.Payload); err != nil {
		return nil, err
	}

	incoming, format, err := decodePayload(req.Payload)
	if err != nil {
		return nil, err
	}
	if format == "markdown" {
		if err := i.renderDescriptions(incoming); err != nil {
			return nil, err
		}
	}

	existing, working, err := i.currentBuffers(ctx, req.Ref)
	if err != nil {
		return nil, err
	}
	merged := mergeDraft(existing, incoming)

	if err := i.catalog.SetDraft(ctx, req.Ref, merged); err != nil {
		return nil, err
	}

	draftID := identity.DraftUUID(req.WorkspaceID, req.Ref.ID)
	if req.DraftID != nil && *req.DraftID != uuid.Nil {
		draftID = *req.DraftID
	}

	result := &Result{
		DraftID:   draftID,
		Proposals: content.RemainingProposals(merged, working),
	}
	i.logger.Info("draft.ingested",
		"entity_id", req.Ref.ID.String(),
		"draft_id", draftID.String(),
		"proposals", len(result.Proposals),
	)
	return result, nil
}

// currentBuffers loads the entity once and returns its draft and working
// content. The working copy anchors the proposal report so fields the user
// already applied are not announced again.
func (i *Ingestor) currentBuffers(ctx context.Context, ref catalog.EntityRef) (draft, working *content.ContentData, err error) {
	switch ref.Type {
	case interfaces.EntityTypeProduct:
		record, err := i.catalog.GetProduct(ctx, ref.ID)
		if err != nil {
			return nil, nil, err
		}
		return record.DraftGeneratedContent, record.WorkingContent, nil
	case interfaces.EntityTypeArticle:
		record, err := i.catalog.GetArticle(ctx, ref.ID)
		if err != nil {
			return nil, nil, err
		}
		return record.DraftGeneratedContent, record.WorkingContent, nil
	default:
		return nil, nil, catalog.ErrEntityTypeInvalid
	}
}

func (i *Ingestor) renderDescriptions(data *content.ContentData) error {
	if data.Description != "" {
		rendered, err := i.markdown.Parse([]byte(data.Description))
		if err != nil {
			return fmt.Errorf("draft: render description: %w", err)
		}
		data.Description = string(rendered)
	}
	if data.ShortDescription != "" {
		rendered, err := i.markdown.Parse([]byte(data.ShortDescription))
		if err != nil {
			return fmt.Errorf("draft: render short description: %w", err)
		}
		data.ShortDescription = string(rendered)
	}
	return nil
}

// decodePayload routes the validated map through ContentData's tolerant
// decoder so type coercion matches pull-sync ingestion. The format marker is
// stripped before decoding, it is transport metadata, not content.
func decodePayload(payload map[string]any) (*content.ContentData, string, error) {
	format, _ := payload["format"].(string)

	fields := make(map[string]any, len(payload))
	for key, value := range payload {
		if key == "format" {
			continue
		}
		fields[key] = value
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, "", fmt.Errorf("draft: encode payload: %w", err)
	}
	var data content.ContentData
	if err := json.Unmarshal(encoded, &data); err != nil {
		return nil, "", fmt.Errorf("draft: decode payload: %w", err)
	}
	return &data, format, nil
}

// mergeDraft overlays incoming proposals on the existing draft. Only fields
// the payload actually proposed move, an empty incoming field never erases
// an earlier proposal.
func mergeDraft(existing, incoming *content.ContentData) *content.ContentData {
	if existing == nil {
		return incoming.Clone()
	}
	merged := existing.Clone()

	if incoming.Title != "" {
		merged.Title = incoming.Title
	}
	if incoming.SKU != "" {
		merged.SKU = incoming.SKU
	}
	if incoming.Description != "" {
		merged.Description = incoming.Description
	}
	if incoming.ShortDescription != "" {
		merged.ShortDescription = incoming.ShortDescription
	}
	if incoming.SEO != nil {
		if merged.SEO == nil {
			merged.SEO = &content.SEO{}
		}
		if incoming.SEO.Title != "" {
			merged.SEO.Title = incoming.SEO.Title
		}
		if incoming.SEO.Description != "" {
			merged.SEO.Description = incoming.SEO.Description
		}
	}
	if len(incoming.Images) > 0 {
		merged.Images = append([]content.Image(nil), incoming.Images...)
	}
	return merged
}
