package catalog_test

import (
	"testing"
	"time"

	"github.com/Wilson971/Flowis-sub010/content"
	"github.com/Wilson971/Flowis-sub010/internal/catalog"
)

func baseContent() *content.ContentData {
	return &content.ContentData{
		Title:       "Walnut Desk",
		Description: "<p>Solid walnut desk.</p>",
		SKU:         "DESK-001",
		Price:       "299.00",
	}
}

func seededState() catalog.SyncState {
	base := baseContent()
	return catalog.SyncState{
		StoreSnapshotContent: base.Clone(),
		WorkingContent:       base.Clone(),
		DirtyFieldsContent:   []string{},
	}
}

func TestRecomputeDirtyFieldsTracksWorkingEdits(t *testing.T) {
	state := seededState()
	state.WorkingContent.Title = "Walnut Standing Desk"
	state.WorkingContent.Price = "319.00"
	state.RecomputeDirtyFields()

	want := map[string]bool{content.FieldTitle: true, content.FieldPrice: true}
	if len(state.DirtyFieldsContent) != len(want) {
		t.Fatalf("dirty fields = %v, want title and price", state.DirtyFieldsContent)
	}
	for _, field := range state.DirtyFieldsContent {
		if !want[field] {
			t.Fatalf("unexpected dirty field %q", field)
		}
	}
}

func TestStatusPriority(t *testing.T) {
	state := seededState()
	if got := state.Status(); got != content.StatusSynced {
		t.Fatalf("fresh state status = %q, want %q", got, content.StatusSynced)
	}

	state.WorkingContent.Title = "Edited"
	state.RecomputeDirtyFields()
	if got := state.Status(); got != content.StatusReadyToSync {
		t.Fatalf("edited state status = %q, want %q", got, content.StatusReadyToSync)
	}

	state.DraftGeneratedContent = &content.ContentData{Title: "AI Title"}
	if got := state.Status(); got != content.StatusPendingApproval {
		t.Fatalf("drafted state status = %q, want %q", got, content.StatusPendingApproval)
	}

	state.SyncConflict = true
	if got := state.Status(); got != content.StatusConflict {
		t.Fatalf("conflicted state status = %q, want %q", got, content.StatusConflict)
	}
}

func TestAcceptDraftFieldMovesValueAndClearsProposal(t *testing.T) {
	state := seededState()
	state.DraftGeneratedContent = &content.ContentData{
		Title:       "Handcrafted Walnut Desk",
		Description: "<p>Reworked copy.</p>",
	}

	if err := state.AcceptDraftField(content.FieldTitle); err != nil {
		t.Fatalf("AcceptDraftField: %v", err)
	}
	if state.WorkingContent.Title != "Handcrafted Walnut Desk" {
		t.Fatalf("working title = %q after accept", state.WorkingContent.Title)
	}
	if state.DraftGeneratedContent == nil {
		t.Fatal("draft cleared while description proposal remains")
	}
	if state.DraftGeneratedContent.Title != "" {
		t.Fatalf("draft title = %q, want cleared", state.DraftGeneratedContent.Title)
	}
	if !containsField(state.DirtyFieldsContent, content.FieldTitle) {
		t.Fatalf("dirty fields %v missing title after accept", state.DirtyFieldsContent)
	}

	if err := state.AcceptDraftField(content.FieldDescription); err != nil {
		t.Fatalf("AcceptDraftField description: %v", err)
	}
	if state.DraftGeneratedContent != nil {
		t.Fatal("draft should be pruned once every proposal is consumed")
	}
}

func TestRejectDraftFieldLeavesWorkingUntouched(t *testing.T) {
	state := seededState()
	state.DraftGeneratedContent = &content.ContentData{Title: "AI Title"}

	if err := state.RejectDraftField(content.FieldTitle); err != nil {
		t.Fatalf("RejectDraftField: %v", err)
	}
	if state.WorkingContent.Title != "Walnut Desk" {
		t.Fatalf("working title mutated on reject: %q", state.WorkingContent.Title)
	}
	if state.DraftGeneratedContent != nil {
		t.Fatal("draft should be pruned after its only proposal is rejected")
	}
	if len(state.DirtyFieldsContent) != 0 {
		t.Fatalf("dirty fields = %v after reject, want none", state.DirtyFieldsContent)
	}
}

func TestAcceptDraftFieldWithoutDraft(t *testing.T) {
	state := seededState()
	if err := state.AcceptDraftField(content.FieldTitle); err != catalog.ErrNoDraft {
		t.Fatalf("err = %v, want ErrNoDraft", err)
	}
}

func TestApplyDraftAcceptsEveryProposal(t *testing.T) {
	state := seededState()
	state.DraftGeneratedContent = &content.ContentData{
		Title:            "Handcrafted Walnut Desk",
		ShortDescription: "A desk for life.",
		SEO:              &content.SEO{Title: "Walnut Desk | Shop"},
	}

	if err := state.ApplyDraft(); err != nil {
		t.Fatalf("ApplyDraft: %v", err)
	}
	if state.DraftGeneratedContent != nil {
		t.Fatal("draft retained after apply")
	}
	if state.WorkingContent.Title != "Handcrafted Walnut Desk" {
		t.Fatalf("title = %q", state.WorkingContent.Title)
	}
	if state.WorkingContent.ShortDescription != "A desk for life." {
		t.Fatalf("short description = %q", state.WorkingContent.ShortDescription)
	}
	if state.WorkingContent.SEO == nil || state.WorkingContent.SEO.Title != "Walnut Desk | Shop" {
		t.Fatalf("seo title not applied: %+v", state.WorkingContent.SEO)
	}
	if got := state.Status(); got != content.StatusReadyToSync {
		t.Fatalf("status after apply = %q, want %q", got, content.StatusReadyToSync)
	}
}

func TestAcceptImageAltsIsPositional(t *testing.T) {
	state := seededState()
	state.WorkingContent.Images = []content.Image{
		{ID: "1", Src: "a.jpg", Alt: ""},
		{ID: "2", Src: "b.jpg", Alt: "old"},
	}
	state.StoreSnapshotContent.Images = []content.Image{
		{ID: "1", Src: "a.jpg", Alt: ""},
		{ID: "2", Src: "b.jpg", Alt: "old"},
	}
	state.DraftGeneratedContent = &content.ContentData{
		Images: []content.Image{
			{ID: "1", Src: "a.jpg", Alt: "walnut desk front"},
			{ID: "2", Src: "b.jpg", Alt: "walnut desk side"},
		},
	}

	if err := state.AcceptDraftField(content.FieldImages); err != nil {
		t.Fatalf("AcceptDraftField images: %v", err)
	}
	if got := state.WorkingContent.Images[0].Alt; got != "walnut desk front" {
		t.Fatalf("first alt = %q", got)
	}
	if got := state.WorkingContent.Images[1].Alt; got != "walnut desk side" {
		t.Fatalf("second alt = %q", got)
	}
	if !containsField(state.DirtyFieldsContent, content.FieldImages) {
		t.Fatalf("dirty fields %v missing images", state.DirtyFieldsContent)
	}
}

func TestRevertToSnapshotRestoresWorkingCopy(t *testing.T) {
	state := seededState()
	state.WorkingContent.Title = "Edited"
	state.WorkingContent.Price = "999.00"
	state.RecomputeDirtyFields()

	state.RevertToSnapshot()

	if state.WorkingContent.Title != "Walnut Desk" || state.WorkingContent.Price != "299.00" {
		t.Fatalf("working copy not restored: %+v", state.WorkingContent)
	}
	if len(state.DirtyFieldsContent) != 0 {
		t.Fatalf("dirty fields = %v after revert", state.DirtyFieldsContent)
	}
	if got := state.Status(); got != content.StatusSynced {
		t.Fatalf("status after revert = %q", got)
	}
}

func TestMarkSyncedPromotesWorkingCopy(t *testing.T) {
	state := seededState()
	state.WorkingContent.Title = "Edited"
	state.SyncConflict = true
	state.RecomputeDirtyFields()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	state.MarkSynced(at)

	if state.StoreSnapshotContent.Title != "Edited" {
		t.Fatalf("snapshot title = %q, want promoted working value", state.StoreSnapshotContent.Title)
	}
	if len(state.DirtyFieldsContent) != 0 {
		t.Fatalf("dirty fields = %v after sync", state.DirtyFieldsContent)
	}
	if state.SyncConflict {
		t.Fatal("conflict flag survived MarkSynced")
	}
	if state.LastSyncedAt == nil || !state.LastSyncedAt.Equal(at) {
		t.Fatalf("last synced at = %v, want %v", state.LastSyncedAt, at)
	}
	if got := state.Status(); got != content.StatusSynced {
		t.Fatalf("status after sync = %q", got)
	}
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
