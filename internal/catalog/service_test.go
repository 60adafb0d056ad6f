package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Wilson971/Flowis-sub010/content"
	"github.com/Wilson971/Flowis-sub010/internal/catalog"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
)

var (
	testStoreID     = uuid.MustParse("0b8e8a1a-9d8f-4f7c-8a42-16b2a3c46a01")
	testWorkspaceID = uuid.MustParse("7f16c2de-30dd-4b93-9e3a-df59adbe9f02")
)

func newTestService(t *testing.T) (catalog.Service, *catalog.MemoryProductRepository) {
	t.Helper()
	products := catalog.NewMemoryProductRepository()
	articles := catalog.NewMemoryArticleRepository()
	clock := func() time.Time { return time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC) }
	return catalog.NewService(products, articles, catalog.WithClock(clock)), products
}

func importProduct(t *testing.T, svc catalog.Service, platformID string) *catalog.Product {
	t.Helper()
	record, err := svc.ImportProduct(context.Background(), catalog.ImportRequest{
		WorkspaceID: testWorkspaceID,
		StoreID:     testStoreID,
		Platform:    catalog.PlatformWooCommerce,
		PlatformID:  platformID,
		Content:     baseContent(),
	})
	if err != nil {
		t.Fatalf("ImportProduct: %v", err)
	}
	return record
}

func TestImportProductSeedsBothBuffers(t *testing.T) {
	svc, _ := newTestService(t)
	record := importProduct(t, svc, "wc-101")

	if record.ID == uuid.Nil {
		t.Fatal("import produced a nil ID")
	}
	if record.StoreSnapshotContent.Title != record.WorkingContent.Title {
		t.Fatal("snapshot and working copy diverge on import")
	}
	if got := record.Status(); got != content.StatusSynced {
		t.Fatalf("imported status = %q, want %q", got, content.StatusSynced)
	}

	// Same store and platform ID always map to the same record identity.
	again := importProduct(t, svc, "wc-101")
	if again.ID != record.ID {
		t.Fatalf("re-import changed identity: %s vs %s", again.ID, record.ID)
	}
}

func TestImportValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ImportProduct(ctx, catalog.ImportRequest{
		StoreID:  testStoreID,
		Platform: catalog.PlatformWooCommerce,
		Content:  baseContent(),
	})
	if !errors.Is(err, catalog.ErrPlatformIDRequired) {
		t.Fatalf("missing platform id err = %v", err)
	}

	_, err = svc.ImportProduct(ctx, catalog.ImportRequest{
		StoreID:    testStoreID,
		Platform:   catalog.Platform("etsy"),
		PlatformID: "e-1",
		Content:    baseContent(),
	})
	if !errors.Is(err, catalog.ErrPlatformInvalid) {
		t.Fatalf("bad platform err = %v", err)
	}
}

func TestUpdateWorkingContentRecomputesDirtyCache(t *testing.T) {
	svc, _ := newTestService(t)
	record := importProduct(t, svc, "wc-102")
	ref := catalog.EntityRef{Type: interfaces.EntityTypeProduct, ID: record.ID}

	edited := baseContent()
	edited.Title = "Walnut Standing Desk"
	state, err := svc.UpdateWorkingContent(context.Background(), catalog.UpdateContentRequest{Ref: ref, Content: edited})
	if err != nil {
		t.Fatalf("UpdateWorkingContent: %v", err)
	}
	if !containsField(state.DirtyFieldsContent, content.FieldTitle) {
		t.Fatalf("dirty fields = %v, want title", state.DirtyFieldsContent)
	}

	status, err := svc.StatusFor(context.Background(), ref)
	if err != nil {
		t.Fatalf("StatusFor: %v", err)
	}
	if status != content.StatusReadyToSync {
		t.Fatalf("status = %q, want %q", status, content.StatusReadyToSync)
	}
}

func TestUpdateWorkingContentNormalizesSlug(t *testing.T) {
	svc, products := newTestService(t)
	record := importProduct(t, svc, "wc-103")
	ref := catalog.EntityRef{Type: interfaces.EntityTypeProduct, ID: record.ID}

	edited := baseContent()
	edited.Slug = "Walnut Desk 2026!"
	if _, err := svc.UpdateWorkingContent(context.Background(), catalog.UpdateContentRequest{Ref: ref, Content: edited}); err != nil {
		t.Fatalf("UpdateWorkingContent: %v", err)
	}

	stored, err := products.GetByID(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got := stored.WorkingContent.Slug; got != "walnut-desk-2026" {
		t.Fatalf("slug = %q, want normalized form", got)
	}
}

func TestDraftReviewFlow(t *testing.T) {
	svc, _ := newTestService(t)
	record := importProduct(t, svc, "wc-104")
	ref := catalog.EntityRef{Type: interfaces.EntityTypeProduct, ID: record.ID}
	ctx := context.Background()

	draft := &content.ContentData{
		Title: "Handcrafted Walnut Desk",
		SKU:   "DESK-001-V2",
	}
	if err := svc.SetDraft(ctx, ref, draft); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}

	status, _ := svc.StatusFor(ctx, ref)
	if status != content.StatusPendingApproval {
		t.Fatalf("status with draft = %q, want %q", status, content.StatusPendingApproval)
	}

	if err := svc.AcceptDraftField(ctx, ref, content.FieldTitle); err != nil {
		t.Fatalf("AcceptDraftField: %v", err)
	}
	if err := svc.RejectDraftField(ctx, ref, content.FieldSKU); err != nil {
		t.Fatalf("RejectDraftField: %v", err)
	}

	stored, err := svc.GetProduct(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if stored.WorkingContent.Title != "Handcrafted Walnut Desk" {
		t.Fatalf("working title = %q", stored.WorkingContent.Title)
	}
	if stored.WorkingContent.SKU != "DESK-001" {
		t.Fatalf("working sku = %q, reject must not touch it", stored.WorkingContent.SKU)
	}
	if stored.DraftGeneratedContent != nil {
		t.Fatal("draft should be cleared once fully reviewed")
	}

	status, _ = svc.StatusFor(ctx, ref)
	if status != content.StatusReadyToSync {
		t.Fatalf("status after review = %q, want %q", status, content.StatusReadyToSync)
	}
}

func TestConflictOverridesOtherStates(t *testing.T) {
	svc, _ := newTestService(t)
	record := importProduct(t, svc, "wc-105")
	ref := catalog.EntityRef{Type: interfaces.EntityTypeProduct, ID: record.ID}
	ctx := context.Background()

	if err := svc.SetConflict(ctx, ref, true); err != nil {
		t.Fatalf("SetConflict: %v", err)
	}
	status, _ := svc.StatusFor(ctx, ref)
	if status != content.StatusConflict {
		t.Fatalf("status = %q, want %q", status, content.StatusConflict)
	}
}

func TestRevertToSnapshotCollectsPartialFailures(t *testing.T) {
	svc, _ := newTestService(t)
	record := importProduct(t, svc, "wc-106")
	ref := catalog.EntityRef{Type: interfaces.EntityTypeProduct, ID: record.ID}
	ctx := context.Background()

	edited := baseContent()
	edited.Title = "Edited"
	if _, err := svc.UpdateWorkingContent(ctx, catalog.UpdateContentRequest{Ref: ref, Content: edited}); err != nil {
		t.Fatalf("UpdateWorkingContent: %v", err)
	}

	missing := uuid.MustParse("99999999-9999-4999-8999-999999999999")
	err := svc.RevertToSnapshot(ctx, interfaces.EntityTypeProduct, []uuid.UUID{record.ID, missing})

	var revertErr *catalog.RevertError
	if !errors.As(err, &revertErr) {
		t.Fatalf("err = %v, want RevertError", err)
	}
	if len(revertErr.Failures) != 1 {
		t.Fatalf("failures = %v, want only the missing ID", revertErr.Failures)
	}
	if _, ok := revertErr.Failures[missing.String()]; !ok {
		t.Fatalf("failures %v missing entry for %s", revertErr.Failures, missing)
	}

	// The existing record still reverted despite the batch error.
	stored, _ := svc.GetProduct(ctx, record.ID)
	if stored.WorkingContent.Title != "Walnut Desk" {
		t.Fatalf("working title = %q after revert", stored.WorkingContent.Title)
	}
	status, _ := svc.StatusFor(ctx, ref)
	if status != content.StatusSynced {
		t.Fatalf("status after revert = %q", status)
	}
}

func TestEditDraftSyncLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	record := importProduct(t, svc, "wc-107")
	ref := catalog.EntityRef{Type: interfaces.EntityTypeProduct, ID: record.ID}
	ctx := context.Background()

	edited := baseContent()
	edited.Price = "349.00"
	if _, err := svc.UpdateWorkingContent(ctx, catalog.UpdateContentRequest{Ref: ref, Content: edited}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := svc.SetDraft(ctx, ref, &content.ContentData{Title: "Handcrafted Walnut Desk"}); err != nil {
		t.Fatalf("draft: %v", err)
	}
	if err := svc.ApplyDraft(ctx, ref); err != nil {
		t.Fatalf("apply: %v", err)
	}

	syncedAt := time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)
	if err := svc.MarkSynced(ctx, ref, syncedAt); err != nil {
		t.Fatalf("MarkSynced: %v", err)
	}

	stored, err := svc.GetProduct(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if stored.StoreSnapshotContent.Title != "Handcrafted Walnut Desk" || stored.StoreSnapshotContent.Price != "349.00" {
		t.Fatalf("snapshot did not adopt working copy: %+v", stored.StoreSnapshotContent)
	}
	if stored.LastSyncedAt == nil || !stored.LastSyncedAt.Equal(syncedAt) {
		t.Fatalf("last synced at = %v", stored.LastSyncedAt)
	}
	status, _ := svc.StatusFor(ctx, ref)
	if status != content.StatusSynced {
		t.Fatalf("final status = %q, want %q", status, content.StatusSynced)
	}
}

func TestMutateRequiresKnownEntityType(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.SetConflict(context.Background(), catalog.EntityRef{Type: "page", ID: uuid.New()}, true)
	if !errors.Is(err, catalog.ErrEntityTypeInvalid) {
		t.Fatalf("err = %v, want ErrEntityTypeInvalid", err)
	}
}

func TestArticleLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	record, err := svc.ImportArticle(ctx, catalog.ImportRequest{
		WorkspaceID: testWorkspaceID,
		StoreID:     testStoreID,
		Platform:    catalog.PlatformShopify,
		PlatformID:  "blog-9",
		Content:     &content.ContentData{Title: "Care Guide", Description: "<p>Oil the wood.</p>"},
	})
	if err != nil {
		t.Fatalf("ImportArticle: %v", err)
	}
	ref := catalog.EntityRef{Type: interfaces.EntityTypeArticle, ID: record.ID}

	if err := svc.SetDraft(ctx, ref, &content.ContentData{Title: "Walnut Care Guide"}); err != nil {
		t.Fatalf("SetDraft: %v", err)
	}
	if err := svc.ApplyDraft(ctx, ref); err != nil {
		t.Fatalf("ApplyDraft: %v", err)
	}

	stored, err := svc.GetArticle(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetArticle: %v", err)
	}
	if stored.WorkingContent.Title != "Walnut Care Guide" {
		t.Fatalf("article title = %q", stored.WorkingContent.Title)
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetProduct(context.Background(), uuid.New())
	var notFound *catalog.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestGetProductIsolatesMetadata(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	record, err := svc.ImportProduct(ctx, catalog.ImportRequest{
		WorkspaceID: testWorkspaceID,
		StoreID:     testStoreID,
		Platform:    catalog.PlatformWooCommerce,
		PlatformID:  "wc-meta",
		Content:     baseContent(),
		Metadata:    map[string]any{"images": []any{"https://cdn.example.com/a.jpg"}},
	})
	if err != nil {
		t.Fatalf("ImportProduct: %v", err)
	}

	loaded, err := svc.GetProduct(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	loaded.Metadata["images"] = "tampered"

	fresh, err := svc.GetProduct(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if _, ok := fresh.Metadata["images"].([]any); !ok {
		t.Fatalf("stored metadata mutated through a returned record: %v", fresh.Metadata["images"])
	}
	if got := fresh.PrimaryImage(); got != "https://cdn.example.com/a.jpg" {
		t.Fatalf("PrimaryImage() = %q", got)
	}
}
