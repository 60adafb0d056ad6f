package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	flowis "github.com/Wilson971/Flowis-sub010"
	"github.com/Wilson971/Flowis-sub010/content"
	"github.com/Wilson971/Flowis-sub010/internal/catalog"
	"github.com/Wilson971/Flowis-sub010/internal/di"
	"github.com/Wilson971/Flowis-sub010/internal/draft"
	"github.com/Wilson971/Flowis-sub010/internal/storeurl"
	"github.com/Wilson971/Flowis-sub010/pkg/interfaces"
	"github.com/Wilson971/Flowis-sub010/pkg/testsupport"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// demoGateway stands in for the remote store push endpoint. It succeeds
// every entity it receives so the example can walk a full lifecycle.
type demoGateway struct {
	pushes int
}

func (g *demoGateway) Push(ctx context.Context, req interfaces.PushRequest) (*interfaces.PushResponse, error) {
	g.pushes++
	resp := &interfaces.PushResponse{
		Success:    true,
		Type:       req.Type,
		Total:      len(req.IDs),
		Successful: len(req.IDs),
	}
	for _, id := range req.IDs {
		resp.Results = append(resp.Results, interfaces.PushResult{
			ID:         id,
			PlatformID: "demo-" + id[:8],
			Success:    true,
		})
	}
	return resp, nil
}

func main() {
	ctx := context.Background()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer sqlDB.Close()

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	for _, model := range []any{(*catalog.Product)(nil), (*catalog.Article)(nil)} {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			log.Fatalf("create table: %v", err)
		}
	}

	cfg := flowis.DefaultConfig()
	cfg.Stores = map[catalog.Platform]storeurl.Endpoints{
		catalog.PlatformWooCommerce: {
			StorefrontBaseURL: "https://shop.example.com",
			AdminBaseURL:      "https://shop.example.com",
		},
	}

	gateway := &demoGateway{}
	mod, err := flowis.New(cfg, di.WithBunDB(db), di.WithPushGateway(gateway))
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	workspaceID := uuid.New()
	storeID := uuid.New()

	fmt.Println("== import ==")
	product, err := mod.Catalog().ImportProduct(ctx, catalog.ImportRequest{
		WorkspaceID: workspaceID,
		StoreID:     storeID,
		Platform:    catalog.PlatformWooCommerce,
		PlatformID:  "1021",
		Content: &content.ContentData{
			Title:       "Walnut Desk",
			SKU:         "DESK-001",
			Slug:        "walnut-desk",
			Price:       "299.00",
			Description: "A desk.",
			ImageURL:    "https://cdn.example.com/walnut-desk.jpg",
		},
	})
	if err != nil {
		log.Fatalf("import product: %v", err)
	}
	ref := catalog.EntityRef{Type: interfaces.EntityTypeProduct, ID: product.ID}
	printStatus(ctx, mod, ref, "after import")

	fmt.Println("\n== local edit ==")
	edited := *product.WorkingContent
	edited.Title = "Walnut Standing Desk"
	state, err := mod.Catalog().UpdateWorkingContent(ctx, catalog.UpdateContentRequest{
		Ref:     ref,
		Content: &edited,
	})
	if err != nil {
		log.Fatalf("update working content: %v", err)
	}
	fmt.Printf("dirty fields: %s\n", strings.Join(state.DirtyFieldsContent, ", "))
	printStatus(ctx, mod, ref, "after edit")

	fmt.Println("\n== generated draft ==")
	result, err := mod.Drafts().Ingest(ctx, draft.IngestRequest{
		Ref:         ref,
		WorkspaceID: workspaceID,
		Payload: map[string]any{
			"format":      "markdown",
			"description": "A **solid walnut** standing desk with memory presets.",
		},
	})
	if err != nil {
		log.Fatalf("ingest draft: %v", err)
	}
	fmt.Printf("draft %s proposes: %s\n", result.DraftID, strings.Join(result.Proposals, ", "))
	printStatus(ctx, mod, ref, "draft pending")

	if err := mod.Catalog().AcceptDraftField(ctx, ref, content.FieldDescription); err != nil {
		log.Fatalf("accept draft field: %v", err)
	}
	printStatus(ctx, mod, ref, "draft reviewed")

	fmt.Println("\n== push ==")
	report, err := mod.Push().Sync(ctx, interfaces.PushRequest{
		Type: interfaces.EntityTypeProduct,
		IDs:  []string{product.ID.String()},
	})
	if err != nil {
		log.Fatalf("push: %v", err)
	}
	fmt.Printf("outcome: %s (%d pushed, %d gateway calls)\n",
		report.Outcome, report.Response.Successful, gateway.pushes)
	printStatus(ctx, mod, ref, "after push")

	synced, err := mod.Catalog().GetProduct(ctx, product.ID)
	if err != nil {
		log.Fatalf("reload product: %v", err)
	}
	fmt.Printf("description now: %s\n", synced.WorkingContent.Description)
	fmt.Printf("primary image: %s\n", synced.PrimaryImage())
	if synced.LastSyncedAt != nil {
		fmt.Printf("last synced: %s\n", synced.LastSyncedAt.Format(time.RFC3339))
	}

	fmt.Println("\n== store links ==")
	storefront, err := mod.StoreURLs().StorefrontURL(catalog.PlatformWooCommerce, interfaces.EntityTypeProduct, synced.WorkingContent.Slug)
	if err != nil {
		log.Fatalf("storefront url: %v", err)
	}
	admin, err := mod.StoreURLs().AdminURL(catalog.PlatformWooCommerce, interfaces.EntityTypeProduct, synced.PlatformID)
	if err != nil {
		log.Fatalf("admin url: %v", err)
	}
	fmt.Printf("storefront: %s\nadmin: %s\n", storefront, admin)
}

func printStatus(ctx context.Context, mod *flowis.Module, ref catalog.EntityRef, label string) {
	status, err := mod.Catalog().StatusFor(ctx, ref)
	if err != nil {
		log.Fatalf("status for %s: %v", label, err)
	}
	fmt.Printf("%s: %s\n", label, status)
}
