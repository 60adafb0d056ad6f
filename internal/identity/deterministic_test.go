package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDDeterministic(t *testing.T) {
	a := UUID("flowis:product:x")
	b := UUID("flowis:product:x")
	if a != b {
		t.Fatalf("expected stable UUID, got %s and %s", a, b)
	}
	if a == uuid.Nil {
		t.Fatal("expected non-nil UUID")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if got := UUID("  "); got != uuid.Nil {
		t.Fatalf("expected nil UUID for blank key, got %s", got)
	}
}

func TestProductUUIDScopesByStoreAndPlatform(t *testing.T) {
	store := uuid.New()
	woo := ProductUUID(store, "woocommerce", "42")
	shopify := ProductUUID(store, "shopify", "42")
	if woo == shopify {
		t.Fatal("expected platform to participate in the key")
	}

	other := ProductUUID(uuid.New(), "woocommerce", "42")
	if woo == other {
		t.Fatal("expected store to participate in the key")
	}

	if ProductUUID(store, "WooCommerce", " 42 ") != woo {
		t.Fatal("expected platform case and platform id whitespace to normalise")
	}
}

func TestDraftUUIDReusedPerWorkspaceEntity(t *testing.T) {
	workspace := uuid.New()
	entity := uuid.New()
	if DraftUUID(workspace, entity) != DraftUUID(workspace, entity) {
		t.Fatal("expected same draft id across generation runs")
	}
	if DraftUUID(workspace, entity) == DraftUUID(workspace, uuid.New()) {
		t.Fatal("expected entity to participate in the key")
	}
}
