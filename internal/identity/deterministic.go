package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type). Re-importing the same store entity always yields
// the same local ID, which keeps pull-sync idempotent.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ProductUUID derives the local product ID for a store entity.
func ProductUUID(storeID uuid.UUID, platform, platformID string) uuid.UUID {
	return UUID("flowis:product:" + storeID.String() + ":" + strings.ToLower(strings.TrimSpace(platform)) + ":" + strings.TrimSpace(platformID))
}

// ArticleUUID derives the local article ID for a store entity.
func ArticleUUID(storeID uuid.UUID, platform, platformID string) uuid.UUID {
	return UUID("flowis:article:" + storeID.String() + ":" + strings.ToLower(strings.TrimSpace(platform)) + ":" + strings.TrimSpace(platformID))
}

// DraftUUID derives the single draft record reused per (workspace, entity)
// pair across generation runs.
func DraftUUID(workspaceID, entityID uuid.UUID) uuid.UUID {
	return UUID("flowis:draft:" + workspaceID.String() + ":" + entityID.String())
}
