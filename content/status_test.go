package content_test

import (
	"testing"

	"github.com/Wilson971/Flowis-sub010/content"
)

func TestContentStatusPrecedence(t *testing.T) {
	cases := []struct {
		name        string
		dirty       []string
		hasDraft    bool
		hasConflict bool
		want        content.Status
	}{
		{"synced", nil, false, false, content.StatusSynced},
		{"ready to sync", []string{content.FieldTitle}, false, false, content.StatusReadyToSync},
		{"draft wins over clean state", nil, true, false, content.StatusPendingApproval},
		{"draft wins over dirty fields", []string{content.FieldTitle}, true, false, content.StatusPendingApproval},
		{"conflict wins over everything", []string{content.FieldTitle}, true, true, content.StatusConflict},
		{"conflict with clean state", nil, false, true, content.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := content.ContentStatus(tc.dirty, tc.hasDraft, tc.hasConflict)
			if got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
		})
	}
}
