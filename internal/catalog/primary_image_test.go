package catalog_test

import (
	"testing"

	"github.com/Wilson971/Flowis-sub010/content"
	"github.com/Wilson971/Flowis-sub010/internal/catalog"
)

func TestPrimaryImageSource(t *testing.T) {
	tests := []struct {
		name     string
		state    catalog.SyncState
		metadata map[string]any
		want     string
	}{
		{
			name: "working images win",
			state: catalog.SyncState{
				WorkingContent: &content.ContentData{
					ImageURL: "https://cdn.example.com/legacy.jpg",
					Images: []content.Image{
						{Src: ""},
						{Src: "https://cdn.example.com/front.jpg"},
					},
				},
			},
			metadata: map[string]any{"images": []any{"https://cdn.example.com/meta.jpg"}},
			want:     "https://cdn.example.com/front.jpg",
		},
		{
			name: "metadata string entries",
			state: catalog.SyncState{
				WorkingContent: &content.ContentData{},
			},
			metadata: map[string]any{"images": []any{"", "https://cdn.example.com/meta.jpg"}},
			want:     "https://cdn.example.com/meta.jpg",
		},
		{
			name:  "metadata object entries",
			state: catalog.SyncState{},
			metadata: map[string]any{"images": []any{
				map[string]any{"alt": "no src"},
				map[string]any{"src": "https://cdn.example.com/meta-obj.jpg"},
			}},
			want: "https://cdn.example.com/meta-obj.jpg",
		},
		{
			name: "legacy image url fallback",
			state: catalog.SyncState{
				WorkingContent: &content.ContentData{
					ImageURL: "https://cdn.example.com/legacy.jpg",
				},
			},
			metadata: map[string]any{"images": "not-a-list"},
			want:     "https://cdn.example.com/legacy.jpg",
		},
		{
			name: "no source anywhere",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := catalog.PrimaryImageSource(tc.state, tc.metadata); got != tc.want {
				t.Fatalf("PrimaryImageSource() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProductPrimaryImage(t *testing.T) {
	record := &catalog.Product{
		Metadata: map[string]any{"images": []any{"https://cdn.example.com/meta.jpg"}},
	}
	if got := record.PrimaryImage(); got != "https://cdn.example.com/meta.jpg" {
		t.Fatalf("PrimaryImage() = %q", got)
	}
}
