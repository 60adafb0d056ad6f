package catalog

import (
	"github.com/Wilson971/Flowis-sub010/internal/util"
)

// PrimaryImageSource resolves a best-effort display image for an entity from
// a prioritized list of optional sources: the working copy's image list
// first, then any image list stashed in metadata by the importer, then the
// legacy single image_url field.
func PrimaryImageSource(state SyncState, metadata map[string]any) string {
	return util.FirstNonEmpty(
		workingImageSource(state),
		metadataImageSource(metadata),
		legacyImageURL(state),
	)
}

// PrimaryImage resolves the product's display image.
func (p *Product) PrimaryImage() string {
	return PrimaryImageSource(p.SyncState, p.Metadata)
}

// PrimaryImage resolves the article's display image.
func (a *Article) PrimaryImage() string {
	return PrimaryImageSource(a.SyncState, a.Metadata)
}

func workingImageSource(state SyncState) string {
	if state.WorkingContent == nil {
		return ""
	}
	for _, image := range state.WorkingContent.Images {
		if image.Src != "" {
			return image.Src
		}
	}
	return ""
}

func metadataImageSource(metadata map[string]any) string {
	raw, ok := metadata["images"]
	if !ok {
		return ""
	}
	entries, ok := raw.([]any)
	if !ok {
		return ""
	}
	for _, entry := range entries {
		switch value := entry.(type) {
		case string:
			if value != "" {
				return value
			}
		case map[string]any:
			if src, ok := value["src"].(string); ok && src != "" {
				return src
			}
		}
	}
	return ""
}

func legacyImageURL(state SyncState) string {
	if state.WorkingContent == nil {
		return ""
	}
	return state.WorkingContent.ImageURL
}
