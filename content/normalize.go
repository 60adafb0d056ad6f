package content

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	metaTagPattern    = regexp.MustCompile(`(?is)<meta[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeValue canonicalises a loosely-typed field value for comparison.
// Nil becomes the empty string, strings are trimmed, and any other scalar
// keeps its printed form.
func NormalizeValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", value))
	}
}

// StrictNormalize is NormalizeValue with explicit scalar rendering:
// booleans become "true"/"false" and numbers their decimal text, so
// type-coercion artifacts such as 0 vs "0" never register as differences.
func StrictNormalize(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	case bool:
		if value {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case int:
		return strconv.Itoa(value)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", value))
	}
}

// NormalizeHTML reduces HTML to a comparable form. Upstream editors wrap and
// re-encode markup without semantic change; comparisons must not read that
// encoding noise as drift. Meta tags are stripped, non-breaking spaces
// become plain spaces, and whitespace runs collapse.
func NormalizeHTML(html string) string {
	cleaned := metaTagPattern.ReplaceAllString(html, "")
	cleaned = strings.ReplaceAll(cleaned, "&nbsp;", " ")
	cleaned = strings.ReplaceAll(cleaned, " ", " ")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// normalizeTagsKey renders a tag list order-independently. Tags are a set to
// the merchant even though they are stored as a list.
func normalizeTagsKey(tags []string) string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized = append(normalized, NormalizeValue(tag))
	}
	return sortedJoin(normalized)
}

// normalizeCategoriesKey renders category names order-independently.
func normalizeCategoriesKey(categories []Category) string {
	normalized := make([]string, 0, len(categories))
	for _, category := range categories {
		normalized = append(normalized, NormalizeValue(category.Name))
	}
	return sortedJoin(normalized)
}

// normalizeImagesKey renders an image list as sorted {id, src} pairs. Alt
// text and ordering are excluded on purpose: alt-only edits flow through
// draft acceptance, not dirty detection.
func normalizeImagesKey(images []Image) string {
	normalized := make([]string, 0, len(images))
	for _, image := range images {
		normalized = append(normalized, NormalizeValue(image.ID)+"\x1f"+NormalizeValue(image.Src))
	}
	return sortedJoin(normalized)
}

func sortedJoin(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x1e")
}
