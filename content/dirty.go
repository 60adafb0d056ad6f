package content

// ComputeDirtyFields compares the working copy against the last-known store
// snapshot field by field and returns the names of the fields that have
// diverged. Either side may be nil, which is treated as an empty record.
//
// The result is insertion-ordered by FieldOrder and free of duplicates.
// The function is pure: no I/O, deterministic for identical inputs.
func ComputeDirtyFields(working, snapshot *ContentData) []string {
	if working == nil {
		working = &ContentData{}
	}
	if snapshot == nil {
		snapshot = &ContentData{}
	}

	dirty := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	flag := func(field string) {
		if _, ok := seen[field]; ok {
			return
		}
		seen[field] = struct{}{}
		dirty = append(dirty, field)
	}

	for _, field := range FieldOrder {
		if fieldDiffers(field, working, snapshot) {
			flag(field)
		}
	}

	return dirty
}

func fieldDiffers(field string, working, snapshot *ContentData) bool {
	switch field {
	case FieldTitle:
		return strictDiffers(working.Title, snapshot.Title)
	case FieldSKU:
		return strictDiffers(working.SKU, snapshot.SKU)
	case FieldSlug:
		return strictDiffers(working.Slug, snapshot.Slug)
	case FieldVendor:
		return strictDiffers(working.Vendor, snapshot.Vendor)
	case FieldProductType:
		return productTypeDiffers(working.ProductType, snapshot.ProductType)
	case FieldImageURL:
		return strictDiffers(working.ImageURL, snapshot.ImageURL)
	case FieldRegularPrice:
		return strictDiffers(working.RegularPrice, snapshot.RegularPrice)
	case FieldSalePrice:
		return strictDiffers(working.SalePrice, snapshot.SalePrice)
	case FieldPrice:
		return strictDiffers(working.Price, snapshot.Price)
	case FieldStock:
		return strictDiffers(working.Stock, snapshot.Stock)
	case FieldDescription:
		return NormalizeHTML(working.Description) != NormalizeHTML(snapshot.Description)
	case FieldShortDescription:
		return NormalizeHTML(working.ShortDescription) != NormalizeHTML(snapshot.ShortDescription)
	case FieldSEOTitle:
		return strictDiffers(working.seoTitle(), snapshot.seoTitle())
	case FieldSEODescription:
		return strictDiffers(working.seoDescription(), snapshot.seoDescription())
	case FieldTags:
		return normalizeTagsKey(working.Tags) != normalizeTagsKey(snapshot.Tags)
	case FieldCategories:
		return normalizeCategoriesKey(working.Categories) != normalizeCategoriesKey(snapshot.Categories)
	case FieldImages:
		return normalizeImagesKey(working.Images) != normalizeImagesKey(snapshot.Images)
	default:
		return false
	}
}

func strictDiffers(a, b string) bool {
	return StrictNormalize(a) != StrictNormalize(b)
}

// productTypeDiffers treats "simple" and "" as equal: absence of an explicit
// product type defaults to "simple" on the store side and must not be
// reported as drift.
func productTypeDiffers(a, b string) bool {
	return canonicalProductType(a) != canonicalProductType(b)
}

func canonicalProductType(value string) string {
	normalized := StrictNormalize(value)
	if normalized == "simple" {
		return ""
	}
	return normalized
}
