package content

import (
	"encoding/json"
	"strings"
)

// Field identifiers recognised by the reconciliation core. Detection output
// is always drawn from this enumeration, in this order.
const (
	FieldTitle            = "title"
	FieldSKU              = "sku"
	FieldSlug             = "slug"
	FieldVendor           = "vendor"
	FieldProductType      = "product_type"
	FieldImageURL         = "image_url"
	FieldRegularPrice     = "regular_price"
	FieldSalePrice        = "sale_price"
	FieldPrice            = "price"
	FieldStock            = "stock"
	FieldDescription      = "description"
	FieldShortDescription = "short_description"
	FieldSEOTitle         = "seo.title"
	FieldSEODescription   = "seo.description"
	FieldTags             = "tags"
	FieldCategories       = "categories"
	FieldImages           = "images"
)

// FieldOrder fixes the order in which fields are inspected and reported.
var FieldOrder = []string{
	FieldTitle,
	FieldSKU,
	FieldSlug,
	FieldVendor,
	FieldProductType,
	FieldImageURL,
	FieldRegularPrice,
	FieldSalePrice,
	FieldPrice,
	FieldStock,
	FieldDescription,
	FieldShortDescription,
	FieldSEOTitle,
	FieldSEODescription,
	FieldTags,
	FieldCategories,
	FieldImages,
}

// SEO carries the nested search metadata block. Title and description are
// compared independently, never as one unit.
type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Image references a product image. ID is optional (new uploads have none)
// and Alt participates only in draft-proposal resolution, not dirty
// detection.
type Image struct {
	ID  string `json:"id,omitempty"`
	Src string `json:"src,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// UnmarshalJSON tolerates upstream encoders that emit image ids as numbers
// and images as bare src strings.
func (i *Image) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*i = Image{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var src string
		if err := json.Unmarshal(data, &src); err != nil {
			*i = Image{}
			return nil
		}
		*i = Image{Src: src}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*i = Image{}
		return nil
	}
	*i = Image{
		ID:  coerceString(raw["id"]),
		Src: coerceString(raw["src"]),
		Alt: coerceString(raw["alt"]),
	}
	return nil
}

// Category names a product category. Upstream payloads encode categories
// either as bare strings or as {name} objects; both decode into Name.
type Category struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts both category encodings.
func (c *Category) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*c = Category{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			*c = Category{}
			return nil
		}
		*c = Category{Name: name}
		return nil
	}

	var raw struct {
		Name json.RawMessage `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*c = Category{}
		return nil
	}
	*c = Category{Name: coerceString(raw.Name)}
	return nil
}

// ContentData is one coherent view of an entity's editable content. Every
// entity owns three instances: the store snapshot, the working copy, and
// the AI draft. Absent and explicitly empty values normalise to the same
// comparison form, so the zero value stands in for both.
type ContentData struct {
	Title            string     `json:"title,omitempty"`
	SKU              string     `json:"sku,omitempty"`
	Slug             string     `json:"slug,omitempty"`
	Vendor           string     `json:"vendor,omitempty"`
	ProductType      string     `json:"product_type,omitempty"`
	ImageURL         string     `json:"image_url,omitempty"`
	RegularPrice     string     `json:"regular_price,omitempty"`
	SalePrice        string     `json:"sale_price,omitempty"`
	Price            string     `json:"price,omitempty"`
	Stock            string     `json:"stock,omitempty"`
	Description      string     `json:"description,omitempty"`
	ShortDescription string     `json:"short_description,omitempty"`
	SEO              *SEO       `json:"seo,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	Categories       []Category `json:"categories,omitempty"`
	Images           []Image    `json:"images,omitempty"`
}

// UnmarshalJSON decodes upstream payloads without trusting their types.
// User-entered forms and AI-generated JSON routinely ship numbers where the
// schema says string; coercion keeps malformed input from failing a decode.
func (d *ContentData) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*d = ContentData{}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*d = ContentData{}
		return nil
	}

	out := ContentData{
		Title:            coerceString(raw["title"]),
		SKU:              coerceString(raw["sku"]),
		Slug:             coerceString(raw["slug"]),
		Vendor:           coerceString(raw["vendor"]),
		ProductType:      coerceString(raw["product_type"]),
		ImageURL:         coerceString(raw["image_url"]),
		RegularPrice:     coerceString(raw["regular_price"]),
		SalePrice:        coerceString(raw["sale_price"]),
		Price:            coerceString(raw["price"]),
		Stock:            coerceString(raw["stock"]),
		Description:      coerceString(raw["description"]),
		ShortDescription: coerceString(raw["short_description"]),
	}

	if seoRaw, ok := raw["seo"]; ok {
		var seoFields map[string]json.RawMessage
		if err := json.Unmarshal(seoRaw, &seoFields); err == nil && seoFields != nil {
			out.SEO = &SEO{
				Title:       coerceString(seoFields["title"]),
				Description: coerceString(seoFields["description"]),
			}
		}
	}

	if tagsRaw, ok := raw["tags"]; ok {
		var tags []json.RawMessage
		if err := json.Unmarshal(tagsRaw, &tags); err == nil {
			out.Tags = make([]string, 0, len(tags))
			for _, tag := range tags {
				out.Tags = append(out.Tags, coerceString(tag))
			}
		}
	}

	if categoriesRaw, ok := raw["categories"]; ok {
		var categories []Category
		if err := json.Unmarshal(categoriesRaw, &categories); err == nil {
			out.Categories = categories
		}
	}

	if imagesRaw, ok := raw["images"]; ok {
		var images []Image
		if err := json.Unmarshal(imagesRaw, &images); err == nil {
			out.Images = images
		}
	}

	*d = out
	return nil
}

// Clone returns a deep copy so callers can mutate buffers independently.
func (d *ContentData) Clone() *ContentData {
	if d == nil {
		return nil
	}
	copied := *d
	if d.SEO != nil {
		seo := *d.SEO
		copied.SEO = &seo
	}
	if d.Tags != nil {
		copied.Tags = append([]string(nil), d.Tags...)
	}
	if d.Categories != nil {
		copied.Categories = append([]Category(nil), d.Categories...)
	}
	if d.Images != nil {
		copied.Images = append([]Image(nil), d.Images...)
	}
	return &copied
}

// IsEmpty reports whether the record carries no values at all.
func (d *ContentData) IsEmpty() bool {
	if d == nil {
		return true
	}
	if d.SEO != nil && (d.SEO.Title != "" || d.SEO.Description != "") {
		return false
	}
	if len(d.Tags) > 0 || len(d.Categories) > 0 || len(d.Images) > 0 {
		return false
	}
	scalars := []string{
		d.Title, d.SKU, d.Slug, d.Vendor, d.ProductType, d.ImageURL,
		d.RegularPrice, d.SalePrice, d.Price, d.Stock,
		d.Description, d.ShortDescription,
	}
	for _, value := range scalars {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

func (d *ContentData) seoTitle() string {
	if d == nil || d.SEO == nil {
		return ""
	}
	return d.SEO.Title
}

func (d *ContentData) seoDescription() string {
	if d == nil || d.SEO == nil {
		return ""
	}
	return d.SEO.Description
}

// coerceString renders a raw JSON value as its string form. Strings decode
// normally, numbers and booleans keep their literal text, null and
// structured values become empty.
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	trimmed := strings.TrimSpace(string(raw))
	switch {
	case trimmed == "null":
		return ""
	case strings.HasPrefix(trimmed, "{"), strings.HasPrefix(trimmed, "["):
		return ""
	default:
		return trimmed
	}
}
