package content_test

import (
	"encoding/json"
	"testing"

	"github.com/Wilson971/Flowis-sub010/content"
)

func TestNormalizeValue(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"string trims", "  hello ", "hello"},
		{"int", 12, "12"},
		{"bool", true, "true"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := content.NormalizeValue(tc.input); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestStrictNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"zero int equals string zero", 0, "0"},
		{"float without exponent", 12.5, "12.5"},
		{"whole float", float64(10), "10"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"string trims", " 0 ", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := content.StrictNormalize(tc.input); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeHTML(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"strips meta tags", `<meta charset="utf-8"><p>Hi</p>`, "<p>Hi</p>"},
		{"nbsp entity becomes space", "a&nbsp;b", "a b"},
		{"collapses whitespace runs", "a \n\t  b", "a b"},
		{"trims", "  <p>x</p>  ", "<p>x</p>"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := content.NormalizeHTML(tc.input); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestContentDataDecodeCoercion(t *testing.T) {
	payload := `{
		"title": "Shoes",
		"price": 12,
		"stock": 3,
		"sale_price": null,
		"seo": {"title": "Shoes | Store", "description": 42},
		"tags": ["a", 7],
		"categories": ["Footwear", {"name": "Sale"}],
		"images": [{"id": 9, "src": "a.jpg", "alt": "shoe"}, "b.jpg"]
	}`

	var data content.ContentData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if data.Price != "12" || data.Stock != "3" || data.SalePrice != "" {
		t.Fatalf("expected numeric coercion got price=%q stock=%q sale=%q", data.Price, data.Stock, data.SalePrice)
	}
	if data.SEO == nil || data.SEO.Title != "Shoes | Store" || data.SEO.Description != "42" {
		t.Fatalf("unexpected seo block: %+v", data.SEO)
	}
	if len(data.Tags) != 2 || data.Tags[1] != "7" {
		t.Fatalf("unexpected tags: %v", data.Tags)
	}
	if len(data.Categories) != 2 || data.Categories[0].Name != "Footwear" || data.Categories[1].Name != "Sale" {
		t.Fatalf("unexpected categories: %v", data.Categories)
	}
	if len(data.Images) != 2 || data.Images[0].ID != "9" || data.Images[1].Src != "b.jpg" {
		t.Fatalf("unexpected images: %v", data.Images)
	}
}

func TestContentDataDecodeMalformedNeverFails(t *testing.T) {
	var data content.ContentData
	if err := json.Unmarshal([]byte(`"not an object"`), &data); err != nil {
		t.Fatalf("expected tolerant decode got %v", err)
	}
	if !data.IsEmpty() {
		t.Fatalf("expected empty record got %+v", data)
	}
}

func TestContentDataClone(t *testing.T) {
	original := &content.ContentData{
		Title: "A",
		Tags:  []string{"x"},
		SEO:   &content.SEO{Title: "T"},
		Images: []content.Image{
			{Src: "a.jpg"},
		},
	}

	copied := original.Clone()
	copied.Tags[0] = "y"
	copied.SEO.Title = "changed"
	copied.Images[0].Src = "b.jpg"

	if original.Tags[0] != "x" || original.SEO.Title != "T" || original.Images[0].Src != "a.jpg" {
		t.Fatalf("clone shares state with original: %+v", original)
	}
}
