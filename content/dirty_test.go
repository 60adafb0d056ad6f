package content_test

import (
	"encoding/json"
	"testing"

	"github.com/Wilson971/Flowis-sub010/content"
)

func assertFields(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected fields %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected fields %v got %v", want, got)
		}
	}
}

func assertFieldSet(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected field set %v got %v", want, got)
	}
	set := make(map[string]struct{}, len(got))
	for _, field := range got {
		set[field] = struct{}{}
	}
	for _, field := range want {
		if _, ok := set[field]; !ok {
			t.Fatalf("expected field set %v got %v", want, got)
		}
	}
}

func TestComputeDirtyFieldsIdenticalInputs(t *testing.T) {
	cases := []struct {
		name    string
		working *content.ContentData
	}{
		{"nil", nil},
		{"empty", &content.ContentData{}},
		{"populated", &content.ContentData{
			Title:       "Red Shoes",
			Price:       "12",
			Tags:        []string{"a", "b"},
			SEO:         &content.SEO{Title: "Red Shoes | Store"},
			Images:      []content.Image{{ID: "1", Src: "https://cdn/shoe.jpg", Alt: "shoe"}},
			Categories:  []content.Category{{Name: "Footwear"}},
			Description: "<p>Classic.</p>",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if dirty := content.ComputeDirtyFields(tc.working, tc.working); len(dirty) != 0 {
				t.Fatalf("expected no dirty fields got %v", dirty)
			}
		})
	}
}

func TestComputeDirtyFieldsNilVersusEmpty(t *testing.T) {
	if dirty := content.ComputeDirtyFields(nil, &content.ContentData{}); len(dirty) != 0 {
		t.Fatalf("expected no dirty fields got %v", dirty)
	}
	if dirty := content.ComputeDirtyFields(&content.ContentData{}, nil); len(dirty) != 0 {
		t.Fatalf("expected no dirty fields got %v", dirty)
	}
}

func TestComputeDirtyFieldsScalarDrift(t *testing.T) {
	working := &content.ContentData{Title: "A", Price: "12"}
	snapshot := &content.ContentData{Title: "A", Price: "10"}

	assertFields(t, content.ComputeDirtyFields(working, snapshot), content.FieldPrice)
}

func TestComputeDirtyFieldsSymmetricContent(t *testing.T) {
	a := &content.ContentData{Title: "A", Stock: "3", Vendor: "Acme"}
	b := &content.ContentData{Title: "B", Stock: "5", Vendor: "Acme"}

	forward := content.ComputeDirtyFields(a, b)
	backward := content.ComputeDirtyFields(b, a)

	assertFieldSet(t, forward, backward...)
	assertFieldSet(t, backward, forward...)
}

func TestComputeDirtyFieldsProductTypeEquivalence(t *testing.T) {
	if dirty := content.ComputeDirtyFields(
		&content.ContentData{ProductType: "simple"},
		&content.ContentData{ProductType: ""},
	); len(dirty) != 0 {
		t.Fatalf("expected simple/empty equivalence got %v", dirty)
	}

	dirty := content.ComputeDirtyFields(
		&content.ContentData{ProductType: "simple"},
		&content.ContentData{ProductType: "variable"},
	)
	assertFields(t, dirty, content.FieldProductType)
}

func TestComputeDirtyFieldsTagOrderIndependent(t *testing.T) {
	dirty := content.ComputeDirtyFields(
		&content.ContentData{Tags: []string{"a", "b"}},
		&content.ContentData{Tags: []string{"b", "a"}},
	)
	if len(dirty) != 0 {
		t.Fatalf("expected reordered tags to match got %v", dirty)
	}

	dirty = content.ComputeDirtyFields(
		&content.ContentData{Tags: []string{"a", "c"}},
		&content.ContentData{Tags: []string{"b", "a"}},
	)
	assertFields(t, dirty, content.FieldTags)
}

func TestComputeDirtyFieldsCategoryNames(t *testing.T) {
	dirty := content.ComputeDirtyFields(
		&content.ContentData{Categories: []content.Category{{Name: "Shoes"}, {Name: "Sale"}}},
		&content.ContentData{Categories: []content.Category{{Name: "Sale"}, {Name: "Shoes"}}},
	)
	if len(dirty) != 0 {
		t.Fatalf("expected reordered categories to match got %v", dirty)
	}
}

func TestComputeDirtyFieldsHTMLNoise(t *testing.T) {
	working := &content.ContentData{
		Description: "<meta charset=\"utf-8\"><p>Hello&nbsp;world</p>",
	}
	snapshot := &content.ContentData{
		Description: "<p>Hello   world</p>",
	}

	if dirty := content.ComputeDirtyFields(working, snapshot); len(dirty) != 0 {
		t.Fatalf("expected HTML encoding noise to be ignored got %v", dirty)
	}
}

func TestComputeDirtyFieldsSEOGranularity(t *testing.T) {
	working := &content.ContentData{SEO: &content.SEO{Title: "New", Description: "Same"}}
	snapshot := &content.ContentData{SEO: &content.SEO{Title: "Old", Description: "Same"}}

	assertFields(t, content.ComputeDirtyFields(working, snapshot), content.FieldSEOTitle)
}

func TestComputeDirtyFieldsImagesIgnoreAltAndOrder(t *testing.T) {
	working := &content.ContentData{Images: []content.Image{
		{ID: "2", Src: "b.jpg", Alt: "changed alt"},
		{ID: "1", Src: "a.jpg"},
	}}
	snapshot := &content.ContentData{Images: []content.Image{
		{ID: "1", Src: "a.jpg", Alt: "original alt"},
		{ID: "2", Src: "b.jpg"},
	}}

	if dirty := content.ComputeDirtyFields(working, snapshot); len(dirty) != 0 {
		t.Fatalf("expected alt and order changes to be ignored got %v", dirty)
	}

	working.Images = append(working.Images, content.Image{ID: "3", Src: "c.jpg"})
	assertFields(t, content.ComputeDirtyFields(working, snapshot), content.FieldImages)
}

func TestComputeDirtyFieldsKeyOrderInsensitive(t *testing.T) {
	var a, b content.ContentData
	if err := json.Unmarshal([]byte(`{"title":"A","price":12,"stock":"3"}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"stock":3,"price":"12","title":"A"}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if dirty := content.ComputeDirtyFields(&a, &b); len(dirty) != 0 {
		t.Fatalf("expected coerced payloads to match got %v", dirty)
	}
}
