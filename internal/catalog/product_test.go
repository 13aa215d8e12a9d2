package catalog

import (
	"testing"

	"pixelfront/internal/dummyjson"
)

func TestNormalize_DerivesInStockFromStock(t *testing.T) {
	cases := []struct {
		name  string
		stock int
		want  bool
	}{
		{"zero stock", 0, false},
		{"at threshold", 5, false},
		{"above threshold", 6, true},
		{"plenty", 120, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Normalize(dummyjson.Record{ID: 1, Stock: tc.stock})
			if p.InStock != tc.want {
				t.Fatalf("Normalize(stock=%d).InStock = %v, want %v", tc.stock, p.InStock, tc.want)
			}
		})
	}
}

func TestNormalize_IsDeterministic(t *testing.T) {
	rec := dummyjson.Record{ID: 7, Title: "Widget", Stock: 3}
	first := Normalize(rec)
	for i := 0; i < 10; i++ {
		if got := Normalize(rec); got != first {
			t.Fatalf("Normalize is not deterministic: %#v != %#v", got, first)
		}
	}
}

func TestNormalize_CopiesAllFields(t *testing.T) {
	rec := dummyjson.Record{
		ID:          42,
		Title:       "iPhone 9",
		Price:       549.99,
		Description: "An apple mobile",
		Category:    "smartphones",
		Thumbnail:   "https://cdn.example/42.jpg",
		Brand:       "Apple",
		Rating:      dummyjson.Rating{Rate: 4.69, Count: 94},
		Stock:       94,
	}

	p := Normalize(rec)

	if p.ID != 42 || p.Title != "iPhone 9" || p.Price != 549.99 {
		t.Fatalf("Normalize dropped identity fields: %#v", p)
	}
	if p.Category != "smartphones" || p.Thumbnail != rec.Thumbnail || p.Brand != "Apple" {
		t.Fatalf("Normalize dropped descriptive fields: %#v", p)
	}
	if p.Rating.Rate != 4.69 || p.Rating.Count != 94 {
		t.Fatalf("Rating = %#v, want rate=4.69 count=94", p.Rating)
	}
	if !p.InStock {
		t.Fatalf("InStock = false, want true for stock=94")
	}
}

func TestNormalizeAll_EmptyInput(t *testing.T) {
	if got := NormalizeAll(nil); got != nil {
		t.Fatalf("NormalizeAll(nil) = %#v, want nil", got)
	}
}
