package dummyjson

import (
	"encoding/json"
	"testing"
)

func TestRating_UnmarshalScalar(t *testing.T) {
	var rec Record
	payload := `{"id": 1, "title": "Pen", "rating": 4.56, "stock": 30}`
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Rating.Rate != 4.56 {
		t.Fatalf("Rate = %v, want 4.56", rec.Rating.Rate)
	}
	if rec.Rating.Count != 0 {
		t.Fatalf("Count = %d, want 0 for scalar form", rec.Rating.Count)
	}
}

func TestRating_UnmarshalPair(t *testing.T) {
	var rec Record
	payload := `{"id": 1, "title": "Pen", "rating": {"rate": 3.9, "count": 120}}`
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Rating.Rate != 3.9 || rec.Rating.Count != 120 {
		t.Fatalf("Rating = %#v, want rate=3.9 count=120", rec.Rating)
	}
}

func TestRating_UnmarshalGarbage(t *testing.T) {
	var r Rating
	if err := json.Unmarshal([]byte(`"five stars"`), &r); err == nil {
		t.Fatal("expected error for non-numeric, non-object rating")
	}
}

func TestListResponse_Decode(t *testing.T) {
	payload := `{
		"products": [
			{"id": 1, "title": "iPhone 9", "price": 549, "category": "smartphones", "stock": 94, "rating": 4.69},
			{"id": 2, "title": "Daal Masoor", "price": 20, "category": "groceries", "stock": 0, "rating": {"rate": 4.4, "count": 17}}
		],
		"total": 2, "skip": 0, "limit": 0
	}`

	var resp ListResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Products) != 2 || resp.Total != 2 {
		t.Fatalf("decoded %d products (total %d), want 2", len(resp.Products), resp.Total)
	}
	if resp.Products[0].Rating.Rate != 4.69 || resp.Products[1].Rating.Count != 17 {
		t.Fatalf("mixed rating forms decoded wrong: %#v", resp.Products)
	}
}
