package dummyjson

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchProducts(t *testing.T) {
	var gotPath, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"id":1,"title":"Pen","price":2.5,"stock":8}],"total":1,"skip":0,"limit":0}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	records, err := client.FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("FetchProducts: %v", err)
	}
	if gotPath != "/products" {
		t.Fatalf("path = %q, want /products", gotPath)
	}
	if gotLimit != "0" {
		t.Fatalf("limit param = %q, want 0 (fetch everything)", gotLimit)
	}
	if len(records) != 1 || records[0].Title != "Pen" {
		t.Fatalf("records = %#v, want one Pen", records)
	}
}

func TestFetchProducts_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.FetchProducts(context.Background()); err == nil {
		t.Fatal("expected error for status 500")
	}
}

func TestFetchProducts_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": "not a list"`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.FetchProducts(context.Background()); err == nil {
		t.Fatal("expected decode error for malformed payload")
	}
}

func TestParseBaseURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty uses default", "", defaultBaseURL},
		{"bare host gains scheme", "catalog.local:8080", "https://catalog.local:8080"},
		{"existing scheme kept", "http://127.0.0.1:9000", "http://127.0.0.1:9000"},
		{"path and query stripped", "https://example.com/products?limit=5", "https://example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := parseBaseURL(tc.in)
			if err != nil {
				t.Fatalf("parseBaseURL(%q) error: %v", tc.in, err)
			}
			if u.String() != tc.want {
				t.Fatalf("parseBaseURL(%q) = %q, want %q", tc.in, u.String(), tc.want)
			}
		})
	}
}
