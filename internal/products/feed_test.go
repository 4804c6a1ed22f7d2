package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractFromFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products.json" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("limit"); got != "30" {
			t.Errorf("expected limit=30, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[
			{"title":"Tee","handle":"tee","images":[{"src":"https://cdn.example.com/tee.jpg"}],"variants":[{"price":"24.00"}]},
			{"title":"Numeric Price","handle":"num","images":[{"src":"https://cdn.example.com/num.jpg"}],"variants":[{"price":18.5}]},
			{"title":"No Image","handle":"noimg","images":[],"variants":[{"price":"5"}]},
			{"title":"","handle":"blank","images":[{"src":"https://cdn.example.com/blank.jpg"}],"variants":[]}
		]}`))
	}))
	defer srv.Close()

	s := New(Options{})
	base := mustURL(t, srv.URL+"/collections/all")

	got, ok := s.extractFromFeed(context.Background(), base)
	if !ok {
		t.Fatal("expected feed extraction to succeed")
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d: %+v", len(got), got)
	}

	if got[0].Name != "Tee" || got[0].Price != "$24.00" {
		t.Fatalf("unexpected first product: %+v", got[0])
	}
	if got[0].ProductURL != srv.URL+"/products/tee" {
		t.Fatalf("unexpected product URL: %q", got[0].ProductURL)
	}

	// Prices served as bare JSON numbers decode the same as strings.
	if got[1].Price != "$18.5" {
		t.Fatalf("unexpected numeric price: %q", got[1].Price)
	}

	// Empty title falls back, empty variants leave price unset.
	if got[2].Name != "Unknown Product" || got[2].Price != "" {
		t.Fatalf("unexpected fallback product: %+v", got[2])
	}
}

func TestExtractFromFeedSoftFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"products": [`))
		}},
		{"html instead of json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><body>login required</body></html>`))
		}},
		{"empty products", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"products":[]}`))
		}},
		{"all entries unusable", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"products":[{"title":"x","images":[{"src":"  "}]}]}`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			s := New(Options{})
			if got, ok := s.extractFromFeed(context.Background(), mustURL(t, srv.URL)); ok {
				t.Fatalf("expected soft failure, got %+v", got)
			}
		})
	}
}

func TestLooksLikeShopifyHost(t *testing.T) {
	cases := []struct {
		host string
		want bool
	}{
		{"store.myshopify.com", true},
		{"shopify-powered.example.com", true},
		{"example.com", false},
		{"127.0.0.1", false},
	}
	for _, tc := range cases {
		if got := looksLikeShopifyHost(tc.host); got != tc.want {
			t.Fatalf("looksLikeShopifyHost(%q) = %v, want %v", tc.host, got, tc.want)
		}
	}
}
