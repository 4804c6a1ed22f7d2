package products

import (
	"testing"

	"studio/internal/model"
)

func TestExtractFromSelectorsShopify(t *testing.T) {
	html := `<html><body>
<div class="product-card">
  <img src="/cdn/one.jpg" alt="One">
  <span class="product-card__title">Blue Shirt</span>
  <span class="money">$29</span>
  <a href="/products/blue-shirt">view</a>
</div>
<div class="product-card">
  <img data-src="/cdn/two.jpg" alt="Alt Name Shirt">
  <span class="price">$35</span>
</div>
<div class="product-card">
  <img data-srcset="/cdn/three.jpg 1x, /cdn/three-big.jpg 2x" alt="">
  <span class="product-card__title">Srcset Shirt</span>
</div>
<div class="product-card">
  <img src="https://cdn.example.com/1x1.gif" alt="pixel">
</div>
<div class="product-card">
  <span class="product-card__title">No image at all</span>
</div>
</body></html>`

	s := New(Options{})
	doc := parseDoc(t, html)
	base := mustURL(t, "https://shop.example.com/collections/all")

	got := s.extractFromSelectors(doc, base, model.PlatformShopify)
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d: %+v", len(got), got)
	}

	if got[0].Name != "Blue Shirt" || got[0].ImageURL != "https://shop.example.com/cdn/one.jpg" {
		t.Fatalf("unexpected first tile: %+v", got[0])
	}
	if got[0].Price != "$29" || got[0].ProductURL != "https://shop.example.com/products/blue-shirt" {
		t.Fatalf("unexpected first tile price/link: %+v", got[0])
	}

	// data-src lazy image, name falls back to alt text.
	if got[1].ImageURL != "https://shop.example.com/cdn/two.jpg" || got[1].Name != "Alt Name Shirt" {
		t.Fatalf("unexpected second tile: %+v", got[1])
	}

	// First srcset candidate only.
	if got[2].ImageURL != "https://shop.example.com/cdn/three.jpg" {
		t.Fatalf("unexpected srcset resolution: %+v", got[2])
	}
}

func TestExtractFromSelectorsGenericPlatform(t *testing.T) {
	s := New(Options{})
	doc := parseDoc(t, `<html><div class="product-card"><img src="/a.jpg"></div></html>`)

	if got := s.extractFromSelectors(doc, mustURL(t, "https://example.com"), model.PlatformGeneric); got != nil {
		t.Fatalf("expected nil for platform without selector set, got %+v", got)
	}
}

func TestExtractFromSelectorsCap(t *testing.T) {
	html := `<html><body>`
	for i := 0; i < 10; i++ {
		html += `<div class="product-card"><img src="/img.jpg" alt="Thing"></div>`
	}
	html += `</body></html>`

	s := New(Options{MaxProducts: 4})
	got := s.extractFromSelectors(parseDoc(t, html), mustURL(t, "https://example.com"), model.PlatformShopify)
	if len(got) != 4 {
		t.Fatalf("expected cap at 4, got %d", len(got))
	}
}

func TestFirstSrcsetURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"/a.jpg 1x, /b.jpg 2x", "/a.jpg"},
		{"  https://cdn/x.jpg 480w", "https://cdn/x.jpg"},
		{"/only.jpg", "/only.jpg"},
	}
	for _, tc := range cases {
		if got := firstSrcsetURL(tc.in); got != tc.want {
			t.Fatalf("firstSrcsetURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
