package products

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeTarget(t *testing.T) {
	u, err := normalizeTarget("example.com/shop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Scheme != "https" || u.Hostname() != "example.com" {
		t.Fatalf("expected https://example.com/shop, got %s", u.String())
	}

	if _, err := normalizeTarget("   "); !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL for blank input, got %v", err)
	}
	if _, err := normalizeTarget("not a url"); !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL for unparseable input, got %v", err)
	}
}

func TestResolveURL(t *testing.T) {
	base := mustURL(t, "https://shop.example.com/collections/all")

	cases := []struct {
		name string
		ref  string
		want string
		ok   bool
	}{
		{"absolute", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg", true},
		{"root relative", "/images/a.jpg", "https://shop.example.com/images/a.jpg", true},
		{"path relative", "a.jpg", "https://shop.example.com/collections/a.jpg", true},
		{"protocol relative", "//cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg", true},
		{"empty", "", "", false},
		{"whitespace", "   ", "", false},
		{"javascript scheme", "javascript:void(0)", "", false},
		{"data uri", "data:image/png;base64,AAAA", "", false},
		{"malformed", "http://exa mple.com/x", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := resolveURL(base, tc.ref)
			if ok != tc.ok {
				t.Fatalf("resolveURL(%q) ok = %v, want %v", tc.ref, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("resolveURL(%q) = %q, want %q", tc.ref, got, tc.want)
			}
			if ok && !strings.HasPrefix(got, "http") {
				t.Fatalf("resolved URL %q is not absolute", got)
			}
		})
	}
}
